package dictionary

import "github.com/crimson-sun/vecname/internal/model"

// legacyEntries holds the older 6x keyword generation. Several long names are
// shifted relative to their keys in the source data and are kept verbatim.
var legacyEntries = []entry{
	// Block
	{"BAPIp", model.Block, "Oil API"},
	{"BCCP", model.Block, "Pore Volume Compressibility"},
	{"BCCPp", model.Block, "Pore Volume Compressibility"},
	{"BDENGAS", model.Block, "Gas Density"},
	{"BDENGASp", model.Block, "Gas Density"},
	{"BDENOIL", model.Block, "Oil Density"},
	{"BDENOILp", model.Block, "Oil Density"},
	{"BDENWAT", model.Block, "Water Density"},
	{"BDENWATp", model.Block, "Water Density"},
	{"BDP", model.Block, "Oil Density"},
	{"BDPp", model.Block, "Oil Density"},
	{"BDYNBRST", model.Block, "Water Density"},
	{"BDYNBRSTp", model.Block, "Water Density"},
	{"BDYNKX", model.Block, "Change In Pressure Since Initial State"},
	{"BDYNKXp", model.Block, "Change In Pressure Since Initial State"},
	{"BDYNKY", model.Block, "Dynamic Breaking Stress"},
	{"BDYNKYp", model.Block, "Dynamic Breaking Stress"},
	{"BDYNKZ", model.Block, "Dynamic Permeability In X-Direction"},
	{"BDYNKZp", model.Block, "Dynamic Permeability In X-Direction"},
	{"BDYNPV", model.Block, "Dynamic Permeability In Y-Direction"},
	{"BDYNPVp", model.Block, "Dynamic Permeability In Y-Direction"},
	{"BDYNSIG", model.Block, "Dynamic Permeability In Z-Direction"},
	{"BDYNSIGp", model.Block, "Dynamic Permeability In Z-Direction"},
	{"BKRGAS", model.Block, "Dynamic Pore Volume"},
	{"BKRGASp", model.Block, "Dynamic Pore Volume"},
	{"BKROIL", model.Block, "Dynamic Sigma Permeability"},
	{"BKROILp", model.Block, "Dynamic Sigma Permeability"},
	{"BKRWAT", model.Block, "Gas Relative Permeability"},
	{"BKRWATp", model.Block, "Gas Relative Permeability"},
	{"BPCOG", model.Block, "Oil Relative Permeability"},
	{"BPCOGp", model.Block, "Oil Relative Permeability"},
	{"BPCOIL", model.Block, "Water Relative Permeability"},
	{"BPCOILp", model.Block, "Water Relative Permeability"},
	{"BPCOW", model.Block, "Oil-Gas Capillary Pressure"},
	{"BPCOWp", model.Block, "Oil-Gas Capillary Pressure"},
	{"BPCWAT", model.Block, "Oil Capillary Pressure"},
	{"BPCWATp", model.Block, "Oil Capillary Pressure"},
	{"BPMODHYS", model.Block, "Oil-Water Capillary Pressure"},
	{"BPMODHYSp", model.Block, "Oil-Water Capillary Pressure"},
	{"BPRp", model.Block, "Water Capillary Pressure"},
	{"BRSp", model.Block, "Water Capillary Pressure"},
	{"BSGASp", model.Block, "Dynamic Pmod Hysteresis Curve Type (1/2/3=B/S/P)"},
	{"BSOILp", model.Block, "Dynamic Pmod Hysteresis Curve Type (1/2/3=B/S/P)"},
	{"BSRVSTAT", model.Block, "Pressure"},
	{"BSRVSTATp", model.Block, "Pressure"},
	{"BSTRAIN", model.Block, "Gas Rs"},
	{"BSTRAINp", model.Block, "Gas Rs"},
	{"BSTRESS", model.Block, "Gas Rv"},
	{"BSTRESSp", model.Block, "Gas Rv"},
	{"BSTRESSA", model.Block, "Gas Saturation"},
	{"BSTRESSAp", model.Block, "Gas Saturation"},
	{"BSTRESSN", model.Block, "Oil Saturation"},
	{"BSTRESSNp", model.Block, "Oil Saturation"},
	{"BVISCGAS", model.Block, "Srv Status (1/2/3=Stim/Sigprop/Propprop)"},
	{"BVISCGASp", model.Block, "Srv Status (1/2/3=Stim/Sigprop/Propprop)"},
	{"BVISCOIL", model.Block, "Volumetric Strain"},
	{"BVISCOILp", model.Block, "Volumetric Strain"},
	{"BVISCWAT", model.Block, "Mean Normal Stress"},
	{"BVISCWATp", model.Block, "Mean Normal Stress"},
	{"BXi", model.Block, "Mean Normal Stress Idealised Analytic Solution"},
	{"BXip", model.Block, "Mean Normal Stress Idealised Analytic Solution"},
	{"BYi", model.Block, "Net Stress"},
	{"BYip", model.Block, "Net Stress"},
	{"BZi", model.Block, "Water Saturation"},
	{"BZip", model.Block, "Water Saturation"},

	// Field
	{"FDG", model.Field, "Lock Gas Viscosity"},
	{"FDO", model.Field, "Lock Gas Viscosity"},
	{"FDW", model.Field, "Lock Oil Viscosity"},
	{"FLIR", model.Field, "Lock Oil Viscosity"},
	{"FLIRH", model.Field, "Lock Water Viscosity"},
	{"FLIT", model.Field, "Lock Water Viscosity"},
	{"FMBG", model.Field, "Lock Liquid Phase Mole Fraction"},
	{"FMBO", model.Field, "Lock Liquid Phase Mole Fraction"},
	{"FMBW", model.Field, "Lock Vapor Phase Mole Fraction"},
	{"FMSTR", model.Field, "Lock Vapor Phase Mole Fraction"},
	{"FMWIR", model.Field, "Grid Block Total Mole Fraction"},
	{"FMWSH", model.Field, "Grid Block Total Mole Fraction"},
	{"FMWST", model.Field, "Completion Gas Flow"},

	// Miscellaneous
	{"CHOPS", model.Misc, "Completion Oil Flow"},
	{"CPDIAM", model.Misc, "Completion Water Flow"},
	{"MLINEART", model.Misc, "Number Of Time-Step Chops At The Current Time-Step"},
	{"MSUMCHOP", model.Misc, "Perforation Diameter"},
	{"MSUMLINT", model.Misc, "Field Aquifer Influx Rate"},
	{"TS", model.Misc, "Field Cumulative Aquifer Influx"},

	// Network
	{"NGIR", model.Network, "S In Place Difference From Initial Conditions"},
	{"NGIRH", model.Network, "S In Place Difference From Initial Conditions History"},
	{"NGIT", model.Network, "Ter In Place Difference From Initial Conditions"},
	{"NGOR", model.Network, "S In Place"},
	{"NGORH", model.Network, "S In Place History"},
	{"NGPR", model.Network, "Served Liquid Injection Rate"},
	{"NGPRH", model.Network, "Served Liquid Injection Rate History"},
	{"NGPT", model.Network, "S Phase Material Balance Error"},
	{"NLINEARS", model.Network, "L Phase Material Balance Error"},
	{"NLIR", model.Network, "Ter Phase Material Balance Error"},
	{"NLIRH", model.Network, "Ter Phase Material Balance Error History"},
	{"NLIT", model.Network, "Mber Of Injecting Wells"},
	{"NLPR", model.Network, "Mber Of Stopped Wells"},
	{"NLPRH", model.Network, "Mber Of Stopped Wells History"},
	{"NLPT", model.Network, "L In Place"},
	{"NOIR", model.Network, "Ter In Place"},
	{"NOIRH", model.Network, "Ter In Place History"},
	{"NOIT", model.Network, "Served Gas Injection Rate"},
	{"NOPR", model.Network, "Mulative Gas Injection"},
	{"NOPRH", model.Network, "Mulative Gas Injection History"},
	{"NOPT", model.Network, "Served Gas-Oil Ratio"},
	{"NWCT", model.Network, "Quid Injection Rate"},
	{"NWCTH", model.Network, "Served Liquid Injection Rate"},
	{"NWIR", model.Network, "Mulative Liquid Injection"},
	{"NWIRH", model.Network, "Mulative Liquid Injection History"},
	{"NWIT", model.Network, "Served Water Cut"},
	{"NWPR", model.Network, "Or A Well Completion"},
	{"NWPRH", model.Network, " History"},
	{"NWPT", model.Network, "F Tracer Linear Iterations At The Current Time-Step"},

	// Region
	{"RDG", model.Region, "F Well Completion"},
	{"RDG_dfname", model.Region, "Total Number Of Time-Step Chops"},
	{"RDO", model.Region, "Umber Of Tracer Linear Iterations"},
	{"RDO_dfname", model.Region, "Network Gas Injection Rate"},
	{"RDW", model.Region, " Observed Gas Injection Rate"},
	{"RDW_dfname", model.Region, "Network Cumulative Gas Injection"},
	{"REPT", model.Region, "Network Gas-Oil Ratio"},
	{"RGIP_dfname", model.Region, "Network Observed Gas-Oil Ratio"},
	{"RGIR_dfname", model.Region, "Network Gas Production Rate"},
	{"RGIT_dfname", model.Region, "Network Observed Gas Production Rate"},
	{"RGPR_dfname", model.Region, "Network Cumulative Gas Production"},
	{"RGPT_dfname", model.Region, "Average Linear Iterations Per Newton Iteration"},
	{"RLIR", model.Region, " Liquid Injection Rate"},
	{"RLIR_dfname", model.Region, "Network Observed Liquid Injection Rate"},
	{"RLIT", model.Region, " Cumulative Liquid Injection"},
	{"RLIT_dfname", model.Region, "Network Liquid Production Rate"},
	{"RLPR", model.Region, " Observed Liquid Production Rate"},
	{"RLPR_dfname", model.Region, "Network Cumulative Liquid Production"},
	{"RLPT", model.Region, " Oil Injection Rate"},
	{"RLPT_dfname", model.Region, "Network Observed Oil Injection Rate"},
	{"RMSTR", model.Region, " Cumulative Oil Injection"},
	{"RMSTR_dfname", model.Region, "Network Oil Production Rate"},
	{"ROIP_dfname", model.Region, "Network Observed Oil Production Rate"},
	{"ROIR_dfname", model.Region, "Network Cumulative Oil Production"},
	{"ROIT_dfname", model.Region, "Network Water Cut"},
	{"ROPR_dfname", model.Region, "Network Observed Water Cut"},
	{"ROPT_dfname", model.Region, "Network Water Injection Rate"},
	{"RPRP_dfname", model.Region, "Network Observed Water Injection Rate"},
	{"RPR_dfname", model.Region, "Network Cumulative Water Injection"},
	{"RWIP_dfname", model.Region, "Network Water Production Rate"},
	{"RWIR_dfname", model.Region, "Network Observed Water Production Rate"},
	{"RWIT_dfname", model.Region, "Network Cumulative Water Production"},
	{"RWPR_dfname", model.Region, "Region Gas In Place Difference From Initial Conditions"},
	{"RWPT_dfname", model.Region, "Dynamic Region Gas In Place Difference From Initial Conditions"},

	// Well
	{"WADEN", model.Well, "N Oil In Place Difference From Initial Conditions"},
	{"WLIR", model.Well, "Ic Region Oil In Place Difference From Initial Conditions"},
	{"WLIRH", model.Well, "Ic Region Oil In Place Difference From Initial Conditions History"},
	{"WLIT", model.Well, "Ic Region Water In Place Difference From Initial Conditions"},
	{"WLPV", model.Well, "Nt Report Step Number"},
	{"WSBULKV", model.Well, "N Gas In Place"},
	{"WSBVPROP", model.Well, "Ic Region Gas In Place"},
	{"WSBVUNPR", model.Well, "N Gas Injection Rate"},
	{"WSMFSA", model.Well, "Ic Region Gas Injection Rate"},
	{"WSMFSAP", model.Well, "N Cumulative Gas Injection Rate"},
	{"WSMFSAU", model.Well, "Ic Region Cumulative Gas Injection Rate"},
	{"WSPORVF", model.Well, "N Gas Production Rate"},
	{"WSPORVM", model.Well, "Ic Region Gas Production Rate"},

	// Connection
	{"CFGAS", model.WellCompletion, "Gas Flow Rate"},
	{"INFLOWi", model.WellCompletion, "Inflow Rate"},
	{"MSDEPTH", model.WellCompletion, "Region Liquid Injection Rate"},

	// Group
	{"GLIR", model.WellGroup, "C Region Liquid Injection Rate"},
	{"GLIRH", model.WellGroup, "C Region Liquid Injection Rate History"},
	{"GLIT", model.WellGroup, "C Region Cumulative Liquid Injection Rate"},
}
