package dictionary

import "github.com/crimson-sun/vecname/internal/model"

// primaryEntries is the current-generation keyword table. Synonyms such as
// FSGR/FGSR and repeated rows are intentional; the first row for a key wins.
var primaryEntries = []entry{
	// Field
	{"FOPR", model.Field, "Oil Production Rate"},
	{"FOPRA", model.Field, "Oil Production Rate above GOC"},
	{"FOPRB", model.Field, "Oil Production Rate below GOC"},
	{"FOPTA", model.Field, "Oil Production Total above GOC"},
	{"FOPTB", model.Field, "Oil Production Total below GOC"},
	{"FOPR1", model.Field, "Oil Production Rate above GOC"},
	{"FOPR2", model.Field, "Oil Production Rate below GOC"},
	{"FOPT1", model.Field, "Oil Production Total above GOC"},
	{"FOPT2", model.Field, "Oil Production Total below GOC"},
	{"FOMR", model.Field, "Oil Mass Rate"},
	{"FOMT", model.Field, "Oil Mass Total"},
	{"FODN", model.Field, "Oil Density at Surface Conditions"},
	{"FOPRH", model.Field, "Oil Production Rate History"},
	{"FOPRT", model.Field, "Oil Production Rate Target/Limit"},
	{"FOPRF", model.Field, "Free Oil Production Rate"},
	{"FOPRS", model.Field, "Solution Oil Production Rate"},
	{"FOPT", model.Field, "Oil Production Total"},
	{"FOPTH", model.Field, "Oil Production Total History"},
	{"FOPTF", model.Field, "Free Oil Production Total"},
	{"FOPTS", model.Field, "Solution Oil Production Total"},
	{"FOIR", model.Field, "Oil Injection Rate"},
	{"FOIRH", model.Field, "Oil Injection Rate History"},
	{"FOIRT", model.Field, "Oil Injection Rate Target/Limit"},
	{"FOIT", model.Field, "Oil Injection Total"},
	{"FOITH", model.Field, "Oil Injection Total History"},
	{"FOPP", model.Field, "Oil Potential Production rate"},
	{"FOPP2", model.Field, "Oil Potential Production rate"},
	{"FOPI", model.Field, "Oil Potential Injection rate"},
	{"FOPI2", model.Field, "Oil Potential Injection rate"},
	{"FOVPR", model.Field, "Oil Voidage Production Rate"},
	{"FOVPT", model.Field, "Oil Voidage Production Total"},
	{"FOVIR", model.Field, "Oil Voidage Injection Rate"},
	{"FOVIT", model.Field, "Oil Voidage Injection Total"},
	{"FOnPR", model.Field, "nth separator stage oil rate"},
	{"FOnPT", model.Field, "nth separator stage oil total"},
	{"FEOR", model.Field, "Export Oil Rate"},
	{"FEOT", model.Field, "Export Oil Total"},
	{"FEOMF", model.Field, "Export Oil Mole Fraction"},
	{"FWPR", model.Field, "Water Production Rate"},
	{"FWMR", model.Field, "Water Mass Rate"},
	{"FWMT", model.Field, "Water Mass Total"},
	{"FWPRH", model.Field, "Water Production Rate History"},
	{"FWPRT", model.Field, "Water Production Rate Target/Limit"},
	{"FWPT", model.Field, "Water Production Total"},
	{"FWPTH", model.Field, "Water Production Total History"},
	{"FWIR", model.Field, "Water Injection Rate"},
	{"FWIRH", model.Field, "Water Injection Rate History"},
	{"FWIRT", model.Field, "Water Injection Rate Target/Limit"},
	{"FWIT", model.Field, "Water Injection Total"},
	{"FWITH", model.Field, "Water Injection Total History"},
	{"FWPP", model.Field, "Water Potential Production rate"},
	{"FWPP2", model.Field, "Water Potential Production rate"},
	{"FWPI", model.Field, "Water Potential Injection rate"},
	{"FWPI2", model.Field, "Water Potential Injection rate"},
	{"FWVPR", model.Field, "Water Voidage Production Rate"},
	{"FWVPT", model.Field, "Water Voidage Production Total"},
	{"FWVIR", model.Field, "Water Voidage Injection Rate"},
	{"FWVIT", model.Field, "Water Voidage Injection Total"},
	{"FWPIR", model.Field, "Ratio of produced water to injected water (percentage)"},
	{"FWMPR", model.Field, "Water component molar production rate"},
	{"FWMPT", model.Field, "Water component molar production total"},
	{"FWMIR", model.Field, "Water component molar injection rate"},
	{"FWMIT", model.Field, "Water component molar injection total"},
	{"FGPR", model.Field, "Gas Production Rate"},
	{"FGPRA", model.Field, "Gas Production Rate above"},
	{"FGPRB", model.Field, "Gas Production Rate below"},
	{"FGPTA", model.Field, "Gas Production Total above"},
	{"FGPTB", model.Field, "Gas Production Total below"},
	{"FGPR1", model.Field, "Gas Production Rate above GOC"},
	{"FGPR2", model.Field, "Gas Production Rate below GOC"},
	{"FGPT1", model.Field, "Gas Production Total above GOC"},
	{"FGPT2", model.Field, "Gas Production Total below GOC"},
	{"FGMR", model.Field, "Gas Mass Rate"},
	{"FGMT", model.Field, "Gas Mass Total"},
	{"FGDN", model.Field, "Gas Density at Surface Conditions"},
	{"FGPRH", model.Field, "Gas Production Rate History"},
	{"FGPRT", model.Field, "Gas Production Rate Target/Limit"},
	{"FGPRF", model.Field, "Free Gas Production Rate"},
	{"FGPRS", model.Field, "Solution Gas Production Rate"},
	{"FGPT", model.Field, "Gas Production Total"},
	{"FGPTH", model.Field, "Gas Production Total History"},
	{"FGPTF", model.Field, "Free Gas Production Total"},
	{"FGPTS", model.Field, "Solution Gas Production Total"},
	{"FGIR", model.Field, "Gas Injection Rate"},
	{"FGIRH", model.Field, "Gas Injection Rate History"},
	{"FGIRT", model.Field, "Gas Injection Rate Target/Limit"},
	{"FGIT", model.Field, "Gas Injection Total"},
	{"FGITH", model.Field, "Gas Injection Total History"},
	{"FGPP", model.Field, "Gas Potential Production rate"},
	{"FGPP2", model.Field, "Gas Potential Production rate"},
	{"FGPPS", model.Field, "Solution"},
	{"FGPPS2", model.Field, "Solution"},
	{"FGPPF", model.Field, "Free Gas Potential Production rate"},
	{"FGPPF2", model.Field, "Free Gas Potential Production rate"},
	{"FGPI", model.Field, "Gas Potential Injection rate"},
	{"FGPI2", model.Field, "Gas Potential Injection rate"},
	{"FSGR", model.Field, "Sales Gas Rate"},
	{"FGSR", model.Field, "Sales Gas Rate"},
	{"FSGT", model.Field, "Sales Gas Total"},
	{"FGST", model.Field, "Sales Gas Total"},
	{"FSMF", model.Field, "Sales Gas Mole Fraction"},
	{"FFGR", model.Field, "Fuel Gas Rate, at and below this group"},
	{"FFGT", model.Field, "Fuel Gas cumulative Total, at and below this group"},
	{"FFMF", model.Field, "Fuel Gas Mole Fraction"},
	{"FGCR", model.Field, "Gas Consumption Rate, at and below this group"},
	{"FGCT", model.Field, "Gas Consumption Total, at and below this group"},
	{"FGIMR", model.Field, "Gas Import Rate, at and below this group"},
	{"FGIMT", model.Field, "Gas Import Total, at and below this group"},
	{"FGLIR", model.Field, "Gas Lift Injection Rate"},
	{"FWGPR", model.Field, "Wet Gas Production Rate"},
	{"FWGPT", model.Field, "Wet Gas Production Total"},
	{"FWGPRH", model.Field, "Wet Gas Production Rate History"},
	{"FWGIR", model.Field, "Wet Gas Injection Rate"},
	{"FWGIT", model.Field, "Wet Gas Injection Total"},
	{"FEGR", model.Field, "Export Gas Rate"},
	{"FEGT", model.Field, "Export Gas Total"},
	{"FEMF", model.Field, "Export Gas Mole Fraction"},
	{"FEXGR", model.Field, "Excess Gas Rate"},
	{"FEXGT", model.Field, "Excess Gas Total"},
	{"FRGR", model.Field, "Re-injection Gas Rate"},
	{"FRGT", model.Field, "Re-injection Gas Total"},
	{"FGnPR", model.Field, "nth separator stage gas rate"},
	{"FGnPT", model.Field, "nth separator stage gas total"},
	{"FGVPR", model.Field, "Gas Voidage Production Rate"},
	{"FGVPT", model.Field, "Gas Voidage Production Total"},
	{"FGVIR", model.Field, "Gas Voidage Injection Rate"},
	{"FGVIT", model.Field, "Gas Voidage Injection Total"},
	{"FGQ", model.Field, "Gas Quality"},
	{"FLPR", model.Field, "Liquid Production Rate"},
	{"FLPRH", model.Field, "Liquid Production Rate History"},
	{"FLPRT", model.Field, "Liquid Production Rate Target/Limit"},
	{"FLPT", model.Field, "Liquid Production Total"},
	{"FLPTH", model.Field, "Liquid Production Total History"},
	{"FVPR", model.Field, "Res Volume Production Rate"},
	{"FVPRT", model.Field, "Res Volume Production Rate Target/Limit"},
	{"FVPT", model.Field, "Res Volume Production Total"},
	{"FVIR", model.Field, "Res Volume Injection Rate"},
	{"FVIRT", model.Field, "Res Volume Injection Rate Target/Limit"},
	{"FVIT", model.Field, "Res Volume Injection Total"},
	{"FWCT", model.Field, "Water Cut"},
	{"FWCTH", model.Field, "Water Cut History"},
	{"FGOR", model.Field, "Gas-Oil Ratio"},
	{"FGORH", model.Field, "Gas-Oil Ratio History"},
	{"FOGR", model.Field, "Oil-Gas Ratio"},
	{"FOGRH", model.Field, "Oil-Gas Ratio History"},
	{"FWGR", model.Field, "Water-Gas Ratio"},
	{"FWGRH", model.Field, "Water-Gas Ratio History"},
	{"FGLR", model.Field, "Gas-Liquid Ratio"},
	{"FGLRH", model.Field, "Gas-Liquid Ratio History"},
	{"FMCTP", model.Field, "Mode of Control for group Production"},
	{"FMCTW", model.Field, "Mode of Control for group Water Injection"},
	{"FMCTG", model.Field, "Mode of Control for group Gas Injection"},
	{"FMWPT", model.Field, "Total number of production wells"},
	{"FMWPR", model.Field, "Number of production wells currently flowing"},
	{"FMWPA", model.Field, "Number of abandoned production wells"},
	{"FMWPU", model.Field, "Number of unused production wells"},
	{"FMWPG", model.Field, "Number of producers on group control"},
	{"FMWPO", model.Field, "Number of producers controlled by own oil rate limit"},
	{"FMWPS", model.Field, "Number of producers on own surface rate limit control"},
	{"FMWPV", model.Field, "Number of producers on own reservoir volume rate limit control"},
	{"FMWPP", model.Field, "Number of producers on pressure control"},
	{"FMWPL", model.Field, "Number of producers using artificial lift"},
	{"FMWIT", model.Field, "Total number of injection wells"},
	{"FMWIN", model.Field, "Number of injection wells currently flowing"},
	{"FMWIA", model.Field, "Number of abandoned injection wells"},
	{"FMWIU", model.Field, "Number of unused injection wells"},
	{"FMWIG", model.Field, "Number of injectors on group control"},
	{"FMWIS", model.Field, "Number of injectors on own surface rate limit control"},
	{"FMWIV", model.Field, "Number of injectors on own reservoir volume rate limit control"},
	{"FMWIP", model.Field, "Number of injectors on pressure control"},
	{"FMWDR", model.Field, "Number of drilling events this timestep"},
	{"FMWDT", model.Field, "Number of drilling events in total"},
	{"FMWWO", model.Field, "Number of workover events this timestep"},
	{"FMWWT", model.Field, "Number of workover events in total"},
	{"FEPR", model.Field, "Energy Production Rate"},
	{"FEPT", model.Field, "Energy Production Total"},
	{"FNLPR", model.Field, "NGL Production Rate"},
	{"FNLPT", model.Field, "NGL Production Total"},
	{"FNLPRH", model.Field, "NGL Production Rate History"},
	{"FNLPTH", model.Field, "NGL Production Total History"},
	{"FAMF", model.Field, "Component aqueous mole fraction, from producing completions"},
	{"FXMF", model.Field, "Liquid Mole Fraction"},
	{"FYMF", model.Field, "Vapor Mole Fraction"},
	{"FXMFn", model.Field, "Liquid Mole Fraction for nth separator stage"},
	{"FYMFn", model.Field, "Vapor Mole Fraction for nth separator stage"},
	{"FZMF", model.Field, "Total Mole Fraction"},
	{"FCMPR", model.Field, "Hydrocarbon Component Molar Production Rates"},
	{"FCMPT", model.Field, "Hydrocarbon Component"},
	{"FCMIR", model.Field, "Hydrocarbon Component Molar Injection Rates"},
	{"FCMIT", model.Field, "Hydrocarbon Component Molar Injection Totals"},
	{"FHMIR", model.Field, "Hydrocarbon Molar Injection Rate"},
	{"FHMIT", model.Field, "Hydrocarbon Molar Injection Total"},
	{"FHMPR", model.Field, "Hydrocarbon Molar Production Rate"},
	{"FHMPT", model.Field, "Hydrocarbon Molar Production Total"},
	{"FCHMR", model.Field, "Hydrocarbon Component"},
	{"FCHMT", model.Field, "Hydrocarbon Component"},
	{"FCWGPR", model.Field, "Hydrocarbon Component Wet Gas Production Rate"},
	{"FCWGPT", model.Field, "Hydrocarbon Component Wet Gas Production Total"},
	{"FCWGIR", model.Field, "Hydrocarbon Component Wet Gas Injection Rate"},
	{"FCWGIT", model.Field, "Hydrocarbon Component Wet Gas Injection Total"},
	{"FCGMR", model.Field, "Hydrocarbon component"},
	{"FCGMT", model.Field, "Hydrocarbon component"},
	{"FCOMR", model.Field, "Hydrocarbon component"},
	{"FCOMT", model.Field, "Hydrocarbon component"},
	{"FCNMR", model.Field, "Hydrocarbon component molar rates in the NGL phase"},
	{"FCNWR", model.Field, "Hydrocarbon component mass rates in the NGL phase"},
	{"FCGMRn", model.Field, "Hydrocarbon component molar rates in the gas phase for nth separator stage"},
	{"FCGRn", model.Field, "Hydrocarbon component molar rates in the gas phase for nth separator stage"},
	{"FCOMRn", model.Field, "Hydrocarbon component"},
	{"FCORn", model.Field, "Hydrocarbon component"},
	{"FMUF", model.Field, "Make-up fraction"},
	{"FAMR", model.Field, "Make-up gas rate"},
	{"FAMT", model.Field, "Make-up gas total"},
	{"FGSPR", model.Field, "Target sustainable rate for most recent sustainable capacity test for gas"},
	{"FGSRL", model.Field, "Maximum tested rate sustained for the test period during the most recent sustainable capacity test for gas"},
	{"FGSRU", model.Field, "Minimum tested rate not sustained for the test period during the most recent sustainable capacity test for gas"},
	{"FGSSP", model.Field, "Period for which target sustainable rate could be maintained for the most recent sustainable capacity test for gas"},
	{"FGSTP", model.Field, "Test period for the most recent sustainable capacity test for gas"},
	{"FOSPR", model.Field, "Target sustainable rate for most recent sustainable capacity test for oil"},
	{"FOSRL", model.Field, "Maximum tested rate sustained for the test period during the most recent sustainable capacity test for oil"},
	{"FOSRU", model.Field, "Minimum tested rate not sustained for the test period during the most recent sustainable capacity test for oil"},
	{"FOSSP", model.Field, "Period for which target sustainable rate could be maintained for the most recent sustainable capacity test for oil"},
	{"FOSTP", model.Field, "Test period for the most recent sustainable capacity test for oil"},
	{"FWSPR", model.Field, "Target sustainable rate for most recent sustainable capacity test for water"},
	{"FWSRL", model.Field, "Maximum tested rate sustained for the test period during the most recent sustainable capacity test for water"},
	{"FWSRU", model.Field, "Minimum tested rate not sustained for the test period during the most recent sustainable capacity test for water"},
	{"FWSSP", model.Field, "Period for which target sustainable rate could be maintained for the most recent sustainable capacity test for water"},
	{"FWSTP", model.Field, "Test period for the most recent sustainable capacity test for water"},
	{"FGPRG", model.Field, "Gas production rate"},
	{"FOPRG", model.Field, "Oil production rate"},
	{"FNLPRG", model.Field, "NGL production rate"},
	{"FXMFG", model.Field, "Liquid mole fraction"},
	{"FYMFG", model.Field, "Vapor mole fraction"},
	{"FCOMRG", model.Field, "Hydrocarbon component"},
	{"FCGMRG", model.Field, "Hydrocarbon component molar rates in the gas phase"},
	{"FCNMRG", model.Field, "Hydrocarbon component molar rates in the NGL phase"},
	{"FPR", model.Field, "Pressure average value"},
	{"FPRH", model.Field, "Pressure average value"},
	{"FPRP", model.Field, "Pressure average value"},
	{"FPRGZ", model.Field, "P/Z"},
	{"FRS", model.Field, "Gas-oil ratio"},
	{"FRV", model.Field, "Oil-gas ratio"},
	{"FCHIP", model.Field, "Component Hydrocarbon as Wet Gas"},
	{"FCMIP", model.Field, "Component Hydrocarbon as Moles"},
	{"FPPC", model.Field, "Initial Contact Corrected Potential"},
	{"FREAC", model.Field, "Reaction rate. The reaction number is given as a component index"},
	{"FREAT", model.Field, "Reaction total. The reaction number is given as a component index"},
	{"FRPV", model.Field, "Pore Volume at Reservoir conditions"},
	{"FOPV", model.Field, "Pore Volume containing Oil"},
	{"FWPV", model.Field, "Pore Volume containing Water"},
	{"FGPV", model.Field, "Pore Volume containing Gas"},
	{"FHPV", model.Field, "Pore Volume containing Hydrocarbon"},
	{"FRTM", model.Field, "Transmissibility Multiplier associated with rock compaction"},
	{"FOE", model.Field, "(OIP(initial) - OIP(now)) / OIP(initial)"},
	{"FOEW", model.Field, "Oil Production from Wells / OIP(initial)"},
	{"FOEIW", model.Field, "(OIP(initial) - OIP(now)) / Initial Mobile Oil with respect to Water"},
	{"FOEWW", model.Field, "Oil Production from Wells / Initial Mobile Oil with respect to Water"},
	{"FOEIG", model.Field, "(OIP(initial) - OIP(now)) / Initial Mobile Oil with respect to Gas"},
	{"FOEWG", model.Field, "Oil Production from Wells / Initial Mobile Oil with respect to Gas"},
	{"FORMR", model.Field, "Total stock tank oil produced by rock compaction"},
	{"FORMW", model.Field, "Total stock tank oil produced by water influx"},
	{"FORMG", model.Field, "Total stock tank oil produced by gas influx"},
	{"FORME", model.Field, "Total stock tank oil produced by oil expansion"},
	{"FORMS", model.Field, "Total stock tank oil produced by solution gas"},
	{"FORMF", model.Field, "Total stock tank oil produced by free gas influx"},
	{"FORMX", model.Field, "Total stock tank oil produced by 'traced' water influx"},
	{"FORMY", model.Field, "Total stock tank oil produced by other water influx"},
	{"FORFR", model.Field, "Fraction of total oil produced by rock compaction"},
	{"FORFW", model.Field, "Fraction of total oil produced by water influx"},
	{"FORFG", model.Field, "Fraction of total oil produced by gas influx"},
	{"FORFE", model.Field, "Fraction of total oil produced by oil expansion"},
	{"FORFS", model.Field, "Fraction of total oil produced by solution gas"},
	{"FORFF", model.Field, "Fraction of total oil produced by free gas influx"},
	{"FORFX", model.Field, "Fraction of total oil produced by 'traced' water influx"},
	{"FORFY", model.Field, "Fraction of total oil produced by other water influx"},
	{"FAQR", model.Field, "Aquifer influx rate"},
	{"FAQT", model.Field, "Cumulative aquifer influx"},
	{"FAQRG", model.Field, "Aquifer influx rate"},
	{"FAQTG", model.Field, "Cumulative aquifer influx"},
	{"FAQER", model.Field, "Aquifer thermal energy influx rate"},
	{"FAQET", model.Field, "Cumulative aquifer thermal energy influx"},
	{"FNQR", model.Field, "Aquifer influx rate"},
	{"FNQT", model.Field, "Cumulative aquifer influx"},
	{"FTPR", model.Field, "Tracer Production Rate"},
	{"FTPT", model.Field, "Tracer Production Total"},
	{"FTPC", model.Field, "Tracer Production Concentration"},
	{"FTIR", model.Field, "Tracer Injection Rate"},
	{"FTIT", model.Field, "Tracer Injection Total"},
	{"FTIC", model.Field, "Tracer Injection Concentration"},
	{"FTMR", model.Field, "Traced mass Rate"},
	{"FTMT", model.Field, "Traced mass Total"},
	{"FTQR", model.Field, "Traced molar Rate"},
	{"FTCM", model.Field, "Tracer Carrier molar Rate"},
	{"FTMF", model.Field, "Traced molar fraction"},
	{"FTVL", model.Field, "Traced liquid volume rate"},
	{"FTVV", model.Field, "Traced vapor volume rate"},
	{"FTTL", model.Field, "Traced liquid volume total"},
	{"FTTV", model.Field, "Traced vapor volume total"},
	{"FTML", model.Field, "Traced mass liquid rate"},
	{"FTMV", model.Field, "Traced mass vapor rate"},
	{"FTLM", model.Field, "Traced mass liquid total"},
	{"FTVM", model.Field, "Traced mass vapor total"},
	{"FTIPT", model.Field, "Tracer In Place"},
	{"FTIPF", model.Field, "Tracer In Place"},
	{"FTIPS", model.Field, "Tracer In Place"},
	{"FAPI", model.Field, "Oil API"},
	{"FSPR", model.Field, "Salt Production Rate"},
	{"FSPT", model.Field, "Salt Production Total"},
	{"FSIR", model.Field, "Salt Injection Rate"},
	{"FSIT", model.Field, "Salt Injection Total"},
	{"FSPC", model.Field, "Salt Production Concentration"},
	{"FSIC", model.Field, "Salt Injection Concentration"},
	{"FSIP", model.Field, "Salt In Place"},
	{"GTPRANI", model.Field, "Anion Production Rate"},
	{"GTPTANI", model.Field, "Anion Production Total"},
	{"GTIRANI", model.Field, "Anion Injection Rate"},
	{"GTITANI", model.Field, "Anion Injection Total"},
	{"GTPRCAT", model.Field, "Cation Production Rate"},
	{"GTPTCAT", model.Field, "Cation Production Total"},
	{"GTIRCAT", model.Field, "Cation Injection Rate"},
	{"GTITCAT", model.Field, "Cation Injection Total"},
	{"FTPCHEA", model.Field, "Production Temperature"},
	{"FTICHEA", model.Field, "Injection Temperature"},
	{"FTPRHEA", model.Field, "Energy flows"},
	{"FTPTHEA", model.Field, "Energy Production Total"},
	{"FTIRHEA", model.Field, "Energy flows"},
	{"FTITHEA", model.Field, "Energy Injection Total"},
	{"FTIPTHEA", model.Field, "Difference in Energy in place between current and initial time"},
	{"FTPR", model.Field, "Tracer Production Rate"},
	{"FTPT", model.Field, "Tracer Production Total"},
	{"FTPC", model.Field, "Tracer Production Concentration"},
	{"FTIR", model.Field, "Tracer Injection Rate"},
	{"FTIT", model.Field, "Tracer Injection Total"},
	{"FTIC", model.Field, "Tracer Injection Concentration"},
	{"FTIPT", model.Field, "Tracer In Place"},
	{"FTIPF", model.Field, "Tracer In Place"},
	{"FTIPS", model.Field, "Tracer In Place"},
	{"FTIP#", model.Field, " Tracer In Place in phase # (1,2,3,...)"},
	{"FTADS", model.Field, "Tracer Adsorption total"},
	{"FTDCY", model.Field, "Decayed tracer"},
	{"FTIRF", model.Field, "Tracer Injection Rate"},
	{"FTIRS", model.Field, "Tracer Injection Rate"},
	{"FTPRF", model.Field, "Tracer Production Rate"},
	{"FTPRS", model.Field, "Tracer Production Rate"},
	{"FTITF", model.Field, "Tracer Injection Total"},
	{"FTITS", model.Field, "Tracer Injection Total"},
	{"FTPTF", model.Field, "Tracer Production Total"},
	{"FTPTS", model.Field, "Tracer Production Total"},
	{"FTICF", model.Field, "Tracer Injection Concentration"},
	{"FTICS", model.Field, "Tracer Injection Concentration"},
	{"FTPCF", model.Field, "Tracer Production"},
	{"FTPCS", model.Field, "Tracer Production"},
	{"FMPR", model.Field, "Methane Production Rate"},
	{"FMPT", model.Field, "Methane Production Total"},
	{"FMIR", model.Field, "Methane Injection Rate"},
	{"FMIT", model.Field, "Methane Injection Total"},
	{"FCGC", model.Field, "Bulk Coal Gas Concentration"},
	{"FCSC", model.Field, "Bulk Coal Solvent Concentration"},
	{"FTPRFOA", model.Field, "Production Rate"},
	{"FTPTFOA", model.Field, "Production Total"},
	{"FTIRFOA", model.Field, "Injection Rate"},
	{"FTITFOA", model.Field, "Injection Total"},
	{"FTIPTFOA", model.Field, "In Solution"},
	{"FTADSFOA", model.Field, "Adsorption total"},
	{"FTDCYFOA", model.Field, "Decayed tracer"},
	{"FTMOBFOA", model.Field, "Gas mobility factor"},
	{"FTPRFOA", model.Field, "Production Rate"},
	{"FTPTFOA", model.Field, "Production Total"},
	{"FTIRFOA", model.Field, "Injection Rate"},
	{"FTITFOA", model.Field, "Injection Total"},
	{"FTIPTFOA", model.Field, "In Solution"},
	{"FTADSFOA", model.Field, "Adsorption total"},
	{"FTDCYFOA", model.Field, "Decayed tracer"},
	{"FTMOBFOA", model.Field, "Gas mobility factor"},
	{"FSGR", model.Field, "Sales Gas Rate"},
	{"FGSR", model.Field, "Sales Gas Rate"},
	{"FSGT", model.Field, "Sales Gas Total"},
	{"FGST", model.Field, "Sales Gas Total"},
	{"FGDC", model.Field, "Gas Delivery Capacity"},
	{"FGDCQ", model.Field, "Field/Group Gas DCQ"},
	{"FGCR", model.Field, "Gas consumption rate, at and below this group"},
	{"FGCT", model.Field, "Gas consumption cumulative total, at and below this group"},
	{"FFGR", model.Field, "Fuel Gas rate, at and below this group"},
	{"FFGT", model.Field, "Fuel Gas cumulative total, at and below this group"},
	{"FGIMR", model.Field, "Gas import rate, at and below this group"},
	{"FGIMT", model.Field, "Gas import cumulative total, at and below this group"},
	{"FGLIR", model.Field, "Gas Lift Injection Rate"},
	{"FGCV", model.Field, "Gas Calorific Value"},
	{"FGQ", model.Field, "Gas molar Quality"},
	{"FEPR", model.Field, "Energy Production Rate"},
	{"FEPT", model.Field, "Energy Production Total"},
	{"FESR", model.Field, "Energy Sales Rate"},
	{"FEST", model.Field, "Energy Sales Total"},
	{"FEDC", model.Field, "Energy Delivery Capacity"},
	{"FEDCQ", model.Field, "Energy DCQ"},
	{"FCPR", model.Field, "Polymer Production Rate"},
	{"FCPC", model.Field, "Polymer Production Concentration"},
	{"FCPT", model.Field, "Polymer Production Total"},
	{"FCIR", model.Field, "Polymer Injection Rate"},
	{"FCIC", model.Field, "Polymer Injection Concentration"},
	{"FCIT", model.Field, "Polymer Injection Total"},
	{"FCIP", model.Field, "Polymer In Solution"},
	{"FCAD", model.Field, "Polymer Adsorption total"},
	{"FSPR", model.Field, "Salt Production Rate"},
	{"FSPT", model.Field, "Salt Production Total"},
	{"FSIR", model.Field, "Salt Injection Rate"},
	{"FSIT", model.Field, "Salt Injection Total"},
	{"FSIP", model.Field, "Salt In Place"},
	{"PSSPR", model.Field, "Log of the pressure change per unit time"},
	{"PSSSO", model.Field, "Log of the oil saturation change per unit time"},
	{"PSSSW", model.Field, "Log of the water saturation change per unit time"},
	{"PSSSG", model.Field, "Log of the gas saturation change per unit time"},
	{"PSSSC", model.Field, "Log of the salt concentration change per unit time"},
	{"FNPR", model.Field, "Solvent Production Rate"},
	{"FNPT", model.Field, "Solvent Production Total"},
	{"FNIR", model.Field, "Solvent Injection Rate"},
	{"FNIT", model.Field, "Solvent Injection Total"},
	{"FNIP", model.Field, "Solvent In Place"},
	{"FTPRSUR", model.Field, "Production Rate"},
	{"FTPTSUR", model.Field, "Production Total"},
	{"FTIRSUR", model.Field, "Injection Rate"},
	{"FTITSUR", model.Field, "Injection Total"},
	{"FTIPTSUR", model.Field, "In Solution"},
	{"FTADSUR", model.Field, "Adsorption total"},
	{"FTPRALK", model.Field, "Production Rate"},
	{"FTPTALK", model.Field, "Production Total"},
	{"FTIRALK", model.Field, "Injection Rate"},
	{"FTITALK", model.Field, "Injection Total"},
	{"FU", model.Field, "User-defined field quantity"},

	// Group
	{"GOPR", model.WellGroup, "Oil Production Rate"},
	{"GOPRA", model.WellGroup, "Oil Production Rate above GOC"},
	{"GOPRB", model.WellGroup, "Oil Production Rate below GOC"},
	{"GOPTA", model.WellGroup, "Oil Production Total above GOC"},
	{"GOPTB", model.WellGroup, "Oil Production Total below GOC"},
	{"GOPR1", model.WellGroup, "Oil Production Rate above GOC"},
	{"GOPR2", model.WellGroup, "Oil Production Rate below GOC"},
	{"GOPT1", model.WellGroup, "Oil Production Total above GOC"},
	{"GOPT2", model.WellGroup, "Oil Production Total below GOC"},
	{"GOMR", model.WellGroup, "Oil Mass Rate"},
	{"GOMT", model.WellGroup, "Oil Mass Total"},
	{"GODN", model.WellGroup, "Oil Density at Surface Conditions"},
	{"GOPRH", model.WellGroup, "Oil Production Rate History"},
	{"GOPRT", model.WellGroup, "Oil Production Rate Target/Limit"},
	{"GOPRL", model.WellGroup, "Oil Production Rate Target/Limit"},
	{"GOPRF", model.WellGroup, "Free Oil Production Rate"},
	{"GOPRS", model.WellGroup, "Solution Oil Production Rate"},
	{"GOPT", model.WellGroup, "Oil Production Total"},
	{"GOPTH", model.WellGroup, "Oil Production Total History"},
	{"GOPTF", model.WellGroup, "Free Oil Production Total"},
	{"GOPTS", model.WellGroup, "Solution Oil Production Total"},
	{"GOIR", model.WellGroup, "Oil Injection Rate"},
	{"GOIRH", model.WellGroup, "Oil Injection Rate History"},
	{"GOIRT", model.WellGroup, "Oil Injection Rate Target/Limit"},
	{"GOIRL", model.WellGroup, "Oil Injection Rate Target/Limit"},
	{"GOIT", model.WellGroup, "Oil Injection Total"},
	{"GOITH", model.WellGroup, "Oil Injection Total History"},
	{"GOPP", model.WellGroup, "Oil Potential Production rate"},
	{"GOPP2", model.WellGroup, "Oil Potential Production rate"},
	{"GOPI", model.WellGroup, "Oil Potential Injection rate"},
	{"GOPI2", model.WellGroup, "Oil Potential Injection rate"},
	{"GOPGR", model.WellGroup, "Oil Production Guide Rate"},
	{"GOIGR", model.WellGroup, "Oil Injection Guide Rate"},
	{"GOVPR", model.WellGroup, "Oil Voidage Production Rate"},
	{"GOVPT", model.WellGroup, "Oil Voidage Production Total"},
	{"GOVIR", model.WellGroup, "Oil Voidage Injection Rate"},
	{"GOVIT", model.WellGroup, "Oil Voidage Injection Total"},
	{"GOnPR", model.WellGroup, "nth separator stage oil rate"},
	{"GOnPT", model.WellGroup, "nth separator stage oil total"},
	{"GEOR", model.WellGroup, "Export Oil Rate"},
	{"GEOT", model.WellGroup, "Export Oil Total"},
	{"GEOMF", model.WellGroup, "Export Oil Mole Fraction"},
	{"GWPR", model.WellGroup, "Water Production Rate"},
	{"GWMR", model.WellGroup, "Water Mass Rate"},
	{"GWMT", model.WellGroup, "Water Mass Total"},
	{"GWPRH", model.WellGroup, "Water Production Rate History"},
	{"GWPRT", model.WellGroup, "Water Production Rate Target/Limit"},
	{"GWPRL", model.WellGroup, "Water Production Rate Target/Limit"},
	{"GWPT", model.WellGroup, "Water Production Total"},
	{"GWPTH", model.WellGroup, "Water Production Total History"},
	{"GWIR", model.WellGroup, "Water Injection Rate"},
	{"GWIRH", model.WellGroup, "Water Injection Rate History"},
	{"GWIRT", model.WellGroup, "Water Injection Rate Target/Limit"},
	{"GWIRL", model.WellGroup, "Water Injection Rate Target/Limit"},
	{"GWIT", model.WellGroup, "Water Injection Total"},
	{"GWITH", model.WellGroup, "Water Injection Total History"},
	{"GWPP", model.WellGroup, "Water Potential Production rate"},
	{"GWPP2", model.WellGroup, "Water Potential Production rate"},
	{"GWPI", model.WellGroup, "Water Potential Injection rate"},
	{"GWPI2", model.WellGroup, "Water Potential Injection rate"},
	{"GWPGR", model.WellGroup, "Water Production Guide Rate"},
	{"GWIGR", model.WellGroup, "Water Injection Guide Rate"},
	{"GWVPR", model.WellGroup, "Water Voidage Production Rate"},
	{"GWVPT", model.WellGroup, "Water Voidage Production Total"},
	{"GWVIR", model.WellGroup, "Water Voidage Injection Rate"},
	{"GWVIT", model.WellGroup, "Water Voidage Injection Total"},
	{"GWPIR", model.WellGroup, "Ratio of produced water to injected water (percentage)"},
	{"GWMPR", model.WellGroup, "Water component molar production rate"},
	{"GWMPT", model.WellGroup, "Water component molar production total"},
	{"GWMIR", model.WellGroup, "Water component molar injection rate"},
	{"GWMIT", model.WellGroup, "Water component molar injection total"},
	{"GGPR", model.WellGroup, "Gas Production Rate"},
	{"GGPRA", model.WellGroup, "Gas Production Rate above"},
	{"GGPRB", model.WellGroup, "Gas Production Rate below"},
	{"GGPTA", model.WellGroup, "Gas Production Total above"},
	{"GGPTB", model.WellGroup, "Gas Production Total below"},
	{"GGPR1", model.WellGroup, "Gas Production Rate above GOC"},
	{"GGPR2", model.WellGroup, "Gas Production Rate below GOC"},
	{"GGPT1", model.WellGroup, "Gas Production Total above GOC"},
	{"GGPT2", model.WellGroup, "Gas Production Total below GOC"},
	{"GGMR", model.WellGroup, "Gas Mass Rate"},
	{"GGMT", model.WellGroup, "Gas Mass Total"},
	{"GGDN", model.WellGroup, "Gas Density at Surface Conditions"},
	{"GGPRH", model.WellGroup, "Gas Production Rate History"},
	{"GGPRT", model.WellGroup, "Gas Production Rate Target/Limit"},
	{"GGPRL", model.WellGroup, "Gas Production Rate Target/Limit"},
	{"GGPRF", model.WellGroup, "Free Gas Production Rate"},
	{"GGPRS", model.WellGroup, "Solution Gas Production Rate"},
	{"GGPT", model.WellGroup, "Gas Production Total"},
	{"GGPTH", model.WellGroup, "Gas Production Total History"},
	{"GGPTF", model.WellGroup, "Free Gas Production Total"},
	{"GGPTS", model.WellGroup, "Solution Gas Production Total"},
	{"GGIR", model.WellGroup, "Gas Injection Rate"},
	{"GGIRH", model.WellGroup, "Gas Injection Rate History"},
	{"GGIRT", model.WellGroup, "Gas Injection Rate Target/Limit"},
	{"GGIRL", model.WellGroup, "Gas Injection Rate Target/Limit"},
	{"GGIT", model.WellGroup, "Gas Injection Total"},
	{"GGITH", model.WellGroup, "Gas Injection Total History"},
	{"GGPP", model.WellGroup, "Gas Potential Production rate"},
	{"GGPP2", model.WellGroup, "Gas Potential Production rate"},
	{"GGPPS", model.WellGroup, "Solution"},
	{"GGPPS2", model.WellGroup, "Solution"},
	{"GGPPF", model.WellGroup, "Free Gas Potential Production rate"},
	{"GGPPF2", model.WellGroup, "Free Gas Potential Production rate"},
	{"GGPI", model.WellGroup, "Gas Potential Injection rate"},
	{"GGPI2", model.WellGroup, "Gas Potential Injection rate"},
	{"GGPGR", model.WellGroup, "Gas Production Guide Rate"},
	{"GGIGR", model.WellGroup, "Gas Injection Guide Rate"},
	{"GSGR", model.WellGroup, "Sales Gas Rate"},
	{"GGSR", model.WellGroup, "Sales Gas Rate"},
	{"GSGT", model.WellGroup, "Sales Gas Total"},
	{"GGST", model.WellGroup, "Sales Gas Total"},
	{"GSMF", model.WellGroup, "Sales Gas Mole Fraction"},
	{"GFGR", model.WellGroup, "Fuel Gas Rate, at and below this group"},
	{"GFGT", model.WellGroup, "Fuel Gas cumulative Total, at and below this group"},
	{"GFMF", model.WellGroup, "Fuel Gas Mole Fraction"},
	{"GGCR", model.WellGroup, "Gas Consumption Rate, at and below this group"},
	{"GGCT", model.WellGroup, "Gas Consumption Total, at and below this group"},
	{"GGIMR", model.WellGroup, "Gas Import Rate, at and below this group"},
	{"GGIMT", model.WellGroup, "Gas Import Total, at and below this group"},
	{"GGLIR", model.WellGroup, "Gas Lift Injection Rate"},
	{"GWGPR", model.WellGroup, "Wet Gas Production Rate"},
	{"GWGPT", model.WellGroup, "Wet Gas Production Total"},
	{"GWGPRH", model.WellGroup, "Wet Gas Production Rate History"},
	{"GWGIR", model.WellGroup, "Wet Gas Injection Rate"},
	{"GWGIT", model.WellGroup, "Wet Gas Injection Total"},
	{"GEGR", model.WellGroup, "Export Gas Rate"},
	{"GEGT", model.WellGroup, "Export Gas Total"},
	{"GEMF", model.WellGroup, "Export Gas Mole Fraction"},
	{"GEXGR", model.WellGroup, "Excess Gas Rate"},
	{"GEXGT", model.WellGroup, "Excess Gas Total"},
	{"GRGR", model.WellGroup, "Re-injection Gas Rate"},
	{"GRGT", model.WellGroup, "Re-injection Gas Total"},
	{"GGnPR", model.WellGroup, "nth separator stage gas rate"},
	{"GGnPT", model.WellGroup, "nth separator stage gas total"},
	{"GGVPR", model.WellGroup, "Gas Voidage Production Rate"},
	{"GGVPT", model.WellGroup, "Gas Voidage Production Total"},
	{"GGVIR", model.WellGroup, "Gas Voidage Injection Rate"},
	{"GGVIT", model.WellGroup, "Gas Voidage Injection Total"},
	{"GGQ", model.WellGroup, "Gas Quality"},
	{"GLPR", model.WellGroup, "Liquid Production Rate"},
	{"GLPRH", model.WellGroup, "Liquid Production Rate History"},
	{"GLPRT", model.WellGroup, "Liquid Production Rate Target/Limit"},
	{"GLPRL", model.WellGroup, "Liquid Production Rate Target/Limit"},
	{"GLPT", model.WellGroup, "Liquid Production Total"},
	{"GLPTH", model.WellGroup, "Liquid Production Total History"},
	{"GVPR", model.WellGroup, "Res Volume Production Rate"},
	{"GVPRT", model.WellGroup, "Res Volume Production Rate Target/Limit"},
	{"GVPRL", model.WellGroup, "Res Volume Production Rate Target/Limit"},
	{"GVPT", model.WellGroup, "Res Volume Production Total"},
	{"GVPGR", model.WellGroup, "Res Volume Production Guide Rate"},
	{"GVIR", model.WellGroup, "Res Volume Injection Rate"},
	{"GVIRT", model.WellGroup, "Res Volume Injection Rate Target/Limit"},
	{"GVIRL", model.WellGroup, "Res Volume Injection Rate Target/Limit"},
	{"GVIT", model.WellGroup, "Res Volume Injection Total"},
	{"GWCT", model.WellGroup, "Water Cut"},
	{"GWCTH", model.WellGroup, "Water Cut History"},
	{"GGOR", model.WellGroup, "Gas-Oil Ratio"},
	{"GGORH", model.WellGroup, "Gas-Oil Ratio History"},
	{"GOGR", model.WellGroup, "Oil-Gas Ratio"},
	{"GOGRH", model.WellGroup, "Oil-Gas Ratio History"},
	{"GWGR", model.WellGroup, "Water-Gas Ratio"},
	{"GWGRH", model.WellGroup, "Water-Gas Ratio History"},
	{"GGLR", model.WellGroup, "Gas-Liquid Ratio"},
	{"GGLRH", model.WellGroup, "Gas-Liquid Ratio History"},
	{"GMCTP", model.WellGroup, "Mode of Control for group Production"},
	{"GMCTW", model.WellGroup, "Mode of Control for group Water Injection"},
	{"GMCTG", model.WellGroup, "Mode of Control for group Gas Injection"},
	{"GMWPT", model.WellGroup, "Total number of production wells"},
	{"GMWPR", model.WellGroup, "Number of production wells currently flowing"},
	{"GMWPA", model.WellGroup, "Number of abandoned production wells"},
	{"GMWPU", model.WellGroup, "Number of unused production wells"},
	{"GMWPG", model.WellGroup, "Number of producers on group control"},
	{"GMWPO", model.WellGroup, "Number of producers controlled by own oil rate limit"},
	{"GMWPS", model.WellGroup, "Number of producers on own surface rate limit control"},
	{"GMWPV", model.WellGroup, "Number of producers on own reservoir volume rate limit control"},
	{"GMWPP", model.WellGroup, "Number of producers on pressure control"},
	{"GMWPL", model.WellGroup, "Number of producers using artificial lift"},
	{"GMWIT", model.WellGroup, "Total number of injection wells"},
	{"GMWIN", model.WellGroup, "Number of injection wells currently flowing"},
	{"GMWIA", model.WellGroup, "Number of abandoned injection wells"},
	{"GMWIU", model.WellGroup, "Number of unused injection wells"},
	{"GMWIG", model.WellGroup, "Number of injectors on group control"},
	{"GMWIS", model.WellGroup, "Number of injectors on own surface rate limit control"},
	{"GMWIV", model.WellGroup, "Number of injectors on own reservoir volume rate limit control"},
	{"GMWIP", model.WellGroup, "Number of injectors on pressure control"},
	{"GMWDR", model.WellGroup, "Number of drilling events this timestep"},
	{"GMWDT", model.WellGroup, "Number of drilling events in total"},
	{"GMWWO", model.WellGroup, "Number of workover events this timestep"},
	{"GMWWT", model.WellGroup, "Number of workover events in total"},
	{"GEPR", model.WellGroup, "Energy Production Rate"},
	{"GEPT", model.WellGroup, "Energy Production Total"},
	{"GEFF", model.WellGroup, "Efficiency Factor"},
	{"GNLPR", model.WellGroup, "NGL Production Rate"},
	{"GNLPT", model.WellGroup, "NGL Production Total"},
	{"GNLPRH", model.WellGroup, "NGL Production Rate History"},
	{"GNLPTH", model.WellGroup, "NGL Production Total History"},
	{"GAMF", model.WellGroup, "Component aqueous mole fraction, from producing completions"},
	{"GXMF", model.WellGroup, "Liquid Mole Fraction"},
	{"GYMF", model.WellGroup, "Vapor Mole Fraction"},
	{"GXMFn", model.WellGroup, "Liquid Mole Fraction for nth separator stage"},
	{"GYMFn", model.WellGroup, "Vapor Mole Fraction for nth separator stage"},
	{"GZMF", model.WellGroup, "Total Mole Fraction"},
	{"GCMPR", model.WellGroup, "Hydrocarbon Component Molar Production Rates"},
	{"GCMPT", model.WellGroup, "Hydrocarbon Component"},
	{"GCMIR", model.WellGroup, "Hydrocarbon Component Molar Injection Rates"},
	{"GCMIT", model.WellGroup, "Hydrocarbon Component Molar Injection Totals"},
	{"GHMIR", model.WellGroup, "Hydrocarbon Molar Injection Rate"},
	{"GHMIT", model.WellGroup, "Hydrocarbon Molar Injection Total"},
	{"GHMPR", model.WellGroup, "Hydrocarbon Molar Production Rate"},
	{"GHMPT", model.WellGroup, "Hydrocarbon Molar Production Total"},
	{"GCHMR", model.WellGroup, "Hydrocarbon Component"},
	{"GCHMT", model.WellGroup, "Hydrocarbon Component"},
	{"GCWGPR", model.WellGroup, "Hydrocarbon Component Wet Gas Production Rate"},
	{"GCWGPT", model.WellGroup, "Hydrocarbon Component Wet Gas Production Total"},
	{"GCWGIR", model.WellGroup, "Hydrocarbon Component Wet Gas Injection Rate"},
	{"GCWGIT", model.WellGroup, "Hydrocarbon Component Wet Gas Injection Total"},
	{"GCGMR", model.WellGroup, "Hydrocarbon component"},
	{"GCGMT", model.WellGroup, "Hydrocarbon component"},
	{"GCOMR", model.WellGroup, "Hydrocarbon component"},
	{"GCOMT", model.WellGroup, "Hydrocarbon component"},
	{"GCNMR", model.WellGroup, "Hydrocarbon component molar rates in the NGL phase"},
	{"GCNWR", model.WellGroup, "Hydrocarbon component mass rates in the NGL phase"},
	{"GCGMRn", model.WellGroup, "Hydrocarbon component molar rates in the gas phase for nth separator stage"},
	{"GCGRn", model.WellGroup, "Hydrocarbon component molar rates in the gas phase for nth separator stage"},
	{"GCOMRn", model.WellGroup, "Hydrocarbon component"},
	{"GCORn", model.WellGroup, "Hydrocarbon component"},
	{"GMUF", model.WellGroup, "Make-up fraction"},
	{"GAMR", model.WellGroup, "Make-up gas rate"},
	{"GAMT", model.WellGroup, "Make-up gas total"},
	{"GGSPR", model.WellGroup, "Target sustainable rate for most recent sustainable capacity test for gas"},
	{"GGSRL", model.WellGroup, "Maximum tested rate sustained for the test period during the most recent sustainable capacity test for gas"},
	{"GGSRU", model.WellGroup, "Minimum tested rate not sustained for the test period during the most recent sustainable capacity test for gas"},
	{"GGSSP", model.WellGroup, "Period for which target sustainable rate could be maintained for the most recent sustainable capacity test for gas"},
	{"GGSTP", model.WellGroup, "Test period for the most recent sustainable capacity test for gas"},
	{"GOSPR", model.WellGroup, "Target sustainable rate for most recent sustainable capacity test for oil"},
	{"GOSRL", model.WellGroup, "Maximum tested rate sustained for the test period during the most recent sustainable capacity test for oil"},
	{"GOSRU", model.WellGroup, "Minimum tested rate not sustained for the test period during the most recent sustainable capacity test for oil"},
	{"GOSSP", model.WellGroup, "Period for which target sustainable rate could be maintained for the most recent sustainable capacity test for oil"},
	{"GOSTP", model.WellGroup, "Test period for the most recent sustainable capacity test for oil"},
	{"GWSPR", model.WellGroup, "Target sustainable rate for most recent sustainable capacity test for water"},
	{"GWSRL", model.WellGroup, "Maximum tested rate sustained for the test period during the most recent sustainable capacity test for water"},
	{"GWSRU", model.WellGroup, "Minimum tested rate not sustained for the test period during the most recent sustainable capacity test for water"},
	{"GWSSP", model.WellGroup, "Period for which target sustainable rate could be maintained for the most recent sustainable capacity test for water"},
	{"GWSTP", model.WellGroup, "Test period for the most recent sustainable capacity test for water"},
	{"GGPRG", model.WellGroup, "Gas production rate"},
	{"GOPRG", model.WellGroup, "Oil production rate"},
	{"GNLPRG", model.WellGroup, "NGL production rate"},
	{"GXMFG", model.WellGroup, "Liquid mole fraction"},
	{"GYMFG", model.WellGroup, "Vapor mole fraction"},
	{"GCOMRG", model.WellGroup, "Hydrocarbon component"},
	{"GCGMRG", model.WellGroup, "Hydrocarbon component molar rates in the gas phase"},
	{"GCNMRG", model.WellGroup, "Hydrocarbon component molar rates in the NGL phase"},
	{"GTPR", model.WellGroup, "Tracer Production Rate"},
	{"GTPT", model.WellGroup, "Tracer Production Total"},
	{"GTPC", model.WellGroup, "Tracer Production Concentration"},
	{"GTIR", model.WellGroup, "Tracer Injection Rate"},
	{"GTIT", model.WellGroup, "Tracer Injection Total"},
	{"GTIC", model.WellGroup, "Tracer Injection Concentration"},
	{"GTMR", model.WellGroup, "Traced mass Rate"},
	{"GTMT", model.WellGroup, "Traced mass Total"},
	{"GTQR", model.WellGroup, "Traced molar Rate"},
	{"GTCM", model.WellGroup, "Tracer Carrier molar Rate"},
	{"GTMF", model.WellGroup, "Traced molar fraction"},
	{"GTVL", model.WellGroup, "Traced liquid volume rate"},
	{"GTVV", model.WellGroup, "Traced vapor volume rate"},
	{"GTTL", model.WellGroup, "Traced liquid volume total"},
	{"GTTV", model.WellGroup, "Traced vapor volume total"},
	{"GTML", model.WellGroup, "Traced mass liquid rate"},
	{"GTMV", model.WellGroup, "Traced mass vapor rate"},
	{"GTLM", model.WellGroup, "Traced mass liquid total"},
	{"GTVM", model.WellGroup, "Traced mass vapor total"},
	{"GAPI", model.WellGroup, "Oil API"},
	{"GSPR", model.WellGroup, "Salt Production Rate"},
	{"GSPT", model.WellGroup, "Salt Production Total"},
	{"GSIR", model.WellGroup, "Salt Injection Rate"},
	{"GSIT", model.WellGroup, "Salt Injection Total"},
	{"GSPC", model.WellGroup, "Salt Production Concentration"},
	{"GSIC", model.WellGroup, "Salt Injection Concentration"},
	{"WTPRANI", model.WellGroup, "Anion Production Rate"},
	{"WTPTANI", model.WellGroup, "Anion Production Total"},
	{"WTIRANI", model.WellGroup, "Anion Injection Rate"},
	{"WTITANI", model.WellGroup, "Anion Injection Total"},
	{"WTPRCAT", model.WellGroup, "Cation Production Rate"},
	{"WTPTCAT", model.WellGroup, "Cation Production Total"},
	{"WTIRCAT", model.WellGroup, "Cation Injection Rate"},
	{"WTITCAT", model.WellGroup, "Cation Injection Total"},
	{"GTPCHEA", model.WellGroup, "Production Temperature"},
	{"GTICHEA", model.WellGroup, "Injection Temperature"},
	{"GTPRHEA", model.WellGroup, "Energy flows"},
	{"GTPTHEA", model.WellGroup, "Energy Production Total"},
	{"GTIRHEA", model.WellGroup, "Energy flows"},
	{"GTITHEA", model.WellGroup, "Energy Injection Total"},
	{"GTPR", model.WellGroup, "Tracer Production Rate"},
	{"GTPT", model.WellGroup, "Tracer Production Total"},
	{"GTPC", model.WellGroup, "Tracer Production Concentration"},
	{"GTIR", model.WellGroup, "Tracer Injection Rate"},
	{"GTIT", model.WellGroup, "Tracer Injection Total"},
	{"GTIC", model.WellGroup, "Tracer Injection Concentration"},
	{"GTIRF", model.WellGroup, "Tracer Injection Rate"},
	{"GTIRS", model.WellGroup, "Tracer Injection Rate"},
	{"GTPRF", model.WellGroup, "Tracer Production Rate"},
	{"GTPRS", model.WellGroup, "Tracer Production Rate"},
	{"GTITF", model.WellGroup, "Tracer Injection Total"},
	{"GTITS", model.WellGroup, "Tracer Injection Total"},
	{"GTPTF", model.WellGroup, "Tracer Production Total"},
	{"GTPTS", model.WellGroup, "Tracer Production Total"},
	{"GTICF", model.WellGroup, "Tracer Injection Concentration"},
	{"GTICS", model.WellGroup, "Tracer Injection Concentration"},
	{"GTPCF", model.WellGroup, "Tracer Production"},
	{"GTPCS", model.WellGroup, "Tracer Production"},
	{"GMPR", model.WellGroup, "Methane Production Rate"},
	{"GMPT", model.WellGroup, "Methane Production Total"},
	{"GMIR", model.WellGroup, "Methane Injection Rate"},
	{"GMIT", model.WellGroup, "Methane Injection Total"},
	{"GTPRFOA", model.WellGroup, "Production Rate"},
	{"GTPTFOA", model.WellGroup, "Production Total"},
	{"GTIRFOA", model.WellGroup, "Injection Rate"},
	{"GTITFOA", model.WellGroup, "Injection Total"},
	{"GSGR", model.WellGroup, "Sales Gas Rate"},
	{"GGSR", model.WellGroup, "Sales Gas Rate"},
	{"GSGT", model.WellGroup, "Sales Gas Total"},
	{"GGST", model.WellGroup, "Sales Gas Total"},
	{"GGDC", model.WellGroup, "Gas Delivery Capacity"},
	{"GGDCQ", model.WellGroup, "Field/Group Gas DCQ"},
	{"GMCPL", model.WellGroup, "Group Multi-level Compressor Level"},
	{"GPR", model.WellGroup, "Group nodal Pressure in network"},
	{"GPRDC", model.WellGroup, "Group Pressure at Delivery Capacity"},
	{"GGCR", model.WellGroup, "Gas consumption rate, at and below this group"},
	{"GGCT", model.WellGroup, "Gas consumption cumulative total, at and below this group"},
	{"GFGR", model.WellGroup, "Fuel Gas rate, at and below this group"},
	{"GFGT", model.WellGroup, "Fuel Gas cumulative total, at and below this group"},
	{"GGIMR", model.WellGroup, "Gas import rate, at and below this group"},
	{"GGIMT", model.WellGroup, "Gas import cumulative total, at and below this group"},
	{"GPRFP", model.WellGroup, "Group or node Pressure in network from end of First Pass"},
	{"GGPRNBFP", model.WellGroup, "Gas flow rate along Group's or node's outlet branch in network, from end of First Pass"},
	{"GGLIR", model.WellGroup, "Gas Lift Injection Rate"},
	{"GGCV", model.WellGroup, "Gas Calorific Value"},
	{"GGQ", model.WellGroup, "Gas molar Quality"},
	{"GEPR", model.WellGroup, "Energy Production Rate"},
	{"GEPT", model.WellGroup, "Energy Production Total"},
	{"GESR", model.WellGroup, "Energy Sales Rate"},
	{"GEST", model.WellGroup, "Energy Sales Total"},
	{"GEDC", model.WellGroup, "Energy Delivery Capacity"},
	{"GEDCQ", model.WellGroup, "Energy DCQ"},
	{"GPR", model.WellGroup, "Group or node Pressure in the production network"},
	{"GPRG", model.WellGroup, "Group or node Pressure in the gas injection network"},
	{"GPRW", model.WellGroup, "Group or node Pressure in the water injection network"},
	{"GPRB", model.WellGroup, "Pressure drop along the group's or node's outlet branch in the production network"},
	{"GPRBG", model.WellGroup, "Pressure drop along the group's or node's inlet branch in the gas injection network"},
	{"GPRBW", model.WellGroup, "Pressure drop along the group's or node's inlet branch in the water injection network"},
	{"GALQ", model.WellGroup, "ALQ in the group's or node's outlet branch in the production network"},
	{"GOPRNB", model.WellGroup, "Oil flow rate along the group's or node's outlet branch in the production network"},
	{"GWPRNB", model.WellGroup, "Water flow rate along the group's or node's outlet branch in the production network"},
	{"GGPRNB", model.WellGroup, "Gas flow rate along the group's or node's outlet branch in the production network"},
	{"GLPRNB", model.WellGroup, "Liquid flow rate along the group's or node's outlet branch in the production network"},
	{"GWIRNB", model.WellGroup, "Water flow rate along the group's or node's inlet branch in the water injection network"},
	{"GGIRNB", model.WellGroup, "Gas flow rate along the group's or node's inlet branch in the gas injection network"},
	{"GOMNR", model.WellGroup, "Group or node minimum oil rate as specified with GNETDP in the production network"},
	{"GGMNR", model.WellGroup, "Group or node minimum gas rate as specified with GNETDP in the production network"},
	{"GWMNR", model.WellGroup, "Group or node minimum water rate as specified with GNETDP in the production network"},
	{"GLMNR", model.WellGroup, "Group or node minimum liquid rate as specified with GNETDP in the production network"},
	{"GOMXR", model.WellGroup, "Group or node maximum oil rate as specified with GNETDP in the production network"},
	{"GGMXR", model.WellGroup, "Group or node maximum gas rate as specified with GNETDP in the production network"},
	{"GWMXR", model.WellGroup, "Group or node maximum water rate as specified with GNETDP in the production network"},
	{"GLMXR", model.WellGroup, "Group or node maximum liquid rate as specified with GNETDP in the production network"},
	{"GMNP", model.WellGroup, "Group or node minimum pressure as specified with GNETDP in the production network"},
	{"GMXP", model.WellGroup, "Group or node maximum pressure as specified with GNETDP in the production network"},
	{"GPRINC", model.WellGroup, "Group or node pressure increment as specified with GNETDP in the production network"},
	{"GPRDEC", model.WellGroup, "Group or node pressure decrement as specified with GNETDP in the production network"},
	{"GCPR", model.WellGroup, "Polymer Production Rate"},
	{"GCPC", model.WellGroup, "Polymer Production Concentration"},
	{"GCPT", model.WellGroup, "Polymer Production Total"},
	{"GCIR", model.WellGroup, "Polymer Injection Rate"},
	{"GCIC", model.WellGroup, "Polymer Injection Concentration"},
	{"GCIT", model.WellGroup, "Polymer Injection Total"},
	{"GSPR", model.WellGroup, "Salt Production Rate"},
	{"GSPT", model.WellGroup, "Salt Production Total"},
	{"GSIR", model.WellGroup, "Salt Injection Rate"},
	{"GSIT", model.WellGroup, "Salt Injection Total"},
	{"GOPRL", model.WellGroup, "Group Oil Production Rate Target"},
	{"GOIRL", model.WellGroup, "Group Oil Injection Rate Target"},
	{"GWPRL", model.WellGroup, "Group Water Production Rate Target"},
	{"GWIRL", model.WellGroup, "Group Water Injection Rate Target"},
	{"GGPRL", model.WellGroup, "Group Gas Production Rate Target"},
	{"GGIRL", model.WellGroup, "Group Gas Injection Rate Target"},
	{"GLPRL", model.WellGroup, "Group Liquid Production Rate Target"},
	{"GVPRL", model.WellGroup, "Group reservoir Volume Production Rate Target"},
	{"GVIRL", model.WellGroup, "Group reservoir Volume Injection Rate Target"},
	{"GNPR", model.WellGroup, "Solvent Production Rate"},
	{"GNPT", model.WellGroup, "Solvent Production Total"},
	{"GNIR", model.WellGroup, "Solvent Injection Rate"},
	{"GNIT", model.WellGroup, "Solvent Injection Total"},
	{"GTPRSUR", model.WellGroup, "Production Rate"},
	{"GTPTSUR", model.WellGroup, "Production Total"},
	{"GTIRSUR", model.WellGroup, "Injection Rate"},
	{"GTITSUR", model.WellGroup, "Injection Total"},
	{"GTPRALK", model.WellGroup, "Production Rate"},
	{"GTPTALK", model.WellGroup, "Production Total"},
	{"GTIRALK", model.WellGroup, "Injection Rate"},
	{"GTITALK", model.WellGroup, "Injection Total"},
	{"GU", model.WellGroup, "User-defined group quantity"},

	// Well
	{"WOPR", model.Well, "Oil Production Rate"},
	{"WOPRA", model.Well, "Oil Production Rate above GOC"},
	{"WOPRB", model.Well, "Oil Production Rate below GOC"},
	{"WOPTA", model.Well, "Oil Production Total above GOC"},
	{"WOPTB", model.Well, "Oil Production Total below GOC"},
	{"WOPR1", model.Well, "Oil Production Rate above GOC"},
	{"WOPR2", model.Well, "Oil Production Rate below GOC"},
	{"WOPT1", model.Well, "Oil Production Total above GOC"},
	{"WOPT2", model.Well, "Oil Production Total below GOC"},
	{"WOMR", model.Well, "Oil Mass Rate"},
	{"WOMT", model.Well, "Oil Mass Total"},
	{"WODN", model.Well, "Oil Density at Surface Conditions"},
	{"WOPRH", model.Well, "Oil Production Rate History"},
	{"WOPRT", model.Well, "Oil Production Rate Target/Limit"},
	{"WOPRF", model.Well, "Free Oil Production Rate"},
	{"WOPRS", model.Well, "Solution Oil Production Rate"},
	{"WOPT", model.Well, "Oil Production Total"},
	{"WOPTH", model.Well, "Oil Production Total History"},
	{"WOPTF", model.Well, "Free Oil Production Total"},
	{"WOPTS", model.Well, "Solution Oil Production Total"},
	{"WOIR", model.Well, "Oil Injection Rate"},
	{"WOIRH", model.Well, "Oil Injection Rate History"},
	{"WOIRT", model.Well, "Oil Injection Rate Target/Limit"},
	{"WOIT", model.Well, "Oil Injection Total"},
	{"WOITH", model.Well, "Oil Injection Total History"},
	{"WOPP", model.Well, "Oil Potential Production rate"},
	{"WOPP2", model.Well, "Oil Potential Production rate"},
	{"WOPI", model.Well, "Oil Potential Injection rate"},
	{"WOPI2", model.Well, "Oil Potential Injection rate"},
	{"WOPGR", model.Well, "Oil Production Guide Rate"},
	{"WOIGR", model.Well, "Oil Injection Guide Rate"},
	{"WOVPR", model.Well, "Oil Voidage Production Rate"},
	{"WOVPT", model.Well, "Oil Voidage Production Total"},
	{"WOVIR", model.Well, "Oil Voidage Injection Rate"},
	{"WOVIT", model.Well, "Oil Voidage Injection Total"},
	{"WOnPR", model.Well, "nth separator stage oil rate"},
	{"WOnPT", model.Well, "nth separator stage oil total"},
	{"WWPR", model.Well, "Water Production Rate"},
	{"WWMR", model.Well, "Water Mass Rate"},
	{"WWMT", model.Well, "Water Mass Total"},
	{"WWPRH", model.Well, "Water Production Rate History"},
	{"WWPRT", model.Well, "Water Production Rate Target/Limit"},
	{"WWPT", model.Well, "Water Production Total"},
	{"WWPTH", model.Well, "Water Production Total History"},
	{"WWIR", model.Well, "Water Injection Rate"},
	{"WWIRH", model.Well, "Water Injection Rate History"},
	{"WWIRT", model.Well, "Water Injection Rate Target/Limit"},
	{"WWIT", model.Well, "Water Injection Total"},
	{"WWITH", model.Well, "Water Injection Total History"},
	{"WWPP", model.Well, "Water Potential Production rate"},
	{"WWPP2", model.Well, "Water Potential Production rate"},
	{"WWPI", model.Well, "Water Potential Injection rate"},
	{"WWIP", model.Well, "Water Potential Injection rate"},
	{"WWPI2", model.Well, "Water Potential Injection rate"},
	{"WWIP2", model.Well, "Water Potential Injection rate"},
	{"WWPGR", model.Well, "Water Production Guide Rate"},
	{"WWIGR", model.Well, "Water Injection Guide Rate"},
	{"WWVPR", model.Well, "Water Voidage Production Rate"},
	{"WWVPT", model.Well, "Water Voidage Production Total"},
	{"WWVIR", model.Well, "Water Voidage Injection Rate"},
	{"WWVIT", model.Well, "Water Voidage Injection Total"},
	{"WWPIR", model.Well, "Ratio of produced water to injected water (percentage)"},
	{"WWMPR", model.Well, "Water component molar production rate"},
	{"WWMPT", model.Well, "Water component molar production total"},
	{"WWMIR", model.Well, "Water component molar injection rate"},
	{"WWMIT", model.Well, "Water component molar injection total"},
	{"WGPR", model.Well, "Gas Production Rate"},
	{"WGPRA", model.Well, "Gas Production Rate above"},
	{"WGPRB", model.Well, "Gas Production Rate below"},
	{"WGPTA", model.Well, "Gas Production Total above"},
	{"WGPTB", model.Well, "Gas Production Total below"},
	{"WGPR1", model.Well, "Gas Production Rate above GOC"},
	{"WGPR2", model.Well, "Gas Production Rate below GOC"},
	{"WGPT1", model.Well, "Gas Production Total above GOC"},
	{"WGPT2", model.Well, "Gas Production Total below GOC"},
	{"WGMR", model.Well, "Gas Mass Rate"},
	{"WGMT", model.Well, "Gas Mass Total"},
	{"WGDN", model.Well, "Gas Density at Surface Conditions"},
	{"WGPRH", model.Well, "Gas Production Rate History"},
	{"WGPRT", model.Well, "Gas Production Rate Target/Limit"},
	{"WGPRF", model.Well, "Free Gas Production Rate"},
	{"WGPRS", model.Well, "Solution Gas Production Rate"},
	{"WGPT", model.Well, "Gas Production Total"},
	{"WGPTH", model.Well, "Gas Production Total History"},
	{"WGPTF", model.Well, "Free Gas Production Total"},
	{"WGPTS", model.Well, "Solution Gas Production Total"},
	{"WGIR", model.Well, "Gas Injection Rate"},
	{"WGIRH", model.Well, "Gas Injection Rate History"},
	{"WGIRT", model.Well, "Gas Injection Rate Target/Limit"},
	{"WGIT", model.Well, "Gas Injection Total"},
	{"WGITH", model.Well, "Gas Injection Total History"},
	{"WGPP", model.Well, "Gas Potential Production rate"},
	{"WGPP2", model.Well, "Gas Potential Production rate"},
	{"WGPPS", model.Well, "Solution"},
	{"WGPPS2", model.Well, "Solution"},
	{"WGPPF", model.Well, "Free Gas Potential Production rate"},
	{"WGPPF2", model.Well, "Free Gas Potential Production rate"},
	{"WGPI", model.Well, "Gas Potential Injection rate"},
	{"WGIP", model.Well, "Gas Potential Injection rate"},
	{"WGPI2", model.Well, "Gas Potential Injection rate"},
	{"WGIP2", model.Well, "Gas Potential Injection rate"},
	{"WGPGR", model.Well, "Gas Production Guide Rate"},
	{"WGIGR", model.Well, "Gas Injection Guide Rate"},
	{"WGLIR", model.Well, "Gas Lift Injection Rate"},
	{"WWGPR", model.Well, "Wet Gas Production Rate"},
	{"WWGPT", model.Well, "Wet Gas Production Total"},
	{"WWGPRH", model.Well, "Wet Gas Production Rate History"},
	{"WWGIR", model.Well, "Wet Gas Injection Rate"},
	{"WWGIT", model.Well, "Wet Gas Injection Total"},
	{"WGnPR", model.Well, "nth separator stage gas rate"},
	{"WGnPT", model.Well, "nth separator stage gas total"},
	{"WGVPR", model.Well, "Gas Voidage Production Rate"},
	{"WGVPT", model.Well, "Gas Voidage Production Total"},
	{"WGVIR", model.Well, "Gas Voidage Injection Rate"},
	{"WGVIT", model.Well, "Gas Voidage Injection Total"},
	{"WGQ", model.Well, "Gas Quality"},
	{"WLPR", model.Well, "Liquid Production Rate"},
	{"WLPRH", model.Well, "Liquid Production Rate History"},
	{"WLPRT", model.Well, "Liquid Production Rate Target/Limit"},
	{"WLPT", model.Well, "Liquid Production Total"},
	{"WLPTH", model.Well, "Liquid Production Total History"},
	{"WVPR", model.Well, "Res Volume Production Rate"},
	{"WVPRT", model.Well, "Res Volume Production Rate Target/Limit"},
	{"WVPT", model.Well, "Res Volume Production Total"},
	{"WVPGR", model.Well, "Res Volume Production Guide Rate"},
	{"WVIR", model.Well, "Res Volume Injection Rate"},
	{"WVIRT", model.Well, "Res Volume Injection Rate Target/Limit"},
	{"WVIT", model.Well, "Res Volume Injection Total"},
	{"WWCT", model.Well, "Water Cut"},
	{"WWCTH", model.Well, "Water Cut History"},
	{"WGOR", model.Well, "Gas-Oil Ratio"},
	{"WGORH", model.Well, "Gas-Oil Ratio History"},
	{"WOGR", model.Well, "Oil-Gas Ratio"},
	{"WOGRH", model.Well, "Oil-Gas Ratio History"},
	{"WWGR", model.Well, "Water-Gas Ratio"},
	{"WWGRH", model.Well, "Water-Gas Ratio History"},
	{"WGLR", model.Well, "Gas-Liquid Ratio"},
	{"WGLRH", model.Well, "Gas-Liquid Ratio History"},
	{"WBGLR", model.Well, "Bottom hole Gas-Liquid Ratio"},
	{"WBHP", model.Well, "Bottom Hole Pressure"},
	{"WBHPH", model.Well, "Bottom Hole Pressure History,"},
	{"WBHPT", model.Well, "Bottom Hole Pressure Target/Limit"},
	{"WTHP", model.Well, "Tubing Head Pressure"},
	{"WTHPH", model.Well, "Tubing Head Pressure History,"},
	{"WPI", model.Well, "Productivity Index of well's preferred phase"},
	{"WPIO", model.Well, "Oil phase PI"},
	{"WPIG", model.Well, "Gas phase PI"},
	{"WPIW", model.Well, "Water phase PI"},
	{"WPIL", model.Well, "Liquid phase PI"},
	{"WBP", model.Well, "One-point Pressure Average"},
	{"WBP4", model.Well, "Four-point Pressure Average"},
	{"WBP5", model.Well, "Five-point Pressure Average"},
	{"WBP9", model.Well, "Nine-point Pressure Average"},
	{"WPI1", model.Well, "Productivity Index based on the value of WBP"},
	{"WPI4", model.Well, "Productivity Index based on the value of WBP4"},
	{"WPI5", model.Well, "Productivity Index based on the value of WBP5"},
	{"WPI9", model.Well, "Productivity Index based on the value of WBP9"},
	{"WHD", model.Well, "Hydraulic head in well based on the reference depth given in HYDRHEAD and the well's reference depth"},
	{"WHDF", model.Well, "Hydraulic head in well based on the reference depth given in HYDRHEAD and the well's reference depth calculated at freshwater conditions"},
	{"WSTAT", model.Well, "Well State Indicator"},
	{"WMCTL", model.Well, "Mode of Control"},
	{"WMCON", model.Well, "The number of connections capable of flowing in the well"},
	{"WEPR", model.Well, "Energy Production Rate"},
	{"WEPT", model.Well, "Energy Production Total"},
	{"WEFF", model.Well, "Efficiency Factor"},
	{"WEFFG", model.Well, "Product of efficiency factors of the well and all its superior groups"},
	{"WALQ", model.Well, "Well Artificial Lift Quantity"},
	{"WMVFP", model.Well, "VFP table number used by the well"},
	{"WNLPR", model.Well, "NGL Production Rate"},
	{"WNLPT", model.Well, "NGL Production Total"},
	{"WNLPRH", model.Well, "NGL Production Rate History"},
	{"WNLPTH", model.Well, "NGL Production Total History"},
	{"WNLPRT", model.Well, "NGL Production Rate Target"},
	{"WAMF", model.Well, "Component aqueous mole fraction, from producing completions"},
	{"WXMF", model.Well, "Liquid Mole Fraction"},
	{"WYMF", model.Well, "Vapor Mole Fraction"},
	{"WXMFn", model.Well, "Liquid Mole Fraction for nth separator stage"},
	{"WYMFn", model.Well, "Vapor Mole Fraction for nth separator stage"},
	{"WZMF", model.Well, "Total Mole Fraction"},
	{"WCMPR", model.Well, "Hydrocarbon Component Molar Production Rates"},
	{"WCMPT", model.Well, "Hydrocarbon Component"},
	{"WCMIR", model.Well, "Hydrocarbon Component Molar Injection Rates"},
	{"WCMIT", model.Well, "Hydrocarbon Component Molar Injection Totals"},
	{"WCGIR", model.Well, "Hydrocarbon Component Gas Injection Rate"},
	{"WCGPR", model.Well, "Hydrocarbon Component Gas Production Rate"},
	{"WCOPR", model.Well, "Hydrocarbon Component Oil Production Rate"},
	{"WHMIR", model.Well, "Hydrocarbon Molar Injection Rate"},
	{"WHMIT", model.Well, "Hydrocarbon Molar Injection Total"},
	{"WHMPR", model.Well, "Hydrocarbon Molar Production Rate"},
	{"WHMPT", model.Well, "Hydrocarbon Molar Production Total"},
	{"WCHMR", model.Well, "Hydrocarbon Component"},
	{"WCHMT", model.Well, "Hydrocarbon Component"},
	{"WCWGPR", model.Well, "Hydrocarbon Component Wet Gas Production Rate"},
	{"WCWGPT", model.Well, "Hydrocarbon Component Wet Gas Production Total"},
	{"WCWGIR", model.Well, "Hydrocarbon Component Wet Gas Injection Rate"},
	{"WCWGIT", model.Well, "Hydrocarbon Component Wet Gas Injection Total"},
	{"WCGMR", model.Well, "Hydrocarbon component"},
	{"WCGMT", model.Well, "Hydrocarbon component"},
	{"WCOMR", model.Well, "Hydrocarbon component"},
	{"WCOMT", model.Well, "Hydrocarbon component"},
	{"WCNMR", model.Well, "Hydrocarbon component molar rates in the NGL phase"},
	{"WCNWR", model.Well, "Hydrocarbon component mass rates in the NGL phase"},
	{"WCGMRn", model.Well, "Hydrocarbon component molar rates in the gas phase for nth separator stage"},
	{"WCGRn", model.Well, "Hydrocarbon component molar rates in the gas phase for nth separator stage"},
	{"WCOMRn", model.Well, "Hydrocarbon component"},
	{"WCORn", model.Well, "Hydrocarbon component"},
	{"WMUF", model.Well, "Make-up fraction"},
	{"WTHT", model.Well, "Tubing Head Temperature"},
	{"WMMW", model.Well, "Mean molecular weight of wellstream"},
	{"WPWE0", model.Well, "Well drilled indicator"},
	{"WPWE1", model.Well, "Connections opened indicator"},
	{"WPWE2", model.Well, "Connections closed indicator"},
	{"WPWE3", model.Well, "Connections closed to bottom indicator"},
	{"WPWE4", model.Well, "Well stopped indicator"},
	{"WPWE5", model.Well, "Injector to producer indicator"},
	{"WPWE6", model.Well, "Producer to injector indicator"},
	{"WPWE7", model.Well, "Well shut indicator"},
	{"WPWEM", model.Well, "WELEVNT output mnemonic"},
	{"WDRPR", model.Well, "Well drilling priority"},
	{"WBHWCn", model.Well, "Derivative of well BHP with respect to parameter n"},
	{"WGFWCn", model.Well, "Derivative of well gas flow rate with respect to parameter n"},
	{"WOFWCn", model.Well, "Derivative of well oil flow rate with respect to parameter n"},
	{"WWFWCn", model.Well, "Derivative of water flow rate with respect to parameter n"},
	{"WTPR", model.Well, "Tracer Production Rate"},
	{"WTPT", model.Well, "Tracer Production Total"},
	{"WTPC", model.Well, "Tracer Production Concentration"},
	{"WTIR", model.Well, "Tracer Injection Rate"},
	{"WTIT", model.Well, "Tracer Injection Total"},
	{"WTIC", model.Well, "Tracer Injection Concentration"},
	{"WTMR", model.Well, "Traced mass Rate"},
	{"WTMT", model.Well, "Traced mass Total"},
	{"WTQR", model.Well, "Traced molar Rate"},
	{"WTCM", model.Well, "Tracer Carrier molar Rate"},
	{"WTMF", model.Well, "Traced molar fraction"},
	{"WTVL", model.Well, "Traced liquid volume rate"},
	{"WTVV", model.Well, "Traced vapor volume rate"},
	{"WTTL", model.Well, "Traced liquid volume total"},
	{"WTTV", model.Well, "Traced vapor volume total"},
	{"WTML", model.Well, "Traced mass liquid rate"},
	{"WTMV", model.Well, "Traced mass vapor rate"},
	{"WTLM", model.Well, "Traced mass liquid total"},
	{"WTVM", model.Well, "Traced mass vapor total"},
	{"WAPI", model.Well, "Oil API"},
	{"WSPR", model.Well, "Salt Production Rate"},
	{"WSPT", model.Well, "Salt Production Total"},
	{"WSIR", model.Well, "Salt Injection Rate"},
	{"WSIT", model.Well, "Salt Injection Total"},
	{"WSPC", model.Well, "Salt Production Concentration"},
	{"WSIC", model.Well, "Salt Injection Concentration"},
	{"WTPCHEA", model.Well, "Production Temperature"},
	{"WTICHEA", model.Well, "Injection Temperature"},
	{"WTPRHEA", model.Well, "Energy flows"},
	{"WTPTHEA", model.Well, "Energy Production Total"},
	{"WTIRHEA", model.Well, "Energy flows"},
	{"WTITHEA", model.Well, "Energy Injection Total"},
	{"WTPR", model.Well, "Tracer Production Rate"},
	{"WTPT", model.Well, "Tracer Production Total"},
	{"WTPC", model.Well, "Tracer Production Concentration"},
	{"WTIR", model.Well, "Tracer Injection Rate"},
	{"WTIT", model.Well, "Tracer Injection Total"},
	{"WTIC", model.Well, "Tracer Injection Concentration"},
	{"WTIRF", model.Well, "Tracer Injection Rate"},
	{"WTIRS", model.Well, "Tracer Injection Rate"},
	{"WTPRF", model.Well, "Tracer Production Rate"},
	{"WTPRS", model.Well, "Tracer Production Rate"},
	{"WTITF", model.Well, "Tracer Injection Total"},
	{"WTITS", model.Well, "Tracer Injection Total"},
	{"WTPTF", model.Well, "Tracer Production Total"},
	{"WTPTS", model.Well, "Tracer Production Total"},
	{"WTICF", model.Well, "Tracer Injection Concentration"},
	{"WTICS", model.Well, "Tracer Injection Concentration"},
	{"WTPCF", model.Well, "Tracer Production"},
	{"WTPCS", model.Well, "Tracer Production"},
	{"WMPR", model.Well, "Methane Production Rate"},
	{"WMPT", model.Well, "Methane Production Total"},
	{"WMIR", model.Well, "Methane Injection Rate"},
	{"WMIT", model.Well, "Methane Injection Total"},
	{"WTPRFOA", model.Well, "Production Rate"},
	{"WTPTFOA", model.Well, "Production Total"},
	{"WTIRFOA", model.Well, "Injection Rate"},
	{"WTITFOA", model.Well, "Injection Total"},
	{"WGDC", model.Well, "Gas Delivery Capacity"},
	{"NGOPAS", model.Well, "Number of iterations to converge DCQ in first pass"},
	{"WGPRFP", model.Well, "Well Gas Production Rate from end of First Pass"},
	{"WTHPFP", model.Well, "Well Tubing Head Pressure from end of First Pass"},
	{"WBHPFP", model.Well, "Well Bottom Hole Pressure from end of First Pass"},
	{"WGLIR", model.Well, "Gas Lift Injection Rate"},
	{"WOGLR", model.Well, "Well Oil Gas Lift Ratio"},
	{"WGCV", model.Well, "Gas Calorific Value"},
	{"WGQ", model.Well, "Gas molar Quality"},
	{"WEPR", model.Well, "Energy Production Rate"},
	{"WEPT", model.Well, "Energy Production Total"},
	{"WEDC", model.Well, "Energy Delivery Capacity"},
	{"WCPR", model.Well, "Polymer Production Rate"},
	{"WCPC", model.Well, "Polymer Production Concentration"},
	{"WCPT", model.Well, "Polymer Production Total"},
	{"WCIR", model.Well, "Polymer Injection Rate"},
	{"WCIC", model.Well, "Polymer Injection Concentration"},
	{"WCIT", model.Well, "Polymer Injection Total"},
	{"WSPR", model.Well, "Salt Production Rate"},
	{"WSPT", model.Well, "Salt Production Total"},
	{"WSIR", model.Well, "Salt Injection Rate"},
	{"WSIT", model.Well, "Salt Injection Total"},
	{"WNPR", model.Well, "Solvent Production Rate"},
	{"WNPT", model.Well, "Solvent Production Total"},
	{"WNIR", model.Well, "Solvent Injection Rate"},
	{"WNIT", model.Well, "Solvent Injection Total"},
	{"WTPRSUR", model.Well, "Production Rate"},
	{"WTPTSUR", model.Well, "Production Total"},
	{"WTIRSUR", model.Well, "Injection Rate"},
	{"WTITSUR", model.Well, "Injection Total"},
	{"WTPRALK", model.Well, "Production Rate"},
	{"WTPTALK", model.Well, "Production Total"},
	{"WTIRALK", model.Well, "Injection Rate"},
	{"WTITALK", model.Well, "Injection Total"},
	{"WU", model.Well, "User-defined well quantity"},

	// Connection
	{"COFR", model.WellCompletion, "Oil Flow Rate"},
	{"COFRF", model.WellCompletion, "Free Oil Flow Rate"},
	{"COFRS", model.WellCompletion, "Solution oil flow rate"},
	{"COFRU", model.WellCompletion, "Sum of connection oil flow rates upstream of, and including, this connection"},
	{"COPR", model.WellCompletion, "Oil Production Rate"},
	{"COPT", model.WellCompletion, "Oil Production Total"},
	{"COPTF", model.WellCompletion, "Free Oil Production Total"},
	{"COPTS", model.WellCompletion, "Solution Oil Production Total"},
	{"COIT", model.WellCompletion, "Oil Injection Total"},
	{"COPP", model.WellCompletion, "Oil Potential Production rate"},
	{"COPI", model.WellCompletion, "Oil Potential Injection rate"},
	{"CWFR", model.WellCompletion, "Water Flow Rate"},
	{"CWFRU", model.WellCompletion, "Sum of connection water flow rates upstream of, and including, this connection"},
	{"CWPR", model.WellCompletion, "Water Production Rate"},
	{"CWPT", model.WellCompletion, "Water Production Total"},
	{"CWIR", model.WellCompletion, "Water Injection Rate"},
	{"CWIT", model.WellCompletion, "Water Injection Total"},
	{"CWPP", model.WellCompletion, "Water Potential Production rate"},
	{"CWPI", model.WellCompletion, "Water Potential Injection rate"},
	{"CGFR", model.WellCompletion, "Gas Flow Rate"},
	{"CGFRF", model.WellCompletion, "Free Gas Flow Rate"},
	{"CGFRS", model.WellCompletion, "Solution Gas Flow Rate"},
	{"CGFRU", model.WellCompletion, "Sum of connection gas flow rates upstream of, and including, this connection"},
	{"CGPR", model.WellCompletion, "Gas Production Rate "},
	{"CGPT", model.WellCompletion, "Gas Production Total"},
	{"CGPTF", model.WellCompletion, "Free Gas Production Total"},
	{"CGPTS", model.WellCompletion, "Solution Gas Production Total"},
	{"CGIR", model.WellCompletion, "Gas Injection Rate"},
	{"CGIT", model.WellCompletion, "Gas Injection Total"},
	{"CGPP", model.WellCompletion, "Gas Potential Production rate"},
	{"CGPI", model.WellCompletion, "Gas Potential Injection rate"},
	{"CGQ", model.WellCompletion, "Gas Quality"},
	{"CLFR", model.WellCompletion, "Liquid Flow Rate"},
	{"CLPT", model.WellCompletion, "Liquid Production Total"},
	{"CVFR", model.WellCompletion, "Reservoir"},
	{"CVPR", model.WellCompletion, "Res Volume Production Rate"},
	{"CVPT", model.WellCompletion, "Res Volume Production Total"},
	{"CVIR", model.WellCompletion, "Res Volume Injection Rate"},
	{"CVIT", model.WellCompletion, "Res Volume Injection Total"},
	{"CWCT", model.WellCompletion, "Water Cut"},
	{"CGOR", model.WellCompletion, "Gas-Oil Ratio"},
	{"COGR", model.WellCompletion, "Oil-Gas Ratio"},
	{"CWGR", model.WellCompletion, "Water-Gas Ratio"},
	{"CGLR", model.WellCompletion, "Gas-Liquid Ratio"},
	{"CPR", model.WellCompletion, "Connection Pressure"},
	{"CPI", model.WellCompletion, "Productivity Index of well's preferred phase"},
	{"CTFAC", model.WellCompletion, "Connection Transmissibility Factor"},
	{"CDBF", model.WellCompletion, "Blocking factor for generalized pseudo-pressure method"},
	{"CGPPTN", model.WellCompletion, "Generalized pseudo-pressure table update counter"},
	{"CGPPTS", model.WellCompletion, "Generalized pseudo-pressure table update status"},
	{"CDSM", model.WellCompletion, "Current mass of scale deposited"},
	{"CDSML", model.WellCompletion, "Current mass of scale deposited per unit perforation length"},
	{"CDSF", model.WellCompletion, "PI multiplicative factor due to scale damage"},
	{"CAMF", model.WellCompletion, "Component aqueous mole fraction, from producing completions"},
	{"CZMF", model.WellCompletion, "Total Mole Fraction"},
	{"CKFR", model.WellCompletion, "Hydrocarbon Component"},
	{"CKFT", model.WellCompletion, "Hydrocarbon Component"},
	{"CDFAC", model.WellCompletion, "D-factor for flow dependent skin factor"},
	{"CTFR", model.WellCompletion, "Tracer Flow Rate"},
	{"CTPR", model.WellCompletion, "Tracer Production Rate"},
	{"CTPT", model.WellCompletion, "Tracer Production Total"},
	{"CTPC", model.WellCompletion, "Tracer Production Concentration"},
	{"CTIR", model.WellCompletion, "Tracer Injection Rate"},
	{"CTIT", model.WellCompletion, "Tracer Injection Total"},
	{"CTIC", model.WellCompletion, "Tracer Injection Concentration"},
	{"CAPI", model.WellCompletion, "Oil API"},
	{"CSFR", model.WellCompletion, "Salt Flow Rate"},
	{"CSPR", model.WellCompletion, "Salt Production Rate"},
	{"CSPT", model.WellCompletion, "Salt Production Total"},
	{"CSIR", model.WellCompletion, "Salt Injection Rate"},
	{"CSIT", model.WellCompletion, "Salt Injection Total"},
	{"CSPC", model.WellCompletion, "Salt Production Concentration"},
	{"CSIC", model.WellCompletion, "Salt Injection Concentration"},
	{"CTFRANI", model.WellCompletion, "Anion Flow Rate"},
	{"CTPTANI", model.WellCompletion, "Anion Production Total"},
	{"CTITANI", model.WellCompletion, "Anion Injection Total"},
	{"CTFRCAT", model.WellCompletion, "Cation Flow Rate"},
	{"CTPTCAT", model.WellCompletion, "Cation Production Total"},
	{"CTITCAT", model.WellCompletion, "Cation Injection Total"},
	{"CTFR", model.WellCompletion, "Tracer Flow Rate"},
	{"CTPR", model.WellCompletion, "Tracer Production Rate"},
	{"CTPT", model.WellCompletion, "Tracer Production Total"},
	{"CTPC", model.WellCompletion, "Tracer Production Concentration"},
	{"CTIR", model.WellCompletion, "Tracer Injection Rate"},
	{"CTIT", model.WellCompletion, "Tracer Injection Total"},
	{"CTIC", model.WellCompletion, "Tracer Injection Concentration"},
	{"CTIRF", model.WellCompletion, "Tracer Injection Rate"},
	{"CTIRS", model.WellCompletion, "Tracer Injection Rate"},
	{"CTPRF", model.WellCompletion, "Tracer Production Rate"},
	{"CTPRS", model.WellCompletion, "Tracer Production Rate"},
	{"CTITF", model.WellCompletion, "Tracer Injection Total"},
	{"CTITS", model.WellCompletion, "Tracer Injection Total"},
	{"CTPTF", model.WellCompletion, "Tracer Production Total"},
	{"CTPTS", model.WellCompletion, "Tracer Production Total"},
	{"CTICF", model.WellCompletion, "Tracer Injection Concentration"},
	{"CTICS", model.WellCompletion, "Tracer Injection Concentration"},
	{"CTPCF", model.WellCompletion, "Tracer Production"},
	{"CTPCS", model.WellCompletion, "Tracer Production"},
	{"CTFRFOA", model.WellCompletion, "Flow Rate"},
	{"CTPTFOA", model.WellCompletion, "Production Total"},
	{"CTITFOA", model.WellCompletion, "Injection Total"},
	{"CRREXCH", model.WellCompletion, "Exchange flux at current time"},
	{"CRRPROT", model.WellCompletion, "Connection cumulative water production"},
	{"CRRINJT", model.WellCompletion, "Connection cumulative water injection"},
	{"CCFR", model.WellCompletion, "Polymer Flow Rate"},
	{"CCPR", model.WellCompletion, "Polymer Production Rate"},
	{"CCPC", model.WellCompletion, "Polymer Production Concentration"},
	{"CCPT", model.WellCompletion, "Polymer Production Total"},
	{"CCIR", model.WellCompletion, "Polymer Injection Rate"},
	{"CCIC", model.WellCompletion, "Polymer Injection Concentration"},
	{"CCIT", model.WellCompletion, "Polymer Injection Total"},
	{"CSFR", model.WellCompletion, "Salt Flow Rate"},
	{"CSPR", model.WellCompletion, "Salt Production Rate"},
	{"CSPT", model.WellCompletion, "Salt Production Total"},
	{"CSIR", model.WellCompletion, "Salt Injection Rate"},
	{"CSIT", model.WellCompletion, "Salt Injection Total"},
	{"CNFR", model.WellCompletion, "Solvent Flow Rate"},
	{"CNPT", model.WellCompletion, "Solvent Production Total"},
	{"CNIT", model.WellCompletion, "Solvent Injection Total"},
	{"CTFRSUR", model.WellCompletion, "Flow Rate"},
	{"CTPTSUR", model.WellCompletion, "Production Total"},
	{"CTITSUR", model.WellCompletion, "Injection Total"},
	{"CTFRALK", model.WellCompletion, "Flow Rate"},
	{"CTPTALK", model.WellCompletion, "Production Total"},
	{"CTITALK", model.WellCompletion, "Injection Total"},
	{"COFRU", model.WellCompletion, "Sum of connection oil flow rates upstream of, and including, this connection"},
	{"CWFRU", model.WellCompletion, "Sum of connection water flow rates upstream of, and including, this connection"},
	{"CGFRU", model.WellCompletion, "Sum of connection gas flow rates upstream of, and including, this connection"},
	{"LCOFRU", model.WellCompletion, "As COFRU but for local grids"},
	{"LCWFRU", model.WellCompletion, "As CWFRU but for local grids"},
	{"LCGFRU", model.WellCompletion, "As CGFRU but for local grids"},
	{"CU", model.WellCompletion, "User-defined connection quantity"},
	{"COFRL", model.WellCompletion, "Oil Flow Rate"},
	{"WOFRL", model.WellCompletion, "Oil Flow Rate"},
	{"COPRL", model.WellCompletion, "Oil Flow Rate"},
	{"WOPRL", model.WellCompletion, "Oil Flow Rate"},
	{"COPTL", model.WellCompletion, "Oil Production Total"},
	{"WOPTL", model.WellCompletion, "Oil Production Total"},
	{"COITL", model.WellCompletion, "Oil Injection Total"},
	{"WOITL", model.WellCompletion, "Oil Injection Total"},
	{"CWFRL", model.WellCompletion, "Water Flow Rate"},
	{"WWFRL", model.WellCompletion, "Water Flow Rate"},
	{"CWPRL", model.WellCompletion, "Water Flow Rate"},
	{"WWPRL", model.WellCompletion, "Water Flow Rate"},
	{"CWPTL", model.WellCompletion, "Water Production Total"},
	{"WWPTL", model.WellCompletion, "Water Production Total"},
	{"CWIRL", model.WellCompletion, "Water Injection Rate"},
	{"WWIRL", model.WellCompletion, "Water Injection Rate"},
	{"CWITL", model.WellCompletion, "Water Injection Total"},
	{"WWITL", model.WellCompletion, "Water Injection Total"},
	{"CGFRL", model.WellCompletion, "Gas Flow Rate"},
	{"WGFRL", model.WellCompletion, "Gas Flow Rate"},
	{"CGPRL", model.WellCompletion, "Gas Flow Rate"},
	{"WGPRL", model.WellCompletion, "Gas Flow Rate"},
	{"CGPTL", model.WellCompletion, "Gas Production Total"},
	{"WGPTL", model.WellCompletion, "Gas Production Total"},
	{"CGIRL", model.WellCompletion, "Gas Injection Rate"},
	{"WGIRL", model.WellCompletion, "Gas Injection Rate"},
	{"CGITL", model.WellCompletion, "Gas Injection Total"},
	{"WGITL", model.WellCompletion, "Gas Injection Total"},
	{"CLFRL", model.WellCompletion, "Liquid Flow Rate"},
	{"WLFRL", model.WellCompletion, "Liquid Flow Rate"},
	{"CLPTL", model.WellCompletion, "Liquid Production Total"},
	{"WLPTL", model.WellCompletion, "Liquid Production Total"},
	{"CVFRL", model.WellCompletion, "Reservoir"},
	{"WVFRL", model.WellCompletion, "Res Volume Flow Rate"},
	{"CVPRL", model.WellCompletion, "Res Volume Production Flow Rate"},
	{"WVPRL", model.WellCompletion, "Res Volume Production Flow Rate"},
	{"CVIRL", model.WellCompletion, "Res Volume Injection Flow Rate"},
	{"WVIRL", model.WellCompletion, "Res Volume Injection Flow Rate"},
	{"CVPTL", model.WellCompletion, "Res Volume Production Total"},
	{"WVPTL", model.WellCompletion, "Res Volume Production Total"},
	{"CVITL", model.WellCompletion, "Res Volume Injection Total"},
	{"WVITL", model.WellCompletion, "Res Volume Injection Total"},
	{"CWCTL", model.WellCompletion, "Water Cut"},
	{"WWCTL", model.WellCompletion, "Water Cut"},
	{"CGORL", model.WellCompletion, "Gas-Oil Ratio"},
	{"WGORL", model.WellCompletion, "Gas-Oil Ratio"},
	{"COGRL", model.WellCompletion, "Oil-Gas Ratio"},
	{"WOGRL", model.WellCompletion, "Oil-Gas Ratio"},
	{"CWGRL", model.WellCompletion, "Water-Gas Ratio"},
	{"WWGRL", model.WellCompletion, "Water-Gas Ratio"},
	{"CGLRL", model.WellCompletion, "Gas-Liquid Ratio"},
	{"WGLRL", model.WellCompletion, "Gas-Liquid Ratio"},
	{"CPRL", model.WellCompletion, "Average Connection Pressure in completion"},
	{"CKFRL", model.WellCompletion, "Hydrocarbon Component"},
	{"CKFTL", model.WellCompletion, "Hydrocarbon Component"},

	// Region
	{"RPR", model.Region, "Pressure average value"},
	{"RPRH", model.Region, "Pressure average value"},
	{"RPRP", model.Region, "Pressure average value"},
	{"RPRGZ", model.Region, "P/Z"},
	{"RRS", model.Region, "Gas-oil ratio"},
	{"RRV", model.Region, "Oil-gas ratio"},
	{"RPPC", model.Region, "Initial Contact Corrected Potential"},
	{"RRPV", model.Region, "Pore Volume at Reservoir conditions"},
	{"ROPV", model.Region, "Pore Volume containing Oil"},
	{"RWPV", model.Region, "Pore Volume containing Water"},
	{"RGPV", model.Region, "Pore Volume containing Gas"},
	{"RHPV", model.Region, "Pore Volume containing Hydrocarbon"},
	{"RRTM", model.Region, "Transmissibility Multiplier associated with rock compaction"},
	{"ROE", model.Region, "(OIP(initial) - OIP(now)) / OIP(initial)"},
	{"ROEW", model.Region, "Oil Production from Wells / OIP(initial)"},
	{"ROEIW", model.Region, "(OIP(initial) - OIP(now)) / Initial Mobile Oil with respect to Water"},
	{"ROEWW", model.Region, "Oil Production from Wells / Initial Mobile Oil with respect to Water"},
	{"ROEIG", model.Region, "(OIP(initial) - OIP(now)) / Initial Mobile Oil with respect to Gas"},
	{"ROEWG", model.Region, "Oil Production from Wells / Initial Mobile Oil with respect to Gas"},
	{"RORMR", model.Region, "Total stock tank oil produced by rock compaction"},
	{"RORMW", model.Region, "Total stock tank oil produced by water influx"},
	{"RORMG", model.Region, "Total stock tank oil produced by gas influx"},
	{"RORME", model.Region, "Total stock tank oil produced by oil expansion"},
	{"RORMS", model.Region, "Total stock tank oil produced by solution gas"},
	{"RORMF", model.Region, "Total stock tank oil produced by free gas influx"},
	{"RORMX", model.Region, "Total stock tank oil produced by 'traced' water influx"},
	{"RORMY", model.Region, "Total stock tank oil produced by other water influx"},
	{"RORFR", model.Region, "Fraction of total oil produced by rock compaction"},
	{"RORFW", model.Region, "Fraction of total oil produced by water influx"},
	{"RORFG", model.Region, "Fraction of total oil produced by gas influx"},
	{"RORFE", model.Region, "Fraction of total oil produced by oil expansion"},
	{"RORFS", model.Region, "Fraction of total oil produced by solution gas"},
	{"RORFF", model.Region, "Fraction of total oil produced by free gas influx"},
	{"RORFX", model.Region, "Fraction of total oil produced by 'traced' water influx"},
	{"RORFY", model.Region, "Fraction of total oil produced by other water influx"},
	{"RTIPT", model.Region, "Tracer In Place"},
	{"RTIPF", model.Region, "Tracer In Place"},
	{"RTIPS", model.Region, "Tracer In Place"},
	{"RAPI", model.Region, "Oil API"},
	{"RSIP", model.Region, "Salt In Place"},
	{"RTIPTHEA", model.Region, "Difference in Energy in place between current and initial time"},
	{"RTIPT", model.Region, "Tracer In Place"},
	{"RTIPF", model.Region, "Tracer In Place"},
	{"RTIPS", model.Region, "Tracer In Place"},
	{"RTIP#", model.Region, "Tracer In Place in phase # (1,2,3,...)"},
	{"RTADS", model.Region, "Tracer Adsorption total"},
	{"RTDCY", model.Region, "Decayed tracer"},
	{"RCGC", model.Region, "Bulk Coal Gas Concentration"},
	{"RCSC", model.Region, "Bulk Coal Solvent Concentration"},
	{"RTIPTFOA", model.Region, "In Solution"},
	{"RTADSFOA", model.Region, "Adsorption total"},
	{"RTDCYFOA", model.Region, "Decayed tracer"},
	{"RTMOBFOA", model.Region, "Gas mobility factor"},
	{"RCIP", model.Region, "Polymer In Solution"},
	{"RCAD", model.Region, "Polymer Adsorption total"},
	{"RSIP", model.Region, "Salt In Place"},
	{"RNIP", model.Region, "Solvent In Place"},
	{"RTIPTSUR", model.Region, "In Solution"},
	{"RTADSUR", model.Region, "Adsorption total"},
	{"RU", model.Region, "User-defined region quantity"},

	// Region to region
	{"ROFR", model.RegionToRegion, "Inter-region oil flow rate"},
	{"ROFR+", model.RegionToRegion, "Inter-region oil flow rate"},
	{"ROFR-", model.RegionToRegion, "Inter-region oil flow rate"},
	{"ROFT", model.RegionToRegion, "Inter-region oil flow total"},
	{"ROFT+", model.RegionToRegion, "Inter-region oil flow total"},
	{"ROFT-", model.RegionToRegion, "Inter-region oil flow total"},
	{"ROFTL", model.RegionToRegion, "Inter-region oil flow total"},
	{"ROFTG", model.RegionToRegion, "Inter-region oil flow total"},
	{"RGFR", model.RegionToRegion, "Inter-region gas flow rate"},
	{"RGFR+", model.RegionToRegion, "Inter-region gas flow rate"},
	{"RGFR-", model.RegionToRegion, "Inter-region gas flow rate"},
	{"RGFT", model.RegionToRegion, "Inter-region gas flow total)"},
	{"RGFT+", model.RegionToRegion, "Inter-region gas flow total"},
	{"RGFT-", model.RegionToRegion, "Inter-region gas flow total"},
	{"RGFTL", model.RegionToRegion, "Inter-region gas flow total"},
	{"RGFTG", model.RegionToRegion, "Inter-region gas flow total"},
	{"RWFR", model.RegionToRegion, "Inter-region water flow rate"},
	{"RWFR+", model.RegionToRegion, "Inter-region water flow rate"},
	{"RWFR-", model.RegionToRegion, "Inter-region water flow rate"},
	{"RWFT", model.RegionToRegion, "Inter-region water flow total"},
	{"RTFTF", model.RegionToRegion, "Tracer inter-region Flow Total"},
	{"RTFTS", model.RegionToRegion, "Tracer inter-region Flow Total"},
	{"RTFTT", model.RegionToRegion, "Tracer inter-region Flow Total"},
	{"RSFT", model.RegionToRegion, "Salt inter-region Flow Total"},
	{"RTFTT", model.RegionToRegion, "Tracer inter-region Flow"},
	{"RTFTF", model.RegionToRegion, "Tracer inter-region Flow"},
	{"RTFTS", model.RegionToRegion, "Tracer inter-region Flow"},
	{"RTFT#", model.RegionToRegion, "Tracer inter-region Flow in phase # (1,2,3,...)"},
	{"RTFTTFOA", model.RegionToRegion, "Inter-region Flow Total"},
	{"RCFT", model.RegionToRegion, "Polymer inter-region Flow Total"},
	{"RSFT", model.RegionToRegion, "Salt inter-region Flow Total"},
	{"RNFT", model.RegionToRegion, "Solvent inter-region Flow"},
	{"RTFTTSUR", model.RegionToRegion, "Inter-region Flow Total"},

	// Block
	{"BPR", model.Block, "Oil phase Pressure"},
	{"BPRESSUR", model.Block, "Oil phase Pressure"},
	{"BWPR", model.Block, "Water phase Pressure"},
	{"BGPR", model.Block, "Gas phase Pressure"},
	{"BRS", model.Block, "Gas-oil ratio"},
	{"BRV", model.Block, "Oil-gas ratio"},
	{"BPBUB", model.Block, "Bubble point pressure"},
	{"BPDEW", model.Block, "Dew point pressure"},
	{"BRSSAT", model.Block, "Saturated gas-oil ratio"},
	{"BRVSAT", model.Block, "Saturated oil-gas ratio"},
	{"BSTATE", model.Block, "Gas-oil state indicator"},
	{"BPPC", model.Block, "Initial Contact Corrected Potential"},
	{"BOKR", model.Block, "Oil relative permeability"},
	{"BWKR", model.Block, "Water relative permeability"},
	{"BGKR", model.Block, "Gas relative permeability"},
	{"BKRO", model.Block, "Oil relative permeability"},
	{"BKROG", model.Block, "Two-phase oil relative permeability to gas"},
	{"BKROW", model.Block, "Two-phase oil relative permeability to water"},
	{"BKRG", model.Block, "Gas relative permeability"},
	{"BKRGO", model.Block, "Two-phase gas relative permeability to oil "},
	{"BKRGW", model.Block, "Two-phase gas relative permeability to water"},
	{"BKRW", model.Block, "Water relative permeability"},
	{"BKRWG", model.Block, "Two-phase water relative permeability to gas"},
	{"BKRWO", model.Block, "Two-phase water relative permeability to oil"},
	{"BRK", model.Block, "Water relative permeability reduction factor due to polymer"},
	{"BEWKR", model.Block, "Water effective relative permeability due to polymer"},
	{"BWPC", model.Block, "Water-Oil capillary pressure"},
	{"BGPC", model.Block, "Gas-Oil capillary pressure"},
	{"BPCO", model.Block, "Oil Capillary Pressures"},
	{"BPCG", model.Block, "Gas Capillary Pressures"},
	{"BPCW", model.Block, "Water Capillary Pressures"},
	{"BGTRP", model.Block, "Trapped gas saturation"},
	{"BGTPD", model.Block, "Dynamic trapped gas saturation"},
	{"BGSHY", model.Block, "Departure saturation from drainage to imbibition for gas capillary pressure hysteresis"},
	{"BGSTRP", model.Block, "Trapped gas critical saturation for gas capillary pressure hysteresis"},
	{"BWSHY", model.Block, "Departure saturation from drainage to imbibition for water capillary pressure hysteresis"},
	{"BWSMA", model.Block, "Maximum wetting saturation for water capillary pressure hysteresis"},
	{"BMLSC", model.Block, "Hydrocarbon molar density"},
	{"BMLST", model.Block, "Total hydrocarbon molar density"},
	{"BMWAT", model.Block, "Water molar density"},
	{"BROMLS", model.Block, "Residual oil moles/ reservoir volume"},
	{"BJV", model.Block, "In"},
	{"BVMF", model.Block, "Vapor mole fraction"},
	{"BPSAT", model.Block, "Saturation Pressures"},
	{"BAMF", model.Block, "Component aqueous mole fraction"},
	{"BXMF", model.Block, "Liquid hydrocarbon component mole fraction"},
	{"BYMF", model.Block, "Vapor hydrocarbon component mole fraction / vapor steam"},
	{"BSMF", model.Block, "CO2STORE with SOLID option only Solid hydrocarbon component mole fraction"},
	{"BSTEN", model.Block, "Surface Tension"},
	{"BFMISC", model.Block, "Miscibility Factor"},
	{"BREAC", model.Block, "Reaction rate. The reaction number is given as a component index"},
	{"BHD", model.Block, "Hydraulic head"},
	{"BHDF", model.Block, "Hydraulic head at fresh water conditions"},
	{"BPR_X", model.Block, "Pressure interpolated at a defined coordinate"},
	{"BHD_X", model.Block, "Hydraulic head interpolated at a defined coordinate"},
	{"BHDF_X", model.Block, "Hydraulic head at fresh water conditions interpolated at a defined coordinate"},
	{"BSCN_X", model.Block, "Brine concentration interpolated at a defined coordinate"},
	{"BCTRA_X", model.Block, "Tracer concentration interpolated at a defined coordinate"},
	{"LBPR_X", model.Block, "Pressure interpolated at a defined coordinate within a local grid"},
	{"LBHD_X", model.Block, "Hydraulic head interpolated at a defined coordinate within a local grid"},
	{"LBHDF_X", model.Block, "Hydraulic head at freshwater conditions interpolated at a defined coordinate within a local grid"},
	{"LBSCN_X", model.Block, "Brine concentration interpolated at a defined coordinate within a local grid"},
	{"LBCTRA_X", model.Block, "Tracer concentration interpolated at a defined coordinate within a local grid"},
	{"BOKRX", model.Block, "Oil relative permeability in the X direction"},
	{"BOKRX", model.Block, "- Oil relative permeability in the -X direction"},
	{"BOKRY", model.Block, "Oil relative permeability in the Y direction"},
	{"BOKRY", model.Block, "- Oil relative permeability in the -Y direction"},
	{"BOKRZ", model.Block, "Oil relative permeability in the Z direction"},
	{"BOKRZ", model.Block, "- Oil relative permeability in the -Z direction"},
	{"BWKRX", model.Block, "Water relative permeability in the X direction"},
	{"BWKRX", model.Block, "- Water relative permeability in the -X direction"},
	{"BWKRY", model.Block, "Water relative permeability in the Y direction"},
	{"BWKRY", model.Block, "- Water relative permeability in the -Y direction"},
	{"BWKRZ", model.Block, "Water relative permeability in the Z direction"},
	{"BWKRZ", model.Block, "- Water relative permeability in the -Z direction"},
	{"BGKRX", model.Block, "Gas relative permeability in the X direction"},
	{"BGKRX", model.Block, "- Gas relative permeability in the -X direction"},
	{"BGKRY", model.Block, "Gas relative permeability in the Y direction"},
	{"BGKRY", model.Block, "- Gas relative permeability in the -Y direction"},
	{"BGKRZ", model.Block, "Gas relative permeability in the Z direction"},
	{"BGKRZ", model.Block, "- Gas relative permeability in the -Z direction"},
	{"BOKRI", model.Block, "Oil relative permeability in the I direction"},
	{"BOKRI", model.Block, "- Oil relative permeability in the -I direction"},
	{"BOKRJ", model.Block, "Oil relative permeability in the J direction"},
	{"BOKRJ", model.Block, "- Oil relative permeability in the -J direction"},
	{"BOKRK", model.Block, "Oil relative permeability in the K direction"},
	{"BOKRK", model.Block, "- Oil relative permeability in the -K direction"},
	{"BWKRI", model.Block, "Water relative permeability in the I direction"},
	{"BWKRI", model.Block, "- Water relative permeability in the -I direction"},
	{"BWKRJ", model.Block, "Water relative permeability in the J direction"},
	{"BWKRJ", model.Block, "- Water relative permeability in the -J direction"},
	{"BWKRK", model.Block, "Water relative permeability in the K direction"},
	{"BWKRK", model.Block, "- Water relative permeability in the -K direction"},
	{"BGKRI", model.Block, "Gas relative permeability in the I direction"},
	{"BGKRI", model.Block, "- Gas relative permeability in the -I direction"},
	{"BGKRJ", model.Block, "Gas relative permeability in the J direction"},
	{"BGKRJ", model.Block, "- Gas relative permeability in the -J direction"},
	{"BGKRK", model.Block, "Gas relative permeability in the K direction"},
	{"BGKRK", model.Block, "- Gas relative permeability in the -K direction"},
	{"BOKRR", model.Block, "Oil relative permeability in the R"},
	{"BOKRR", model.Block, "- Oil relative permeability in the -R"},
	{"BOKRT", model.Block, "Oil relative permeability in the T"},
	{"BOKRT", model.Block, "- Oil relative permeability in the -T"},
	{"BWKRR", model.Block, "Water relative permeability in the R"},
	{"BWKRR", model.Block, "- Water relative permeability in the -R"},
	{"BWKRT", model.Block, "Water relative permeability in the T"},
	{"BWKRT", model.Block, "- Water relative permeability in the -T"},
	{"BGKRR", model.Block, "Gas relative permeability in the R"},
	{"BGKRR", model.Block, "- Gas relative permeability in the -R"},
	{"BGKRT", model.Block, "Gas relative permeability in the T"},
	{"BGKRT", model.Block, "- Gas relative permeability in the -T"},
	{"BRPV", model.Block, "Pore Volume at Reservoir conditions"},
	{"BPORV", model.Block, "Cell Pore Volumes at Reference conditions"},
	{"BOPV", model.Block, "Pore Volume containing Oil"},
	{"BWPV", model.Block, "Pore Volume containing Water"},
	{"BGPV", model.Block, "Pore Volume containing Gas"},
	{"BHPV", model.Block, "Pore Volume containing Hydrocarbon"},
	{"BRTM", model.Block, "Transmissibility Multiplier associated with rock compaction"},
	{"BPERMMOD", model.Block, "Transmissibility Multiplier associated with rock compaction"},
	{"BPERMMDX", model.Block, "Directional Transmissibility Multipliers in the X direction, associated with rock compaction"},
	{"BPERMMDY", model.Block, "Directional Transmissibility Multipliers in the Y direction, associated with rock compaction"},
	{"BPERMMDZ", model.Block, "Directional Transmissibility Multipliers in the Z direction, associated with rock compaction"},
	{"BPORVMOD", model.Block, "Pore Volume Multiplier associated with rock compaction"},
	{"BSIGMMOD", model.Block, "Dual Porosity Sigma Multiplier associated with rock compaction"},
	{"BTCNF", model.Block, "Tracer Concentration"},
	{"BTCNS", model.Block, "Tracer Concentration"},
	{"BTCN", model.Block, "Tracer Concentration"},
	{"BTIPT", model.Block, "Tracer In Place"},
	{"BTIPF", model.Block, "Tracer In Place"},
	{"BTIPS", model.Block, "Tracer In Place"},
	{"BAPI", model.Block, "Oil API"},
	{"BSCN", model.Block, "Salt Cell Concentration"},
	{"BSIP", model.Block, "Salt In Place"},
	{"BEWV_SAL", model.Block, "Effective water viscosity due to salt concentration"},
	{"BTCNFANI", model.Block, "Anion Flowing Concentration"},
	{"BTCNFCAT", model.Block, "Cation Flowing Concentration"},
	{"BTRADCAT", model.Block, "Cation Rock Associated Concentration"},
	{"BTSADCAT", model.Block, "Cation Surfactant Associated Concentration"},
	{"BESALSUR", model.Block, "Effective Salinity with respect to Surfactant"},
	{"BESALPLY", model.Block, "Effective Salinity with respect to Polymer"},
	{"BTCNFHEA", model.Block, "Block Temperature"},
	{"BTIPTHEA", model.Block, "Difference in Energy in place between current and initial time"},
	{"BTCNF", model.Block, "Tracer Concentration"},
	{"BTCNS", model.Block, "Tracer Concentration"},
	{"BTCN#", model.Block, "Tracer concentration in phase # (1,2,3,...)"},
	{"BTIPT", model.Block, "Tracer In Place"},
	{"BTIPF", model.Block, "Tracer In Place"},
	{"BTIPS", model.Block, "Tracer In Place"},
	{"BTIP#", model.Block, "Tracer In Place in phase # (1,2,3,...)"},
	{"BTADS", model.Block, "Tracer Adsorption"},
	{"BTDCY", model.Block, "Decayed tracer"},
	{"BCGC", model.Block, "Bulk Coal Gas Concentration"},
	{"BCSC", model.Block, "Bulk Coal Solvent Concentration"},
	{"BTCNFFOA", model.Block, "Concentration"},
	{"BFOAM", model.Block, "Surfactant concentration"},
	{"BTCNMFOA", model.Block, "Capillary number"},
	{"BFOAMCNM", model.Block, "Capillary number"},
	{"BTIPTFOA", model.Block, "In Solution"},
	{"BTADSFOA", model.Block, "Adsorption"},
	{"BTDCYFOA", model.Block, "Decayed tracer"},
	{"BTMOBFOA", model.Block, "Gas mobility factor"},
	{"BFOAMMOB", model.Block, "Gas mobility factor"},
	{"BTHLFFOA", model.Block, "Decay Half life"},
	{"BGI", model.Block, "Block Gi value"},
	{"BCCN", model.Block, "Polymer Concentration"},
	{"BCIP", model.Block, "Polymer In Solution"},
	{"BEPVIS", model.Block, "Effective polymer solution viscosity"},
	{"BVPOLY", model.Block, "Effective polymer solution viscosity"},
	{"BEMVIS", model.Block, "Effective mixture"},
	{"BEWV_POL", model.Block, "Effective water viscosity"},
	{"BCAD", model.Block, "Polymer Adsorption concentration"},
	{"BCDCS", model.Block, "Polymer thermal degradation - total mass degraded in previous timestep"},
	{"BCDCR", model.Block, "Polymer thermal degradation - total degradation rate"},
	{"BCDCP", model.Block, "Polymer thermal degradation solution degradation rate"},
	{"BCDCA", model.Block, "Polymer thermal degradation adsorbed degradation rate"},
	{"BCABnnn", model.Block, "Adsorbed polymer by highest temperature band at which RRF was calculated"},
	{"BSCN", model.Block, "Salt Cell Concentration"},
	{"BSIP", model.Block, "Salt In Place"},
	{"BFLOW0I", model.Block, "Inter-block water flow rate in the positive I direction multiplied by the corresponding shear multiplier"},
	{"BFLOW0J", model.Block, "Inter-block water flow rate in the positive J direction multiplied by the corresponding shear multiplier"},
	{"BFLOW0K", model.Block, "Inter-block water flow rate in the positive K direction multiplied by the corresponding shear multiplier"},
	{"BVELW0I", model.Block, "Water velocity in the positive I direction multiplied by the corresponding shear multiplier"},
	{"BVELW0J", model.Block, "Water velocity in the positive J direction multiplied by the corresponding shear multiplier"},
	{"BVELW0K", model.Block, "Water velocity in the positive K direction multiplied by the corresponding shear multiplier"},
	{"BPSHLZI", model.Block, "Viscosity multiplier due to sheared water flow in the positive I direction"},
	{"BPSHLZJ", model.Block, "Viscosity multiplier due to sheared water flow in the positive J direction"},
	{"BPSHLZK", model.Block, "Viscosity multiplier due to sheared water flow in the positive K direction"},
	{"BSRTW0I", model.Block, "Water shear rate in the positive I direction prior to shear effects"},
	{"BSRTW0J", model.Block, "Water shear rate in the positive J direction prior to shear effects"},
	{"BSRTW0K", model.Block, "Water shear rate in the positive K direction prior to shear effects"},
	{"BSRTWI", model.Block, "Water shear rate in the positive I direction following shear effects"},
	{"BSRTWJ", model.Block, "Water shear rate in the positive J direction following shear effects"},
	{"BSRTWK", model.Block, "Water shear rate in the positive K direction following shear effects"},
	{"BSHWVISI", model.Block, "Shear viscosity of the water/polymer solution due to shear thinning/thickening in the positive I direction"},
	{"BSHWVISJ", model.Block, "Shear viscosity of the water/polymer solution due to shear thinning/thickening in the positive J direction"},
	{"BSHWVISK", model.Block, "Shear viscosity of the water/polymer solution due to shear thinning/thickening in the positive K direction"},
	{"BNSAT", model.Block, "Solvent SATuration"},
	{"BNIP", model.Block, "Solvent In Place"},
	{"BNKR", model.Block, "Solvent relative permeability"},
	{"BTCNFSUR", model.Block, "Concentration"},
	{"BSURF", model.Block, "Concentration in solution"},
	{"BTIPTSUR", model.Block, "In Solution"},
	{"BTADSUR", model.Block, "Adsorption"},
	{"BTCASUR", model.Block, "Log"},
	{"BSURFCNM", model.Block, "Log"},
	{"BTSTSUR", model.Block, "Surface tension"},
	{"BSURFST", model.Block, "Surface tension"},
	{"BEWV_SUR", model.Block, "Effective water viscosity due to surfactant concentration"},
	{"BESVIS", model.Block, "Effective water viscosity due to surfactant concentration"},
	{"BTCNFALK", model.Block, "Concentration"},
	{"BTADSALK", model.Block, "Adsorption"},
	{"BTSTMALK", model.Block, "Surface tension multiplier"},
	{"BTSADALK", model.Block, "Surfactant adsorption multiplier"},
	{"BTPADALK", model.Block, "Polymer adsorption multiplier"},
	{"BKRGOE", model.Block, "Equivalent relative permeability to gas for gas-oil system"},
	{"BKRGWE", model.Block, "Equivalent relative permeability to gas for gas-water system"},
	{"BKRWGE", model.Block, "Equivalent relative permeability to water for water-gas system"},
	{"BKROWT", model.Block, "Opposite saturation direction turning point relative permeability to oil for oil-water system"},
	{"BKRWOT", model.Block, "Opposite saturation direction turning point relative permeability to water for water-oil system"},
	{"BKROGT", model.Block, "Opposite saturation direction turning point relative permeability to oil for oil-gas system"},
	{"BKRGOT", model.Block, "Opposite saturation direction turning point relative permeability to gas for gas-oil system"},
	{"BKRGWT", model.Block, "Opposite saturation direction turning point relative permeability to gas for gas-water system"},
	{"BKRWGT", model.Block, "Opposite saturation direction turning point relative permeability to water for water-gas system"},
	{"BIFTOW", model.Block, "Oil-water interfacial tension"},
	{"BIFTWO", model.Block, "Water-oil interfacial tension"},
	{"BIFTOG", model.Block, "Oil-gas interfacial tension"},
	{"BIFTGO", model.Block, "Gas-oil interfacial tension"},
	{"BIFTGW", model.Block, "Gas-water interfacial tension"},
	{"BIFTWG", model.Block, "Water-gas interfacial tension"},
	{"BPCOWR", model.Block, "Representative oil-water capillary pressure"},
	{"BPCWOR", model.Block, "Representative water-oil capillary pressure"},
	{"BPCOGR", model.Block, "Representative oil-gas capillary pressure"},
	{"BPCGOR", model.Block, "Representative gas-oil capillary pressure"},
	{"BPCGWR", model.Block, "Representative gas-water capillary pressure"},
	{"BPCWGR", model.Block, "Representative water-gas capillary pressure"},

	// Segment
	{"SOFR", model.WellSegment, "Segment Oil Flow Rate"},
	{"SOFRF", model.WellSegment, "Segment Free Oil Flow Rate"},
	{"SOFRS", model.WellSegment, "Segment Solution Oil Flow Rate"},
	{"SWFR", model.WellSegment, "Segment Water Flow Rate"},
	{"SGFR", model.WellSegment, "Segment Gas Flow Rate"},
	{"SGFRF", model.WellSegment, "Segment Free Gas Flow Rate"},
	{"SGFRS", model.WellSegment, "Segment Solution Gas Flow Rate"},
	{"SKFR", model.WellSegment, "Segment Component Flow Rate"},
	{"SCWGFR", model.WellSegment, "Segment Component Flow Rate as Wet Gas"},
	{"SHFR", model.WellSegment, "Segment Enthalpy Flow Rate"},
	{"SWCT", model.WellSegment, "Segment Water Cut"},
	{"SGOR", model.WellSegment, "Segment Gas Oil Ratio"},
	{"SOGR", model.WellSegment, "Segment Oil Gas Ratio"},
	{"SWGR", model.WellSegment, "Segment Water Gas Ratio"},
	{"SPR", model.WellSegment, "Segment Pressure"},
	{"SPRD", model.WellSegment, "Segment Pressure Drop"},
	{"SPRDF", model.WellSegment, "Segment Pressure Drop component due to Friction"},
	{"SPRDH", model.WellSegment, "Segment Pressure Drop component due to Hydrostatic head"},
	{"SPRDA", model.WellSegment, "Segment Pressure drop due to Acceleration head"},
	{"SPRDM", model.WellSegment, "Segment frictional Pressure Drop Multiplier"},
	{"SPPOW", model.WellSegment, "Working power of a pull through pump"},
	{"SOFV", model.WellSegment, "Segment Oil Flow Velocity"},
	{"SWFV", model.WellSegment, "Segment Water Flow Velocity"},
	{"SGFV", model.WellSegment, "Segment Gas Flow Velocity"},
	{"SOHF", model.WellSegment, "Segment Oil Holdup Fraction"},
	{"SWHF", model.WellSegment, "Segment Water Holdup Fraction"},
	{"SGHF", model.WellSegment, "Segment Gas Holdup Fraction"},
	{"SDENM", model.WellSegment, "Segment fluid mixture density"},
	{"SOVIS", model.WellSegment, "Segment oil viscosity"},
	{"SWVIS", model.WellSegment, "Segment water viscosity"},
	{"SGVIS", model.WellSegment, "Segment gas viscosity"},
	{"SEMVIS", model.WellSegment, "Segment effective mixture viscosity"},
	{"SGLPP", model.WellSegment, "Segment Gas-Liquid Profile Parameter, C0"},
	{"SGLVD", model.WellSegment, "Segment Gas-Liquid Drift Velocity, Vd"},
	{"SOWPP", model.WellSegment, "Segment Oil-Water Profile Parameter, C0"},
	{"SOWVD", model.WellSegment, "Segment Oil-Water Drift Velocity, Vd"},
	{"SOIMR", model.WellSegment, "Segment Oil Import Rate"},
	{"SGIMR", model.WellSegment, "Segment Gas Import Rate"},
	{"SWIMR", model.WellSegment, "Segment Water Import Rate"},
	{"SHIMR", model.WellSegment, "Segment Enthalpy Import Rate"},
	{"SORMR", model.WellSegment, "Segment Oil Removal Rate"},
	{"SGRMR", model.WellSegment, "Segment Gas Removal Rate"},
	{"SWRMR", model.WellSegment, "Segment Water Removal Rate"},
	{"SHRMR", model.WellSegment, "Segment Enthalpy Removal Rate"},
	{"SOIMT", model.WellSegment, "Segment Oil Import Total"},
	{"SGIMT", model.WellSegment, "Segment Gas Import Total"},
	{"SWIMT", model.WellSegment, "Segment Water Import Total"},
	{"SHIMT", model.WellSegment, "Segment Enthalpy Import Total"},
	{"SORMT", model.WellSegment, "Segment Oil Removal Total"},
	{"SGRMT", model.WellSegment, "Segment Gas Removal Total"},
	{"SWRMT", model.WellSegment, "Segment Water Removal Total"},
	{"SHRMT", model.WellSegment, "Segment Enthalpy Removal Total"},
	{"SAPI", model.WellSegment, "Segment API value"},
	{"SCFR", model.WellSegment, "Segment polymer flow rate"},
	{"SCCN", model.WellSegment, "Segment polymer concentration"},
	{"SSFR", model.WellSegment, "Segment brine flow rate"},
	{"SSCN", model.WellSegment, "Segment brine concentration"},
	{"STFR", model.WellSegment, "Segment tracer flow rate"},
	{"STFC", model.WellSegment, "Segment tracer concentration"},
	{"SFD", model.WellSegment, "Segment diameter for Karst Conduit Calcite Dissolution"},
	{"SPSAT", model.WellSegment, "Segment Psat"},
	{"STEM", model.WellSegment, "Segment Temperature"},
	{"SENE", model.WellSegment, "Segment Energy Density"},
	{"SSQU", model.WellSegment, "Segment Steam Quality"},
	{"SCVPR", model.WellSegment, "Segment Calorific Value Production Rate"},
	{"SGQ", model.WellSegment, "Segment Gas Quality"},
	{"SCSA", model.WellSegment, "Segment Cross Sectional Area"},
	{"SSTR", model.WellSegment, "Strength of ICD on segment"},
	{"SFOPN", model.WellSegment, "Setting of segment"},
	{"SALQ", model.WellSegment, "Artificial lift quantity for segment"},
	{"SRRQR", model.WellSegment, "Reach flow at current time"},
	{"SRRQT", model.WellSegment, "Reach cumulative flow"},
	{"SRBQR", model.WellSegment, "Branch flow at current time"},
	{"SRBQT", model.WellSegment, "Branch cumulative flow"},
	{"SRTQR", model.WellSegment, "River total flow at current time"},
	{"SRTQT", model.WellSegment, "River total cumulative flow"},
	{"SRRFLOW", model.WellSegment, "Reach flux through cross-sectional area at current time"},
	{"SRRAREA", model.WellSegment, "Reach area at current time"},
	{"SRRDEPTH", model.WellSegment, "Reach depth at current time"},
	{"SRREXCH", model.WellSegment, "Exchange flux at current time"},
	{"SRRFRODE", model.WellSegment, "Reach Froude number at current time"},
	{"SRRHEAD", model.WellSegment, "Reach hydraulic head at current time"},
	{"SRTFR", model.WellSegment, "Reach tracer flow rate"},
	{"SRTFC", model.WellSegment, "Reach tracer concentration"},
	{"SRSFR", model.WellSegment, "Reach brine flow rate through connections"},
	{"SRSFC", model.WellSegment, "Reach brine concentration"},
	{"SU", model.WellSegment, "User-defined segment quantity"},

	// Aquifer
	{"AAQR", model.Aquifer, "Aquifer influx rate"},
	{"ALQR", model.Aquifer, "Aquifer influx rate"},
	{"AAQT", model.Aquifer, "Cumulative aquifer influx"},
	{"ALQT", model.Aquifer, "Cumulative aquifer influx"},
	{"AAQRG", model.Aquifer, "Aquifer influx rate"},
	{"ALQRG", model.Aquifer, "Aquifer influx rate"},
	{"AAQTG", model.Aquifer, "Cumulative aquifer influx"},
	{"ALQTG", model.Aquifer, "Cumulative aquifer influx"},
	{"AACMR", model.Aquifer, "Aquifer component molar influx rate"},
	{"AACMT", model.Aquifer, "Aquifer component molar influx totals"},
	{"AAQP", model.Aquifer, "Aquifer pressure"},
	{"AAQER", model.Aquifer, "Aquifer thermal energy influx rate"},
	{"AAQET", model.Aquifer, "Cumulative aquifer thermal energy influx"},
	{"AAQTEMP", model.Aquifer, "Aquifer temperature"},
	{"AAQENTH", model.Aquifer, "Aquifer molar enthalpy"},
	{"AAQTD", model.Aquifer, "Aquifer dimensionless time"},
	{"AAQPD", model.Aquifer, "Aquifer dimensionless pressure"},
	{"ANQR", model.Aquifer, "Aquifer influx rate"},
	{"ANQT", model.Aquifer, "Cumulative aquifer influx"},
	{"ANQP", model.Aquifer, "Aquifer pressure"},

	// Miscellaneous
	{"CPU", model.Misc, "CPU"},
	{"DATE", model.Misc, "Date"},
	{"DAY", model.Misc, "Day"},
	{"ELAPSED", model.Misc, "Elapsed time in seconds"},
	{"MLINEARS", model.Misc, "Number linear iterations for each timestep"},
	{"MONTH", model.Misc, "Month"},
	{"MSUMLINS", model.Misc, "Total number of linear iterations since the start of the run"},
	{"MSUMNEWT", model.Misc, "Total number of Newton iterations since the start of the run"},
	{"NEWTON", model.Misc, "Number of Newton iterations used for each timestep"},
	{"STEPTYPE", model.Misc, "Step type"},
	{"TCPU", model.Misc, "TCPU"},
	{"TCPUDAY", model.Misc, "TCPUDAY"},
	{"TCPUTS", model.Misc, "TCPUTS"},
	{"TELAPLIN", model.Misc, "TELAPLIN"},
	{"TIME", model.Misc, "Time"},
	{"TIMESTEP", model.Misc, "Time step"},
	{"TIMESTRY", model.Misc, "TIMESTRY"},
	{"YEAR", model.Misc, "Year"},
	{"YEARS", model.Misc, "Years"},
}
