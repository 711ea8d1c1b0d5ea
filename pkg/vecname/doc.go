// Package vecname classifies reservoir-simulation summary vector mnemonics
// (WOPR, ROFT+, SRSFC, BHD__ABC, ...) and resolves their long names.
//
// Quick start:
//
//	fmt.Println(vecname.IdentifyCategory("ROFTG"))            // region_to_region
//	fmt.Println(vecname.LongName("SRSFC_DIFF", false))        // Reach brine concentration Difference
//	fmt.Println(vecname.Describe("LBXYZ1").Category.UIText()) // Lgr-Block
//
// The package-level functions share one engine built on first use. New
// builds an isolated instance, for example without the legacy keyword table.
// Both are safe for concurrent use.
package vecname
