// Package keyword provides the keyword-to-category hook used by the
// classifier before it falls back to its own structural heuristics.
package keyword

import "github.com/crimson-sun/vecname/internal/model"

// Resolver maps a summary keyword to a category. Implementations return
// model.Invalid for keywords they do not recognise.
type Resolver interface {
	CategoryFromKeyword(name string) model.Category
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(name string) model.Category

// CategoryFromKeyword calls f(name).
func (f ResolverFunc) CategoryFromKeyword(name string) model.Category {
	return f(name)
}

// Noop recognises nothing.
var Noop Resolver = ResolverFunc(func(string) model.Category { return model.Invalid })

type keywordSet map[string]struct{}

func newSet(words ...string) keywordSet {
	s := make(keywordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s keywordSet) has(w string) bool {
	_, ok := s[w]
	return ok
}

var (
	specialKeywords = newSet(
		"ELAPSED", "MAXDPR", "MAXDSG", "MAXDSO", "MAXDSW", "NAIMFRAC",
		"NEWTON", "NLINEARS", "NLINSMAX", "NLINSMIN", "STEPTYPE", "WNEWTON",
		"TCPU", "TCPUDAY", "TCPUTS", "TIMESTEP", "MLINEARS", "MSUMLINS",
		"MSUMNEWT", "NLINEARP", "NLINEART", "TELAPLIN",
	)
	aquiferSuffixes = newSet(
		"AQP", "AQR", "AQRG", "AQT", "AQTG",
		"LQR", "LQT", "LQRG", "LQTG",
		"NQP", "NQR", "NQT",
		"AQTD", "AQPD",
	)
	nodeKeywords = newSet("GPR", "GPRG", "GPRW")
	udqBlacklist = newSet("SUMTHIN")
)

// OPM classifies only the keyword families the reservoir toolkit identifies
// unambiguously. Prefix-letter guesses are left to the caller.
var OPM Resolver = ResolverFunc(opmCategory)

func opmCategory(name string) model.Category {
	switch {
	case name == "":
		return model.Invalid
	case specialKeywords.has(name):
		return model.Misc
	case isAquifer(name):
		return model.Aquifer
	case nodeKeywords.has(name):
		return model.Network
	case isConnectionCompletion(name), isWellCompletion(name):
		return model.WellCompletion
	}
	return model.Invalid
}

// isUserDefined matches AU*, BU*, CU*, FU*, GU*, RU*, SU* and WU*.
func isUserDefined(name string) bool {
	if len(name) < 2 || name[1] != 'U' || udqBlacklist.has(name) {
		return false
	}
	switch name[0] {
	case 'W', 'G', 'F', 'C', 'R', 'B', 'S', 'A':
		return true
	}
	return false
}

func isAquifer(name string) bool {
	return len(name) >= 4 && name[0] == 'A' && aquiferSuffixes.has(name[1:])
}

// isConnectionCompletion matches five-letter C????L keywords such as COPRL.
func isConnectionCompletion(name string) bool {
	return len(name) == 5 && name[0] == 'C' && name[len(name)-1] == 'L' && !isUserDefined(name)
}

// isWellCompletion matches W...L keywords such as WOPRL, excluding the
// liquid productivity index and the control-mode keyword.
func isWellCompletion(name string) bool {
	if len(name) < 2 || name[0] != 'W' || name[len(name)-1] != 'L' {
		return false
	}
	if name == "WPIL" || name == "WMCTL" {
		return false
	}
	return !isUserDefined(name)
}
