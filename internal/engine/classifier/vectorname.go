package classifier

import (
	"regexp"
	"strings"
)

// DiffSuffix marks a difference vector, e.g. "FOPT_DIFF".
const DiffSuffix = "_DIFF"

// decoratedLength is the width of a fixed-width decorated name such as
// "BHD__ABC": five characters of quantity followed by a three-character tag.
const decoratedLength = 8

var (
	supportedRegionToRegion   = regexp.MustCompile(`^R[OGW]F[RT][-+GL_]?([A-Z0-9_]{3})?$`)
	unsupportedRegionToRegion = regexp.MustCompile(`^R([EK]|NL)F[RT][-+_]?([A-Z0-9_]{3})?$`)
)

// BaseVectorName strips positional decorations from vectorName: an
// eight-character name keeps its first five characters, and anything from
// the first underscore on is dropped unless the name starts with one.
func BaseVectorName(vectorName string) string {
	s := vectorName
	if len(s) == decoratedLength {
		s = s[:5]
	}
	if i := strings.IndexByte(s, '_'); i > 0 {
		s = s[:i]
	}
	return s
}

// IsRegionToRegion reports whether name has the shape of an inter-region
// flow keyword, either one the simulator supports (ROFT, RGFR+, RWFTL...)
// or one it recognises without supporting (REFT, RKFR+, RNLFR-...).
func IsRegionToRegion(name string) bool {
	return supportedRegionToRegion.MatchString(name) || unsupportedRegionToRegion.MatchString(name)
}
