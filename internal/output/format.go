package output

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/crimson-sun/vecname/internal/model"
)

// Verbosity controls which fields of a record are emitted.
type Verbosity int

const (
	// Minimal keeps the vector, its category and whether it is known.
	Minimal Verbosity = iota
	// Standard adds the long name and the rule that placed the vector.
	Standard
	// Full adds the stripped base name.
	Full
)

func (v Verbosity) String() string {
	switch v {
	case Minimal:
		return "minimal"
	case Full:
		return "full"
	default:
		return "standard"
	}
}

// ParseVerbosity converts "minimal", "standard" or "full".
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimal":
		return Minimal, nil
	case "standard", "":
		return Standard, nil
	case "full":
		return Full, nil
	}
	return Standard, errors.Newf("unknown verbosity %q", s)
}

// Format is the record encoding used on stdout.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	Text Format = "text"
)

// ParseFormat converts "json", "yaml" or "text".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case JSON, YAML, Text:
		return f, nil
	case "":
		return JSON, nil
	}
	return JSON, errors.Newf("unknown output format %q", s)
}

// FormatClassification returns a copy of c with fields stripped according to
// verbosity. Stripped fields are omitted from JSON and YAML via omitempty.
func FormatClassification(c model.Classification, verbosity Verbosity) model.Classification {
	switch verbosity {
	case Minimal:
		c.LongName = ""
		c.Rule = ""
		c.BaseName = ""
	case Standard:
		c.BaseName = ""
	}
	return c
}
