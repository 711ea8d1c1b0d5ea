package model

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Category is the structural class of a summary vector: the kind of entity
// (field, well, region, block, ...) the quantity is attached to.
type Category int

// The zero value is Invalid, so an unset Category never reads as a real class.
const (
	Invalid Category = iota
	Field
	WellGroup
	Well
	WellCompletion
	Region
	RegionToRegion
	Block
	WellSegment
	Aquifer
	Network
	Misc
	BlockLgr
	WellLgr
	WellCompletionLgr
	Imported
	EnsembleStatistics
)

// ErrUnknownCategory is returned when a category name is not recognised.
var ErrUnknownCategory = errors.New("unknown summary category")

type categoryNames struct {
	name string // canonical, used in config, CLI flags and serialized records
	key  string // enum key used by older project files
	ui   string
}

var categoryTable = [...]categoryNames{
	Invalid:            {"invalid", "SUMMARY_INVALID", "Invalid"},
	Field:              {"field", "SUMMARY_FIELD", "Field"},
	WellGroup:          {"well_group", "SUMMARY_WELL_GROUP", "Group"},
	Well:               {"well", "SUMMARY_WELL", "Well"},
	WellCompletion:     {"well_completion", "SUMMARY_WELL_COMPLETION", "Completion"},
	Region:             {"region", "SUMMARY_REGION", "Region"},
	RegionToRegion:     {"region_to_region", "SUMMARY_REGION_2_REGION", "Region-Region"},
	Block:              {"block", "SUMMARY_BLOCK", "Block"},
	WellSegment:        {"well_segment", "SUMMARY_WELL_SEGMENT", "Segment"},
	Aquifer:            {"aquifer", "SUMMARY_AQUIFER", "Aquifer"},
	Network:            {"network", "SUMMARY_NETWORK", "Network"},
	Misc:               {"misc", "SUMMARY_MISC", "Misc"},
	BlockLgr:           {"block_lgr", "SUMMARY_BLOCK_LGR", "Lgr-Block"},
	WellLgr:            {"well_lgr", "SUMMARY_WELL_LGR", "Lgr-Well"},
	WellCompletionLgr:  {"well_completion_lgr", "SUMMARY_WELL_COMPLETION_LGR", "Lgr-Completion"},
	Imported:           {"imported", "SUMMARY_IMPORTED", "Imported"},
	EnsembleStatistics: {"ensemble_statistics", "SUMMARY_ENSEMBLE_STATISTICS", "Ensemble Statistics"},
}

var categoryByName = func() map[string]Category {
	m := make(map[string]Category, 3*len(categoryTable))
	for i, n := range categoryTable {
		c := Category(i)
		m[n.name] = c
		m[strings.ToLower(n.key)] = c
		m[strings.ToLower(n.ui)] = c
	}
	return m
}()

// AllCategories returns every category except Invalid, in declaration order.
func AllCategories() []Category {
	out := make([]Category, 0, len(categoryTable)-1)
	for i := 1; i < len(categoryTable); i++ {
		out = append(out, Category(i))
	}
	return out
}

func (c Category) valid() bool {
	return c >= Invalid && int(c) < len(categoryTable)
}

// String returns the canonical snake_case name, e.g. "region_to_region".
func (c Category) String() string {
	if !c.valid() {
		return categoryTable[Invalid].name
	}
	return categoryTable[c].name
}

// Key returns the enum key form, e.g. "SUMMARY_REGION_2_REGION".
func (c Category) Key() string {
	if !c.valid() {
		return categoryTable[Invalid].key
	}
	return categoryTable[c].key
}

// UIText returns the short display text, e.g. "Region-Region".
func (c Category) UIText() string {
	if !c.valid() {
		return categoryTable[Invalid].ui
	}
	return categoryTable[c].ui
}

// IsLgr reports whether the category addresses a local grid refinement.
func (c Category) IsLgr() bool {
	return c == BlockLgr || c == WellLgr || c == WellCompletionLgr
}

// ParseCategory converts a category name to its Category. It accepts the
// canonical name, the enum key and the display text, ignoring case.
// Unknown names are a data error, never silently mapped to Invalid.
func ParseCategory(s string) (Category, error) {
	if c, ok := categoryByName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return Invalid, errors.Wrapf(ErrUnknownCategory, "%q", s)
}

// MustParseCategory is like ParseCategory but panics on unknown names.
// Use it only for names fixed at compile time.
func MustParseCategory(s string) Category {
	c, err := ParseCategory(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
