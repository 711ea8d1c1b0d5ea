package dictionary

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/crimson-sun/vecname/internal/model"
)

// entry is one literal row of a keyword table.
type entry struct {
	name     string
	category model.Category
	longName string
}

// Dictionary maps exact, case-sensitive mnemonics to their descriptors.
// A Dictionary is read-only once built and safe for concurrent use.
type Dictionary struct {
	entries map[string]model.VectorDescriptor
}

func newDictionary(capacity int) *Dictionary {
	return &Dictionary{entries: make(map[string]model.VectorDescriptor, capacity)}
}

// insert adds name unless it is already present. Returns false on a duplicate,
// leaving the first value in place.
func (d *Dictionary) insert(name string, desc model.VectorDescriptor) bool {
	if _, exists := d.entries[name]; exists {
		return false
	}
	d.entries[name] = desc
	return true
}

func fromEntries(rows []entry) *Dictionary {
	d := newDictionary(len(rows))
	for _, r := range rows {
		d.insert(r.name, model.VectorDescriptor{Category: r.category, LongName: r.longName})
	}
	return d
}

// BuildPrimary returns the current-generation keyword table.
func BuildPrimary() *Dictionary {
	return fromEntries(primaryEntries)
}

// BuildLegacy returns the 6x keyword table.
func BuildLegacy() *Dictionary {
	return fromEntries(legacyEntries)
}

// Merge returns a new Dictionary with every primary entry plus every legacy
// entry whose name is missing from primary. Neither input is modified.
func Merge(primary, legacy *Dictionary) *Dictionary {
	d := newDictionary(primary.Len() + legacy.Len())
	for name, desc := range primary.entries {
		d.insert(name, desc)
	}
	added := 0
	for name, desc := range legacy.entries {
		if d.insert(name, desc) {
			added++
		}
	}
	zap.S().Debugw("merged summary vector tables",
		"primary", primary.Len(),
		"legacy", legacy.Len(),
		"legacy_added", added)
	return d
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Default returns the process-wide merged dictionary, built on first use.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		defaultDict = Merge(BuildPrimary(), BuildLegacy())
	})
	return defaultDict
}

// Lookup returns the descriptor stored for name.
func (d *Dictionary) Lookup(name string) (model.VectorDescriptor, bool) {
	desc, ok := d.entries[name]
	return desc, ok
}

// Len returns the number of distinct mnemonics.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Names returns every mnemonic in sorted order.
func (d *Dictionary) Names() []string {
	names := make([]string, 0, len(d.entries))
	for name := range d.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByCategory returns the sorted mnemonics stored under category c.
func (d *Dictionary) ByCategory(c model.Category) []string {
	var names []string
	for name, desc := range d.entries {
		if desc.Category == c {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
