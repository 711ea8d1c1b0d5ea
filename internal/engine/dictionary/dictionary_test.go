package dictionary

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/vecname/internal/model"
)

func TestEveryEntryHasValidCategory(t *testing.T) {
	for _, rows := range [][]entry{primaryEntries, legacyEntries} {
		for _, r := range rows {
			assert.NotEqual(t, model.Invalid, r.category, "entry %q", r.name)
			assert.NotEmpty(t, r.name)
		}
	}
}

func TestDuplicateInsertFirstWriteWins(t *testing.T) {
	d := fromEntries([]entry{
		{"XOPR", model.Field, "first"},
		{"XOPR", model.Well, "second"},
	})
	require.Equal(t, 1, d.Len())
	desc, ok := d.Lookup("XOPR")
	require.True(t, ok)
	assert.Equal(t, model.VectorDescriptor{Category: model.Field, LongName: "first"}, desc)
}

func TestPrimaryTableKeepsFirstDefinition(t *testing.T) {
	d := BuildPrimary()

	tests := []struct {
		name string
		want model.VectorDescriptor
	}{
		{"FSGR", model.VectorDescriptor{Category: model.Field, LongName: "Sales Gas Rate"}},
		{"FGSR", model.VectorDescriptor{Category: model.Field, LongName: "Sales Gas Rate"}},
		{"FGQ", model.VectorDescriptor{Category: model.Field, LongName: "Gas Quality"}},
		{"GPR", model.VectorDescriptor{Category: model.WellGroup, LongName: "Group nodal Pressure in network"}},
		{"BOKRX", model.VectorDescriptor{Category: model.Block, LongName: "Oil relative permeability in the X direction"}},
	}
	for _, tt := range tests {
		got, ok := d.Lookup(tt.name)
		require.True(t, ok, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestLegacyTextIsVerbatim(t *testing.T) {
	d := BuildLegacy()

	desc, ok := d.Lookup("BKRGAS")
	require.True(t, ok)
	assert.Equal(t, "Dynamic Pore Volume", desc.LongName)

	desc, ok = d.Lookup("NWPRH")
	require.True(t, ok)
	assert.Equal(t, model.Network, desc.Category)
	assert.Equal(t, " History", desc.LongName)
}

func TestMergePrimaryTakesPrecedence(t *testing.T) {
	primary := fromEntries([]entry{
		{"FOPR", model.Field, "Oil Production Rate"},
		{"WOPR", model.Well, "Oil Production Rate"},
	})
	legacy := fromEntries([]entry{
		{"FOPR", model.Misc, "garbled"},
		{"BXi", model.Block, "Mean Normal Stress Idealised Analytic Solution"},
	})

	merged := Merge(primary, legacy)
	assert.Equal(t, 3, merged.Len())

	desc, _ := merged.Lookup("FOPR")
	assert.Equal(t, model.VectorDescriptor{Category: model.Field, LongName: "Oil Production Rate"}, desc)

	desc, ok := merged.Lookup("BXi")
	require.True(t, ok)
	assert.Equal(t, model.Block, desc.Category)

	// inputs untouched
	assert.Equal(t, 2, primary.Len())
	assert.Equal(t, 2, legacy.Len())
}

func TestDefaultContainsBothGenerations(t *testing.T) {
	d := Default()
	primary := BuildPrimary()
	legacy := BuildLegacy()

	for _, name := range primary.Names() {
		want, _ := primary.Lookup(name)
		got, ok := d.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	for _, name := range legacy.Names() {
		_, ok := d.Lookup(name)
		assert.True(t, ok, name)
	}
	assert.GreaterOrEqual(t, d.Len(), primary.Len())
	assert.LessOrEqual(t, d.Len(), primary.Len()+legacy.Len())
}

func TestDefaultIsBuiltOnce(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*Dictionary, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Default()
		}(i)
	}
	wg.Wait()
	for _, d := range got {
		assert.Same(t, got[0], d)
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	d := Default()
	_, ok := d.Lookup("WOPR")
	assert.True(t, ok)
	_, ok = d.Lookup("wopr")
	assert.False(t, ok)
}

func TestNamesAndByCategorySorted(t *testing.T) {
	d := Default()

	names := d.Names()
	assert.Len(t, names, d.Len())
	assert.True(t, sort.StringsAreSorted(names))

	segs := d.ByCategory(model.WellSegment)
	require.NotEmpty(t, segs)
	assert.True(t, sort.StringsAreSorted(segs))
	assert.Contains(t, segs, "SRSFC")
	for _, name := range segs {
		desc, _ := d.Lookup(name)
		assert.Equal(t, model.WellSegment, desc.Category)
	}

	assert.Empty(t, d.ByCategory(model.Invalid))
}
