package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/vecname/internal/engine/dictionary"
	"github.com/crimson-sun/vecname/internal/engine/keyword"
	"github.com/crimson-sun/vecname/internal/model"
)

type fakeDict map[string]model.VectorDescriptor

func (f fakeDict) Lookup(name string) (model.VectorDescriptor, bool) {
	d, ok := f[name]
	return d, ok
}

func newDefault() *Classifier {
	return New(dictionary.Default(), keyword.OPM)
}

func TestIdentifyExactMatchesStoredCategory(t *testing.T) {
	dict := dictionary.Default()
	c := New(dict, keyword.OPM)

	for _, name := range dict.Names() {
		desc, _ := dict.Lookup(name)
		res := c.Identify(name)
		require.Equal(t, desc.Category, res.Category, name)
		require.Equal(t, RuleExact, res.Rule, name)
	}
}

func TestIdentify(t *testing.T) {
	c := newDefault()

	tests := []struct {
		name     string
		want     model.Category
		wantRule string
	}{
		{"SRSFC", model.WellSegment, RuleExact},
		{"ROFTG", model.RegionToRegion, RuleExact},
		{"RPR", model.Region, RuleExact},
		{"SRSFCABC", model.WellSegment, RuleBaseName},
		{"SRSFC_DIFF", model.WellSegment, RuleBaseName},
		{"BHD__ABC", model.Block, RuleBaseName},
		{"ROFT_ABC", model.RegionToRegion, RuleBaseName},
		{"W:A:B", model.WellCompletion, RuleCompletionAddress},
		{"WOPRXXX", model.Well, RuleFirstLetter},
		{"AXYZ", model.Aquifer, RuleFirstLetter},
		{"BXYZ", model.Block, RuleFirstLetter},
		{"FXYZ", model.Field, RuleFirstLetter},
		{"NXYZ", model.Network, RuleFirstLetter},
		{"SXYZ", model.WellSegment, RuleFirstLetter},
		{"RGFTABC", model.RegionToRegion, RuleRegionToRegion},
		{"REFT", model.RegionToRegion, RuleRegionToRegion},
		{"RKFR+", model.RegionToRegion, RuleRegionToRegion},
		{"RNLFR-", model.RegionToRegion, RuleRegionToRegion},
		{"RXYZ", model.Region, RuleRegion},
		{"RPRX", model.Region, RuleRegion},
		{"LBXYZ1", model.BlockLgr, RuleLgrPrefix},
		{"LCXYZ1", model.WellCompletionLgr, RuleLgrPrefix},
		{"LWXYZ1", model.WellLgr, RuleLgrPrefix},
		{"XYZ", model.Invalid, RuleUnknown},
		{"_ABC", model.Invalid, RuleUnknown},
		{"does not exist", model.Invalid, RuleRejected},
		{"AB", model.Invalid, RuleRejected},
		{"", model.Invalid, RuleRejected},
		{"ABCDEFGHI", model.Invalid, RuleRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Identify(tt.name)
			assert.Equal(t, tt.want, res.Category)
			assert.Equal(t, tt.wantRule, res.Rule)
			assert.Equal(t, tt.want, c.IdentifyCategory(tt.name))
		})
	}
}

func TestLengthGuardRunsAfterExactMatch(t *testing.T) {
	dict := fakeDict{
		"AB":          {Category: model.Misc},
		"LONGNAME123": {Category: model.Field},
	}
	c := New(dict, nil)

	assert.Equal(t, model.Misc, c.IdentifyCategory("AB"))
	assert.Equal(t, model.Field, c.IdentifyCategory("LONGNAME123"))
	assert.Equal(t, RuleRejected, c.Identify("LONGNAME124").Rule)
}

func TestRejectedNamesSkipHeuristics(t *testing.T) {
	calls := 0
	c := New(fakeDict{}, keyword.ResolverFunc(func(string) model.Category {
		calls++
		return model.Field
	}))

	for _, name := range []string{"W", "WO", "WOPRWOPRW", "ROFTGROFTG"} {
		assert.Equal(t, model.Invalid, c.IdentifyCategory(name), name)
	}
	assert.Zero(t, calls)
}

func TestDiffSuffixBypassesLengthGuard(t *testing.T) {
	c := New(fakeDict{"FOPT": {Category: model.Field}}, nil)

	res := c.Identify("FOPT_DIFF")
	assert.Equal(t, model.Field, res.Category)
	assert.Equal(t, RuleBaseName, res.Rule)
	assert.Equal(t, "FOPT", res.BaseName)

	res = c.Identify("QQQQQQQQ_DIFF")
	assert.Equal(t, model.Invalid, res.Category)
	assert.Equal(t, RuleUnknown, res.Rule)
}

func TestExternalResolverOrdering(t *testing.T) {
	var seen []string
	resolver := keyword.ResolverFunc(func(name string) model.Category {
		seen = append(seen, name)
		if name == "SRSFCABC" {
			return model.Misc
		}
		return model.Invalid
	})
	c := New(dictionary.Default(), resolver)

	// exact matches and completion addresses never reach the resolver
	assert.Equal(t, model.WellSegment, c.IdentifyCategory("SRSFC"))
	assert.Equal(t, model.WellCompletion, c.IdentifyCategory("W:1:2"))
	assert.Empty(t, seen)

	// the resolver wins over base-name stripping
	res := c.Identify("SRSFCABC")
	assert.Equal(t, model.Misc, res.Category)
	assert.Equal(t, RuleExternal, res.Rule)

	// an Invalid answer falls through to the heuristics
	assert.Equal(t, model.BlockLgr, c.IdentifyCategory("LBXYZ1"))
	assert.Equal(t, []string{"SRSFCABC", "LBXYZ1"}, seen)
}

func TestIdentifyIsIdempotent(t *testing.T) {
	c := newDefault()
	for _, name := range []string{"SRSFCABC", "ROFTG", "LWXYZ1", "does not exist", "RXYZ"} {
		first := c.Identify(name)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, c.Identify(name))
		}
	}
}

func TestBaseVectorName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"WOPR", "WOPR"},
		{"SRSFCABC", "SRSFC"},
		{"BHD__ABC", "BHD"},
		{"FOPT_DIFF", "FOPT"},
		{"WOPR_1", "WOPR"},
		{"_ABC", "_ABC"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BaseVectorName(tt.in), tt.in)
	}
}

func TestIsRegionToRegion(t *testing.T) {
	matches := []string{"ROFT", "ROFTG", "RGFR+", "RWFT", "RWFT_", "ROFTABC", "ROFT+A_1", "REFT", "RKFR-", "RNLFT", "RNLFR_XYZ"}
	for _, name := range matches {
		assert.True(t, IsRegionToRegion(name), name)
	}

	misses := []string{"RPR", "ROFTX", "XROFT", "ROFTGG", "rofT", "REFTG", "RNLFTL", "ROFT+ABCD"}
	for _, name := range misses {
		assert.False(t, IsRegionToRegion(name), name)
	}
}
