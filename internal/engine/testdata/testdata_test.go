package testdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/vecname/internal/model"
)

func TestLoadCorpus(t *testing.T) {
	entries, err := LoadCorpus()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	t.Logf("Total entries: %d", len(entries))

	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		assert.NotEmpty(t, e.Vector, "entry[%d] has empty vector", i)
		assert.NotEmpty(t, e.ExpectedRule, "entry[%d] has empty expected_rule", i)
		assert.False(t, seen[e.Vector], "duplicate vector %q", e.Vector)
		seen[e.Vector] = true

		_, err := model.ParseCategory(e.ExpectedCategory)
		assert.NoError(t, err, "entry[%d] category", i)
	}
}

func TestCorpusCoverage(t *testing.T) {
	entries, err := LoadCorpus()
	require.NoError(t, err)

	rules := map[string]bool{
		"exact": false, "rejected": false, "completion_address": false,
		"external": false, "base_name": false, "first_letter": false,
		"region_to_region": false, "region": false, "lgr_prefix": false,
		"unknown": false,
	}
	for _, e := range entries {
		if _, ok := rules[e.ExpectedRule]; !ok {
			t.Errorf("unexpected rule %q for %q", e.ExpectedRule, e.Vector)
			continue
		}
		rules[e.ExpectedRule] = true
	}
	for rule, covered := range rules {
		assert.True(t, covered, "rule %q has no corpus entry", rule)
	}
}
