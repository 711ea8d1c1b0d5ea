package model

import (
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCategoryZeroValueIsInvalid(t *testing.T) {
	var c Category
	assert.Equal(t, Invalid, c)
	assert.False(t, VectorDescriptor{}.Valid())
}

func TestParseCategoryAcceptsAllForms(t *testing.T) {
	tests := []struct {
		input string
		want  Category
	}{
		{"field", Field},
		{"FIELD", Field},
		{"SUMMARY_FIELD", Field},
		{"well_group", WellGroup},
		{"Group", WellGroup},
		{"SUMMARY_REGION_2_REGION", RegionToRegion},
		{"region-region", RegionToRegion},
		{"  block_lgr ", BlockLgr},
		{"Lgr-Completion", WellCompletionLgr},
		{"invalid", Invalid},
	}

	for _, tt := range tests {
		got, err := ParseCategory(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseCategoryUnknownNameIsError(t *testing.T) {
	_, err := ParseCategory("SUMMARY_PLANET")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCategory))
	assert.Contains(t, err.Error(), "SUMMARY_PLANET")
}

func TestMustParseCategoryPanics(t *testing.T) {
	assert.Equal(t, Aquifer, MustParseCategory("aquifer"))
	assert.Panics(t, func() { MustParseCategory("nope") })
}

func TestCategoryNamesRoundTrip(t *testing.T) {
	for _, c := range append(AllCategories(), Invalid) {
		for _, name := range []string{c.String(), c.Key(), c.UIText()} {
			got, err := ParseCategory(name)
			require.NoError(t, err, name)
			assert.Equal(t, c, got, name)
		}
	}
}

func TestAllCategoriesExcludesInvalid(t *testing.T) {
	all := AllCategories()
	assert.Len(t, all, 16)
	assert.NotContains(t, all, Invalid)
	assert.Equal(t, Field, all[0])
	assert.Equal(t, EnsembleStatistics, all[len(all)-1])
}

func TestOutOfRangeCategoryRendersInvalid(t *testing.T) {
	c := Category(99)
	assert.Equal(t, "invalid", c.String())
	assert.Equal(t, "SUMMARY_INVALID", c.Key())
}

func TestIsLgr(t *testing.T) {
	assert.True(t, BlockLgr.IsLgr())
	assert.True(t, WellLgr.IsLgr())
	assert.True(t, WellCompletionLgr.IsLgr())
	assert.False(t, Block.IsLgr())
	assert.False(t, Invalid.IsLgr())
}

func TestClassificationSerialization(t *testing.T) {
	c := Classification{Vector: "ROFTG", Category: RegionToRegion, LongName: "Inter-region oil flow total", Known: true}

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"category":"region_to_region"`)

	var back Classification
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, c, back)

	y, err := yaml.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(y), "category: region_to_region")
}

func TestUnmarshalUnknownCategoryFails(t *testing.T) {
	var d VectorDescriptor
	err := json.Unmarshal([]byte(`{"category":"moon"}`), &d)
	require.Error(t, err)
}
