package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/vecname/internal/model"
)

func baseRecord() model.Classification {
	return model.Classification{
		Vector:   "SRSFCABC",
		Category: model.WellSegment,
		LongName: "Reach brine concentration",
		Rule:     "base_name",
		BaseName: "SRSFC",
		Known:    true,
	}
}

func TestFormatClassification(t *testing.T) {
	tests := []struct {
		verbosity Verbosity
		want      model.Classification
	}{
		{Minimal, model.Classification{Vector: "SRSFCABC", Category: model.WellSegment, Known: true}},
		{Standard, model.Classification{Vector: "SRSFCABC", Category: model.WellSegment, LongName: "Reach brine concentration", Rule: "base_name", Known: true}},
		{Full, baseRecord()},
	}
	for _, tt := range tests {
		t.Run(tt.verbosity.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatClassification(baseRecord(), tt.verbosity))
		})
	}
}

func TestFormatClassificationJSONKeys(t *testing.T) {
	data, err := json.Marshal(FormatClassification(baseRecord(), Minimal))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, map[string]any{"vector": "SRSFCABC", "category": "well_segment", "known": true}, m)

	data, err = json.Marshal(FormatClassification(baseRecord(), Full))
	require.NoError(t, err)
	m = nil
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{"vector", "category", "long_name", "rule", "base_name", "known"} {
		assert.Contains(t, m, key)
	}
}

func TestParseVerbosity(t *testing.T) {
	for in, want := range map[string]Verbosity{"minimal": Minimal, "STANDARD": Standard, "": Standard, " full ": Full} {
		got, err := ParseVerbosity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseVerbosity("loud")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"json": JSON, "YAML": YAML, "text": Text, "": JSON} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}
