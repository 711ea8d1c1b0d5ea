package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/crimson-sun/vecname/internal/model"
)

func TestEncoderFormats(t *testing.T) {
	c := baseRecord()

	tests := []struct {
		format Format
		pretty bool
		check  func(t *testing.T, out string)
	}{
		{JSON, false, func(t *testing.T, out string) {
			var m map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &m))
			assert.Equal(t, "well_segment", m["category"])
			assert.NotContains(t, out[:len(out)-1], "\n")
		}},
		{JSON, true, func(t *testing.T, out string) {
			assert.Contains(t, out, "\n  \"vector\": \"SRSFCABC\"")
		}},
		{YAML, false, func(t *testing.T, out string) {
			var got model.Classification
			require.NoError(t, yaml.Unmarshal([]byte(out), &got))
			assert.Equal(t, model.WellSegment, got.Category)
		}},
		{Text, false, func(t *testing.T, out string) {
			assert.Equal(t, "SRSFCABC\twell_segment\tReach brine concentration\tbase_name\n", out)
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			enc := NewEncoder(&buf, tt.format, tt.pretty)
			require.NoError(t, enc.EncodeClassification(c, Standard))
			require.NoError(t, enc.Close())
			tt.check(t, buf.String())
		})
	}
}

func TestEncoderTextMarksEmptyColumns(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, Text, false)
	require.NoError(t, enc.Encode(nil, "XYZ", "invalid", "", "unknown"))
	assert.Equal(t, "XYZ\tinvalid\t-\tunknown\n", buf.String())
}

func TestEncoderCloseWithoutRecords(t *testing.T) {
	for _, f := range []Format{JSON, YAML, Text} {
		var buf bytes.Buffer
		require.NoError(t, NewEncoder(&buf, f, false).Close(), f)
		assert.Empty(t, buf.String(), f)
	}
}

func TestColumnsFollowVerbosity(t *testing.T) {
	c := baseRecord()
	assert.Equal(t, []string{"SRSFCABC", "well_segment"}, Columns(c, Minimal))
	assert.Equal(t, []string{"SRSFCABC", "well_segment", "Reach brine concentration", "base_name"}, Columns(c, Standard))
	assert.Len(t, Columns(c, Full), 5)
}
