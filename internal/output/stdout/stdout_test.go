package stdout

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/crimson-sun/vecname/internal/model"
	"github.com/crimson-sun/vecname/internal/output"
)

func testRecord() model.Classification {
	return model.Classification{
		Vector:   "ROFT_ABC",
		Category: model.RegionToRegion,
		LongName: "Inter-region oil flow total",
		Rule:     "base_name",
		BaseName: "ROFT",
		Known:    true,
	}
}

// captureStdout redirects os.Stdout to capture output.
func captureStdout(fn func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestOutputCompactJSON(t *testing.T) {
	result := captureStdout(func() {
		out := New(output.JSON, output.Standard, false)
		require.NoError(t, out.Write(context.Background(), testRecord()))
		require.NoError(t, out.Close())
	})

	// Should be single line (NDJSON).
	lines := strings.Split(strings.TrimSpace(result), "\n")
	require.Len(t, lines, 1)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &m))
	assert.Equal(t, "ROFT_ABC", m["vector"])
	assert.Equal(t, "region_to_region", m["category"])
	assert.NotContains(t, m, "base_name")
}

func TestOutputPrettyJSON(t *testing.T) {
	var buf bytes.Buffer
	out := New(output.JSON, output.Full, true, WithWriter(&buf))
	require.NoError(t, out.Write(context.Background(), testRecord()))

	assert.Contains(t, buf.String(), "  \"base_name\": \"ROFT\"")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Greater(t, len(lines), 3)
}

func TestOutputMinimalOmitsFields(t *testing.T) {
	var buf bytes.Buffer
	out := New(output.JSON, output.Minimal, false, WithWriter(&buf))
	require.NoError(t, out.Write(context.Background(), testRecord()))

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.NotContains(t, m, "long_name")
	assert.NotContains(t, m, "rule")
	assert.Equal(t, true, m["known"])
}

func TestOutputYAMLStream(t *testing.T) {
	var buf bytes.Buffer
	out := New(output.YAML, output.Standard, false, WithWriter(&buf))
	require.NoError(t, out.Write(context.Background(), testRecord()))
	second := testRecord()
	second.Vector = "ROFTG"
	require.NoError(t, out.Write(context.Background(), second))
	require.NoError(t, out.Close())

	dec := yaml.NewDecoder(&buf)
	var got []model.Classification
	for {
		var c model.Classification
		if err := dec.Decode(&c); err != nil {
			break
		}
		got = append(got, c)
	}
	require.Len(t, got, 2)
	assert.Equal(t, "ROFT_ABC", got[0].Vector)
	assert.Equal(t, "ROFTG", got[1].Vector)
	assert.Equal(t, model.RegionToRegion, got[1].Category)
	assert.Empty(t, got[0].BaseName)
}

func TestOutputText(t *testing.T) {
	tests := []struct {
		verbosity output.Verbosity
		want      string
	}{
		{output.Minimal, "ROFT_ABC\tregion_to_region\n"},
		{output.Standard, "ROFT_ABC\tregion_to_region\tInter-region oil flow total\tbase_name\n"},
		{output.Full, "ROFT_ABC\tregion_to_region\tInter-region oil flow total\tbase_name\tROFT\n"},
	}
	for _, tt := range tests {
		t.Run(tt.verbosity.String(), func(t *testing.T) {
			var buf bytes.Buffer
			out := New(output.Text, tt.verbosity, false, WithWriter(&buf))
			require.NoError(t, out.Write(context.Background(), testRecord()))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestOutputTextUnknown(t *testing.T) {
	var buf bytes.Buffer
	out := New(output.Text, output.Standard, false, WithWriter(&buf))
	require.NoError(t, out.Write(context.Background(), model.Classification{Vector: "XYZ", Rule: "unknown"}))
	assert.Equal(t, "XYZ\tinvalid\t-\tunknown\n", buf.String())
}
