package file

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/crimson-sun/vecname/internal/model"
	"github.com/crimson-sun/vecname/internal/output"
)

func testRecord(vector string, cat model.Category) model.Classification {
	return model.Classification{
		Vector:   vector,
		Category: cat,
		LongName: "Oil Production Rate",
		Rule:     "exact",
		Known:    true,
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func writeAll(t *testing.T, out *Output, records ...model.Classification) {
	t.Helper()
	for _, c := range records {
		require.NoError(t, out.Write(context.Background(), c))
	}
}

func TestWriteProducesValidNDJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")
	out, err := New(path, output.JSON, output.Standard)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		writeAll(t, out, testRecord("WOPR", model.Well))
	}
	require.NoError(t, out.Close())

	lines := readLines(t, path)
	require.Len(t, lines, 5)
	for i, line := range lines {
		var c model.Classification
		require.NoError(t, json.Unmarshal([]byte(line), &c), "line %d", i)
		assert.Equal(t, model.Well, c.Category)
		assert.Equal(t, "WOPR", c.Vector)
	}
}

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	out, err := New(path, output.Text, output.Full)
	require.NoError(t, err)

	writeAll(t, out,
		testRecord("WOPR", model.Well),
		model.Classification{Vector: "SRSFCABC", Category: model.WellSegment, Rule: "base_name", BaseName: "SRSFC"})
	require.NoError(t, out.Close())

	assert.Equal(t, []string{
		"WOPR\twell\tOil Production Rate\texact\t-",
		"SRSFCABC\twell_segment\t-\tbase_name\tSRSFC",
	}, readLines(t, path))
}

func decodeYAML(t *testing.T, path string) []model.Classification {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var out []model.Classification
	dec := yaml.NewDecoder(f)
	for {
		var c model.Classification
		err := dec.Decode(&c)
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, c)
	}
}

func TestWriteYAMLStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	out, err := New(path, output.YAML, output.Standard)
	require.NoError(t, err)

	writeAll(t, out, testRecord("WOPR", model.Well), testRecord("FOPR", model.Field))
	require.NoError(t, out.Close())

	got := decodeYAML(t, path)
	require.Len(t, got, 2)
	assert.Equal(t, "FOPR", got[1].Vector)
	assert.Equal(t, model.Field, got[1].Category)
}

func TestRotatedYAMLFilesAreCompleteStreams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	out, err := New(path, output.YAML, output.Minimal, WithMaxSize(10))
	require.NoError(t, err)

	writeAll(t, out, testRecord("WOPR", model.Well), testRecord("FOPR", model.Field), testRecord("GOPR", model.WellGroup))
	require.NoError(t, out.Close())

	for _, p := range []string{path + ".2", path + ".1", path} {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.False(t, strings.HasPrefix(string(data), "---"), p)
		assert.Len(t, decodeYAML(t, p), 1, p)
	}
	assert.Equal(t, "GOPR", decodeYAML(t, path)[0].Vector)
	assert.Equal(t, "WOPR", decodeYAML(t, path+".2")[0].Vector)
}

func TestRotationTriggersAtMaxSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ndjson")

	// each line is roughly 100 bytes, so the file rotates every second write
	out, err := New(path, output.JSON, output.Standard, WithMaxSize(150))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		writeAll(t, out, testRecord("FOPR", model.Field))
	}
	require.NoError(t, out.Close())

	assert.Len(t, readLines(t, path+".2"), 2)
	assert.Len(t, readLines(t, path+".1"), 2)
	assert.Len(t, readLines(t, path), 1)
	_, err = os.Stat(path + ".3")
	assert.True(t, os.IsNotExist(err))
}

func TestRotationKeepsOldestCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")
	out, err := New(path, output.JSON, output.Minimal, WithMaxSize(1))
	require.NoError(t, err)

	for i := 0; i < maxRotated+3; i++ {
		writeAll(t, out, testRecord("WOPR", model.Well))
	}
	require.NoError(t, out.Close())

	_, err = os.Stat(path + ".10")
	assert.NoError(t, err)
	_, err = os.Stat(path + ".11")
	assert.True(t, os.IsNotExist(err))
}

func TestRotationReportsShiftFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ndjson")

	// path.9 cannot be shifted onto a directory
	require.NoError(t, os.WriteFile(path+".9", []byte("{}\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(path+".10", "keep"), 0o755))

	out, err := New(path, output.JSON, output.Minimal, WithMaxSize(1))
	require.NoError(t, err)

	writeAll(t, out, testRecord("WOPR", model.Well))
	err = out.Write(context.Background(), testRecord("FOPR", model.Field))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file output: rotate")

	// the current file is still usable
	require.NoError(t, out.Close())
	assert.Len(t, readLines(t, path), 1)
	_, err = os.Stat(path + ".1")
	assert.True(t, os.IsNotExist(err))
}

func TestAppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")
	for i := 0; i < 2; i++ {
		out, err := New(path, output.JSON, output.Minimal)
		require.NoError(t, err)
		writeAll(t, out, testRecord("WOPR", model.Well))
		require.NoError(t, out.Close())
	}
	assert.Len(t, readLines(t, path), 2)
}

func TestExistingFileOverMaxSizeRotatesOnFirstWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 64)+"\n"), 0o644))

	out, err := New(path, output.JSON, output.Minimal, WithMaxSize(32))
	require.NoError(t, err)
	writeAll(t, out, testRecord("WOPR", model.Well))
	require.NoError(t, out.Close())

	assert.Equal(t, []string{strings.Repeat("x", 64)}, readLines(t, path+".1"))
	assert.Contains(t, readLines(t, path)[0], `"vector":"WOPR"`)
}

func TestCloseFlushesData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")
	out, err := New(path, output.JSON, output.Standard)
	require.NoError(t, err)

	writeAll(t, out, testRecord("GOPR", model.WellGroup))

	data, _ := os.ReadFile(path)
	assert.Empty(t, data, "write should be buffered until Close")

	require.NoError(t, out.Close())
	data, _ = os.ReadFile(path)
	assert.NotEmpty(t, data, "Close did not flush buffered data")
}

func TestVerbosityMinimalStripsFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")
	out, err := New(path, output.JSON, output.Minimal)
	require.NoError(t, err)

	writeAll(t, out, testRecord("WOPR", model.Well))
	require.NoError(t, out.Close())

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(readLines(t, path)[0]), &m))
	assert.NotContains(t, m, "long_name")
	assert.NotContains(t, m, "rule")
}

func TestOpenFailure(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "out.ndjson"), output.JSON, output.Standard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file output: open")
}

func TestConcurrentWritesSafe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")
	out, err := New(path, output.JSON, output.Standard)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, out.Write(context.Background(), testRecord("WOPR", model.Well)))
		}()
	}
	wg.Wait()
	require.NoError(t, out.Close())

	assert.Len(t, readLines(t, path), 50)
}
