package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/vecname/internal/address"
	"github.com/crimson-sun/vecname/internal/config"
	"github.com/crimson-sun/vecname/internal/model"
)

// isolate keeps config files and VECNAME_* variables from the host out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("VECNAME_LOG_LEVEL", "error")
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestClassifyArgsAsText(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "classify", "--format", "text", "WOPR", "RXYZ", "XYZ")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"WOPR\twell\tOil Production Rate\texact",
		"RXYZ\tregion\t-\tregion",
		"XYZ\tinvalid\t-\tunknown",
	}, lines(out))
}

func TestClassifyStdinUnique(t *testing.T) {
	isolate(t)

	out, err := execute(t, "WOPR WOPR\n# header\n\nRPR\n", "classify", "--unique")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 2)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(got[1]), &rec))
	assert.Equal(t, "RPR", rec["vector"])
	assert.Equal(t, "region", rec["category"])
	assert.Equal(t, "Pressure average value", rec["long_name"])
	assert.NotContains(t, rec, "base_name")
}

func TestClassifyInputFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "names.txt")
	require.NoError(t, os.WriteFile(path, []byte("FOPT\nSRSFCABC\n"), 0o644))

	out, err := execute(t, "", "classify", "--input", path, "--format", "text", "--verbosity", "full")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"FOPT\tfield\tOil Production Total\texact\t-",
		"SRSFCABC\twell_segment\tReach brine concentration\tbase_name\tSRSFC",
	}, lines(out))

	_, err = execute(t, "", "classify", "--input", filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
}

func TestClassifyToFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "records.ndjson")

	out, err := execute(t, "", "classify", "--output", path, "WOPR", "GOPR")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, lines(string(data)), 2)

	out, err = execute(t, "", "classify", "--output", path, "--tee", "FOPT")
	require.NoError(t, err)
	assert.Contains(t, out, `"vector":"FOPT"`)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, lines(string(data)), 3)
}

func TestClassifyToFileUsesFormat(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "records.txt")

	out, err := execute(t, "", "classify", "-f", "text", "-o", path, "--tee", "WOPR", "XYZ")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out, string(data))
	assert.Equal(t, []string{
		"WOPR\twell\tOil Production Rate\texact",
		"XYZ\tinvalid\t-\tunknown",
	}, lines(string(data)))
}

func TestUnknownFormatIsReported(t *testing.T) {
	a := &app{cfg: config.Config{Output: config.OutputConfig{Format: "xml", Verbosity: "standard"}}}

	_, err := a.format()
	require.Error(t, err)
	_, err = a.encoder(io.Discard)
	require.Error(t, err)
	_, err = a.buildOutput(io.Discard, false, 0)
	require.Error(t, err)
}

func TestClassifyKeywordResolverFlag(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "classify", "-f", "text", "-v", "minimal", "MAXDSG")
	require.NoError(t, err)
	assert.Equal(t, "MAXDSG\tmisc\n", out)

	out, err = execute(t, "", "classify", "-f", "text", "-v", "minimal", "--keyword-resolver", "none", "MAXDSG")
	require.NoError(t, err)
	assert.Equal(t, "MAXDSG\tinvalid\n", out)
}

func TestConfigFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("VECNAME_OUTPUT_FORMAT", "yaml")

	out, err := execute(t, "", "classify", "WOPR")
	require.NoError(t, err)
	assert.Contains(t, out, "vector: WOPR")
	assert.Contains(t, out, "category: well")

	// flags beat the environment
	out, err = execute(t, "", "classify", "--format", "text", "WOPR")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "WOPR\twell\t"), out)
}

func TestInvalidConfigFails(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "classify", "--format", "xml", "WOPR")
	require.Error(t, err)

	_, err = execute(t, "", "classify", "--verbosity", "loud", "WOPR")
	require.Error(t, err)
}

func TestDescribe(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "describe", "FOPT_DIFF")
	require.NoError(t, err)
	assert.Equal(t, "Oil Production Total Difference\n", out)

	_, err = execute(t, "", "describe", "--exact", "FOPT_DIFF")
	require.Error(t, err)

	_, err = execute(t, "", "describe", "does_not_exist")
	require.Error(t, err)

	out, err = execute(t, "", "describe", "--fallback", "does_not_exist")
	require.NoError(t, err)
	assert.Equal(t, "does_not_exist\n", out)

	_, err = execute(t, "", "describe")
	require.Error(t, err)
}

func TestAddress(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "address", "-f", "text", "COFR:OP_1:10, 12, 3", "ERR:WOPTH:OP_1")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"COFR:OP_1:10,12,3\twell_completion\tfalse\tfalse",
		"ERR:WOPTH:OP_1\twell\ttrue\ttrue",
	}, lines(out))

	out, err = execute(t, "", "address", "ROFT:1-2")
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "region_to_region", rec["category"])
	assert.EqualValues(t, 1, rec["region"])
	assert.EqualValues(t, 2, rec["region2"])
	assert.Equal(t, "ROFT:1-2", rec["text"])
}

func TestAddressMalformed(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "address", "-f", "text", "WOPR", "FOPT")
	require.Error(t, err)
	assert.True(t, errors.Is(err, address.ErrInvalidAddress))
	assert.Equal(t, "FOPT\tfield\tfalse\tfalse\n", out)
}

func TestList(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "list", "--category", "Region-Region", "-f", "text")
	require.NoError(t, err)
	got := lines(out)
	require.NotEmpty(t, got)
	for _, line := range got {
		assert.Contains(t, line, "\tregion_to_region\t")
	}
	assert.Contains(t, got, "ROFTG\tregion_to_region\tInter-region oil flow total")

	_, err = execute(t, "", "list", "--category", "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrUnknownCategory))
}

func TestListWithoutLegacyTable(t *testing.T) {
	isolate(t)

	all, err := execute(t, "", "list", "-f", "text")
	require.NoError(t, err)
	primary, err := execute(t, "", "list", "-f", "text", "--legacy-table=false")
	require.NoError(t, err)
	assert.Greater(t, len(lines(all)), len(lines(primary)))
}

func TestCategories(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "categories")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, len(model.AllCategories()))

	var rec categoryEntry
	require.NoError(t, json.Unmarshal([]byte(got[0]), &rec))
	assert.Equal(t, categoryEntry{Name: "field", Key: "SUMMARY_FIELD", UIText: "Field", Vectors: rec.Vectors}, rec)
	assert.Positive(t, rec.Vectors)
}
