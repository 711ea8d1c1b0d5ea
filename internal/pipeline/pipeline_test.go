package pipeline

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/vecname/internal/engine"
	"github.com/crimson-sun/vecname/internal/model"
)

// --- mocks ---

// mockProcessor marks names starting with "W" as wells and everything else
// as unknown.
type mockProcessor struct{}

func (mockProcessor) Process(name string) model.Classification {
	if strings.HasPrefix(name, "W") {
		return model.Classification{Vector: name, Category: model.Well, Rule: "first_letter"}
	}
	return model.Classification{Vector: name, Rule: "unknown"}
}

type mockOutput struct {
	mu      sync.Mutex
	records []model.Classification
	err     error
	closed  bool
}

func (m *mockOutput) Write(_ context.Context, c model.Classification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, c)
	return nil
}

func (m *mockOutput) Close() error {
	m.closed = true
	return nil
}

func (m *mockOutput) Vectors() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var names []string
	for _, c := range m.records {
		names = append(names, c.Vector)
	}
	return names
}

// --- tests ---

func TestStreamClassifiesTokens(t *testing.T) {
	in := strings.NewReader("WOPR WWPR\n\n# comment line\n  XYZ  \nWBHP\n")
	out := &mockOutput{}
	p := New(mockProcessor{}, out)

	require.NoError(t, p.Stream(context.Background(), in))

	assert.Equal(t, []string{"WOPR", "WWPR", "XYZ", "WBHP"}, out.Vectors())
	assert.Equal(t, Stats{Processed: 4, Unknown: 1, Skipped: 2}, p.Stats())

	require.NoError(t, p.Close())
	assert.True(t, out.closed)
}

func TestStreamNormalisesInput(t *testing.T) {
	// fullwidth letters and an ideographic space fold to ASCII under NFKC
	in := strings.NewReader("ＷＯＰＲ　ＦＯＰＴ\n")
	out := &mockOutput{}
	p := New(mockProcessor{}, out)

	require.NoError(t, p.Stream(context.Background(), in))
	assert.Equal(t, []string{"WOPR", "FOPT"}, out.Vectors())
}

func TestStreamHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := &mockOutput{}
	p := New(mockProcessor{}, out)

	err := p.Stream(ctx, strings.NewReader("WOPR\nWWPR\n"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.Vectors())
}

func TestOutputErrorStopsPipeline(t *testing.T) {
	boom := errors.New("disk full")
	out := &mockOutput{err: boom}
	p := New(mockProcessor{}, out)

	err := p.Query(context.Background(), []string{"WOPR", "WWPR"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "pipeline output")
	assert.EqualValues(t, 1, p.Stats().Processed)
}

func TestQueryKeepsOrder(t *testing.T) {
	out := &mockOutput{}
	p := New(mockProcessor{}, out)

	require.NoError(t, p.Query(context.Background(), []string{"WOPR", "ROFT", "WOPR"}))
	assert.Equal(t, []string{"WOPR", "ROFT", "WOPR"}, out.Vectors())
	assert.Equal(t, Stats{Processed: 3, Unknown: 1}, p.Stats())
}

func TestWithUniqueDropsRepeats(t *testing.T) {
	out := &mockOutput{}
	p := New(mockProcessor{}, out, WithUnique())

	require.NoError(t, p.Stream(context.Background(), strings.NewReader("WOPR WOPR\nWWPR\nWOPR\n")))
	assert.Equal(t, []string{"WOPR", "WWPR"}, out.Vectors())
	assert.Equal(t, Stats{Processed: 2, Skipped: 2}, p.Stats())
}

func TestStreamWithEngine(t *testing.T) {
	out := &mockOutput{}
	p := New(engine.Default(), out)

	require.NoError(t, p.Stream(context.Background(), strings.NewReader("SRSFC SRSFC_DIFF\nROFTG RPR LBXYZ1\nnonsense_vector\n")))

	require.Len(t, out.records, 6)
	assert.Equal(t, model.WellSegment, out.records[0].Category)
	assert.Equal(t, "Reach brine concentration Difference", out.records[1].LongName)
	assert.Equal(t, model.RegionToRegion, out.records[2].Category)
	assert.Equal(t, model.Region, out.records[3].Category)
	assert.Equal(t, model.BlockLgr, out.records[4].Category)
	assert.Equal(t, model.Invalid, out.records[5].Category)
	assert.EqualValues(t, 1, p.Stats().Unknown)
}
