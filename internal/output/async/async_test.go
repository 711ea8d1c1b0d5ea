package async

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/vecname/internal/model"
)

type mockOutput struct {
	mu      sync.Mutex
	records []model.Classification
	closed  bool
	err     error         // if set, Write returns this
	delay   time.Duration // if >0, Write sleeps first
}

func (m *mockOutput) Write(_ context.Context, c model.Classification) error {
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	m.mu.Lock()
	m.records = append(m.records, c)
	m.mu.Unlock()
	return m.err
}

func (m *mockOutput) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}

func (m *mockOutput) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

func testRecord(vector string) model.Classification {
	return model.Classification{Vector: vector, Category: model.Well, Rule: "first_letter"}
}

func TestRecordsFlowThroughInOrder(t *testing.T) {
	inner := &mockOutput{}
	a := New(inner, WithBufferSize(16))

	names := []string{"WOPR", "WWPR", "WGPR", "WBHP"}
	for _, name := range names {
		require.NoError(t, a.Write(context.Background(), testRecord(name)))
	}
	require.NoError(t, a.Close())

	require.Equal(t, len(names), inner.count())
	for i, name := range names {
		assert.Equal(t, name, inner.records[i].Vector)
	}
	assert.True(t, inner.closed)
}

func TestBackpressureBlocks(t *testing.T) {
	// Inner output is slow; buffer size is 1.
	inner := &mockOutput{delay: 50 * time.Millisecond}
	a := New(inner, WithBufferSize(1))

	require.NoError(t, a.Write(context.Background(), testRecord("FIRST")))

	done := make(chan struct{})
	go func() {
		a.Write(context.Background(), testRecord("SECOND"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Write blocked indefinitely (expected eventual unblock via drain)")
	}

	require.NoError(t, a.Close())
}

func TestWriteHonoursContext(t *testing.T) {
	inner := &mockOutput{delay: 200 * time.Millisecond}
	a := New(inner, WithBufferSize(1))
	defer a.Close()

	// fill the drain goroutine and the buffer
	require.NoError(t, a.Write(context.Background(), testRecord("A")))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, a.Write(context.Background(), testRecord("B")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := a.Write(ctx, testRecord("C"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDropOnFull(t *testing.T) {
	inner := &mockOutput{delay: 100 * time.Millisecond}
	a := New(inner, WithBufferSize(1), WithDropOnFull())

	for i := 0; i < 20; i++ {
		assert.NoError(t, a.Write(context.Background(), testRecord("BURST")))
	}
	require.NoError(t, a.Close())

	assert.Less(t, inner.count(), 20, "expected some records to be dropped in drop-on-full mode")
	assert.Positive(t, inner.count(), "expected at least some records to be delivered")
}

func TestCloseDrainsRemaining(t *testing.T) {
	inner := &mockOutput{}
	a := New(inner, WithBufferSize(100))

	for i := 0; i < 50; i++ {
		require.NoError(t, a.Write(context.Background(), testRecord("DRAIN")))
	}
	require.NoError(t, a.Close())

	assert.Equal(t, 50, inner.count())
}

func TestErrorCallbackInvoked(t *testing.T) {
	inner := &mockOutput{err: errors.New("write failed")}
	var errorCount atomic.Int64
	a := New(inner, WithBufferSize(16), WithOnError(func(error) {
		errorCount.Add(1)
	}))

	for i := 0; i < 5; i++ {
		require.NoError(t, a.Write(context.Background(), testRecord("FAILING")))
	}
	require.NoError(t, a.Close())

	assert.EqualValues(t, 5, errorCount.Load())
}

func TestNoGoroutineLeakAfterClose(t *testing.T) {
	a := New(&mockOutput{}, WithBufferSize(16))

	require.NoError(t, a.Write(context.Background(), testRecord("LEAK")))
	require.NoError(t, a.Close())

	select {
	case <-a.done:
	case <-time.After(time.Second):
		t.Fatal("drain goroutine did not exit after Close")
	}
}

func TestCloseIdempotent(t *testing.T) {
	a := New(&mockOutput{}, WithBufferSize(16))
	require.NoError(t, a.Write(context.Background(), testRecord("ONCE")))

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
}
