package stdout

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/crimson-sun/vecname/internal/model"
	"github.com/crimson-sun/vecname/internal/output"
)

// Option configures a stdout Output.
type Option func(*Output)

// WithWriter redirects records to w instead of os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(o *Output) { o.w = w }
}

// Output writes classification records to stdout as NDJSON, a YAML
// document stream or tab-separated text.
type Output struct {
	mu        sync.Mutex
	w         io.Writer
	enc       *output.Encoder
	verbosity output.Verbosity
}

// New creates a new stdout Output with verbosity-aware field omission
// and optional pretty-printed JSON.
func New(format output.Format, verbosity output.Verbosity, pretty bool, opts ...Option) *Output {
	o := &Output{w: os.Stdout, verbosity: verbosity}
	for _, opt := range opts {
		opt(o)
	}
	o.enc = output.NewEncoder(o.w, format, pretty)
	return o
}

func (o *Output) Write(_ context.Context, c model.Classification) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return errors.Wrap(o.enc.EncodeClassification(c, o.verbosity), "stdout output")
}

func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return errors.Wrap(o.enc.Close(), "stdout output")
}
