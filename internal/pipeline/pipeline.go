package pipeline

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/crimson-sun/vecname/internal/model"
	"github.com/crimson-sun/vecname/internal/output"
)

// maxLineSize bounds a single input line. Summary headers can be long.
const maxLineSize = 1024 * 1024

// Processor classifies a single vector name.
type Processor interface {
	Process(vectorName string) model.Classification
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithUnique emits each distinct vector name once, on first sight.
func WithUnique() Option {
	return func(p *Pipeline) { p.seen = make(map[string]struct{}) }
}

// Stats counts what a pipeline run did.
type Stats struct {
	Processed int64 `json:"processed"`
	Unknown   int64 `json:"unknown"`
	Skipped   int64 `json:"skipped"`
}

// Pipeline connects an input, a processor, and an output.
type Pipeline struct {
	proc Processor
	out  output.Output
	seen map[string]struct{} // nil unless WithUnique

	processed atomic.Int64
	unknown   atomic.Int64
	skipped   atomic.Int64
}

// New creates a Pipeline from the given components.
func New(proc Processor, out output.Output, opts ...Option) *Pipeline {
	p := &Pipeline{proc: proc, out: out}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stream reads r line by line and classifies every whitespace-separated
// token. Lines are NFKC-normalised; blank lines and lines starting with '#'
// are skipped. Blocks until r is exhausted or ctx is cancelled.
func (p *Pipeline) Stream(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		line := strings.TrimSpace(norm.NFKC.String(sc.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			p.skipped.Add(1)
			continue
		}
		for _, name := range strings.Fields(line) {
			if err := p.handle(ctx, name); err != nil {
				return err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "pipeline stream: read input")
	}
	return nil
}

// Query classifies a fixed list of names in order.
func (p *Pipeline) Query(ctx context.Context, names []string) error {
	for _, name := range names {
		if err := p.handle(ctx, norm.NFKC.String(name)); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) handle(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.seen != nil {
		if _, dup := p.seen[name]; dup {
			p.skipped.Add(1)
			return nil
		}
		p.seen[name] = struct{}{}
	}

	c := p.proc.Process(name)
	p.processed.Add(1)
	if c.Category == model.Invalid {
		p.unknown.Add(1)
		zap.S().Debugw("vector not recognised", "vector", name, "rule", c.Rule)
	}
	if err := p.out.Write(ctx, c); err != nil {
		return errors.Wrap(err, "pipeline output")
	}
	return nil
}

// Stats returns the counters accumulated so far.
func (p *Pipeline) Stats() Stats {
	return Stats{
		Processed: p.processed.Load(),
		Unknown:   p.unknown.Load(),
		Skipped:   p.skipped.Load(),
	}
}

// Close shuts down the output and logs the run totals.
func (p *Pipeline) Close() error {
	s := p.Stats()
	zap.S().Infow("pipeline finished",
		"processed", s.Processed,
		"unknown", s.Unknown,
		"skipped", s.Skipped)
	return p.out.Close()
}
