// Package file appends classification records to a local file in any of the
// record formats, rotating it by size.
package file

import (
	"bufio"
	"context"
	"os"
	"strconv"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/crimson-sun/vecname/internal/model"
	"github.com/crimson-sun/vecname/internal/output"
)

const (
	defaultBufSize = 64 * 1024
	maxRotated     = 10
)

// Option configures a file Output.
type Option func(*Output)

// WithMaxSize rotates the file before a write once it holds at least bytes.
// 0 (default) disables rotation.
func WithMaxSize(bytes int64) Option {
	return func(o *Output) { o.maxSize = bytes }
}

// WithBufSize sets the write buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(o *Output) { o.bufSize = bytes }
}

// Output appends records to path. Rotated files are kept as path.1 (newest)
// through path.10. Each file is a complete stream in its format, so a YAML
// file never starts with a document separator.
type Output struct {
	mu        sync.Mutex
	path      string
	format    output.Format
	verbosity output.Verbosity
	maxSize   int64
	bufSize   int

	f   *os.File
	buf *bufio.Writer
	enc *output.Encoder
	n   *counter
}

// counter tracks the file size as records are written through it.
type counter struct {
	w    *bufio.Writer
	size int64
}

func (c *counter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.size += int64(n)
	return n, err
}

// New opens path for appending, creating it if needed.
func New(path string, format output.Format, verbosity output.Verbosity, opts ...Option) (*Output, error) {
	o := &Output{
		path:      path,
		format:    format,
		verbosity: verbosity,
		bufSize:   defaultBufSize,
	}
	for _, opt := range opts {
		opt(o)
	}
	if err := o.open(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Output) Write(_ context.Context, c model.Classification) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.maxSize > 0 && o.n.size >= o.maxSize {
		if err := o.rotate(); err != nil {
			return errors.Wrapf(err, "file output: rotate %s", o.path)
		}
	}
	return errors.Wrap(o.enc.EncodeClassification(c, o.verbosity), "file output")
}

// Close ends the stream, flushes and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closeFile()
}

func (o *Output) open() error {
	f, err := os.OpenFile(o.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errors.Wrapf(err, "file output: open %s", o.path)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return errors.Wrapf(err, "file output: stat %s", o.path)
	}
	o.f = f
	o.buf = bufio.NewWriterSize(f, o.bufSize)
	o.n = &counter{w: o.buf, size: info.Size()}
	o.enc = output.NewEncoder(o.n, o.format, false)
	return nil
}

func (o *Output) closeFile() error {
	err := o.enc.Close()
	err = errors.CombineErrors(err, errors.Wrap(o.buf.Flush(), "file output: flush"))
	return errors.CombineErrors(err, o.f.Close())
}

// rotate shifts path.N to path.N+1, then moves the current file to path.1
// and starts a new one. Gaps in the numbering are skipped. If shifting fails
// the current file stays open and keeps receiving records.
func (o *Output) rotate() error {
	for i := maxRotated - 1; i >= 1; i-- {
		if err := renameIfExists(o.rotated(i), o.rotated(i+1)); err != nil {
			return err
		}
	}
	if err := o.closeFile(); err != nil {
		return err
	}
	if err := os.Rename(o.path, o.rotated(1)); err != nil {
		return errors.Wrap(err, "move current file")
	}
	return o.open()
}

func (o *Output) rotated(i int) string {
	return o.path + "." + strconv.Itoa(i)
}

func renameIfExists(from, to string) error {
	err := os.Rename(from, to)
	if err == nil || os.IsNotExist(err) {
		return nil
	}
	return errors.Wrapf(err, "shift %s", from)
}
