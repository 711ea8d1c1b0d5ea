package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/crimson-sun/vecname/internal/model"
)

// Encoder writes values to w in one of the record formats. Text rows are
// tab separated and print empty columns as "-". Not safe for concurrent use.
type Encoder struct {
	w       io.Writer
	jsonEnc *json.Encoder
	yamlEnc *yaml.Encoder
	started bool // a YAML stream is only ended once a document began it
}

// NewEncoder creates an Encoder for format. pretty indents JSON.
func NewEncoder(w io.Writer, format Format, pretty bool) *Encoder {
	e := &Encoder{w: w}
	switch format {
	case YAML:
		e.yamlEnc = yaml.NewEncoder(w)
		e.yamlEnc.SetIndent(2)
	case Text:
	default:
		e.jsonEnc = json.NewEncoder(w)
		if pretty {
			e.jsonEnc.SetIndent("", "  ")
		}
	}
	return e
}

// Encode writes v, or cols as one text row when the format is Text.
func (e *Encoder) Encode(v any, cols ...string) error {
	var err error
	switch {
	case e.yamlEnc != nil:
		e.started = true
		err = e.yamlEnc.Encode(v)
	case e.jsonEnc != nil:
		err = e.jsonEnc.Encode(v)
	default:
		row := make([]string, len(cols))
		for i, col := range cols {
			if col == "" {
				col = "-"
			}
			row[i] = col
		}
		_, err = fmt.Fprintln(e.w, strings.Join(row, "\t"))
	}
	return errors.Wrap(err, "encode")
}

// Close terminates a YAML stream. It does not close w.
func (e *Encoder) Close() error {
	if e.yamlEnc != nil && e.started {
		return errors.Wrap(e.yamlEnc.Close(), "encode: close yaml stream")
	}
	return nil
}

// Columns returns the text columns of c at verbosity: vector and category,
// then long name and rule, then base name.
func Columns(c model.Classification, verbosity Verbosity) []string {
	cols := []string{c.Vector, c.Category.String()}
	if verbosity >= Standard {
		cols = append(cols, c.LongName, c.Rule)
	}
	if verbosity >= Full {
		cols = append(cols, c.BaseName)
	}
	return cols
}

// EncodeClassification strips c to verbosity and encodes it.
func (e *Encoder) EncodeClassification(c model.Classification, verbosity Verbosity) error {
	c = FormatClassification(c, verbosity)
	return e.Encode(c, Columns(c, verbosity)...)
}
