package output

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/crimson-sun/vecname/internal/model"
)

type tee []Output

// Tee returns an Output that writes every record to each of outs in order.
// A failing output does not keep the record from the others; the first
// failure is returned with later ones attached as secondary errors. Close
// closes outs in reverse order. With a single output Tee returns it unchanged.
func Tee(outs ...Output) Output {
	if len(outs) == 1 {
		return outs[0]
	}
	return tee(outs)
}

func (t tee) Write(ctx context.Context, c model.Classification) error {
	var err error
	for _, o := range t {
		err = errors.CombineErrors(err, o.Write(ctx, c))
	}
	return err
}

func (t tee) Close() error {
	var err error
	for i := len(t) - 1; i >= 0; i-- {
		err = errors.CombineErrors(err, t[i].Close())
	}
	return err
}
