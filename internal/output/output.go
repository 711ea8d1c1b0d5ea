package output

import (
	"context"

	"github.com/crimson-sun/vecname/internal/model"
)

// Output defines the interface for classification record destinations.
type Output interface {
	Write(ctx context.Context, c model.Classification) error
	Close() error
}
