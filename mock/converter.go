package mock

import (
	"context"

	"github.com/fwojciec/uninews"
)

var _ uninews.Converter = (*Converter)(nil)

// Converter is a mock implementation of uninews.Converter.
type Converter struct {
	ConvertFn func(ctx context.Context, extract *uninews.ExtractResult, language string) (string, error)
}

func (c *Converter) Convert(ctx context.Context, extract *uninews.ExtractResult, language string) (string, error) {
	return c.ConvertFn(ctx, extract, language)
}
