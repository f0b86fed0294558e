package mock

import "github.com/fwojciec/uninews"

var _ uninews.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of uninews.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*uninews.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*uninews.ExtractResult, error) {
	return e.ExtractFn(html)
}
