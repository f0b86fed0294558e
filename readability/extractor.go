// Package readability provides a uninews.Extractor backed by
// go-shiori/go-readability, a port of Mozilla's Readability heuristic.
package readability

import (
	"strings"
	"time"

	"github.com/fwojciec/uninews"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Extractor implements uninews.Extractor at compile time.
var _ uninews.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main article content.
func (e *Extractor) Extract(rawHTML string) (*uninews.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, uninews.Errorf(uninews.EEXTRACT, "empty document")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, uninews.Errorf(uninews.EEXTRACT, "failed to extract content: %v", err)
	}

	result := &uninews.ExtractResult{
		Title:            article.Title,
		ContentHTML:      article.Content,
		FeaturedImageURL: article.Image,
		Author:           article.Byline,
	}
	if article.PublishedTime != nil {
		result.PublicationDate = article.PublishedTime.Format(time.RFC3339)
	}
	return result, nil
}
