// Package trafilatura provides a uninews.Extractor backed by
// markusmobius/go-trafilatura. It yields the richest metadata of the
// bundled extractors (title, image, date and author in one pass).
package trafilatura

import (
	"bytes"
	"strings"
	"time"

	"github.com/fwojciec/uninews"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements uninews.Extractor at compile time.
var _ uninews.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, uninews.Errorf(uninews.EEXTRACT, "failed to extract content: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, uninews.Errorf(uninews.EINTERNAL, "failed to serialize content: %v", err)
		}
	}

	extract := &uninews.ExtractResult{
		Title:            result.Metadata.Title,
		ContentHTML:      contentHTML,
		FeaturedImageURL: result.Metadata.Image,
		Author:           result.Metadata.Author,
	}
	if !result.Metadata.Date.IsZero() {
		extract.PublicationDate = result.Metadata.Date.Format(time.RFC3339)
	}
	return extract, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
