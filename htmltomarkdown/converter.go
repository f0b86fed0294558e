// Package htmltomarkdown provides a local, deterministic uninews.Converter
// built on JohannesKaufmann/html-to-markdown. It needs no credential and
// performs no translation; the language directive is ignored.
package htmltomarkdown

import (
	"context"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/uninews"
)

// Ensure Converter implements uninews.Converter at compile time.
var _ uninews.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert extracted HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms the extracted content into Markdown.
// The language parameter has no effect: local conversion cannot translate.
func (c *Converter) Convert(_ context.Context, extract *uninews.ExtractResult, _ string) (string, error) {
	if extract == nil {
		return "", uninews.Errorf(uninews.EINVALID, "extract result required")
	}
	if strings.TrimSpace(extract.ContentHTML) == "" {
		return "", uninews.Errorf(uninews.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(extract.ContentHTML)
	if err != nil {
		return "", uninews.Errorf(uninews.ECONVERT, "markdown conversion failed: %v", err)
	}

	return result, nil
}
