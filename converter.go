package uninews

import (
	"context"
	"strings"
)

// DefaultLanguage is used when no target language is specified.
const DefaultLanguage = "english"

// Converter turns extracted article content into Markdown, optionally
// translating it into the target language.
type Converter interface {
	// Convert transforms the extracted content into Markdown text in the
	// given language. A blank language means DefaultLanguage.
	// Implementations backed by a language model report credential and
	// transport failures with code ECONVERT.
	Convert(ctx context.Context, extract *ExtractResult, language string) (markdown string, err error)
}

// NormalizeLanguage returns the language to request from a Converter,
// falling back to DefaultLanguage when lang is blank.
func NormalizeLanguage(lang string) string {
	if strings.TrimSpace(lang) == "" {
		return DefaultLanguage
	}
	return lang
}
