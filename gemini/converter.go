// Package gemini provides a uninews.Converter backed by Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/uninews"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is specified.
const DefaultModel = "gemini-2.5-flash"

// Ensure Converter implements uninews.Converter at compile time.
var _ uninews.Converter = (*Converter)(nil)

// Converter implements uninews.Converter using Google Gemini.
type Converter struct {
	client *genai.Client
	model  string
}

// NewConverter creates a new Converter. An empty model selects DefaultModel.
func NewConverter(client *genai.Client, model string) *Converter {
	if model == "" {
		model = DefaultModel
	}
	return &Converter{client: client, model: model}
}

// Convert transforms the extracted content into Markdown in the given
// language.
func (c *Converter) Convert(ctx context.Context, extract *uninews.ExtractResult, language string) (string, error) {
	if extract == nil {
		return "", uninews.Errorf(uninews.EINVALID, "extract result required")
	}
	if c.client == nil {
		return "", uninews.Errorf(uninews.ECONVERT, "gemini client not configured; set the GEMINI_API_KEY environment variable")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: uninews.UserPrompt(extract, language)}},
		}},
		buildConfig(language),
	)
	if err != nil {
		return "", uninews.Errorf(uninews.ECONVERT, "gemini request failed: %v", err)
	}
	if result == nil {
		return "", uninews.Errorf(uninews.ECONVERT, "gemini returned nil result")
	}

	return result.Text(), nil
}

// buildConfig returns the GenerateContentConfig for Gemini API calls.
func buildConfig(language string) *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: uninews.SystemPrompt(language)}},
		},
		Temperature: &temp,
	}
}
