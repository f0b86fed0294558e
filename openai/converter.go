// Package openai provides a uninews.Converter backed by the OpenAI chat
// completions API. Any OpenAI-compatible backend works via a custom base URL.
package openai

import (
	"context"

	"github.com/fwojciec/uninews"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is specified.
const DefaultModel = "gpt-4o-mini"

// Ensure Converter implements uninews.Converter at compile time.
var _ uninews.Converter = (*Converter)(nil)

// Converter implements uninews.Converter using OpenAI chat completions.
type Converter struct {
	client *openai.Client
	model  string
}

// NewConverter creates a new Converter. An empty model selects DefaultModel.
func NewConverter(client *openai.Client, model string) *Converter {
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
		return "", uninews.Errorf(uninews.ECONVERT, "openai client not configured; set the OPENAI_API_KEY environment variable")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: uninews.SystemPrompt(language)},
			{Role: openai.ChatMessageRoleUser, Content: uninews.UserPrompt(extract, language)},
		},
	})
	if err != nil {
		return "", uninews.Errorf(uninews.ECONVERT, "openai request failed: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", uninews.Errorf(uninews.ECONVERT, "openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
