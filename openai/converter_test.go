package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/uninews"
	uninewsopenai "github.com/fwojciec/uninews/openai"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements uninews.Converter at compile time.
var _ uninews.Converter = (*uninewsopenai.Converter)(nil)

// newStubClient returns a go-openai client pointed at a stub server that
// replies to chat completions with the given content.
func newStubClient(t *testing.T, handler http.HandlerFunc) *openai.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = server.URL + "/v1"
	return openai.NewClientWithConfig(cfg)
}

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("returns markdown from completion", func(t *testing.T) {
		t.Parallel()

		client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{
					{Message: openai.ChatCompletionMessage{
						Role:    openai.ChatMessageRoleAssistant,
						Content: "# T\n\nHello",
					}},
				},
			})
		})

		conv := uninewsopenai.NewConverter(client, "")
		extract := &uninews.ExtractResult{Title: "T", ContentHTML: "<p>Hello</p>"}

		md, err := conv.Convert(context.Background(), extract, "english")

		require.NoError(t, err)
		assert.Equal(t, "# T\n\nHello", md)
	})

	t.Run("sends system and user messages", func(t *testing.T) {
		t.Parallel()

		var req openai.ChatCompletionRequest
		client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&req)
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{
					{Message: openai.ChatCompletionMessage{Content: "ok"}},
				},
			})
		})

		conv := uninewsopenai.NewConverter(client, "gpt-4o")
		extract := &uninews.ExtractResult{Title: "T", ContentHTML: "<p>Hola</p>"}

		_, err := conv.Convert(context.Background(), extract, "spanish")

		require.NoError(t, err)
		assert.Equal(t, "gpt-4o", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
		assert.Contains(t, req.Messages[0].Content, "spanish")
		assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[1].Role)
		assert.Contains(t, req.Messages[1].Content, "<p>Hola</p>")
	})

	t.Run("returns ECONVERT on API error", func(t *testing.T) {
		t.Parallel()

		client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
		})

		conv := uninewsopenai.NewConverter(client, "")
		extract := &uninews.ExtractResult{ContentHTML: "<p>Hello</p>"}

		_, err := conv.Convert(context.Background(), extract, "english")

		require.Error(t, err)
		assert.Equal(t, uninews.ECONVERT, uninews.ErrorCode(err))
	})

	t.Run("returns ECONVERT when client missing", func(t *testing.T) {
		t.Parallel()

		conv := uninewsopenai.NewConverter(nil, "")
		extract := &uninews.ExtractResult{ContentHTML: "<p>Hello</p>"}

		_, err := conv.Convert(context.Background(), extract, "english")

		require.Error(t, err)
		assert.Equal(t, uninews.ECONVERT, uninews.ErrorCode(err))
		assert.Contains(t, uninews.ErrorMessage(err), "OPENAI_API_KEY")
	})

	t.Run("returns EINVALID when extract nil", func(t *testing.T) {
		t.Parallel()

		conv := uninewsopenai.NewConverter(nil, "")

		_, err := conv.Convert(context.Background(), nil, "english")

		require.Error(t, err)
		assert.Equal(t, uninews.EINVALID, uninews.ErrorCode(err))
	})
}
