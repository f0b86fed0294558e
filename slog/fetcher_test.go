package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/uninews"
	"github.com/fwojciec/uninews/mock"
	uninewsslog "github.com/fwojciec/uninews/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time interface checks for all decorators.
var (
	_ uninews.Fetcher   = (*uninewsslog.LoggingFetcher)(nil)
	_ uninews.Extractor = (*uninewsslog.LoggingExtractor)(nil)
	_ uninews.Converter = (*uninewsslog.LoggingConverter)(nil)
)

func newLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	logger, buf := newLogger()
	fetcher := uninewsslog.NewLoggingFetcher(&mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			return "<html></html>", nil
		},
	}, logger)
	defer fetcher.Close()

	html, err := fetcher.Fetch(context.Background(), "https://example.com/a")

	require.NoError(t, err)
	assert.Equal(t, "<html></html>", html)
	assert.Contains(t, buf.String(), "msg=fetch")
	assert.Contains(t, buf.String(), "url=https://example.com/a")
}

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	logger, buf := newLogger()
	extractor := uninewsslog.NewLoggingExtractor(&mock.Extractor{
		ExtractFn: func(html string) (*uninews.ExtractResult, error) {
			return &uninews.ExtractResult{Title: "T", ContentHTML: "<p>Hi</p>"}, nil
		},
	}, logger)

	result, err := extractor.Extract("<html></html>")

	require.NoError(t, err)
	assert.Equal(t, "T", result.Title)
	assert.Contains(t, buf.String(), "msg=extract")
	assert.Contains(t, buf.String(), "title=T")
}

func TestLoggingConverter_Convert(t *testing.T) {
	t.Parallel()

	logger, buf := newLogger()
	converter := uninewsslog.NewLoggingConverter(&mock.Converter{
		ConvertFn: func(ctx context.Context, extract *uninews.ExtractResult, language string) (string, error) {
			return "# T", nil
		},
	}, logger)

	md, err := converter.Convert(context.Background(), &uninews.ExtractResult{}, "english")

	require.NoError(t, err)
	assert.Equal(t, "# T", md)
	assert.Contains(t, buf.String(), "msg=convert")
	assert.Contains(t, buf.String(), "language=english")
}
