package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/uninews"
)

// Ensure LoggingConverter implements uninews.Converter.
var _ uninews.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with debug logging.
type LoggingConverter struct {
	next   uninews.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next uninews.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the operation.
func (c *LoggingConverter) Convert(ctx context.Context, extract *uninews.ExtractResult, language string) (markdown string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("convert",
			"language", language,
			"bytes", len(markdown),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(ctx, extract, language)
}
