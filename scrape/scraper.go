// Package scrape provides the article scraping pipeline orchestration.
// It coordinates fetching, content extraction and Markdown conversion,
// and assembles the final Post returned to callers.
package scrape

import (
	"context"
	"errors"
	"strings"

	"github.com/fwojciec/uninews"
	"github.com/fwojciec/uninews/goquery"
	"github.com/fwojciec/uninews/http"
)

// Scraper orchestrates the scrape pipeline. The stages run strictly in
// sequence: fetch, extract, convert. A Scraper holds no per-invocation
// state; concurrent Scrape calls are independent.
type Scraper struct {
	Fetcher   uninews.Fetcher
	Extractor uninews.Extractor
	Converter uninews.Converter
}

// New creates a Scraper with the default HTTP fetcher and goquery extractor.
// The converter decides how the cleaned content becomes Markdown.
func New(converter uninews.Converter) *Scraper {
	return &Scraper{
		Fetcher:   http.NewFetcher(),
		Extractor: goquery.NewExtractor(),
		Converter: converter,
	}
}

// Scrape fetches the article at url, extracts its main content and converts
// it to Markdown in the given language (blank means english).
//
// Scrape never returns an error: failures from any stage end up as a
// human-readable message in Post.Error, with the remaining fields at safe
// defaults. When conversion fails after extraction succeeded, the extracted
// metadata (title, image, date, author) is kept but Content stays empty.
func (s *Scraper) Scrape(ctx context.Context, url string, language string) *uninews.Post {
	if strings.TrimSpace(url) == "" {
		return failed(uninews.Errorf(uninews.EINVALID, "URL required"))
	}

	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return failed(err)
	}

	extract, err := s.Extractor.Extract(html)
	if err != nil {
		return failed(err)
	}

	markdown, err := s.Converter.Convert(ctx, extract, language)
	if err != nil {
		post := assemble(extract, "")
		post.Error = message(err)
		return post
	}

	return assemble(extract, markdown)
}

// assemble merges the extracted metadata with the converted Markdown.
func assemble(extract *uninews.ExtractResult, markdown string) *uninews.Post {
	return &uninews.Post{
		Title:            extract.Title,
		Content:          markdown,
		FeaturedImageURL: extract.FeaturedImageURL,
		PublicationDate:  extract.PublicationDate,
		Author:           extract.Author,
	}
}

// failed returns a Post with only the error populated.
func failed(err error) *uninews.Post {
	return &uninews.Post{Error: message(err)}
}

// message renders an error for Post.Error, preferring application error
// messages over raw error strings.
func message(err error) string {
	var e *uninews.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
