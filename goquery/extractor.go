// Package goquery provides a CSS-selector based implementation of
// uninews.Extractor built on PuerkitoBio/goquery.
//
// The extractor walks an ordered list of candidate root selectors until one
// matches, strips a configurable set of noise elements from the chosen root,
// and serializes the remaining subtree back to HTML for Markdown conversion.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/uninews"
	"golang.org/x/net/html"
)

// DefaultRootSelectors are the candidate article roots, tried in order.
// The first selector with a match wins; body is the fallback of last resort.
var DefaultRootSelectors = []string{"article", "main", "[role=\"main\"]", "body"}

// DefaultSkipTags are element kinds removed from the chosen root.
// Scripts, styles and chrome (header/footer/nav/aside) carry no article text;
// forms and embedded media frames are noise for Markdown output.
var DefaultSkipTags = []string{
	"script", "style", "noscript", "iframe",
	"header", "footer", "nav", "aside",
	"form", "input", "button",
	"svg", "picture", "source",
}

// DefaultNoiseSelectors are class-based selectors for non-content blocks
// commonly found inside article roots on news sites.
var DefaultNoiseSelectors = []string{
	".advertisement", ".ad-banner", ".social-share", ".comments", ".related-posts",
}

// Ensure Extractor implements uninews.Extractor at compile time.
var _ uninews.Extractor = (*Extractor)(nil)

// Extractor extracts main article content from HTML using CSS selectors.
type Extractor struct {
	rootSelectors  []string
	skipTags       map[string]bool
	noiseSelectors []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRootSelectors replaces the ordered candidate root selectors.
func WithRootSelectors(selectors ...string) Option {
	return func(e *Extractor) {
		e.rootSelectors = selectors
	}
}

// WithSkipTags replaces the set of element kinds removed from the root.
// Useful for site-specific tuning; pass DefaultSkipTags plus extras to extend.
func WithSkipTags(tags ...string) Option {
	return func(e *Extractor) {
		e.skipTags = make(map[string]bool, len(tags))
		for _, tag := range tags {
			e.skipTags[strings.ToLower(tag)] = true
		}
	}
}

// WithNoiseSelectors replaces the class-based noise selectors removed from
// the root.
func WithNoiseSelectors(selectors ...string) Option {
	return func(e *Extractor) {
		e.noiseSelectors = selectors
	}
}

// NewExtractor creates a new Extractor with default selectors and skip tags.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		rootSelectors:  DefaultRootSelectors,
		noiseSelectors: DefaultNoiseSelectors,
	}
	e.skipTags = make(map[string]bool, len(DefaultSkipTags))
	for _, tag := range DefaultSkipTags {
		e.skipTags[tag] = true
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the main article content.
//
// Parsing is lenient: unclosed tags and invalid nesting are recovered
// best-effort by the underlying parser. A document that yields no usable
// root, or a body fallback with nothing left after cleaning, fails with
// EEXTRACT. An article-equivalent root that happens to be empty after
// cleaning is passed through; downstream stages decide what to do with it.
func (e *Extractor) Extract(rawHTML string) (*uninews.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, uninews.Errorf(uninews.EEXTRACT, "empty document")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, uninews.Errorf(uninews.EEXTRACT, "failed to parse HTML: %v", err)
	}

	root, fallback := e.findRoot(doc)
	if root == nil {
		return nil, uninews.Errorf(uninews.EEXTRACT, "no usable content root in document")
	}

	e.clean(root)

	contentHTML, err := renderChildren(root.Nodes[0])
	if err != nil {
		return nil, uninews.Errorf(uninews.EINTERNAL, "failed to serialize content: %v", err)
	}
	contentHTML = strings.TrimSpace(contentHTML)

	// A body fallback with nothing left after cleaning means the document
	// never had article content to begin with.
	if fallback && contentHTML == "" {
		return nil, uninews.Errorf(uninews.EEXTRACT, "could not extract meaningful content from the page")
	}

	return &uninews.ExtractResult{
		Title:            e.title(doc, root),
		ContentHTML:      contentHTML,
		FeaturedImageURL: metaContent(doc, `meta[property="og:image"]`),
		PublicationDate:  metaContent(doc, `meta[property="article:published_time"]`),
		Author:           metaContent(doc, `meta[name="author"]`),
	}, nil
}

// findRoot returns the first matching candidate root and whether it was the
// body fallback rather than a semantic article root.
func (e *Extractor) findRoot(doc *goquery.Document) (*goquery.Selection, bool) {
	for i, selector := range e.rootSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		return sel, i == len(e.rootSelectors)-1
	}
	return nil, false
}

// clean removes noise elements and empty leftovers from the root in place.
func (e *Extractor) clean(root *goquery.Selection) {
	if len(e.skipTags) > 0 {
		tags := make([]string, 0, len(e.skipTags))
		for tag := range e.skipTags {
			tags = append(tags, tag)
		}
		root.Find(strings.Join(tags, ", ")).Remove()
	}
	if len(e.noiseSelectors) > 0 {
		root.Find(strings.Join(e.noiseSelectors, ", ")).Remove()
	}
	for _, n := range root.Nodes {
		pruneEmpty(n)
	}
}

// title extracts the article title, preferring document-level metadata over
// headings: og:title, then <title>, then the first heading in the root.
func (e *Extractor) title(doc *goquery.Document, root *goquery.Selection) string {
	if t := metaContent(doc, `meta[property="og:title"]`); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	return strings.TrimSpace(root.Find("h1, h2, h3").First().Text())
}

// metaContent returns the trimmed content attribute of the first element
// matching the selector, or "".
func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

// pruneEmpty removes element nodes that contain no text and no retained
// media. Images and explicit breaks survive even without text content.
func pruneEmpty(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type != html.ElementNode {
			continue
		}
		pruneEmpty(c)
		if isEmptyElement(c) {
			n.RemoveChild(c)
		}
	}
}

func isEmptyElement(n *html.Node) bool {
	switch n.Data {
	case "img", "br", "hr":
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return false
			}
		case html.ElementNode:
			if !isEmptyElement(c) {
				return false
			}
		}
	}
	return true
}

// renderChildren serializes the children of n back to HTML.
func renderChildren(n *html.Node) (string, error) {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
