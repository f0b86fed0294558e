package uninews

// ExtractResult holds the article content and metadata extracted from an
// HTML page. It is produced by an Extractor and consumed once by a Converter.
type ExtractResult struct {
	// Title is the article title extracted from metadata.
	Title string

	// ContentHTML is the main article content as clean HTML.
	// Boilerplate (nav, footer, scripts, ads) has been removed but
	// structural tags meaningful for Markdown conversion are preserved.
	ContentHTML string

	// FeaturedImageURL is the og:image URL, if present. Best-effort.
	FeaturedImageURL string

	// PublicationDate is the article:published_time value, if present.
	PublicationDate string

	// Author is the author from page metadata, if present.
	Author string
}

// Extractor extracts main article content from HTML pages, removing
// boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// Metadata (title, image, date, author) comes from document-level
	// tags and is best-effort; only an unusable document is an error.
	Extract(html string) (*ExtractResult, error)
}
