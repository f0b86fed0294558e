package uninews

// Post is the final result of a scrape-and-convert invocation.
//
// A Post is always returned, even on failure: callers must check Error before
// using any other field. A non-empty Error means Content is empty and the
// remaining fields are best-effort at most.
type Post struct {
	// Title is the article title from page metadata.
	Title string `json:"title"`

	// Content is the article body in Markdown format.
	Content string `json:"content"`

	// FeaturedImageURL points at the article's social-preview image, if any.
	FeaturedImageURL string `json:"featured_image_url"`

	// PublicationDate is the ISO 8601 publication time, if available.
	PublicationDate string `json:"publication_date,omitempty"`

	// Author is the article author from page metadata, if available.
	Author string `json:"author,omitempty"`

	// Error holds the error message for a failed invocation; empty on success.
	Error string `json:"error"`
}

// OK reports whether the scrape succeeded.
func (p *Post) OK() bool {
	return p.Error == ""
}
