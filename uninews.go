// Package uninews scrapes news articles from the web and converts them to
// Markdown. It fetches a page, isolates the main article content from the
// surrounding markup, and hands the cleaned content to a language model for
// Markdown formatting and optional translation.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, http/).
package uninews
