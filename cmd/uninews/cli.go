package main

import "time"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL string `arg:"" help:"URL of the news article to scrape"`

	Language string `short:"l" default:"english" help:"Target language for the Markdown output"`
	JSON     bool   `short:"j" help:"Output the result as pretty-printed JSON"`

	Provider  string `default:"gemini" enum:"gemini,openai,local" help:"Markdown converter backend (local converts without a language model and does not translate)"`
	Extractor string `default:"goquery" enum:"goquery,readability,trafilatura" help:"Content extraction strategy"`
	Model     string `help:"Override the language model (provider specific)"`

	Browser bool          `help:"Fetch with a headless Chrome browser (for JavaScript-rendered pages)"`
	Timeout time.Duration `default:"10s" help:"HTTP fetch timeout"`

	Verbose bool `short:"v" help:"Log pipeline stages to stderr"`
}
