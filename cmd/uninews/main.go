package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/uninews"
	"github.com/fwojciec/uninews/gemini"
	"github.com/fwojciec/uninews/goquery"
	"github.com/fwojciec/uninews/htmltomarkdown"
	uninewshttp "github.com/fwojciec/uninews/http"
	uninewsopenai "github.com/fwojciec/uninews/openai"
	"github.com/fwojciec/uninews/readability"
	"github.com/fwojciec/uninews/rod"
	"github.com/fwojciec/uninews/scrape"
	uninewsslog "github.com/fwojciec/uninews/slog"
	"github.com/fwojciec/uninews/trafilatura"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv reads environment variables; overridable for tests.
	Getenv func(string) string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getenv: os.Getenv}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("uninews"),
		kong.Description("A universal news scraper that converts articles to Markdown."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no URL specified. Run 'uninews --help' for usage")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	fetcher, err := newFetcher(cli)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
		return err
	}
	defer fetcher.Close()

	converter, err := m.newConverter(ctx, cli)
	if err != nil {
		return err
	}

	scraper := &scrape.Scraper{
		Fetcher:   fetcher,
		Extractor: newExtractor(cli),
		Converter: converter,
	}
	if cli.Verbose {
		scraper.Fetcher = uninewsslog.NewLoggingFetcher(scraper.Fetcher, logger)
		scraper.Extractor = uninewsslog.NewLoggingExtractor(scraper.Extractor, logger)
		scraper.Converter = uninewsslog.NewLoggingConverter(scraper.Converter, logger)
	}

	post := scraper.Scrape(ctx, cli.URL, cli.Language)

	if !post.OK() {
		fmt.Fprintf(stderr, "error: %s\n", post.Error)
		return uninews.Errorf(uninews.EINTERNAL, "scrape failed: %s", post.Error)
	}

	if cli.JSON {
		out, err := json.MarshalIndent(post, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize post: %w", err)
		}
		fmt.Fprintln(stdout, string(out))
		return nil
	}

	fmt.Fprintf(stdout, "%s\n\n%s\n", post.Title, post.Content)
	return nil
}

// newFetcher selects the fetcher implementation.
func newFetcher(cli *CLI) (uninews.Fetcher, error) {
	if cli.Browser {
		return rod.NewFetcher()
	}
	return uninewshttp.NewFetcher(uninewshttp.WithTimeout(cli.Timeout)), nil
}

// newExtractor selects the extraction strategy.
func newExtractor(cli *CLI) uninews.Extractor {
	switch cli.Extractor {
	case "readability":
		return readability.NewExtractor()
	case "trafilatura":
		return trafilatura.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}

// newConverter selects the Markdown converter backend. Credentials are read
// from the environment here, once, and handed to the converter as explicit
// configuration. A missing credential is not fatal: the converter reports it
// as a conversion error when invoked, and it ends up in Post.Error.
func (m *Main) newConverter(ctx context.Context, cli *CLI) (uninews.Converter, error) {
	switch cli.Provider {
	case "openai":
		apiKey := m.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return uninewsopenai.NewConverter(nil, cli.Model), nil
		}
		cfg := openai.DefaultConfig(apiKey)
		if base := m.Getenv("OPENAI_BASE_URL"); base != "" {
			cfg.BaseURL = base
		}
		return uninewsopenai.NewConverter(openai.NewClientWithConfig(cfg), cli.Model), nil

	case "local":
		return htmltomarkdown.NewConverter(), nil

	default: // gemini
		apiKey := m.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return gemini.NewConverter(nil, cli.Model), nil
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewConverter(client, cli.Model), nil
	}
}
