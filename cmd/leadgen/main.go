package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/leadgen"
	"github.com/fwojciec/leadgen/composio"
	leadcsv "github.com/fwojciec/leadgen/csv"
	"github.com/fwojciec/leadgen/firecrawl"
	"github.com/fwojciec/leadgen/gemini"
	"github.com/fwojciec/leadgen/pipeline"
	leadslog "github.com/fwojciec/leadgen/slog"
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
	// NewSheetPublisher builds the spreadsheet sink from the two API keys.
	// Overridable for end-to-end testing.
	NewSheetPublisher func(ctx context.Context, geminiKey, composioKey string) (leadgen.SheetPublisher, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		NewSheetPublisher: newSheetPublisher,
	}
}

func newSheetPublisher(ctx context.Context, geminiKey, composioKey string) (leadgen.SheetPublisher, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return gemini.NewPublisher(client, composio.NewClient(composioKey)), nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("leadgen"),
		kong.Description("Find Quora leads for your business and export them to CSV and Google Sheets."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'leadgen --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	g := cli.Generate
	if g.Limit < 1 || g.Limit > pipeline.MaxLimit {
		return leadgen.Errorf(leadgen.EINVALID, "limit must be between 1 and %d, got %d", pipeline.MaxLimit, g.Limit)
	}
	if g.FirecrawlKey == "" {
		fmt.Fprintln(stderr, "Hint: set FIRECRAWL_API_KEY or pass --firecrawl-key")
		return leadgen.Errorf(leadgen.EINVALID, "Firecrawl API key required")
	}

	level := slog.LevelWarn
	if g.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fc := firecrawl.NewClient(g.FirecrawlKey, firecrawl.WithConcurrency(g.Concurrency))

	deps.Runner = &pipeline.Runner{
		Discoverer: leadslog.NewLoggingURLDiscoverer(fc, logger),
		Extractor:  leadslog.NewLoggingLeadExtractor(fc, logger),
		Rows:       leadcsv.NewWriter(g.Output),
		Limit:      g.Limit,
	}

	if !g.NoSheet {
		if g.GeminiKey == "" || g.ComposioKey == "" {
			fmt.Fprintln(stderr, "Hint: set GEMINI_API_KEY and COMPOSIO_API_KEY, or pass --no-sheet to skip Google Sheets")
			return leadgen.Errorf(leadgen.EINVALID, "Gemini and Composio API keys required for sheet publishing")
		}
		publisher, err := m.NewSheetPublisher(ctx, g.GeminiKey, g.ComposioKey)
		if err != nil {
			return err
		}
		deps.Runner.Sheets = publisher
	}

	return kongCtx.Run(deps)
}
