package main

import (
	"context"
	"io"

	"github.com/fwojciec/leadgen/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Runner *pipeline.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Generate GenerateCmd `cmd:"" help:"Find Quora leads for a business description and export them"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Description string `arg:"" help:"Describe the leads you need, e.g. 'AI chatbots for customer support'"`
	Limit       int    `short:"l" default:"3" help:"Number of links to search (1-10)"`
	Output      string `short:"o" default:"quora_leads.csv" help:"CSV output path"`
	Concurrency int    `short:"c" default:"5" help:"Concurrent extraction limit"`
	NoSheet     bool   `help:"Skip Google Sheets publishing"`
	Verbose     bool   `short:"v" help:"Enable verbose logging"`

	FirecrawlKey string `env:"FIRECRAWL_API_KEY" help:"Firecrawl API key"`
	GeminiKey    string `env:"GEMINI_API_KEY" help:"Gemini API key (used for sheet publishing)"`
	ComposioKey  string `env:"COMPOSIO_API_KEY" help:"Composio API key (used for sheet publishing)"`
}
