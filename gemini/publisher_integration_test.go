//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/leadgen"
	"github.com/fwojciec/leadgen/composio"
	"github.com/fwojciec/leadgen/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestPublisher_Integration_CreatesSheet(t *testing.T) {
	t.Parallel()

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}
	composioKey := os.Getenv("COMPOSIO_API_KEY")
	if composioKey == "" {
		t.Skip("COMPOSIO_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	require.NoError(t, err)

	publisher := gemini.NewPublisher(client, composio.NewClient(composioKey))

	sheetURL, err := publisher.Publish(ctx, []leadgen.FlatRow{
		{
			URL:       "https://www.quora.com/What-are-the-best-AI-chatbots",
			Username:  "integration-test",
			PostType:  "answer",
			Timestamp: "1d ago",
			Upvotes:   1,
		},
	})

	require.NoError(t, err)
	assert.Contains(t, sheetURL, gemini.SheetURLMarker)
}
