package composio_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/leadgen"
	"github.com/fwojciec/leadgen/composio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ExecuteAction(t *testing.T) {
	t.Parallel()

	t.Run("posts input and returns data payload", func(t *testing.T) {
		t.Parallel()

		var captured struct {
			Input map[string]any `json:"input"`
		}
		var apiKey string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v2/actions/GOOGLESHEETS_SHEET_FROM_JSON/execute", r.URL.Path)
			apiKey = r.Header.Get("X-API-Key")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			_, _ = w.Write([]byte(`{
				"successful": true,
				"data": {"spreadsheet_url": "https://docs.google.com/spreadsheets/d/abc123"}
			}`))
		}))
		defer server.Close()

		client := composio.NewClient("test-key", composio.WithBaseURL(server.URL))

		data, err := client.ExecuteAction(context.Background(), composio.ActionSheetFromJSON,
			map[string]any{"sheet_json": `[{"Username": "alice"}]`, "title": "Leads"})
		require.NoError(t, err)

		assert.Equal(t, "test-key", apiKey)
		assert.Equal(t, `[{"Username": "alice"}]`, captured.Input["sheet_json"])
		assert.Contains(t, data, "https://docs.google.com/spreadsheets/d/abc123")
	})

	t.Run("action failure is unavailable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"successful": false, "error": "connected account not found"}`))
		}))
		defer server.Close()

		client := composio.NewClient("test-key", composio.WithBaseURL(server.URL))

		_, err := client.ExecuteAction(context.Background(), composio.ActionSheetFromJSON, nil)
		require.Error(t, err)
		assert.Equal(t, leadgen.EUNAVAILABLE, leadgen.ErrorCode(err))
		assert.Contains(t, leadgen.ErrorMessage(err), "connected account not found")
	})

	t.Run("non-200 status is unavailable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := composio.NewClient("test-key", composio.WithBaseURL(server.URL))

		_, err := client.ExecuteAction(context.Background(), composio.ActionSheetFromJSON, nil)
		require.Error(t, err)
		assert.Equal(t, leadgen.EUNAVAILABLE, leadgen.ErrorCode(err))
	})

	t.Run("transport failure is unavailable", func(t *testing.T) {
		t.Parallel()

		client := composio.NewClient("test-key",
			composio.WithBaseURL("http://non-existent-host.invalid"))

		_, err := client.ExecuteAction(context.Background(), composio.ActionSheetFromJSON, nil)
		require.Error(t, err)
		assert.Equal(t, leadgen.EUNAVAILABLE, leadgen.ErrorCode(err))
	})

	t.Run("empty action name is invalid", func(t *testing.T) {
		t.Parallel()

		client := composio.NewClient("test-key")

		_, err := client.ExecuteAction(context.Background(), "", nil)
		require.Error(t, err)
		assert.Equal(t, leadgen.EINVALID, leadgen.ErrorCode(err))
	})
}
