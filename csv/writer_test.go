package csv_test

import (
	"context"
	enccsv "encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/leadgen"
	leadcsv "github.com/fwojciec/leadgen/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteRows(t *testing.T) {
	t.Parallel()

	t.Run("writes header and rows in order", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "leads.csv")
		writer := leadcsv.NewWriter(path)

		rows := []leadgen.FlatRow{
			{URL: "https://www.quora.com/a", Username: "alice", PostType: "question", Upvotes: 3},
			{URL: "https://www.quora.com/a", Username: "bob", PostType: "answer", Upvotes: 12, Links: "https://a.example, https://b.example"},
		}

		got, err := writer.WriteRows(context.Background(), rows)
		require.NoError(t, err)
		assert.Equal(t, path, got)

		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()

		records, err := enccsv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, leadgen.ExportColumns, records[0])
		assert.Equal(t, []string{"https://www.quora.com/a", "alice", "", "question", "", "3", ""}, records[1])
		assert.Equal(t, []string{"https://www.quora.com/a", "bob", "", "answer", "", "12", "https://a.example, https://b.example"}, records[2])
	})

	t.Run("writes header even with zero rows", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "leads.csv")
		writer := leadcsv.NewWriter(path)

		_, err := writer.WriteRows(context.Background(), nil)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, strings.Join(leadgen.ExportColumns, ",")+"\n", string(data))
	})

	t.Run("overwrites prior file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "leads.csv")
		require.NoError(t, os.WriteFile(path, []byte("stale contents\nmore stale\n"), 0644))

		writer := leadcsv.NewWriter(path)
		_, err := writer.WriteRows(context.Background(), []leadgen.FlatRow{
			{URL: "https://www.quora.com/a", Username: "alice"},
		})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "stale")
		assert.Contains(t, string(data), "alice")
	})

	t.Run("returns error for unwritable destination", func(t *testing.T) {
		t.Parallel()

		writer := leadcsv.NewWriter(filepath.Join(t.TempDir(), "missing-dir", "leads.csv"))

		_, err := writer.WriteRows(context.Background(), nil)
		require.Error(t, err)
	})

	t.Run("empty path is invalid", func(t *testing.T) {
		t.Parallel()

		writer := leadcsv.NewWriter("")

		_, err := writer.WriteRows(context.Background(), nil)
		require.Error(t, err)
		assert.Equal(t, leadgen.EINVALID, leadgen.ErrorCode(err))
	})
}

// Compile-time verification that Writer implements leadgen.RowWriter.
var _ leadgen.RowWriter = (*leadcsv.Writer)(nil)
