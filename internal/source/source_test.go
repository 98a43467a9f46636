package source

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/sweepgridgo/internal/config"
	"github.com/vk/sweepgridgo/internal/ctxlog"
	"github.com/vk/sweepgridgo/pkg/sweep"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return ctxlog.WithLogger(context.Background(), logger)
}

func TestResolver_InlineCells(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	t.Cleanup(func() { _ = r.Close() })

	grid, err := r.Resolve(testContext(), &config.GridDefinition{
		Name:  "inline",
		Cells: [][]int{{1, 2}, {3, 4}},
	})

	require.NoError(t, err)
	require.Equal(t, sweep.Grid{{1, 2}, {3, 4}}, grid)
}

func TestResolver_FileSourceRelativeToManifest(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cells.txt"), []byte("5 6\n7 8\n"), 0644))

	r := NewResolver()
	t.Cleanup(func() { _ = r.Close() })

	// --- Act ---
	grid, err := r.Resolve(testContext(), &config.GridDefinition{
		Name:     "file",
		Source:   "./cells.txt",
		BaseDir:  dir,
		DeclFile: filepath.Join(dir, "main.hcl"),
	})

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, sweep.Grid{{5, 6}, {7, 8}}, grid)
}

func TestResolver_FileSourceByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cells.json"), []byte(`[[1, 2]]`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cells.yaml"), []byte("- [3, 4]\n"), 0644))

	r := NewResolver()
	t.Cleanup(func() { _ = r.Close() })

	jsonGrid, err := r.Resolve(testContext(), &config.GridDefinition{Name: "j", Source: "cells.json", BaseDir: dir})
	require.NoError(t, err)
	require.Equal(t, sweep.Grid{{1, 2}}, jsonGrid)

	yamlGrid, err := r.Resolve(testContext(), &config.GridDefinition{Name: "y", Source: "cells.yaml", BaseDir: dir})
	require.NoError(t, err)
	require.Equal(t, sweep.Grid{{3, 4}}, yamlGrid)
}

func TestResolver_HTTPSource(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/grid.json":
			_, _ = w.Write([]byte(`[[9, 8], [7, 6]]`))
		case "/grid.txt":
			_, _ = w.Write([]byte("1 1\n2 2\n"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	r := NewResolver()
	t.Cleanup(func() { _ = r.Close() })

	grid, err := r.Resolve(testContext(), &config.GridDefinition{Name: "remote", Source: server.URL + "/grid.json"})
	require.NoError(t, err)
	require.Equal(t, sweep.Grid{{9, 8}, {7, 6}}, grid)

	grid, err = r.Resolve(testContext(), &config.GridDefinition{Name: "remote-txt", Source: server.URL + "/grid.txt"})
	require.NoError(t, err)
	require.Equal(t, sweep.Grid{{1, 1}, {2, 2}}, grid)

	_, err = r.Resolve(testContext(), &config.GridDefinition{Name: "missing", Source: server.URL + "/nope.txt"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `grid "missing"`)
}

func TestResolver_RejectsMalformedGrids(t *testing.T) {
	t.Parallel()

	r := NewResolver()
	t.Cleanup(func() { _ = r.Close() })

	// Ragged rows pass parsing but fail validation, with the grid's
	// identity attached.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ragged.txt"), []byte("1 2 3\n4 5\n"), 0644))

	_, err := r.Resolve(testContext(), &config.GridDefinition{
		Name:     "ragged",
		Source:   "ragged.txt",
		BaseDir:  dir,
		DeclFile: "main.hcl",
	})

	require.Error(t, err)
	require.ErrorIs(t, err, sweep.ErrInvalidParameter)
	require.Contains(t, err.Error(), `grid "ragged"`)
	require.Contains(t, err.Error(), "main.hcl")

	_, err = r.Resolve(testContext(), &config.GridDefinition{Name: "missing-file", Source: "nope.txt", BaseDir: dir})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read grid file")
}
