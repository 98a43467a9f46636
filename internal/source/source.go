// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Resolver, which turns a grid declaration from the
// manifest into actual cell data.
//
// Why a separate resolution step?
//
// A manifest only names where a grid comes from: inline cells, a local file,
// or an HTTP URL. Keeping retrieval and parsing out of the loader means the
// manifest can be fully validated without touching the network or the file
// system, and every scan operation receives the same thing regardless of
// origin: a sweep.Grid that has already passed validation.
package source

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/vk/sweepgridgo/internal/config"
	"github.com/vk/sweepgridgo/internal/ctxlog"
	"github.com/vk/sweepgridgo/pkg/sweep"
)

// Resolver resolves grid definitions into validated grids.
type Resolver struct {
	fetcher *fetcher
}

// NewResolver creates a Resolver with a shared HTTP client for URL sources.
func NewResolver() *Resolver {
	return &Resolver{fetcher: newFetcher()}
}

// Close releases the underlying HTTP client resources.
func (r *Resolver) Close() error {
	return r.fetcher.Close()
}

// Resolve returns the cells of the given grid definition, validated for the
// smallest legal run length. Scan-specific run lengths are validated again
// by the sweep core; this catches empty and ragged grids once, at load time,
// with the grid's name and origin attached to the error.
func (r *Resolver) Resolve(ctx context.Context, def *config.GridDefinition) (sweep.Grid, error) {
	logger := ctxlog.FromContext(ctx)

	grid, err := r.resolveCells(ctx, def)
	if err != nil {
		return nil, fmt.Errorf("grid %q (declared in %s): %w", def.Name, def.DeclFile, err)
	}

	if err := sweep.Validate(grid, 1); err != nil {
		return nil, fmt.Errorf("grid %q (declared in %s): %w", def.Name, def.DeclFile, err)
	}

	logger.Debug("Grid resolved.", "grid", def.Name, "rows", grid.Rows(), "cols", grid.Cols())
	return grid, nil
}

func (r *Resolver) resolveCells(ctx context.Context, def *config.GridDefinition) (sweep.Grid, error) {
	if def.Inline() {
		return sweep.Grid(def.Cells), nil
	}

	if isURL(def.Source) {
		body, err := r.fetcher.Fetch(ctx, def.Source)
		if err != nil {
			return nil, err
		}
		return parseByExtension(urlExtension(def.Source), body)
	}

	path := def.Source
	if !filepath.IsAbs(path) {
		path = filepath.Join(def.BaseDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid file: %w", err)
	}
	return parseByExtension(filepath.Ext(path), data)
}

func isURL(source string) bool {
	u, err := url.Parse(source)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

// urlExtension extracts the file extension from a URL's path component,
// ignoring query strings and fragments.
func urlExtension(source string) string {
	u, err := url.Parse(source)
	if err != nil {
		return ""
	}
	return filepath.Ext(u.Path)
}
