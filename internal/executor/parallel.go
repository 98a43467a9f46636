// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file implements band-partitioned variants of the two scan
// aggregations. A scan's starting rows are split into contiguous bands, each
// folded by its own goroutine, and the per-band partials are merged at the
// end. This is legal because both aggregations are commutative and
// associative: the maximum of maxima is the maximum, and the union of
// canonical-key sets is the set. Results are bit-for-bit identical to the
// sequential fold.
package executor

import (
	"context"
	"fmt"

	"github.com/vk/sweepgridgo/pkg/sweep"
	"golang.org/x/sync/errgroup"
)

// bandCount clamps the requested parallelism to [1, rows]: a band with no
// starting rows would just be an idle goroutine.
func bandCount(parallelism, rows int) int {
	if parallelism < 1 {
		parallelism = 1
	}
	if parallelism > rows {
		parallelism = rows
	}
	return parallelism
}

// bandBounds returns the half-open starting-row range of band b out of n.
func bandBounds(b, n, rows int) (int, int) {
	return b * rows / n, (b + 1) * rows / n
}

// MaxProduct computes the greatest product of runLength contiguous cells,
// splitting starting rows across parallelism goroutines. It also reports the
// total number of runs enumerated. parallelism <= 1 degenerates to a single
// band, which is the plain sequential fold.
func MaxProduct(ctx context.Context, g sweep.Grid, runLength, parallelism int) (int64, int, error) {
	if err := sweep.Validate(g, runLength); err != nil {
		return 0, 0, err
	}

	type partial struct {
		best  int64
		runs  int
		found bool
	}

	bands := bandCount(parallelism, g.Rows())
	partials := make([]partial, bands)

	eg, egCtx := errgroup.WithContext(ctx)
	for b := 0; b < bands; b++ {
		lo, hi := bandBounds(b, bands, g.Rows())
		p := &partials[b]
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			for run := range sweep.EnumerateRows(g, runLength, sweep.BaseDirections(), lo, hi) {
				if prod := run.Product(g); !p.found || prod > p.best {
					p.best = prod
					p.found = true
				}
				p.runs++
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, 0, err
	}

	var best int64
	runs := 0
	found := false
	for _, p := range partials {
		runs += p.runs
		if p.found && (!found || p.best > best) {
			best = p.best
			found = true
		}
	}
	if !found {
		return 0, 0, fmt.Errorf("%w: run length %d exceeds both grid dimensions (%dx%d)",
			sweep.ErrNoValidRuns, runLength, g.Rows(), g.Cols())
	}
	return best, runs, nil
}

// UniqueRuns counts distinct canonical runs of runLength cells, splitting
// starting rows across parallelism goroutines. It also reports the total
// number of runs enumerated. A run length that fits in neither dimension
// yields a count of 0 with no error.
func UniqueRuns(ctx context.Context, g sweep.Grid, runLength, parallelism int) (int, int, error) {
	if err := sweep.Validate(g, runLength); err != nil {
		return 0, 0, err
	}

	bands := bandCount(parallelism, g.Rows())
	partials := make([]map[string]struct{}, bands)
	runCounts := make([]int, bands)

	eg, egCtx := errgroup.WithContext(ctx)
	for b := 0; b < bands; b++ {
		lo, hi := bandBounds(b, bands, g.Rows())
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			seen := make(map[string]struct{})
			for run := range sweep.EnumerateRows(g, runLength, sweep.BaseDirections(), lo, hi) {
				seen[run.CanonicalKey(g)] = struct{}{}
				runCounts[b]++
			}
			partials[b] = seen
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, 0, err
	}

	merged := make(map[string]struct{})
	runs := 0
	for b, seen := range partials {
		runs += runCounts[b]
		for key := range seen {
			merged[key] = struct{}{}
		}
	}
	return len(merged), runs, nil
}
