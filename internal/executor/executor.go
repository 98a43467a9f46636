// Package executor runs the scans of a manifest on a bounded worker pool.
// Scans are independent of one another, so the pool needs no dependency
// tracking: the first failure cancels the shared context and unstarted
// scans are skipped.
package executor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vk/sweepgridgo/internal/config"
	"github.com/vk/sweepgridgo/internal/ctxlog"
	"github.com/vk/sweepgridgo/internal/registry"
	"github.com/vk/sweepgridgo/pkg/sweep"
	"github.com/zclconf/go-cty/cty"
)

// Job pairs a scan from the manifest with its resolved grid.
type Job struct {
	Scan *config.Scan
	Grid sweep.Grid
}

// Result is the outcome of one completed scan. It keeps the grid it ran
// against so the report can show its dimensions.
type Result struct {
	Scan     *config.Scan
	Grid     sweep.Grid
	Output   cty.Value
	Duration time.Duration
}

// Executor dispatches scan jobs to a fixed number of workers.
type Executor struct {
	jobs      []Job
	workers   int
	registry  *registry.Registry
	converter config.Converter
}

// New creates an executor for the given jobs. workers below 1 is clamped
// to 1.
func New(jobs []Job, workers int, reg *registry.Registry, converter config.Converter) *Executor {
	if workers < 1 {
		workers = 1
	}
	return &Executor{
		jobs:      jobs,
		workers:   workers,
		registry:  reg,
		converter: converter,
	}
}

// Run executes all jobs and returns their results in manifest order, not
// completion order. If any scan fails, Run still drains the pool and then
// returns the first error in manifest order.
func (e *Executor) Run(ctx context.Context) ([]Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Executor starting.", "jobs", len(e.jobs), "workers", e.workers)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]Result, len(e.jobs))
	errs := make([]error, len(e.jobs))

	jobChan := make(chan int)
	var wg sync.WaitGroup
	for workerID := 0; workerID < e.workers; workerID++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			e.worker(runCtx, jobChan, cancel, workerID, results, errs)
		}(workerID)
	}

	for idx := range e.jobs {
		jobChan <- idx
	}
	close(jobChan)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	logger.Debug("Executor finished.", "jobs", len(e.jobs))
	return results, nil
}

// runScan decodes the scan's arguments into the operation's input struct and
// invokes its handler.
func (e *Executor) runScan(ctx context.Context, job Job) (cty.Value, time.Duration, error) {
	scanner, ok := e.registry.Scanners[job.Scan.OpType]
	if !ok {
		// Startup validation already rejected unknown types.
		panic(fmt.Sprintf("scan operation '%s' missing from registry", job.Scan.OpType))
	}

	input := scanner.NewInput()
	if err := e.converter.DecodeArguments(ctx, input, job.Scan.Arguments); err != nil {
		return cty.NilVal, 0, fmt.Errorf("invalid arguments: %w", err)
	}

	start := time.Now()
	output, err := scanner.Fn(ctx, job.Grid, input)
	return output, time.Since(start), err
}
