package executor

import (
	"context"
	"fmt"

	"github.com/vk/sweepgridgo/internal/ctxlog"
)

// worker is the core processing loop for a single concurrent worker.
func (e *Executor) worker(ctx context.Context, jobChan <-chan int, cancel context.CancelFunc, workerID int, results []Result, errs []error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.", "workerID", workerID)

	for idx := range jobChan {
		job := e.jobs[idx]
		workerLogger := logger.With("workerID", workerID, "scanID", job.Scan.ID())

		if ctx.Err() != nil {
			errs[idx] = fmt.Errorf("scan '%s' skipped: %w", job.Scan.ID(), ctx.Err())
			continue
		}

		workerLogger.Debug("Worker picked up scan for execution.")
		output, duration, err := e.runScan(ctx, job)
		if err != nil {
			workerLogger.Error("Scan execution failed.", "error", err)
			errs[idx] = fmt.Errorf("scan '%s': %w", job.Scan.ID(), err)
			cancel()
			continue
		}

		workerLogger.Debug("Scan execution succeeded.", "duration", duration)
		results[idx] = Result{Scan: job.Scan, Grid: job.Grid, Output: output, Duration: duration}
	}
	logger.Debug("Worker finished.", "workerID", workerID)
}
