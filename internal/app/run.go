package app

import (
	"context"
	"fmt"

	"github.com/vk/sweepgridgo/internal/ctxlog"
	"github.com/vk/sweepgridgo/internal/executor"
	"github.com/vk/sweepgridgo/internal/report"
	"github.com/vk/sweepgridgo/internal/source"
	"github.com/vk/sweepgridgo/pkg/sweep"
)

// Run executes the main application logic: resolve every referenced grid,
// run all scans on the worker pool, and render the report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	renderer, err := report.NewRenderer(a.appConfig.ReportFormat)
	if err != nil {
		return err
	}

	if len(a.model.Scans) == 0 {
		a.logger.Warn("No scans found in manifest, execution not required.")
		return nil
	}

	a.logger.Debug("Resolving grids referenced by scans...")
	grids, err := a.resolveGrids(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve grids: %w", err)
	}
	a.logger.Debug("Grids resolved.", "count", len(grids))

	jobs := make([]executor.Job, len(a.model.Scans))
	for i, scan := range a.model.Scans {
		jobs[i] = executor.Job{Scan: scan, Grid: grids[scan.GridName]}
	}

	a.logger.Info("Starting concurrent scan execution.", "scans", len(jobs), "workers", a.appConfig.WorkerCount)
	exec := executor.New(jobs, a.appConfig.WorkerCount, a.registry, a.converter)
	results, err := exec.Run(ctx)
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	a.logger.Info("Execution finished.")

	if err := renderer.Render(a.outW, results); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// resolveGrids resolves each grid referenced by at least one scan, once.
// Declared but unreferenced grids are left untouched.
func (a *App) resolveGrids(ctx context.Context) (map[string]sweep.Grid, error) {
	resolver := source.NewResolver()
	defer func() { _ = resolver.Close() }()

	grids := make(map[string]sweep.Grid)
	for _, scan := range a.model.Scans {
		if _, done := grids[scan.GridName]; done {
			continue
		}
		// Startup validation guarantees the definition exists.
		def := a.model.Grids[scan.GridName]
		grid, err := resolver.Resolve(ctx, def)
		if err != nil {
			return nil, err
		}
		grids[scan.GridName] = grid
	}
	return grids, nil
}
