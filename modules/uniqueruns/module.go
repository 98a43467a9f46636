// Package uniqueruns provides the 'unique_runs' scan operation: the number
// of distinct runs of a fixed length, where a run and its reverse count as
// one.
package uniqueruns

import (
	"context"

	"github.com/vk/sweepgridgo/internal/ctxlog"
	"github.com/vk/sweepgridgo/internal/executor"
	"github.com/vk/sweepgridgo/internal/registry"
	"github.com/vk/sweepgridgo/pkg/sweep"
	"github.com/zclconf/go-cty/cty"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the unique_runs scan.
type Input struct {
	RunLength   int `hcl:"run_length"`
	Parallelism int `hcl:"parallelism,optional"`
}

// OnScanUniqueRuns is the handler for the 'unique_runs' scan operation.
func OnScanUniqueRuns(ctx context.Context, grid sweep.Grid, input any) (cty.Value, error) {
	in := input.(*Input)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Counting unique runs.", "runLength", in.RunLength, "parallelism", in.Parallelism)

	count, runs, err := executor.UniqueRuns(ctx, grid, in.RunLength, in.Parallelism)
	if err != nil {
		return cty.NilVal, err
	}

	return cty.ObjectVal(map[string]cty.Value{
		"count": cty.NumberIntVal(int64(count)),
		"runs":  cty.NumberIntVal(int64(runs)),
	}), nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterScanner("unique_runs", &registry.RegisteredScanner{
		NewInput: func() any { return new(Input) },
		Fn:       OnScanUniqueRuns,
	})
}
