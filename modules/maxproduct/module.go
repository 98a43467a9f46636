// Package maxproduct provides the 'max_product' scan operation: the
// greatest product of a fixed number of contiguous cells along the four
// base directions.
package maxproduct

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

// Input defines the arguments for the max_product scan.
type Input struct {
	RunLength   int `hcl:"run_length"`
	Parallelism int `hcl:"parallelism,optional"`
}

// OnScanMaxProduct is the handler for the 'max_product' scan operation.
func OnScanMaxProduct(ctx context.Context, grid sweep.Grid, input any) (cty.Value, error) {
	in := input.(*Input)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Searching for greatest product.", "runLength", in.RunLength, "parallelism", in.Parallelism)

	product, runs, err := executor.MaxProduct(ctx, grid, in.RunLength, in.Parallelism)
	if err != nil {
		return cty.NilVal, err
	}

	return cty.ObjectVal(map[string]cty.Value{
		"product": cty.NumberIntVal(product),
		"runs":    cty.NumberIntVal(int64(runs)),
	}), nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterScanner("max_product", &registry.RegisteredScanner{
		NewInput: func() any { return new(Input) },
		Fn:       OnScanMaxProduct,
	})
}
