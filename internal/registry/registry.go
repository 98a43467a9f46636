package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/vk/sweepgridgo/internal/config"
	"github.com/vk/sweepgridgo/pkg/sweep"
	"github.com/zclconf/go-cty/cty"
)

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// ScanFunc is the signature of a scan operation's handler. It receives the
// resolved grid and its decoded input struct, and returns the operation's
// output as a cty value for the report.
type ScanFunc func(ctx context.Context, grid sweep.Grid, input any) (cty.Value, error)

// RegisteredScanner holds the compiled Go parts of a scan operation.
type RegisteredScanner struct {
	// NewInput returns a fresh instance of the operation's input struct,
	// to be populated from the scan's 'arguments' block.
	NewInput func() any

	// Fn is the operation handler invoked by the executor.
	Fn ScanFunc
}

// Registry holds all the registered scan operations for a single
// application instance.
type Registry struct {
	Scanners map[string]*RegisteredScanner
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		Scanners: make(map[string]*RegisteredScanner),
	}
}

// RegisterScanner registers a scan operation under its manifest type name.
// A duplicate registration is a programmer error and panics at startup.
func (r *Registry) RegisterScanner(opType string, scanner *RegisteredScanner) {
	if _, exists := r.Scanners[opType]; exists {
		panic(fmt.Sprintf("scan operation with type '%s' already registered", opType))
	}
	slog.Debug("Registering scan operation.", "opType", opType)
	r.Scanners[opType] = scanner
}

// OpTypes returns the registered operation type names, sorted.
func (r *Registry) OpTypes() []string {
	types := make([]string, 0, len(r.Scanners))
	for t := range r.Scanners {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// ValidateModel checks every scan in the model against the registry and the
// declared grids, so that reference errors surface at startup rather than
// mid-run.
func (r *Registry) ValidateModel(ctx context.Context, model *config.Model) error {
	var errs []string

	for _, scan := range model.Scans {
		if _, ok := r.Scanners[scan.OpType]; !ok {
			errs = append(errs, fmt.Sprintf("scan '%s': unknown operation type '%s' (registered: %s)",
				scan.ID(), scan.OpType, strings.Join(r.OpTypes(), ", ")))
		}
		if _, ok := model.Grids[scan.GridName]; !ok {
			errs = append(errs, fmt.Sprintf("scan '%s': references undeclared grid '%s'", scan.ID(), scan.GridName))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
