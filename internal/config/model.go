package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Model is the unified, format-agnostic representation of the entire sweep
// manifest: every declared grid and every scan to run over them.
type Model struct {
	Grids map[string]*GridDefinition
	Scans []*Scan
}

// GridDefinition is the format-agnostic representation of a `grid` block.
// Exactly one of Source and Cells is set; the loader rejects anything else.
type GridDefinition struct {
	Name string

	// Source is a file path or http(s) URL the cells are resolved from.
	// Relative paths are resolved against BaseDir.
	Source string

	// Cells holds inline cell data, already decoded from the manifest.
	Cells [][]int

	// BaseDir is the directory of the manifest file the block was declared
	// in, so relative Source paths stay stable regardless of the process's
	// working directory.
	BaseDir string

	// DeclFile is the manifest file the block came from, for error messages.
	DeclFile string
}

// Inline reports whether the grid's cells were declared in the manifest
// itself rather than behind a source reference.
func (g *GridDefinition) Inline() bool {
	return g.Source == ""
}

// Scan is the format-agnostic representation of a `scan` block: one
// invocation of a registered scan operation against a named grid.
type Scan struct {
	// OpType names the registered operation, e.g. "max_product".
	OpType string

	// Name is the instance name, unique per operation type.
	Name string

	// GridName references a declared grid block by name.
	GridName string

	// Arguments holds the raw attribute expressions of the `arguments`
	// block, decoded lazily into the operation's input struct just before
	// execution.
	Arguments map[string]hcl.Expression

	// DeclFile is the manifest file the block came from, for error messages.
	DeclFile string
}

// ID returns the scan's unique address within a run, e.g. "max_product.top3".
func (s *Scan) ID() string {
	return s.OpType + "." + s.Name
}
