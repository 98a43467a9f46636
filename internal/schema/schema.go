// Package schema defines the HCL-facing block structures of a sweep
// manifest. These structs mirror the manifest syntax exactly; the hcl
// package translates them into the format-agnostic config model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// ScanArgs represents the content of the 'arguments' block within a scan.
// Attributes stay undecoded until the operation's input struct is known.
type ScanArgs struct {
	Body hcl.Body `hcl:",remain"`
}

// GridBlock represents a `grid` block declaring a named grid. Exactly one
// of Source and Cells must be set; the loader enforces this.
type GridBlock struct {
	Name   string     `hcl:"name,label"`
	Source *string    `hcl:"source,optional"`
	Cells  *cty.Value `hcl:"cells,optional"`
}

// ScanBlock represents a `scan` block: an invocation of a registered scan
// operation against a named grid.
type ScanBlock struct {
	OpType    string    `hcl:"op_type,label"`
	Name      string    `hcl:"instance_name,label"`
	Grid      string    `hcl:"grid"`
	Arguments *ScanArgs `hcl:"arguments,block"`
}

// FileRoot represents the top-level structure of a manifest file,
// containing all declared grids and scans.
type FileRoot struct {
	Grids []*GridBlock `hcl:"grid,block"`
	Scans []*ScanBlock `hcl:"scan,block"`
	Body  hcl.Body     `hcl:",remain"`
}
