// This file contains the logic for translating HCL schema structs into the
// format-agnostic manifest model defined in the config package.

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/sweepgridgo/internal/config"
	"github.com/vk/sweepgridgo/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateGrid converts a grid block into the agnostic model, enforcing
// that exactly one of 'source' and 'cells' is declared.
func translateGrid(b *schema.GridBlock, file, baseDir string) (*config.GridDefinition, error) {
	hasSource := b.Source != nil && *b.Source != ""
	hasCells := b.Cells != nil && !b.Cells.IsNull()

	if hasSource == hasCells {
		return nil, fmt.Errorf("grid %q in %s: exactly one of 'source' and 'cells' must be set", b.Name, file)
	}

	def := &config.GridDefinition{
		Name:     b.Name,
		BaseDir:  baseDir,
		DeclFile: file,
	}

	if hasSource {
		def.Source = *b.Source
		return def, nil
	}

	cells, err := decodeCells(*b.Cells)
	if err != nil {
		return nil, fmt.Errorf("grid %q in %s: %w", b.Name, file, err)
	}
	def.Cells = cells
	return def, nil
}

// decodeCells converts an inline 'cells' value into rows of integers.
// Rectangularity is not checked here; the sweep core validates it along
// with everything else before any scan runs.
func decodeCells(v cty.Value) ([][]int, error) {
	converted, err := convert.Convert(v, cty.List(cty.List(cty.Number)))
	if err != nil {
		return nil, fmt.Errorf("'cells' must be a list of lists of numbers: %w", err)
	}

	var cells [][]int
	if err := gocty.FromCtyValue(converted, &cells); err != nil {
		return nil, fmt.Errorf("'cells' contains a non-integer value: %w", err)
	}
	return cells, nil
}

// translateScan converts a scan block into the agnostic model. Argument
// expressions stay undecoded; the operation's input struct decides their
// types at execution time.
func translateScan(b *schema.ScanBlock, file string) *config.Scan {
	return &config.Scan{
		OpType:    b.OpType,
		Name:      b.Name,
		GridName:  b.Grid,
		Arguments: extractBodyAttributes(b.Arguments),
		DeclFile:  file,
	}
}

func extractBodyAttributes(block *schema.ScanArgs) map[string]hcl.Expression {
	if block == nil || block.Body == nil {
		return nil
	}
	attrs, _ := block.Body.JustAttributes()
	if attrs == nil {
		return nil
	}
	exprMap := make(map[string]hcl.Expression)
	for name, attr := range attrs {
		exprMap[name] = attr.Expr
	}
	return exprMap
}
