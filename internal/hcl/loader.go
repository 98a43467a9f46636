package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/sweepgridgo/internal/config"
	"github.com/vk/sweepgridgo/internal/ctxlog"
	"github.com/vk/sweepgridgo/internal/fsutil"
	"github.com/vk/sweepgridgo/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the entire HCL manifest loading process. The path may be
// a single .hcl file or a directory, in which case every .hcl file found
// recursively is merged into one model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	model := &config.Model{
		Grids: make(map[string]*config.GridDefinition),
	}

	hclFiles, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, nil, err
	}
	if len(hclFiles) == 0 {
		return nil, nil, fmt.Errorf("no .hcl manifest files found at %s", path)
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	seenScans := make(map[string]string)

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.FileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		baseDir := filepath.Dir(file)

		for _, grid := range root.Grids {
			def, err := translateGrid(grid, file, baseDir)
			if err != nil {
				return nil, nil, err
			}
			if prev, exists := model.Grids[def.Name]; exists {
				return nil, nil, fmt.Errorf("duplicate grid %q: declared in %s and %s", def.Name, prev.DeclFile, file)
			}
			model.Grids[def.Name] = def
		}

		for _, scan := range root.Scans {
			s := translateScan(scan, file)
			if prev, exists := seenScans[s.ID()]; exists {
				return nil, nil, fmt.Errorf("duplicate scan %q: declared in %s and %s", s.ID(), prev, file)
			}
			seenScans[s.ID()] = file
			model.Scans = append(model.Scans, s)
		}
	}

	logger.Debug("HCL loading complete.", "grids", len(model.Grids), "scans", len(model.Scans))
	return model, NewConverter(), nil
}
