package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads a manifest from the given path (a file or a directory
	// merged recursively), translates it into the format-agnostic model,
	// and returns a matching Converter.
	Load(ctx context.Context, path string) (*Model, Converter, error)
}

// Converter is the interface for format-specific data binding. It bridges
// raw argument expressions and the Go input structs declared by scan
// operations.
type Converter interface {
	// DecodeArguments evaluates the raw argument expressions and populates
	// the target struct, enforcing required fields and type conversions.
	DecodeArguments(ctx context.Context, target any, args map[string]hcl.Expression) error
}
