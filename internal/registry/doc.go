// Package registry provides the central "glue" for the module system.
//
// The Registry stores mappings between the operation type names used in
// manifests (e.g., "max_product") and the actual compiled Go functions and
// input types that implement the operation's logic.
//
// During application startup, the registry is populated and the loaded
// manifest model is validated against it, so scans referencing unknown
// operations or undeclared grids fail before anything executes.
package registry
