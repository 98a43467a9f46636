// Package config defines the format-agnostic manifest model for the
// application, along with the core interfaces (Loader, Converter) for
// loading and interpreting manifests from various sources.
//
// The `config.Model` is the single source of truth for the `source` and
// `executor` packages. Concrete implementations of the interfaces, such as
// for HCL, are provided in separate packages.
package config
