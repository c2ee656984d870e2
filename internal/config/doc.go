// Package config defines the format-agnostic manifest model for the
// application, along with the core interfaces (Loader, Converter) for
// loading manifests and evaluating the values they declare.
//
// The `config.Model` is the single source of truth for the `app` package.
// Concrete implementations of the interfaces, such as for HCL, are provided
// in separate packages.
package config
