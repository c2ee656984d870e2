// Package registry provides the explicit type registry that backs name
// resolution.
//
// The Registry stores mappings between the textual names used in
// annotations (e.g., "int", "app.models.User") and the type descriptors
// that values are compared against. Builtin types are present from
// construction; user types are registered at startup, either directly or
// through lazily loaded packages that play the role of importable modules.
//
// Every descriptor is interned by its registry, so two descriptors denote
// the same type if and only if they are the same pointer.
package registry
