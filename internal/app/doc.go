// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the lifecycle of a manifest check: load the
// manifests, install their packages into a registry, then validate every
// declared call. It is decoupled from any specific entrypoint like a CLI.
package app
