// Package cli is responsible for parsing command-line arguments and merging
// them over an optional YAML configuration file into an app.Config.
package cli
