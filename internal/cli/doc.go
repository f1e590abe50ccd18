// Package cli defines the Cobra command tree for gen-features. The root
// command prints the feature table for a year; every other file registers one
// subcommand with the root. Commands delegate to internal packages for the
// generation itself and only handle arguments and output streams.
package cli
