// Package scaffold renders the per-year Rust boilerplate that consumes the
// generated feature list: the feature-gated module index (mod.rs) and the
// criterion benchmark harness. Templates are embedded and rendered to a writer;
// nothing is written to disk.
package scaffold
