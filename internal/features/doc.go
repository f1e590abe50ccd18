// Package features derives the per-day feature labels for a puzzle year and
// renders them as the feature table of a Cargo manifest: a "default" list
// holding every day, followed by one empty feature entry per day.
package features
