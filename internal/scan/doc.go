// Package scan walks a directory root and produces the filtered set of
// relative file paths that participate in a comparison.
//
// It exposes FilterConfiguration for describing extension, directory, and
// filename exclusions, Scanner for best-effort traversal, and FileSet for the
// set algebra consumed by the diff engine.
package scan
