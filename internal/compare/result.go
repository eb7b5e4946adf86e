package compare

import "sort"

// DiffRecord holds the ordered unified-diff lines for one file present in
// both trees, or a single synthetic error line when the file could not be
// read on either side.
type DiffRecord struct {
	Lines       []string
	ReadFailure bool
}

// Result aggregates one comparison run. OnlyInFirst, OnlyInSecond, and the
// keys of Differing are pairwise disjoint; every path in the result passed
// the filter configuration for its tree. A Result is built once per
// invocation and read-only afterwards.
type Result struct {
	FirstRoot    string
	SecondRoot   string
	OnlyInFirst  []string
	OnlyInSecond []string
	Differing    map[string]DiffRecord
}

// HasDifferences reports whether any category of the result is non-empty.
func (result *Result) HasDifferences() bool {
	return len(result.OnlyInFirst) > 0 || len(result.OnlyInSecond) > 0 || len(result.Differing) > 0
}

// DifferingPaths returns the keys of Differing in lexicographic order.
func (result *Result) DifferingPaths() []string {
	differingPaths := make([]string, 0, len(result.Differing))
	for relativePath := range result.Differing {
		differingPaths = append(differingPaths, relativePath)
	}
	sort.Strings(differingPaths)
	return differingPaths
}
