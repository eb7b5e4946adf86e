package scan

import "sort"

// FileSet is a set of slash-normalized relative file paths produced by one
// scan. Two paths from different roots identify the same file exactly when
// their strings are equal.
type FileSet map[string]struct{}

// NewFileSet constructs an empty FileSet.
func NewFileSet() FileSet {
	return make(FileSet)
}

// Add inserts a relative path into the set.
func (fileSet FileSet) Add(relativePath string) {
	fileSet[relativePath] = struct{}{}
}

// Contains reports whether the relative path is present in the set.
func (fileSet FileSet) Contains(relativePath string) bool {
	_, present := fileSet[relativePath]
	return present
}

// Len returns the number of paths in the set.
func (fileSet FileSet) Len() int {
	return len(fileSet)
}

// Difference returns the paths present in the receiver but absent from other.
func (fileSet FileSet) Difference(other FileSet) FileSet {
	difference := make(FileSet)
	for relativePath := range fileSet {
		if !other.Contains(relativePath) {
			difference.Add(relativePath)
		}
	}
	return difference
}

// Intersection returns the paths present in both sets.
func (fileSet FileSet) Intersection(other FileSet) FileSet {
	intersection := make(FileSet)
	for relativePath := range fileSet {
		if other.Contains(relativePath) {
			intersection.Add(relativePath)
		}
	}
	return intersection
}

// SortedPaths returns the set contents as a lexicographically sorted slice.
func (fileSet FileSet) SortedPaths() []string {
	sortedPaths := make([]string, 0, len(fileSet))
	for relativePath := range fileSet {
		sortedPaths = append(sortedPaths, relativePath)
	}
	sort.Strings(sortedPaths)
	return sortedPaths
}
