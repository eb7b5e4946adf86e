package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	rootNotFoundMessageConstant     = "root directory does not exist"
	rootStatErrorTemplateConstant   = "%w: %s"
	rootWalkFailureTemplateConstant = "failed to walk %s: %w"
)

// ErrRootNotFound indicates that a comparison root is not an existing
// directory. It is the only error a scan surfaces; everything beneath a valid
// root is traversed best-effort.
var ErrRootNotFound = errors.New(rootNotFoundMessageConstant)

// Scanner enumerates the regular files beneath a root that survive a
// FilterConfiguration.
type Scanner struct{}

// NewScanner constructs a Scanner backed by filepath.WalkDir.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan walks rootPath depth-first and returns the set of slash-normalized
// relative paths of the regular files that pass the filter. Directories whose
// bare name is ignored are pruned entirely, so files beneath them never
// appear regardless of their own filter status. Symlinks and other
// non-regular entries are skipped and symlinked directories are never
// descended into. Unreadable subtrees are skipped rather than failing the
// scan.
func (scanner *Scanner) Scan(rootPath string, configuration FilterConfiguration) (FileSet, error) {
	rootInfo, statError := os.Stat(rootPath)
	if statError != nil || !rootInfo.IsDir() {
		return nil, fmt.Errorf(rootStatErrorTemplateConstant, ErrRootNotFound, rootPath)
	}

	fileSet := NewFileSet()

	walkError := filepath.WalkDir(rootPath, func(path string, directoryEntry fs.DirEntry, entryError error) error {
		if entryError != nil {
			if path == rootPath {
				return entryError
			}
			return nil
		}

		if directoryEntry.IsDir() {
			if path == rootPath {
				return nil
			}
			if !configuration.IncludesDirectory(directoryEntry.Name()) {
				return fs.SkipDir
			}
			return nil
		}

		if !directoryEntry.Type().IsRegular() {
			return nil
		}

		if !configuration.IncludesFile(directoryEntry.Name()) {
			return nil
		}

		relativePath, relativeError := filepath.Rel(rootPath, path)
		if relativeError != nil {
			return nil
		}

		fileSet.Add(filepath.ToSlash(relativePath))
		return nil
	})
	if walkError != nil {
		return nil, fmt.Errorf(rootWalkFailureTemplateConstant, rootPath, walkError)
	}

	return fileSet, nil
}
