package scan

import (
	"path/filepath"
	"strings"
)

const (
	extensionSeparatorConstant = "."
)

// FilterConfiguration captures the exclusion and inclusion rules applied to
// every regular file encountered during a scan. Values are normalized once at
// construction time and the configuration is immutable afterwards.
type FilterConfiguration struct {
	ignoredExtensions     map[string]struct{}
	allowedExtensions     map[string]struct{}
	ignoredDirectoryNames map[string]struct{}
	ignoredFilenameGlobs  []string
	allowListActive       bool
}

// NewFilterConfiguration builds a FilterConfiguration from raw option values.
// Extensions are lowercased and leading dots are stripped, so ".PY", ".py",
// and "py" all describe the same extension. Blank entries are discarded.
func NewFilterConfiguration(ignoreExtensions []string, onlyExtensions []string, ignoreDirectoryNames []string, ignoreFilePatterns []string) FilterConfiguration {
	configuration := FilterConfiguration{
		ignoredExtensions:     normalizeExtensionSet(ignoreExtensions),
		allowedExtensions:     normalizeExtensionSet(onlyExtensions),
		ignoredDirectoryNames: normalizeNameSet(ignoreDirectoryNames),
		ignoredFilenameGlobs:  normalizeGlobList(ignoreFilePatterns),
	}
	configuration.allowListActive = len(configuration.allowedExtensions) > 0
	return configuration
}

// IncludesFile reports whether a file with the provided bare filename survives
// filtering. Rules apply in order, first match excluding the file: filename
// glob patterns, the extension allow-list when non-empty, and finally the
// extension ignore-list.
func (configuration FilterConfiguration) IncludesFile(filename string) bool {
	for _, pattern := range configuration.ignoredFilenameGlobs {
		matched, matchError := filepath.Match(pattern, filename)
		if matchError == nil && matched {
			return false
		}
	}

	extension := ExtensionOf(filename)

	if configuration.allowListActive {
		if _, allowed := configuration.allowedExtensions[extension]; !allowed {
			return false
		}
	}

	if _, ignored := configuration.ignoredExtensions[extension]; ignored {
		return false
	}

	return true
}

// IncludesDirectory reports whether traversal may descend into a directory
// with the provided bare name.
func (configuration FilterConfiguration) IncludesDirectory(directoryName string) bool {
	_, ignored := configuration.ignoredDirectoryNames[directoryName]
	return !ignored
}

// ExtensionOf returns the lowercased substring after the last dot in the
// filename. A filename without a dot has an empty extension.
func ExtensionOf(filename string) string {
	separatorIndex := strings.LastIndex(filename, extensionSeparatorConstant)
	if separatorIndex < 0 {
		return ""
	}
	return strings.ToLower(filename[separatorIndex+len(extensionSeparatorConstant):])
}

func normalizeExtensionSet(rawExtensions []string) map[string]struct{} {
	normalized := make(map[string]struct{}, len(rawExtensions))
	for _, rawExtension := range rawExtensions {
		trimmed := strings.TrimSpace(rawExtension)
		trimmed = strings.TrimPrefix(trimmed, extensionSeparatorConstant)
		if len(trimmed) == 0 {
			continue
		}
		normalized[strings.ToLower(trimmed)] = struct{}{}
	}
	return normalized
}

func normalizeNameSet(rawNames []string) map[string]struct{} {
	normalized := make(map[string]struct{}, len(rawNames))
	for _, rawName := range rawNames {
		trimmed := strings.TrimSpace(rawName)
		if len(trimmed) == 0 {
			continue
		}
		normalized[trimmed] = struct{}{}
	}
	return normalized
}

func normalizeGlobList(rawPatterns []string) []string {
	normalized := make([]string, 0, len(rawPatterns))
	for _, rawPattern := range rawPatterns {
		trimmed := strings.TrimSpace(rawPattern)
		if len(trimmed) == 0 {
			continue
		}
		normalized = append(normalized, trimmed)
	}
	return normalized
}
