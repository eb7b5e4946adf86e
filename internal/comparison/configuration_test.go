package comparison

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	configurationTestKeyConstant = "tools.compare"
)

func TestDefaultConfigurationValuesCoverEveryField(testInstance *testing.T) {
	defaultValues := DefaultConfigurationValues(configurationTestKeyConstant)

	expectedKeys := []string{
		"tools.compare.ignore_extensions",
		"tools.compare.only_extensions",
		"tools.compare.ignore_directories",
		"tools.compare.ignore_file_patterns",
		"tools.compare.report_path",
		"tools.compare.show_diffs",
		"tools.compare.workers",
	}

	require.Len(testInstance, defaultValues, len(expectedKeys))
	for _, expectedKey := range expectedKeys {
		require.Contains(testInstance, defaultValues, expectedKey)
	}

	require.Equal(testInstance, false, defaultValues["tools.compare.show_diffs"])
	require.Equal(testInstance, 0, defaultValues["tools.compare.workers"])
}

func TestCommandConfigurationSanitize(testInstance *testing.T) {
	configuration := CommandConfiguration{
		IgnoreExtensions:   []string{" .log ", "", ".tmp"},
		OnlyExtensions:     []string{"  "},
		IgnoreDirectories:  []string{"node_modules", " "},
		IgnoreFilePatterns: []string{" *.lock "},
		ReportPath:         "  report.txt  ",
		Workers:            -4,
	}

	sanitized := configuration.sanitize()

	require.Equal(testInstance, []string{".log", ".tmp"}, sanitized.IgnoreExtensions)
	require.Empty(testInstance, sanitized.OnlyExtensions)
	require.Equal(testInstance, []string{"node_modules"}, sanitized.IgnoreDirectories)
	require.Equal(testInstance, []string{"*.lock"}, sanitized.IgnoreFilePatterns)
	require.Equal(testInstance, "report.txt", sanitized.ReportPath)
	require.Zero(testInstance, sanitized.Workers)
}
