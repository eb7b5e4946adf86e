package comparison_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velyan/dirdiff/internal/comparison"
)

func TestCommandBuilderBuildRegistersFlags(testInstance *testing.T) {
	builder := &comparison.CommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	require.Equal(testInstance, "compare <first-directory> <second-directory>", command.Use)

	flagNames := []string{
		"ignore-ext",
		"only-ext",
		"ignore-dirs",
		"ignore-files",
		"output",
		"show-diffs",
		"workers",
	}
	for _, flagName := range flagNames {
		require.NotNil(testInstance, command.Flags().Lookup(flagName), flagName)
	}

	outputFlag := command.Flags().Lookup("output")
	require.Equal(testInstance, "o", outputFlag.Shorthand)
}

func TestCommandBuilderRejectsWrongArgumentCount(testInstance *testing.T) {
	builder := &comparison.CommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetArgs([]string{"only-one-directory"})
	command.SetContext(context.Background())

	require.Error(testInstance, command.Execute())
}

func TestCommandBuilderRunWritesReportThroughFlags(testInstance *testing.T) {
	firstRoot := testInstance.TempDir()
	secondRoot := testInstance.TempDir()
	writeServiceTestFile(testInstance, firstRoot, "main.go", "package main\n")
	writeServiceTestFile(testInstance, secondRoot, "main.go", "package main\n")
	writeServiceTestFile(testInstance, firstRoot, "extra.log", "noise\n")
	writeServiceTestFile(testInstance, firstRoot, "solo.txt", "content\n")

	reportPath := filepath.Join(testInstance.TempDir(), "comparison_report.txt")

	builder := &comparison.CommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetArgs([]string{
		firstRoot,
		secondRoot,
		"--ignore-ext", ".log",
		"--output", reportPath,
	})
	command.SetContext(context.Background())

	require.NoError(testInstance, command.Execute())

	persistedReport, readError := os.ReadFile(reportPath)
	require.NoError(testInstance, readError)
	require.Contains(testInstance, string(persistedReport), "  ➤ solo.txt")
	require.NotContains(testInstance, string(persistedReport), "extra.log")
}

func TestCommandBuilderRunReportsMissingRoot(testInstance *testing.T) {
	existingRoot := testInstance.TempDir()
	missingRoot := filepath.Join(existingRoot, "absent")

	builder := &comparison.CommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetArgs([]string{missingRoot, existingRoot})
	command.SetContext(context.Background())

	require.Error(testInstance, command.Execute())
}

func TestCommandBuilderConfigurationProviderSuppliesDefaults(testInstance *testing.T) {
	firstRoot := testInstance.TempDir()
	secondRoot := testInstance.TempDir()
	writeServiceTestFile(testInstance, firstRoot, "kept.go", "package kept\n")
	writeServiceTestFile(testInstance, secondRoot, "kept.go", "package kept\n")
	writeServiceTestFile(testInstance, firstRoot, "node_modules/dep.js", "module.exports = 1\n")

	reportPath := filepath.Join(testInstance.TempDir(), "comparison_report.txt")

	builder := &comparison.CommandBuilder{
		ConfigurationProvider: func() comparison.CommandConfiguration {
			return comparison.CommandConfiguration{
				IgnoreDirectories: []string{"node_modules"},
				ReportPath:        reportPath,
			}
		},
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	command.SetArgs([]string{firstRoot, secondRoot})
	command.SetContext(context.Background())

	require.NoError(testInstance, command.Execute())

	persistedReport, readError := os.ReadFile(reportPath)
	require.NoError(testInstance, readError)
	require.NotContains(testInstance, string(persistedReport), "node_modules")
}
