package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	applicationTestFilePermissionsConstant      = 0o644
	applicationTestDirectoryPermissionsConstant = 0o755
)

func writeApplicationTestFile(testInstance *testing.T, rootPath string, relativePath string, content string) {
	testInstance.Helper()

	fullPath := filepath.Join(rootPath, filepath.FromSlash(relativePath))
	require.NoError(testInstance, os.MkdirAll(filepath.Dir(fullPath), applicationTestDirectoryPermissionsConstant))
	require.NoError(testInstance, os.WriteFile(fullPath, []byte(content), applicationTestFilePermissionsConstant))
}

func TestNewApplicationRegistersPersistentFlagsAndSubcommands(testInstance *testing.T) {
	application := NewApplication()
	require.NotNil(testInstance, application.rootCommand)

	persistentFlagNames := []string{
		configFileFlagNameConstant,
		logLevelFlagNameConstant,
		logFormatFlagNameConstant,
	}
	for _, flagName := range persistentFlagNames {
		require.NotNil(testInstance, application.rootCommand.PersistentFlags().Lookup(flagName), flagName)
	}

	subcommandNames := make([]string, 0, len(application.rootCommand.Commands()))
	for _, subcommand := range application.rootCommand.Commands() {
		subcommandNames = append(subcommandNames, subcommand.Name())
	}
	require.Contains(testInstance, subcommandNames, "compare")
}

func TestApplicationExecuteWithoutArgumentsShowsHelp(testInstance *testing.T) {
	application := NewApplication()

	outputBuffer := &bytes.Buffer{}
	application.rootCommand.SetOut(outputBuffer)
	application.rootCommand.SetErr(outputBuffer)
	application.rootCommand.SetArgs(nil)

	require.NoError(testInstance, application.Execute())
	require.Contains(testInstance, outputBuffer.String(), applicationNameConstant)
}

func TestApplicationExecuteComparesWithEmbeddedDefaults(testInstance *testing.T) {
	firstRoot := testInstance.TempDir()
	secondRoot := testInstance.TempDir()
	writeApplicationTestFile(testInstance, firstRoot, "main.go", "package main\n")
	writeApplicationTestFile(testInstance, secondRoot, "main.go", "package main\n")
	writeApplicationTestFile(testInstance, firstRoot, "node_modules/dep.js", "module.exports = 1\n")
	writeApplicationTestFile(testInstance, firstRoot, ".git/HEAD", "ref: refs/heads/main\n")
	writeApplicationTestFile(testInstance, firstRoot, "solo.txt", "content\n")

	reportPath := filepath.Join(testInstance.TempDir(), "comparison_report.txt")

	application := NewApplication()
	application.rootCommand.SetOut(&bytes.Buffer{})
	application.rootCommand.SetErr(&bytes.Buffer{})
	application.rootCommand.SetArgs([]string{
		"compare",
		firstRoot,
		secondRoot,
		"--output", reportPath,
	})

	require.NoError(testInstance, application.Execute())

	persistedReport, readError := os.ReadFile(reportPath)
	require.NoError(testInstance, readError)
	require.Contains(testInstance, string(persistedReport), "  ➤ solo.txt")
	require.NotContains(testInstance, string(persistedReport), "node_modules")
	require.NotContains(testInstance, string(persistedReport), ".git/HEAD")
}

func TestApplicationExecuteRejectsInvalidLogLevel(testInstance *testing.T) {
	application := NewApplication()
	application.rootCommand.SetOut(&bytes.Buffer{})
	application.rootCommand.SetErr(&bytes.Buffer{})
	application.rootCommand.SetArgs([]string{"--log-level", "verbose"})

	require.Error(testInstance, application.Execute())
}
