package comparison

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/velyan/dirdiff/internal/report"
	"github.com/velyan/dirdiff/internal/utils"
)

const (
	commandUseConstant                    = "compare <first-directory> <second-directory>"
	commandShortDescriptionConstant       = "Compare two directory trees and report their differences"
	commandLongDescriptionConstant        = "compare walks both directory trees, filters files per configuration, and reports files present on only one side plus unified diffs for files whose contents differ."
	commandExecutionErrorTemplateConstant = "comparison failed: %w"
	expectedArgumentCountConstant         = 2
	firstRootArgumentIndexConstant        = 0
	secondRootArgumentIndexConstant       = 1
	flagIgnoreExtensionsNameConstant      = "ignore-ext"
	flagIgnoreExtensionsUsageConstant     = "File extensions to ignore (e.g. .log,.tmp)"
	flagOnlyExtensionsNameConstant        = "only-ext"
	flagOnlyExtensionsUsageConstant       = "Only compare files with these extensions (e.g. .go,.yaml)"
	flagIgnoreDirectoriesNameConstant     = "ignore-dirs"
	flagIgnoreDirectoriesUsageConstant    = "Directory names pruned from traversal at any depth (e.g. .git,node_modules)"
	flagIgnoreFilesNameConstant           = "ignore-files"
	flagIgnoreFilesUsageConstant          = "Filename glob patterns to ignore (e.g. *.lock)"
	flagOutputNameConstant                = "output"
	flagOutputShorthandConstant           = "o"
	flagOutputUsageConstant               = "Write the detailed report to this file instead of the console"
	flagShowDiffsNameConstant             = "show-diffs"
	flagShowDiffsUsageConstant            = "Append each differing file's unified diff to the report"
	flagWorkersNameConstant               = "workers"
	flagWorkersUsageConstant              = "Number of parallel file comparisons (0 selects one per CPU)"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the persisted compare configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the Cobra command for directory comparison.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
}

// Build constructs the compare command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ExactArgs(expectedArgumentCountConstant),
		RunE:  builder.run,
	}

	command.Flags().StringSlice(flagIgnoreExtensionsNameConstant, nil, flagIgnoreExtensionsUsageConstant)
	command.Flags().StringSlice(flagOnlyExtensionsNameConstant, nil, flagOnlyExtensionsUsageConstant)
	command.Flags().StringSlice(flagIgnoreDirectoriesNameConstant, nil, flagIgnoreDirectoriesUsageConstant)
	command.Flags().StringSlice(flagIgnoreFilesNameConstant, nil, flagIgnoreFilesUsageConstant)
	command.Flags().StringP(flagOutputNameConstant, flagOutputShorthandConstant, "", flagOutputUsageConstant)
	command.Flags().Bool(flagShowDiffsNameConstant, false, flagShowDiffsUsageConstant)
	command.Flags().Int(flagWorkersNameConstant, 0, flagWorkersUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options := builder.buildOptions(command, arguments)

	executionContext, stopSignalNotifications := signal.NotifyContext(command.Context(), os.Interrupt, syscall.SIGTERM)
	defer stopSignalNotifications()

	consoleReporter := report.NewWriterReporter(utils.NewFlushingWriter(os.Stdout))
	service := NewService(builder.resolveLogger(), consoleReporter, nil)

	_, runError := service.Run(executionContext, options)
	if runError != nil {
		if errors.Is(runError, ErrInterrupted) {
			return runError
		}
		return fmt.Errorf(commandExecutionErrorTemplateConstant, runError)
	}

	return nil
}

// buildOptions merges the persisted configuration with explicit flag
// overrides; a flag only replaces the configured value when it was set.
func (builder *CommandBuilder) buildOptions(command *cobra.Command, arguments []string) ComparisonOptions {
	configuration := builder.resolveConfiguration().sanitize()

	flagSet := command.Flags()
	if flagSet.Changed(flagIgnoreExtensionsNameConstant) {
		configuration.IgnoreExtensions, _ = flagSet.GetStringSlice(flagIgnoreExtensionsNameConstant)
	}
	if flagSet.Changed(flagOnlyExtensionsNameConstant) {
		configuration.OnlyExtensions, _ = flagSet.GetStringSlice(flagOnlyExtensionsNameConstant)
	}
	if flagSet.Changed(flagIgnoreDirectoriesNameConstant) {
		configuration.IgnoreDirectories, _ = flagSet.GetStringSlice(flagIgnoreDirectoriesNameConstant)
	}
	if flagSet.Changed(flagIgnoreFilesNameConstant) {
		configuration.IgnoreFilePatterns, _ = flagSet.GetStringSlice(flagIgnoreFilesNameConstant)
	}
	if flagSet.Changed(flagOutputNameConstant) {
		configuration.ReportPath, _ = flagSet.GetString(flagOutputNameConstant)
	}
	if flagSet.Changed(flagShowDiffsNameConstant) {
		configuration.ShowDiffs, _ = flagSet.GetBool(flagShowDiffsNameConstant)
	}
	if flagSet.Changed(flagWorkersNameConstant) {
		configuration.Workers, _ = flagSet.GetInt(flagWorkersNameConstant)
	}

	configuration = configuration.sanitize()

	return ComparisonOptions{
		FirstRoot:          arguments[firstRootArgumentIndexConstant],
		SecondRoot:         arguments[secondRootArgumentIndexConstant],
		IgnoreExtensions:   configuration.IgnoreExtensions,
		OnlyExtensions:     configuration.OnlyExtensions,
		IgnoreDirectories:  configuration.IgnoreDirectories,
		IgnoreFilePatterns: configuration.IgnoreFilePatterns,
		ReportPath:         configuration.ReportPath,
		ShowDiffs:          configuration.ShowDiffs,
		WorkerCount:        configuration.Workers,
	}
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}
