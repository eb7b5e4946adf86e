package comparison

import "strings"

const (
	ignoreExtensionsConfigurationKeyConstant   = "ignore_extensions"
	onlyExtensionsConfigurationKeyConstant     = "only_extensions"
	ignoreDirectoriesConfigurationKeyConstant  = "ignore_directories"
	ignoreFilePatternsConfigurationKeyConstant = "ignore_file_patterns"
	reportPathConfigurationKeyConstant         = "report_path"
	showDiffsConfigurationKeyConstant          = "show_diffs"
	workersConfigurationKeyConstant            = "workers"
	configurationKeySeparatorConstant          = "."
)

// CommandConfiguration captures persistent settings for the compare command.
type CommandConfiguration struct {
	IgnoreExtensions   []string `mapstructure:"ignore_extensions"`
	OnlyExtensions     []string `mapstructure:"only_extensions"`
	IgnoreDirectories  []string `mapstructure:"ignore_directories"`
	IgnoreFilePatterns []string `mapstructure:"ignore_file_patterns"`
	ReportPath         string   `mapstructure:"report_path"`
	ShowDiffs          bool     `mapstructure:"show_diffs"`
	Workers            int      `mapstructure:"workers"`
}

// DefaultCommandConfiguration returns baseline configuration values for the
// compare command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		IgnoreExtensions:   nil,
		OnlyExtensions:     nil,
		IgnoreDirectories:  nil,
		IgnoreFilePatterns: nil,
		ReportPath:         "",
		ShowDiffs:          false,
		Workers:            0,
	}
}

// DefaultConfigurationValues exposes the default values keyed for Viper
// registration beneath the provided configuration key.
func DefaultConfigurationValues(configurationKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	keyPrefix := configurationKey + configurationKeySeparatorConstant
	return map[string]any{
		keyPrefix + ignoreExtensionsConfigurationKeyConstant:   defaults.IgnoreExtensions,
		keyPrefix + onlyExtensionsConfigurationKeyConstant:     defaults.OnlyExtensions,
		keyPrefix + ignoreDirectoriesConfigurationKeyConstant:  defaults.IgnoreDirectories,
		keyPrefix + ignoreFilePatternsConfigurationKeyConstant: defaults.IgnoreFilePatterns,
		keyPrefix + reportPathConfigurationKeyConstant:         defaults.ReportPath,
		keyPrefix + showDiffsConfigurationKeyConstant:          defaults.ShowDiffs,
		keyPrefix + workersConfigurationKeyConstant:            defaults.Workers,
	}
}

// sanitize trims blank entries and normalizes unset values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.IgnoreExtensions = sanitizeValues(configuration.IgnoreExtensions)
	sanitized.OnlyExtensions = sanitizeValues(configuration.OnlyExtensions)
	sanitized.IgnoreDirectories = sanitizeValues(configuration.IgnoreDirectories)
	sanitized.IgnoreFilePatterns = sanitizeValues(configuration.IgnoreFilePatterns)
	sanitized.ReportPath = strings.TrimSpace(configuration.ReportPath)
	if sanitized.Workers < 0 {
		sanitized.Workers = 0
	}
	return sanitized
}

func sanitizeValues(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	for index := range raw {
		trimmed := strings.TrimSpace(raw[index])
		if len(trimmed) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmed)
	}
	return sanitized
}
