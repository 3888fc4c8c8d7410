// =============================================================================
// HCP PDF to CSV Converter - Configuration Module
// =============================================================================
//
// This module loads and manages the application configuration from a single
// YAML file. Configuration covers the directory layout, logging, output
// naming, concurrency and the extraction fallback knobs.
//
// ARCHITECTURE:
//   - Defaults are applied after unmarshaling, so a missing or partial
//     config file still yields a working setup.
//   - Structural validation runs through go-playground/validator tags.
//   - Required directories are created on load when absent.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration, loaded from
// config.yaml.
type MainConfig struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// InputDir is the directory scanned for input PDF files.
	// Default: "./input"
	InputDir string `yaml:"input_dir" validate:"required"`

	// OutputDir is the directory where generated CSV files are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir" validate:"required"`

	// InputArchiveDir receives processed PDFs after successful conversion.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir" validate:"required"`

	// OutputArchiveDir receives copies of generated CSVs for long-term
	// storage. Default: "./output_archive"
	OutputArchiveDir string `yaml:"output_archive_dir" validate:"required"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogFile is the path to the application log file. Empty disables the
	// file writer; console logging is always on.
	LogFile string `yaml:"log_file"`

	// LogLevel controls log verbosity.
	// Valid values: "debug", "info", "warn", "error". Default: "info"
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputFormat selects the output serialization: "csv" or "xlsx".
	// Default: "csv"
	OutputFormat string `yaml:"output_format" validate:"oneof=csv xlsx"`

	// OutputNameFormat defines the output file name.
	// Placeholders:
	//   {original}  - Input file name without extension
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {uuid}      - A random UUID
	// Default: "{original}_{timestamp}.csv"
	OutputNameFormat string `yaml:"output_name_format" validate:"required"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// MaxConcurrency is the maximum number of PDFs processed concurrently.
	// Set to 1 for sequential processing. Default: 4
	MaxConcurrency int `yaml:"max_concurrency" validate:"min=1"`

	// ContinueOnError keeps the batch going when individual files fail.
	// Opt-out: set "continue_on_error: false" to stop on the first failure.
	ContinueOnError *bool `yaml:"continue_on_error"`

	// =========================================================================
	// EXTRACTION SETTINGS
	// =========================================================================

	// MinTextLength is the minimum number of characters the embedded text
	// layer must yield before it is trusted; anything shorter triggers the
	// external fallback extractor. Default: 100
	MinTextLength int `yaml:"min_text_length" validate:"min=0"`

	// ForceFallback skips the embedded text layer and goes straight to the
	// external extractor, for documents known to be scanned.
	ForceFallback bool `yaml:"force_fallback"`

	// FallbackMaxPages limits the external extractor to the first N pages.
	// Zero processes all pages.
	FallbackMaxPages int `yaml:"fallback_max_pages" validate:"min=0"`

	// TableFallback enables the structured-table sidecar pass when the
	// line-based parse yields zero records. Opt-out, defaults to true.
	TableFallback *bool `yaml:"table_fallback"`
}

// ShouldContinueOnError reports the effective continue-on-error setting.
func (c *MainConfig) ShouldContinueOnError() bool {
	return c.ContinueOnError == nil || *c.ContinueOnError
}

// TableFallbackEnabled reports the effective table-fallback setting.
func (c *MainConfig) TableFallbackEnabled() bool {
	return c.TableFallback == nil || *c.TableFallback
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// LoadMainConfig loads the main configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the main configuration file.
//
// RETURNS:
//   - A pointer to the MainConfig struct.
//   - An error if the file cannot be read, parsed or validated.
//
// A missing config file is not an error: the defaults describe a complete
// working layout rooted in the current directory.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	var config MainConfig

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// Fall through to pure defaults.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyMainConfigDefaults(&config)

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := ensureDirectories(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// applyMainConfigDefaults sets default values for any unset options.
func applyMainConfigDefaults(config *MainConfig) {
	if config.InputDir == "" {
		config.InputDir = "./input"
	}
	if config.OutputDir == "" {
		config.OutputDir = "./output"
	}
	if config.InputArchiveDir == "" {
		config.InputArchiveDir = "./input_archive"
	}
	if config.OutputArchiveDir == "" {
		config.OutputArchiveDir = "./output_archive"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.OutputFormat == "" {
		config.OutputFormat = "csv"
	}
	if config.OutputNameFormat == "" {
		config.OutputNameFormat = "{original}_{timestamp}.csv"
	}
	if config.MaxConcurrency == 0 {
		config.MaxConcurrency = 4
	}
	if config.MinTextLength == 0 {
		config.MinTextLength = 100
	}
}

// ensureDirectories creates the configured directories when absent.
func ensureDirectories(config *MainConfig) error {
	dirs := []string{
		config.InputDir,
		config.OutputDir,
		config.InputArchiveDir,
		config.OutputArchiveDir,
	}

	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}

	return nil
}
