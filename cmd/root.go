// =============================================================================
// HCP PDF to CSV Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'process', 'version') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (pdf2csv)
//   ├── processCmd (pdf2csv process)
//   └── versionCmd (pdf2csv version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Loading the configuration in each command that needs it
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "pdf2csv",

	Short: "HCP PDF to CSV Converter - Extract enrollment listings from PDF into CSV",

	Long: `HCP PDF to CSV Converter is a CLI tool that converts health-plan
enrollment listings rendered as PDF tables into normalized CSV records.

The parser is heuristic by design: PDF extraction does not preserve column
boundaries, so member rows are recovered with positional and lexical rules
tuned to the layouts observed in real provider listings.

Key Features:
  - Pure-Go text extraction with an external fallback for scanned documents
  - Stateful parse carrying provider, provider number and family context
  - GIFSHIP (sponsorship) batch normalization
  - Structured-table sidecar pass when line extraction finds nothing
  - Concurrent processing with automatic archival and summary reports

Example Usage:
  pdf2csv process                          # Process all PDFs in the input directory
  pdf2csv process --single --file list.pdf # Process one file
  pdf2csv process --ocr --ocr-pages 50     # Force the fallback extractor`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// --config flag: Allows the user to specify a custom configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (default is config.yaml)",
	)

	// --verbose flag: Enables verbose/debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
