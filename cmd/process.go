// =============================================================================
// HCP PDF to CSV Converter - Process Command
// =============================================================================
//
// This file defines the 'process' command, which is the main command for
// converting PDF listings to CSV. It orchestrates the batch pipeline.
//
// COMMAND USAGE:
//   pdf2csv process [flags]
//
// FLAGS:
//   --dry-run     : Parse without writing output files or archiving
//   --single      : Process only a single file (specify with --file)
//   --file        : Path to a specific file to process (used with --single)
//   --ocr         : Force the external fallback extractor
//   --ocr-pages   : Page limit for the fallback extractor
//   --format      : Output format override (csv or xlsx)
//
// PROCESSING PIPELINE:
//   1. Load configuration and set up logging
//   2. Discover PDF files in the input directory
//   3. For each file (concurrently, bounded by max_concurrency):
//      a. Extract text (embedded layer, external fallback)
//      b. Run the sequential line parse
//      c. Write the output file
//      d. Archive processed files
//   4. Write the summary report and error log
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"github.com/enrolltools/PDF-to-CSV-conversion/internal/config"
	"github.com/enrolltools/PDF-to-CSV-conversion/internal/converter"
	"github.com/enrolltools/PDF-to-CSV-conversion/internal/logging"
	"github.com/enrolltools/PDF-to-CSV-conversion/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// dryRun simulates processing without writing output files.
var dryRun bool

// singleFile indicates whether to process only a single file.
var singleFile bool

// filePath is the path to a specific file to process (used with --single).
var filePath string

// forceOCR forces the external fallback extractor.
var forceOCR bool

// ocrPages limits the fallback extractor to the first N pages.
var ocrPages int

// outputFormat overrides the configured output format when non-empty.
var outputFormat string

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process PDF listings and convert them to CSV",
	Long: `The process command scans the input directory for PDF files and converts
each one to a CSV of normalized member records.

Processing is done concurrently. Each file is processed independently, and
errors in one file do not affect the processing of others.

On successful processing:
  - The generated CSV is placed in the output directory
  - The original PDF is moved to the input archive
  - A summary report is generated

On error:
  - An error log is created in the output directory
  - The original PDF remains in the input directory
  - Processing continues for other files`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the process command with the root command and sets up
// flags.
func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Parse without writing output files or archiving",
	)

	processCmd.Flags().BoolVar(
		&singleFile,
		"single",
		false,
		"Process only a single file (use with --file)",
	)

	processCmd.Flags().StringVar(
		&filePath,
		"file",
		"",
		"Path to a specific file to process (used with --single)",
	)

	processCmd.Flags().BoolVar(
		&forceOCR,
		"ocr",
		false,
		"Force the external fallback extractor (use for scanned documents)",
	)

	processCmd.Flags().IntVar(
		&ocrPages,
		"ocr-pages",
		0,
		"Page limit for the fallback extractor (0 = all pages)",
	)

	processCmd.Flags().StringVar(
		&outputFormat,
		"format",
		"",
		"Output format override: csv or xlsx",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess is the main function that orchestrates the batch pipeline.
func runProcess() error {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	mainConfig, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load main config: %w", err)
	}

	applyFlagOverrides(mainConfig)

	logging.Setup(mainConfig.LogLevel, mainConfig.LogFile, verbose)
	log.Info().Str("config", cfgFile).Msg("HCP PDF to CSV Converter starting")

	// =========================================================================
	// STEP 2: DISCOVER INPUT FILES
	// =========================================================================

	inputFiles, err := discoverInputFiles(mainConfig)
	if err != nil {
		return err
	}

	if len(inputFiles) == 0 {
		log.Info().Str("dir", mainConfig.InputDir).Msg("no PDF files found in the input directory")
		return nil
	}

	log.Info().Int("files", len(inputFiles)).Msg("discovered input files")

	// =========================================================================
	// STEP 3: PROCESS FILES CONCURRENTLY
	// =========================================================================
	// Each file runs in its own goroutine, bounded by max_concurrency.
	// Documents are independent: every parse gets a fresh context.

	var wg sync.WaitGroup
	results := make(chan converter.Result, len(inputFiles))
	semaphore := make(chan struct{}, mainConfig.MaxConcurrency)

	for _, file := range inputFiles {
		wg.Add(1)

		go func(pdfPath string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			conv := converter.New(pdfPath, mainConfig).WithDryRun(dryRun)
			results <- conv.Run()
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// =========================================================================
	// STEP 4: COLLECT RESULTS
	// =========================================================================

	summary := utils.ProcessingSummary{
		StartTime:  startTime,
		TotalFiles: len(inputFiles),
	}
	var errorEntries []utils.ErrorLogEntry

	for result := range results {
		if result.Success {
			summary.SuccessfulFiles++
			summary.TotalLines += result.Stats.LinesScanned
			summary.TotalRecords += result.Stats.RecordsExtracted
			summary.ProcessedFiles = append(summary.ProcessedFiles, utils.ProcessedFileInfo{
				InputFile:     result.FilePath,
				OutputFile:    result.OutputFile,
				Pages:         result.Stats.Pages,
				Lines:         result.Stats.LinesScanned,
				Records:       result.Stats.RecordsExtracted,
				UsedFallback:  result.Stats.UsedFallback,
				UsedTablePass: result.Stats.UsedTablePass,
				ProcessTime:   result.Stats.ProcessingTime,
			})
			log.Info().Str("file", filepath.Base(result.FilePath)).
				Int("records", result.Stats.RecordsExtracted).
				Msg("file processed")
		} else {
			summary.FailedFiles++
			summary.FailedFilesList = append(summary.FailedFilesList, utils.FailedFileInfo{
				InputFile:    result.FilePath,
				ErrorMessage: result.Error.Error(),
			})
			errorEntries = append(errorEntries, utils.ErrorLogEntry{
				Timestamp:    time.Now(),
				FileName:     filepath.Base(result.FilePath),
				ErrorType:    "conversion",
				ErrorMessage: result.Error.Error(),
			})
			log.Error().Str("file", filepath.Base(result.FilePath)).
				Err(result.Error).
				Msg("file failed")

			if !mainConfig.ShouldContinueOnError() {
				break
			}
		}
	}

	// =========================================================================
	// STEP 5: WRITE SUMMARY AND ERROR LOG
	// =========================================================================

	summary.EndTime = time.Now()

	if !dryRun {
		if _, err := utils.WriteSummaryLog(summary, mainConfig.OutputDir); err != nil {
			log.Warn().Err(err).Msg("failed to write summary report")
		}
		if len(errorEntries) > 0 {
			if _, err := utils.WriteErrorLog(errorEntries, mainConfig.OutputDir); err != nil {
				log.Warn().Err(err).Msg("failed to write error log")
			}
		}
	}

	log.Info().
		Int("total", summary.TotalFiles).
		Int("successful", summary.SuccessfulFiles).
		Int("failed", summary.FailedFiles).
		Int("records", summary.TotalRecords).
		Dur("elapsed", time.Since(startTime)).
		Msg("processing complete")

	if summary.FailedFiles > 0 && !mainConfig.ShouldContinueOnError() {
		return fmt.Errorf("processing stopped after failure (%d file(s) failed)", summary.FailedFiles)
	}

	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// applyFlagOverrides folds the command-line flags into the loaded
// configuration. Flags always win over the config file.
func applyFlagOverrides(mainConfig *config.MainConfig) {
	if forceOCR {
		mainConfig.ForceFallback = true
	}
	if ocrPages > 0 {
		mainConfig.FallbackMaxPages = ocrPages
	}
	if outputFormat != "" {
		mainConfig.OutputFormat = outputFormat
	}
}

// discoverInputFiles returns the files to process: either the single
// requested file or every PDF in the input directory.
func discoverInputFiles(mainConfig *config.MainConfig) ([]string, error) {
	if singleFile {
		if filePath == "" {
			return nil, fmt.Errorf("--single requires --file")
		}
		if !utils.FileExists(filePath) {
			return nil, fmt.Errorf("file not found: %s", filePath)
		}
		return []string{filePath}, nil
	}

	fm := utils.NewFileManager(
		mainConfig.InputDir,
		mainConfig.OutputDir,
		mainConfig.InputArchiveDir,
		mainConfig.OutputArchiveDir,
	)

	files, err := fm.DiscoverInputFiles("*.pdf")
	if err != nil {
		return nil, fmt.Errorf("failed to discover input files: %w", err)
	}

	return files, nil
}
