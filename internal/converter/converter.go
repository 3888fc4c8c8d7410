// =============================================================================
// HCP PDF to CSV Converter - Converter Module
// =============================================================================
//
// This module contains the per-file conversion pipeline, from PDF text
// acquisition to CSV output and archival.
//
// CONVERSION PIPELINE:
//   1. Preflight the PDF (page count, readability)
//   2. Acquire text: embedded text layer first, external fallback when the
//      layer is missing or implausibly small
//   3. Run the sequential line parse (classifier -> context -> extractor)
//   4. If zero records, retry with the structured-table sidecar pass
//   5. Write the CSV (or XLSX) output
//   6. Archive the processed files
//
// CONCURRENCY:
//   Each file is processed in its own goroutine. The converter holds no
//   shared mutable state; every document gets its own context.
//
// =============================================================================

package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phuslu/log"

	"github.com/enrolltools/PDF-to-CSV-conversion/internal/config"
	"github.com/enrolltools/PDF-to-CSV-conversion/internal/csvwriter"
	"github.com/enrolltools/PDF-to-CSV-conversion/internal/lineparser"
	"github.com/enrolltools/PDF-to-CSV-conversion/internal/pdfextract"
	"github.com/enrolltools/PDF-to-CSV-conversion/internal/tableparser"
	"github.com/enrolltools/PDF-to-CSV-conversion/internal/types"
	"github.com/enrolltools/PDF-to-CSV-conversion/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing a single file.
type Result struct {
	// FilePath is the path to the input file that was processed.
	FilePath string

	// OutputFile is the path to the generated output file.
	// This is empty if processing failed.
	OutputFile string

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the error if processing failed, nil otherwise.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing of one file.
type ProcessingStats struct {
	// Pages is the page count reported by the preflight (0 if unknown).
	Pages int

	// LinesScanned is the number of non-blank lines fed to the classifier.
	LinesScanned int

	// RecordsExtracted is the number of member records emitted.
	RecordsExtracted int

	// UsedFallback is true when text came from the external extractor.
	UsedFallback bool

	// UsedTablePass is true when records came from the table sidecar.
	UsedTablePass bool

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter handles the conversion of a single PDF file to CSV.
type Converter struct {
	// pdfPath is the path to the input PDF.
	pdfPath string

	// mainConfig is the main application configuration.
	mainConfig *config.MainConfig

	// primary extracts the embedded text layer.
	primary pdfextract.Extractor

	// fallback is the external extractor for degraded documents.
	fallback pdfextract.Extractor

	// pageCount preflights the PDF. Swappable for tests.
	pageCount func(path string) (int, error)

	// dryRun simulates processing without writing or archiving.
	dryRun bool
}

// New creates a new Converter for one input file.
func New(pdfPath string, mainConfig *config.MainConfig) *Converter {
	return &Converter{
		pdfPath:    pdfPath,
		mainConfig: mainConfig,
		primary:    pdfextract.NewTextExtractor(),
		fallback:   pdfextract.NewCommandExtractor(mainConfig.FallbackMaxPages),
		pageCount:  pdfextract.PageCount,
	}
}

// WithExtractors replaces the extraction collaborators, primarily for
// tests.
func (c *Converter) WithExtractors(primary, fallback pdfextract.Extractor, pageCount func(string) (int, error)) *Converter {
	c.primary = primary
	c.fallback = fallback
	c.pageCount = pageCount
	return c
}

// WithDryRun enables dry-run mode: full parse, no output, no archival.
func (c *Converter) WithDryRun(dryRun bool) *Converter {
	c.dryRun = dryRun
	return c
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline for the file.
func (c *Converter) Run() Result {
	startTime := time.Now()
	result := Result{
		FilePath: c.pdfPath,
		Success:  false,
	}

	log.Info().Str("file", c.pdfPath).Msg("processing file")

	// =========================================================================
	// STEP 1: PREFLIGHT
	// =========================================================================
	// A failed preflight is not fatal by itself; the extractor produces the
	// authoritative error. The page count is for the summary report.

	if pages, err := c.pageCount(c.pdfPath); err == nil {
		result.Stats.Pages = pages
		log.Debug().Str("file", c.pdfPath).Int("pages", pages).Msg("preflight complete")
	} else {
		log.Warn().Str("file", c.pdfPath).Err(err).Msg("preflight failed")
	}

	// =========================================================================
	// STEP 2: ACQUIRE TEXT
	// =========================================================================

	text, usedFallback, err := c.acquireText()
	if err != nil {
		result.Error = err
		return result
	}
	result.Stats.UsedFallback = usedFallback

	// =========================================================================
	// STEP 3: PARSE LINES
	// =========================================================================
	// The strictly sequential pass: each data line is interpreted against
	// the provider/family context accumulated from all earlier lines.

	lines := nonBlankLines(text)
	result.Stats.LinesScanned = len(lines)

	records := lineparser.ParseLines(lines)
	log.Debug().Str("file", c.pdfPath).
		Int("lines", len(lines)).
		Int("records", len(records)).
		Msg("line parse complete")

	// =========================================================================
	// STEP 4: STRUCTURED-TABLE FALLBACK
	// =========================================================================
	// Last resort, and only when the embedded text layer was used: a table
	// sidecar export can recover rows, but carries no document context.

	if len(records) == 0 && !usedFallback && c.mainConfig.TableFallbackEnabled() {
		if tableRecords, ok := c.tableSidecarPass(); ok {
			records = tableRecords
			result.Stats.UsedTablePass = true
		}
	}

	result.Stats.RecordsExtracted = len(records)

	// =========================================================================
	// STEP 5: WRITE OUTPUT
	// =========================================================================

	if c.dryRun {
		log.Info().Str("file", c.pdfPath).
			Int("records", len(records)).
			Msg("dry run - skipping output and archival")
		result.Success = true
		result.Stats.ProcessingTime = time.Since(startTime)
		return result
	}

	outputPath, err := c.writeOutput(records)
	if err != nil {
		result.Error = fmt.Errorf("failed to write output: %w", err)
		return result
	}
	result.OutputFile = outputPath
	log.Info().Str("file", c.pdfPath).
		Str("output", outputPath).
		Int("records", len(records)).
		Msg("wrote output")

	// =========================================================================
	// STEP 6: ARCHIVE FILES
	// =========================================================================
	// Archival failure is logged but does not fail the conversion.

	if err := c.archiveFiles(outputPath); err != nil {
		log.Warn().Str("file", c.pdfPath).Err(err).Msg("failed to archive files")
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)

	return result
}

// =============================================================================
// TEXT ACQUISITION
// =============================================================================

// acquireText obtains the document text, preferring the embedded text layer
// and retrying through the external extractor when the layer is missing,
// erroring, or implausibly small. Both paths failing is a terminal error
// for the file; no partial output is produced.
func (c *Converter) acquireText() (text string, usedFallback bool, err error) {
	if c.mainConfig.ForceFallback {
		text, err = c.fallback.ExtractText(c.pdfPath)
		if err != nil {
			return "", false, fmt.Errorf("fallback extraction failed: %w", err)
		}
		return text, true, nil
	}

	text, primaryErr := c.primary.ExtractText(c.pdfPath)
	if primaryErr == nil && len(strings.TrimSpace(text)) >= c.mainConfig.MinTextLength {
		return text, false, nil
	}

	if primaryErr != nil {
		log.Warn().Str("file", c.pdfPath).Err(primaryErr).
			Msg("embedded text extraction failed, trying fallback")
	} else {
		log.Warn().Str("file", c.pdfPath).
			Int("chars", len(strings.TrimSpace(text))).
			Msg("embedded text layer too small, trying fallback")
	}

	text, err = c.fallback.ExtractText(c.pdfPath)
	if err != nil {
		if primaryErr != nil {
			return "", false, fmt.Errorf("text extraction failed (primary: %v): %w", primaryErr, err)
		}
		return "", false, fmt.Errorf("fallback extraction failed: %w", err)
	}

	return text, true, nil
}

// tableSidecarPass looks for a table export next to the input PDF and runs
// the field extractor over its rows. Errors in the sidecar are logged and
// ignored; the pass is best-effort by design.
func (c *Converter) tableSidecarPass() ([]types.MemberRecord, bool) {
	sidecar := strings.TrimSuffix(c.pdfPath, filepath.Ext(c.pdfPath)) + tableparser.SidecarSuffix
	if _, err := os.Stat(sidecar); err != nil {
		return nil, false
	}

	log.Info().Str("file", c.pdfPath).Str("sidecar", sidecar).
		Msg("no records from line parse - trying table sidecar")

	lines, err := tableparser.CandidateLines(sidecar)
	if err != nil {
		log.Warn().Str("sidecar", sidecar).Err(err).Msg("table sidecar pass failed")
		return nil, false
	}

	return lineparser.ParseCandidateLines(lines), true
}

// =============================================================================
// OUTPUT
// =============================================================================

// writeOutput serializes the records in the configured format and returns
// the output path. Zero records still produce a header-only file.
func (c *Converter) writeOutput(records []types.MemberRecord) (string, error) {
	extension := "." + c.mainConfig.OutputFormat

	original := strings.TrimSuffix(filepath.Base(c.pdfPath), filepath.Ext(c.pdfPath))
	fileName := utils.GenerateOutputFileName(
		c.mainConfig.OutputNameFormat,
		extension,
		map[string]string{"original": original},
	)
	outputPath := filepath.Join(c.mainConfig.OutputDir, fileName)

	switch c.mainConfig.OutputFormat {
	case "xlsx":
		if err := csvwriter.WriteXLSX(records, outputPath); err != nil {
			return "", err
		}
	default:
		if err := csvwriter.WriteCSV(records, outputPath); err != nil {
			return "", err
		}
	}

	return outputPath, nil
}

// archiveFiles moves the input PDF to the input archive and copies the
// output to the output archive.
func (c *Converter) archiveFiles(outputPath string) error {
	fm := utils.NewFileManager(
		c.mainConfig.InputDir,
		c.mainConfig.OutputDir,
		c.mainConfig.InputArchiveDir,
		c.mainConfig.OutputArchiveDir,
	)

	if _, err := fm.ArchiveInputFile(c.pdfPath); err != nil {
		return err
	}
	if _, err := fm.ArchiveOutputFile(outputPath); err != nil {
		return err
	}

	return nil
}

// nonBlankLines splits extracted text into trimmed-right, non-blank lines,
// preserving order.
func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
