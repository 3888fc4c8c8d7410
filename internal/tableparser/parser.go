// =============================================================================
// HCP PDF to CSV Converter - Structured Table Fallback Source
// =============================================================================
//
// Last-resort source of candidate lines. Some listings defeat line-based
// text extraction entirely (zero records from both extraction paths) but
// can be recovered by an external table-detection tool, whose output is an
// XLSX export placed next to the input PDF. This module reads that export
// and joins each table row's cells into one whitespace-separated line,
// which is then fed through the token field extractor only.
//
// Document context (provider, provider number, family code) is not
// recoverable from table exports; records from this path carry empty
// context fields by contract.
//
// =============================================================================

package tableparser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SidecarSuffix is the naming convention for table exports: the input
// "listing.pdf" pairs with "listing.tables.xlsx" in the same directory.
const SidecarSuffix = ".tables.xlsx"

// CandidateLines reads every sheet of a table export and returns one joined
// line per non-empty row, in sheet and row order.
//
// PARAMETERS:
//   - path: the XLSX table export.
//
// RETURNS:
//   - One candidate line per table row.
//   - An error if the workbook cannot be opened or read.
func CandidateLines(path string) ([]string, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table export: %w", err)
	}
	defer workbook.Close()

	var lines []string
	for _, sheet := range workbook.GetSheetList() {
		rows, err := workbook.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
		}

		for _, row := range rows {
			line := joinCells(row)
			if line != "" {
				lines = append(lines, line)
			}
		}
	}

	return lines, nil
}

// joinCells joins a table row's cells with single spaces, matching the
// token stream the field extractor expects from a text line.
func joinCells(cells []string) string {
	parts := make([]string, 0, len(cells))
	for _, cell := range cells {
		cell = strings.TrimSpace(cell)
		if cell != "" {
			parts = append(parts, cell)
		}
	}
	return strings.Join(parts, " ")
}
