// =============================================================================
// HCP PDF to CSV Converter - Output Writer Module
// =============================================================================
//
// This module serializes the extracted member records. The primary output
// is CSV with a fixed column set; an XLSX variant exists for consumers who
// load the results straight into a spreadsheet.
//
// OUTPUT CONTRACT:
//   - Columns, in order: Provider, ProviderNumber, FamilyCode, NHIA_Number,
//     Relationship, FirstName, LastName, Sex, DOB, EmpCode
//   - The header row is always written, even for zero records.
//   - Unset fields are written as empty strings, never omitted, so blank
//     EmpCode values cannot shift later columns.
//
// =============================================================================

package csvwriter

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"github.com/enrolltools/PDF-to-CSV-conversion/internal/types"
)

// Columns is the output header, in order. It mirrors the csv tags on
// types.MemberRecord.
var Columns = []string{
	"Provider", "ProviderNumber", "FamilyCode", "NHIA_Number",
	"Relationship", "FirstName", "LastName", "Sex", "DOB", "EmpCode",
}

// =============================================================================
// CSV OUTPUT
// =============================================================================

// WriteCSV writes the records to a CSV file at the given path. Column names
// and order come from the MemberRecord csv tags.
func WriteCSV(records []types.MemberRecord, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	// A nil slice would still marshal, but keep the writer total over its
	// input: zero records produce a header-only file.
	if records == nil {
		records = []types.MemberRecord{}
	}

	if err := gocsv.MarshalFile(&records, file); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	return nil
}

// =============================================================================
// XLSX OUTPUT
// =============================================================================

// WriteXLSX writes the records as a single-sheet workbook with the same
// columns as the CSV output.
func WriteXLSX(records []types.MemberRecord, path string) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)

	header := make([]interface{}, len(Columns))
	for i, col := range Columns {
		header[i] = col
	}
	if err := workbook.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}

		row := []interface{}{
			record.Provider,
			record.ProviderNumber,
			record.FamilyCode,
			record.NHIANumber,
			record.Relationship,
			record.FirstName,
			record.LastName,
			record.Sex,
			record.DOB,
			record.EmpCode,
		}
		if err := workbook.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := workbook.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}
