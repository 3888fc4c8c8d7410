package tableparser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTableExport(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	workbook := excelize.NewFile()
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, workbook.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "listing"+SidecarSuffix)
	require.NoError(t, workbook.SaveAs(path))
	return path
}

func TestCandidateLines(t *testing.T) {
	path := writeTableExport(t, [][]interface{}{
		{"S/N", "NHIA Number", "Name", "Relation", "Sex", "DOB"},
		{"1", "3024514-1", "JOHN SMITH", "PRINCIPAL", "M", "12/05/1980"},
		{"", "", ""},
		{"2", "3024514-2", "ABENA SMITH", "SPOUSE", "F", "23/08/1984"},
	})

	lines, err := CandidateLines(path)
	require.NoError(t, err)

	// Empty rows are dropped; populated rows join with single spaces.
	require.Len(t, lines, 3)
	assert.Equal(t, "S/N NHIA Number Name Relation Sex DOB", lines[0])
	assert.Equal(t, "1 3024514-1 JOHN SMITH PRINCIPAL M 12/05/1980", lines[1])
	assert.Equal(t, "2 3024514-2 ABENA SMITH SPOUSE F 23/08/1984", lines[2])
}

func TestCandidateLinesSkipsBlankCells(t *testing.T) {
	path := writeTableExport(t, [][]interface{}{
		{"1", "", "7654321", "  ", "PETER PAN", "05/05/1999"},
	})

	lines, err := CandidateLines(path)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "1 7654321 PETER PAN 05/05/1999", lines[0])
}

func TestCandidateLinesMissingFile(t *testing.T) {
	_, err := CandidateLines(filepath.Join(t.TempDir(), "absent.tables.xlsx"))
	assert.Error(t, err)
}
