package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileManager(t *testing.T) *FileManager {
	t.Helper()
	root := t.TempDir()

	fm := NewFileManager(
		filepath.Join(root, "input"),
		filepath.Join(root, "output"),
		filepath.Join(root, "input_archive"),
		filepath.Join(root, "output_archive"),
	)
	require.NoError(t, fm.EnsureDirectories())
	return fm
}

func TestDiscoverInputFiles(t *testing.T) {
	fm := newTestFileManager(t)

	for _, name := range []string{"a.pdf", "b.pdf", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(fm.InputDir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(fm.InputDir, "sub.pdf"), 0755))

	files, err := fm.DiscoverInputFiles("*.pdf")
	require.NoError(t, err)

	// Only regular files matching the pattern; the directory named like a
	// PDF is filtered out.
	require.Len(t, files, 2)
	assert.Equal(t, "a.pdf", filepath.Base(files[0]))
	assert.Equal(t, "b.pdf", filepath.Base(files[1]))
}

func TestDiscoverInputFilesRecursive(t *testing.T) {
	fm := newTestFileManager(t)

	nested := filepath.Join(fm.InputDir, "2026", "08")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(fm.InputDir, "top.pdf"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "deep.PDF"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "skip.txt"), []byte("x"), 0644))

	files, err := fm.DiscoverInputFilesRecursive(".pdf")
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestArchiveInputFileMoves(t *testing.T) {
	fm := newTestFileManager(t)

	src := filepath.Join(fm.InputDir, "listing.pdf")
	require.NoError(t, os.WriteFile(src, []byte("content"), 0644))

	archived, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(fm.InputArchiveDir, "listing.pdf"), archived)
	assert.NoFileExists(t, src)
	assert.FileExists(t, archived)
}

func TestArchiveOutputFileCopies(t *testing.T) {
	fm := newTestFileManager(t)

	src := filepath.Join(fm.OutputDir, "listing.csv")
	require.NoError(t, os.WriteFile(src, []byte("header\n"), 0644))

	archived, err := fm.ArchiveOutputFile(src)
	require.NoError(t, err)

	// Output archival is a copy; the original stays in the output dir.
	assert.FileExists(t, src)
	assert.FileExists(t, archived)
}

func TestArchiveDisabled(t *testing.T) {
	fm := newTestFileManager(t)
	fm.ArchiveOnSuccess = false

	src := filepath.Join(fm.InputDir, "listing.pdf")
	require.NoError(t, os.WriteFile(src, []byte("content"), 0644))

	archived, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)
	assert.Equal(t, src, archived)
	assert.FileExists(t, src)
}

func TestArchiveTimestampSubdirs(t *testing.T) {
	fm := newTestFileManager(t)
	fm.UseTimestampSubdirs = true

	src := filepath.Join(fm.InputDir, "listing.pdf")
	require.NoError(t, os.WriteFile(src, []byte("content"), 0644))

	archived, err := fm.ArchiveInputFile(src)
	require.NoError(t, err)

	now := time.Now()
	wantDir := filepath.Join(
		fm.InputArchiveDir,
		now.Format("2006"), now.Format("01"), now.Format("02"),
	)
	assert.Equal(t, wantDir, filepath.Dir(archived))
	assert.FileExists(t, archived)
}

func TestGenerateOutputFileName(t *testing.T) {
	name := GenerateOutputFileName(
		"{original}_{date}.csv",
		".csv",
		map[string]string{"original": "listing_224"},
	)

	assert.True(t, strings.HasPrefix(name, "listing_224_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))

	// The format's extension is forced to match the output format.
	name = GenerateOutputFileName("{original}.csv", ".xlsx", map[string]string{"original": "listing"})
	assert.Equal(t, "listing.xlsx", name)

	// UUID names are unique per call.
	first := GenerateOutputFileName("{uuid}.csv", ".csv", nil)
	second := GenerateOutputFileName("{uuid}.csv", ".csv", nil)
	assert.NotEqual(t, first, second)
}

func TestWriteErrorLog(t *testing.T) {
	outputDir := t.TempDir()

	entries := []ErrorLogEntry{
		{
			Timestamp:    time.Now(),
			FileName:     "broken.pdf",
			ErrorType:    "conversion",
			ErrorMessage: "no text layer",
		},
	}

	logPath, err := WriteErrorLog(entries, outputDir)
	require.NoError(t, err)

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "broken.pdf")
	assert.Contains(t, string(content), "no text layer")
	assert.Contains(t, string(content), "Total Errors: 1")
}

func TestWriteErrorLogNoEntries(t *testing.T) {
	logPath, err := WriteErrorLog(nil, t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, logPath)
}

func TestWriteSummaryLog(t *testing.T) {
	outputDir := t.TempDir()

	summary := ProcessingSummary{
		StartTime:       time.Now().Add(-time.Minute),
		EndTime:         time.Now(),
		TotalFiles:      2,
		SuccessfulFiles: 1,
		FailedFiles:     1,
		TotalRecords:    42,
		ProcessedFiles: []ProcessedFileInfo{
			{
				InputFile:    "listing.pdf",
				OutputFile:   "listing.csv",
				Pages:        3,
				Records:      42,
				UsedFallback: true,
			},
		},
		FailedFilesList: []FailedFileInfo{
			{InputFile: "broken.pdf", ErrorMessage: "no text layer"},
		},
	}

	summaryPath, err := WriteSummaryLog(summary, outputDir)
	require.NoError(t, err)

	content, err := os.ReadFile(summaryPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Total Files:   2")
	assert.Contains(t, string(content), "listing.csv")
	assert.Contains(t, string(content), "external fallback")
	assert.Contains(t, string(content), "broken.pdf")
}

func TestCleanOldArchives(t *testing.T) {
	archiveDir := t.TempDir()

	oldFile := filepath.Join(archiveDir, "old.pdf")
	newFile := filepath.Join(archiveDir, "new.pdf")
	require.NoError(t, os.WriteFile(oldFile, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(newFile, []byte("x"), 0644))

	oldTime := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldFile, oldTime, oldTime))

	removed, err := CleanOldArchives(archiveDir, 24*time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, oldFile)
	assert.FileExists(t, newFile)
}
