// =============================================================================
// HCP PDF to CSV Converter - Text Extraction Interface
// =============================================================================
//
// Text acquisition is a collaborator of the parsing core, not part of it:
// the core consumes an ordered sequence of text lines and does not care
// where they came from. This interface keeps the converter testable (a mock
// supplies canned text) and lets the pipeline swap the embedded extractor
// for the external OCR-style fallback when a document yields implausibly
// little text.
//
// =============================================================================

package pdfextract

// Extractor extracts the full text of a source document.
type Extractor interface {
	// ExtractText returns the document text as newline-delimited lines, or
	// an error when the document cannot produce text at all. Extraction
	// failure is fatal to the run for that file; there is no partial output.
	ExtractText(path string) (string, error)
}

// =============================================================================
// MOCK EXTRACTOR
// =============================================================================

// MockExtractor implements Extractor for tests. It returns predefined text
// or a predefined error instead of touching a real PDF.
type MockExtractor struct {
	Text string
	Err  error
}

// ExtractText returns the canned text or error.
func (e *MockExtractor) ExtractText(string) (string, error) {
	if e.Err != nil {
		return "", e.Err
	}
	return e.Text, nil
}
