// =============================================================================
// HCP PDF to CSV Converter - External Extraction Fallback
// =============================================================================
//
// Fallback text acquisition for documents whose embedded text layer is
// missing or implausibly small (typically scanned listings). It shells out
// to the poppler `pdftotext` tool in layout mode, which rasterizes and
// re-extracts far more reliably than the pure-Go reader for degraded
// sources. The tool must be installed; if it is not, the run fails for
// that file with a descriptive error.
//
// =============================================================================

package pdfextract

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
)

// DefaultCommand is the external extraction tool invoked by the fallback.
const DefaultCommand = "pdftotext"

// CommandExtractor implements Extractor by running an external
// text-extraction process.
type CommandExtractor struct {
	// Command is the binary to invoke. Defaults to DefaultCommand.
	Command string

	// MaxPages limits extraction to the first N pages when positive.
	// Zero means all pages.
	MaxPages int
}

// Compile-time interface assertion.
var _ Extractor = (*CommandExtractor)(nil)

// NewCommandExtractor creates the external fallback extractor.
//
// PARAMETERS:
//   - maxPages: page limit for the fallback pass; 0 processes all pages.
func NewCommandExtractor(maxPages int) *CommandExtractor {
	return &CommandExtractor{
		Command:  DefaultCommand,
		MaxPages: maxPages,
	}
}

// ExtractText runs the external tool and captures its stdout. Layout mode
// preserves the visual column spacing the token heuristics depend on.
func (e *CommandExtractor) ExtractText(path string) (string, error) {
	command := e.Command
	if command == "" {
		command = DefaultCommand
	}

	if _, err := exec.LookPath(command); err != nil {
		return "", fmt.Errorf("%s not found; install poppler-utils to enable fallback extraction: %w", command, err)
	}

	args := []string{"-layout"}
	if e.MaxPages > 0 {
		args = append(args, "-l", strconv.Itoa(e.MaxPages))
	}
	// "-" sends the text to stdout instead of a sidecar file.
	args = append(args, path, "-")

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(command, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s failed for %s: %w (%s)", command, path, err, stderr.String())
	}

	return stdout.String(), nil
}
