// =============================================================================
// HCP PDF to CSV Converter - Logging Setup
// =============================================================================
//
// Structured logging via phuslu/log. The package-level default logger is
// configured once at startup from the main configuration; all modules log
// through log.Info()/log.Debug()/... afterwards.
//
// =============================================================================

package logging

import (
	"github.com/phuslu/log"
)

// Setup configures the default logger.
//
// PARAMETERS:
//   - level:   "debug", "info", "warn" or "error".
//   - logFile: optional log file path; empty logs to console only.
//   - verbose: forces debug level regardless of the configured one.
func Setup(level, logFile string, verbose bool) {
	logLevel := log.ParseLevel(level)
	if verbose {
		logLevel = log.DebugLevel
	}

	console := &log.ConsoleWriter{
		ColorOutput:    true,
		EndWithMessage: true,
	}

	var writer log.Writer = console
	if logFile != "" {
		writer = &log.MultiEntryWriter{
			console,
			&log.FileWriter{
				Filename:     logFile,
				MaxSize:      50 << 20,
				MaxBackups:   5,
				EnsureFolder: true,
			},
		}
	}

	log.DefaultLogger = log.Logger{
		Level:      logLevel,
		TimeFormat: "15:04:05",
		Writer:     writer,
	}
}
