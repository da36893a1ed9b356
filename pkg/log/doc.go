// Package log provides structured lifecycle capture for data sources.
//
// This package defines the Logger interface and Event types for recording
// every read/release/write a data source performs. It is separate from
// operational logging (slog) - lifecycle capture produces a complete
// machine-readable trace for debugging and analysis.
//
// # Basic Usage
//
// Applications configure capture by providing a Logger implementation:
//
//	// For development: log to console via slog
//	capture := log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	capture, _ := log.NewFileLogger("/var/log/sensorspace/sources.dslog")
//
//	// Both: use MultiLogger
//	capture := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Each event records one provider operation: a read (with value presence,
// status, and duration), a release, or a write (with the resulting
// status). Errors carry a dedicated payload.
//
// # File Format
//
// Capture files use CBOR encoding with integer keys and the .dslog
// extension. Reader streams them back, optionally filtered.
package log
