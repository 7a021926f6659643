// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export renders the session history for download. Two formats
// are supported: a JSON array of the stored entries, and a CSV table
// whose header is the union of all fields seen across entries.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/liborbenes/units-tui/internal/history"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter defines the interface for history exporters.
type Exporter interface {
	// Export renders the entries (newest first) to the target format.
	Export(entries []history.Entry) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g. ".json").
	FileExtension() string

	// MimeType returns the MIME type for the exported format.
	MimeType() string
}

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where files are written.
	// Default: current working directory.
	OutputDir string
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{OutputDir: "."}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ExportToFile writes the log's current entries using the given
// exporter and returns the output file path.
func ExportToFile(log *history.Log, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	content, err := exporter.Export(log.Entries())
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("units_history_%s%s", timestamp, exporter.FileExtension())
	outputPath := filepath.Join(opts.OutputDir, filename)
	if err := os.WriteFile(outputPath, content, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return outputPath, nil
}

// ExportJSON writes the history as JSON and returns the file path.
func ExportJSON(log *history.Log, opts *Options) (string, error) {
	return ExportToFile(log, NewJSONExporter(), opts)
}

// ExportCSV writes the history as CSV and returns the file path.
func ExportCSV(log *history.Log, opts *Options) (string, error) {
	return ExportToFile(log, NewCSVExporter(), opts)
}
