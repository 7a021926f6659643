// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"

	"github.com/liborbenes/units-tui/internal/history"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter renders history entries as an indented JSON array of flat
// objects, newest first. Every entry carries its tool tag and timestamp
// alongside the operation-specific fields.
type JSONExporter struct{}

// NewJSONExporter creates a new JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export renders the entries to JSON.
func (e *JSONExporter) Export(entries []history.Entry) ([]byte, error) {
	flat := make([]map[string]string, len(entries))
	for i, entry := range entries {
		flat[i] = entry.Flatten()
	}
	return json.MarshalIndent(flat, "", "  ")
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}

// MimeType returns the MIME type for JSON.
func (e *JSONExporter) MimeType() string {
	return "application/json"
}
