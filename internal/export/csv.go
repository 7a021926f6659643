// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/liborbenes/units-tui/internal/history"
)

// =============================================================================
// CSV EXPORTER
// =============================================================================

// CSVExporter renders history entries as a CSV table. The header row is
// the sorted union of all field keys seen across all entries; entries
// missing a field get an empty cell. Sorting keeps the column order
// stable between exports of the same history.
type CSVExporter struct{}

// NewCSVExporter creates a new CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Export renders the entries to CSV.
func (e *CSVExporter) Export(entries []history.Entry) ([]byte, error) {
	if len(entries) == 0 {
		return []byte{}, nil
	}
	flat := make([]map[string]string, len(entries))
	keySet := make(map[string]struct{})
	for i, entry := range entries {
		flat[i] = entry.Flatten()
		for k := range flat[i] {
			keySet[k] = struct{}{}
		}
	}

	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(keys); err != nil {
		return nil, err
	}
	row := make([]string, len(keys))
	for _, m := range flat {
		for i, k := range keys {
			row[i] = m[k] // missing fields render as empty cells
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileExtension returns the file extension for CSV.
func (e *CSVExporter) FileExtension() string {
	return ".csv"
}

// MimeType returns the MIME type for CSV.
func (e *CSVExporter) MimeType() string {
	return "text/csv"
}
