// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/liborbenes/units-tui/internal/history"
)

func sampleLog() *history.Log {
	l := history.NewLog(10)
	l.Add("unit", map[string]string{
		"category": "Length", "from": "meter", "to": "foot", "value": "1", "result": "3.2808399",
	})
	l.Add("bases", map[string]string{
		"from": "decimal", "to": "binary", "input": "42", "output": "101010",
	})
	return l
}

// =============================================================================
// JSON EXPORT TESTS
// =============================================================================

func TestJSONExporter(t *testing.T) {
	data, err := NewJSONExporter().Export(sampleLog().Entries())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var decoded []map[string]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d entries, want 2", len(decoded))
	}
	// Newest first: the bases entry was added last.
	if decoded[0]["tool"] != "bases" || decoded[0]["output"] != "101010" {
		t.Errorf("first entry = %v", decoded[0])
	}
	if decoded[1]["tool"] != "unit" || decoded[1]["result"] != "3.2808399" {
		t.Errorf("second entry = %v", decoded[1])
	}
	if decoded[0]["at"] == "" {
		t.Error("entries must carry timestamps")
	}
}

// =============================================================================
// CSV EXPORT TESTS
// =============================================================================

func TestCSVExporter(t *testing.T) {
	data, err := NewCSVExporter().Export(sampleLog().Entries())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(records))
	}

	header := records[0]
	col := make(map[string]int, len(header))
	for i, k := range header {
		col[k] = i
	}
	// Header is the union of keys across both entries.
	for _, k := range []string{"tool", "at", "category", "from", "to", "value", "result", "input", "output"} {
		if _, ok := col[k]; !ok {
			t.Errorf("header missing key %q: %v", k, header)
		}
	}

	// The bases row has no "category"; the cell must be empty.
	if got := records[1][col["category"]]; got != "" {
		t.Errorf("bases row category = %q, want empty", got)
	}
	if got := records[1][col["output"]]; got != "101010" {
		t.Errorf("bases row output = %q", got)
	}
	if got := records[2][col["from"]]; got != "meter" {
		t.Errorf("unit row from = %q", got)
	}
}

func TestCSVExporter_Empty(t *testing.T) {
	data, err := NewCSVExporter().Export(nil)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("empty history should export no bytes, got %q", data)
	}
}

// =============================================================================
// FILE EXPORT TESTS
// =============================================================================

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()
	opts := &Options{OutputDir: dir}

	path, err := ExportJSON(sampleLog(), opts)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	if !strings.HasPrefix(path, dir) || !strings.HasSuffix(path, ".json") {
		t.Errorf("unexpected path %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("exported file missing: %v", err)
	}

	path, err = ExportCSV(sampleLog(), opts)
	if err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	if !strings.HasSuffix(path, ".csv") {
		t.Errorf("unexpected path %q", path)
	}
}
