// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/liborbenes/units-tui/internal/convert"
)

func TestArgParserFlags(t *testing.T) {
	p := NewArgParser([]string{"2.5", "pound", "kilogram", "--precision", "12"})

	if got := p.IntFlag("precision", 8); got != 12 {
		t.Errorf("IntFlag(precision) = %d, want 12", got)
	}
	pos := p.Positional()
	if len(pos) != 3 || pos[0] != "2.5" || pos[1] != "pound" || pos[2] != "kilogram" {
		t.Errorf("Positional() = %v", pos)
	}
}

func TestArgParserEqualsForm(t *testing.T) {
	p := NewArgParser([]string{"--precision=20", "--out=/tmp/x", "--force"})

	if got := p.Flag("precision"); got != "20" {
		t.Errorf("Flag(precision) = %q, want 20", got)
	}
	if got := p.Flag("out"); got != "/tmp/x" {
		t.Errorf("Flag(out) = %q", got)
	}
	if !p.BoolFlag("force") {
		t.Error("BoolFlag(force) = false, want true")
	}
}

func TestArgParserDoubleDash(t *testing.T) {
	// Negative values must survive after the "--" separator.
	p := NewArgParser([]string{"--precision", "6", "--", "-40", "degF", "degC"})

	pos := p.Positional()
	if len(pos) != 3 || pos[0] != "-40" {
		t.Errorf("Positional() = %v, want [-40 degF degC]", pos)
	}
	if got := p.IntFlag("precision", 8); got != 6 {
		t.Errorf("IntFlag(precision) = %d, want 6", got)
	}
}

func TestArgParserIntFlagDefaults(t *testing.T) {
	p := NewArgParser([]string{"--precision=abc"})
	if got := p.IntFlag("precision", 8); got != 8 {
		t.Errorf("unparsable int flag should fall back to default, got %d", got)
	}
	if got := p.IntFlag("missing", 5); got != 5 {
		t.Errorf("missing flag should return default, got %d", got)
	}
}

func TestArgParserRequirePositional(t *testing.T) {
	p := NewArgParser([]string{"1", "meter"})
	if _, err := p.RequirePositional(3, "usage"); err == nil {
		t.Error("expected error for missing positional argument")
	}

	p = NewArgParser([]string{"1", "meter", "foot"})
	pos, err := p.RequirePositional(3, "usage")
	if err != nil {
		t.Fatalf("RequirePositional: %v", err)
	}
	if pos[2] != "foot" {
		t.Errorf("pos[2] = %q, want foot", pos[2])
	}
}

func TestEvalConversionErrors(t *testing.T) {
	registry := convert.NewRegistry()

	tests := []struct {
		name  string
		input string
	}{
		{"too few fields", "2.5 pound"},
		{"too many fields", "2.5 pound kilogram 12 extra"},
		{"bad precision", "2.5 pound kilogram twelve"},
		{"unknown unit", "2.5 pound parsec"},
		{"bad value", "abc pound kilogram"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := evalConversion(registry, tt.input, 8); err == nil {
				t.Errorf("evalConversion(%q) = nil, want error", tt.input)
			}
		})
	}

	if err := evalConversion(registry, "2.5 pound kilogram", 8); err != nil {
		t.Errorf("evalConversion valid input: %v", err)
	}
}
