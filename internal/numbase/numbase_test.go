// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package numbase

import (
	"errors"
	"math/big"
	"testing"
)

func TestConvert(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		from     Base
		to       Base
		expected string
	}{
		{"dec to bin", "42", Decimal, Binary, "101010"},
		{"dec to oct", "42", Decimal, Octal, "52"},
		{"dec to hex", "255", Decimal, Hexadecimal, "FF"},
		{"hex to dec", "ff", Hexadecimal, Decimal, "255"},
		{"hex upper to dec", "FF", Hexadecimal, Decimal, "255"},
		{"bin to hex", "11111111", Binary, Hexadecimal, "FF"},
		{"oct to dec", "52", Octal, Decimal, "42"},
		{"zero", "0", Decimal, Binary, "0"},
		{"negative", "-255", Decimal, Hexadecimal, "-FF"},
		{"huge value", "123456789012345678901234567890", Decimal, Hexadecimal, "18EE90FF6C373E0EE4E3F0AD2"},
		{"identity", "1010", Binary, Binary, "1010"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Convert(tc.input, tc.from, tc.to)
			if err != nil {
				t.Fatalf("Convert(%q, %s, %s) failed: %v", tc.input, tc.from.Name(), tc.to.Name(), err)
			}
			if got != tc.expected {
				t.Errorf("Convert(%q, %s, %s) = %q, want %q",
					tc.input, tc.from.Name(), tc.to.Name(), got, tc.expected)
			}
		})
	}
}

// Round-trip law: converting between any pair of bases and back is lossless.
func TestConvert_RoundTrip(t *testing.T) {
	values := []int64{0, 1, 7, 42, 255, 256, 1000000, 1<<40 + 12345}
	for _, v := range values {
		start := big.NewInt(v).Text(10)
		for _, b1 := range Bases() {
			for _, b2 := range Bases() {
				mid, err := Convert(start, Decimal, b1)
				if err != nil {
					t.Fatalf("to %s: %v", b1.Name(), err)
				}
				cross, err := Convert(mid, b1, b2)
				if err != nil {
					t.Fatalf("%s to %s: %v", b1.Name(), b2.Name(), err)
				}
				back, err := Convert(cross, b2, Decimal)
				if err != nil {
					t.Fatalf("back from %s: %v", b2.Name(), err)
				}
				if back != start {
					t.Errorf("round trip %d via %s/%s = %s", v, b1.Name(), b2.Name(), back)
				}
			}
		}
	}
}

func TestParse_InvalidInput(t *testing.T) {
	testCases := []struct {
		input string
		base  Base
	}{
		{"", Decimal},
		{"12a", Decimal},
		{"102", Binary},
		{"89", Octal},
		{"xyz", Hexadecimal},
		{"0x1F", Hexadecimal},
		{"1.5", Decimal},
		{"--1", Decimal},
	}

	for _, tc := range testCases {
		if _, err := Parse(tc.input, tc.base); !errors.Is(err, ErrInvalidDigit) {
			t.Errorf("Parse(%q, %s) = %v, want ErrInvalidDigit", tc.input, tc.base.Name(), err)
		}
	}
}

func TestParseBase(t *testing.T) {
	for _, s := range []string{"binary", "BIN", "2", "octal", "hex", "decimal", "16"} {
		if _, err := ParseBase(s); err != nil {
			t.Errorf("ParseBase(%q) unexpected error: %v", s, err)
		}
	}
	if _, err := ParseBase("ternary"); !errors.Is(err, ErrUnknownBase) {
		t.Errorf("ParseBase(ternary) = %v, want ErrUnknownBase", err)
	}
}
