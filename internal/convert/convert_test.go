// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// =============================================================================
// CONVERSION TESTS
// =============================================================================

func TestConvert_KnownValues(t *testing.T) {
	r := NewRegistry()

	testCases := []struct {
		name      string
		value     string
		from      string
		to        string
		precision int
		expected  string
	}{
		{"celsius to kelvin", "0", "degC", "kelvin", 8, "273.15"},
		{"fahrenheit freezing", "32", "degF", "degC", 8, "0"},
		{"fahrenheit crossover", "-40", "degF", "degC", 8, "-40"},
		{"celsius to fahrenheit", "100", "degC", "degF", 8, "212"},
		{"gallon to liter", "1", "gallon_us", "liter", 12, "3.785411784"},
		{"pound to kilogram", "1", "pound", "kilogram", 12, "0.45359237"},
		{"mebibyte to megabyte", "1024", "MiB", "MB", 8, "1073.741824"},
		{"kibibyte to kilobyte", "1024", "KiB", "kB", 8, "1048.576"},
		{"kibibyte to byte", "1", "KiB", "byte", 8, "1024"},
		{"mile to kilometer", "1", "statute_mile", "kilometer", 8, "1.609344"},
		{"kmh to ms", "3.6", "kilometer/hour", "meter/second", 8, "1"},
		{"atmosphere to pascal", "1", "atmosphere", "pascal", 8, "101325"},
		{"kwh to joule", "1", "kilowatt_hour", "joule", 8, "3600000"},
		{"bit to byte", "8", "bit", "byte", 8, "1"},
		{"mpg to l per 100km", "1", "mile_per_gallon_us", "liter_per_100_kilometer", 10, "235.2145833"},
		{"l per 100km to mpg", "2.5", "liter_per_100_kilometer", "mile_per_gallon_us", 10, "94.08583332"},
		{"negative length", "-2", "meter", "centimeter", 8, "-200"},
		{"exponent input", "1.23456789e-1", "meter", "millimeter", 12, "123.456789"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.ConvertString(tc.value, tc.from, tc.to, tc.precision)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

// Identity law: converting a value to its own unit returns it exactly,
// for every registered unit including the reciprocal ones.
func TestConvert_Identity(t *testing.T) {
	r := NewRegistry()
	x := mustDecimal("2.718281828")

	for _, name := range r.Names() {
		got, err := r.Convert(x, name, name)
		require.NoError(t, err, "unit %s", name)
		require.Zero(t, x.Cmp(got), "unit %s: got %s", name, got.String())
	}
}

// Round-trip law: u -> v -> u recovers the input within display rounding
// for every pair of units sharing a category.
func TestConvert_RoundTrip(t *testing.T) {
	r := NewRegistry()
	x := mustDecimal("2.5")
	want := Format(x, 20)

	for _, cat := range Categories() {
		u := cat.Members[0]
		for _, v := range cat.Members[1:] {
			if u == "joule" && v == "watt" {
				continue // catalog groups energy with power; different dimensions
			}
			fwd, err := r.Convert(x, u, v)
			require.NoError(t, err, "%s -> %s", u, v)
			back, err := r.Convert(fwd, v, u)
			require.NoError(t, err, "%s -> %s", v, u)
			require.Equal(t, want, Format(back, 20), "%s <-> %s", u, v)
		}
	}
}

func TestConvert_IncompatibleDimension(t *testing.T) {
	r := NewRegistry()

	_, err := r.Convert(mustDecimal("1"), "meter", "kilogram")
	require.ErrorIs(t, err, ErrIncompatibleDimension)

	// watt sits in the Energy & Power category but is a power unit
	_, err = r.Convert(mustDecimal("1"), "joule", "watt")
	require.ErrorIs(t, err, ErrIncompatibleDimension)
}

func TestConvert_UndefinedUnit(t *testing.T) {
	r := NewRegistry()

	_, err := r.Convert(mustDecimal("1"), "cubit", "meter")
	require.ErrorIs(t, err, ErrUndefinedUnit)

	_, err = r.Convert(mustDecimal("1"), "meter", "cubit")
	require.ErrorIs(t, err, ErrUndefinedUnit)
}

func TestConvert_ReciprocalZero(t *testing.T) {
	r := NewRegistry()
	_, err := r.Convert(mustDecimal("0"), "liter_per_100_kilometer", "mile_per_gallon_us")
	require.ErrorIs(t, err, ErrInvalidNumber)
}

// =============================================================================
// PARSING TESTS
// =============================================================================

func TestParseDecimal(t *testing.T) {
	valid := []string{"1", "0", "-3.5", "1.23e-4", "  42  ", "1E10", "0.000000001"}
	for _, s := range valid {
		if _, err := ParseDecimal(s); err != nil {
			t.Errorf("ParseDecimal(%q) unexpected error: %v", s, err)
		}
	}

	invalid := []string{"", "abc", "1.2.3", "1,5", "Inf", "-Infinity", "NaN", "0x1F"}
	for _, s := range invalid {
		if _, err := ParseDecimal(s); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("ParseDecimal(%q) = %v, want ErrInvalidNumber", s, err)
		}
	}
}
