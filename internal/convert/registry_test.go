// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"errors"
	"testing"
)

// =============================================================================
// REGISTRY TESTS
// =============================================================================

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()

	u, err := r.Lookup("pound")
	if err != nil {
		t.Fatalf("Lookup(pound) failed: %v", err)
	}
	if u.Dimension != Mass {
		t.Errorf("pound dimension = %s, want %s", u.Dimension, Mass)
	}

	if _, err := r.Lookup("furlong"); !errors.Is(err, ErrUndefinedUnit) {
		t.Errorf("Lookup(furlong) = %v, want ErrUndefinedUnit", err)
	}
}

func TestRegistry_NamesMatchLen(t *testing.T) {
	r := NewRegistry()
	if len(r.Names()) != r.Len() {
		t.Errorf("Names() has %d entries, Len() = %d", len(r.Names()), r.Len())
	}
	if r.Len() == 0 {
		t.Fatal("registry is empty")
	}
}

// Every unit the catalog presents must resolve in the registry; a
// mismatch here means a selectable unit would fail at conversion time.
func TestCatalogMembersRegistered(t *testing.T) {
	r := NewRegistry()
	for _, cat := range Categories() {
		if len(cat.Members) == 0 {
			t.Errorf("category %q has no members", cat.Label)
		}
		for _, name := range cat.Members {
			if _, err := r.Lookup(name); err != nil {
				t.Errorf("category %q member %q not registered: %v", cat.Label, name, err)
			}
		}
	}
}

// =============================================================================
// LABEL TESTS
// =============================================================================

func TestLabel(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
	}{
		{"meter", "meter"},
		{"meter**2", "meter²"},
		{"meter**3", "meter³"},
		{"square_mile", "square mile"},
		{"fluid_ounce_us", "fluid ounce us"},
		{"meter/second", "meter/second"},
		{"liter_per_100_kilometer", "liter/100 km"},
		{"mile_per_gallon_us", "mile/gallon (US)"},
		{"mile_per_gallon_imp", "mile/gallon (Imp)"},
		{"barrel_oil_us", "barrel (US oil)"},
		{"barrel_beer_us", "barrel (US beer)"},
		{"barrel_beer_uk", "barrel (UK beer)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Label(tc.name); got != tc.expected {
				t.Errorf("Label(%q) = %q, want %q", tc.name, got, tc.expected)
			}
		})
	}
}
