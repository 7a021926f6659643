// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import "strings"

// =============================================================================
// CATEGORY CATALOG
// =============================================================================

// Category groups unit names under a UI-facing label. Purely
// presentational: membership has no effect on conversion semantics.
type Category struct {
	Label   string
	Members []string
}

// Categories returns the catalog in display order. The returned slices
// are fresh copies; callers may reorder them freely.
func Categories() []Category {
	src := catalog()
	out := make([]Category, len(src))
	for i, c := range src {
		members := make([]string, len(c.Members))
		copy(members, c.Members)
		out[i] = Category{Label: c.Label, Members: members}
	}
	return out
}

func catalog() []Category {
	return []Category{
		{"Length", []string{
			"nanometer", "micrometer", "millimeter", "centimeter", "decimeter", "meter", "kilometer",
			"inch", "foot", "foot_us_survey", "yard", "statute_mile", "mile_us_survey", "nautical_mile",
		}},
		{"Area", []string{
			"millimeter**2", "centimeter**2", "meter**2", "hectare", "acre_intl", "acre_us_survey", "kilometer**2",
			"square_inch", "square_foot", "square_yard", "square_mile",
		}},
		{"Volume", []string{
			"milliliter", "centiliter", "deciliter", "liter", "hectoliter", "meter**3",
			"teaspoon_us", "tablespoon_us", "tablespoon_metric", "tablespoon_au",
			"fluid_ounce_us", "cup_us", "pint_us", "quart_us", "gallon_us",
			"fluid_ounce_imp", "pint_imp", "quart_imp", "gallon_imp",
			"barrel_oil_us", "barrel_beer_us", "barrel_beer_uk",
		}},
		{"Mass", []string{
			"milligram", "gram", "kilogram", "quintal", "tonne", "ounce", "pound", "stone", "ton_short", "ton_long",
		}},
		{"Temperature", []string{"degC", "degF", "kelvin"}},
		{"Speed", []string{"meter/second", "kilometer/hour", "mile_per_hour", "knot"}},
		{"Pressure", []string{"pascal", "kilopascal", "bar", "millibar", "atmosphere", "mmHg", "psi"}},
		{"Energy & Power", []string{"joule", "kilojoule", "watt_hour", "kilowatt_hour", "calorie", "kcal", "BTU", "watt"}},
		{"Fuel economy", []string{"liter_per_100_kilometer", "mile_per_gallon_us", "mile_per_gallon_imp"}},
		{"Digital storage", []string{"bit", "byte", "kB", "MB", "GB", "TB", "PB", "KiB", "MiB", "GiB", "TiB", "PiB"}},
		{"Angle", []string{"degree", "radian", "grad"}},
	}
}

// =============================================================================
// UNIT LABELS
// =============================================================================

// longNames substitutes full display names for compound units before any
// separator rewriting, so the underscore pass cannot clobber them.
var longNames = map[string]string{
	"liter_per_100_kilometer": "liter/100 km",
	"mile_per_gallon_us":      "mile/gallon (US)",
	"mile_per_gallon_imp":     "mile/gallon (Imp)",
	"barrel_oil_us":           "barrel (US oil)",
	"barrel_beer_us":          "barrel (US beer)",
	"barrel_beer_uk":          "barrel (UK beer)",
}

// Label renders a unit name for display: squared/cubed exponents become
// superscripts, separators become spaces or a centered dot, and compound
// units get their long names.
func Label(name string) string {
	if long, ok := longNames[name]; ok {
		return long
	}
	lab := strings.ReplaceAll(name, "**2", "²")
	lab = strings.ReplaceAll(lab, "**3", "³")
	lab = strings.ReplaceAll(lab, "_", " ")
	lab = strings.ReplaceAll(lab, "*", "·")
	return lab
}
