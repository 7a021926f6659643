// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"errors"
	"fmt"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrInvalidNumber indicates a value string that does not parse as a
	// finite decimal, or a value a transform cannot accept (zero for a
	// reciprocal unit).
	ErrInvalidNumber = errors.New("invalid numeric input")

	// ErrUndefinedUnit indicates a unit name with no registry entry.
	ErrUndefinedUnit = errors.New("undefined unit")

	// ErrIncompatibleDimension indicates a conversion across physical
	// quantity categories (e.g. a length to a mass).
	ErrIncompatibleDimension = errors.New("incompatible dimensions")
)

// =============================================================================
// DIMENSIONS
// =============================================================================

// Dimension is a physical quantity category. Conversions are only valid
// between units of the same dimension.
type Dimension string

const (
	Length      Dimension = "length"      // base: meter
	Area        Dimension = "area"        // base: meter**2
	Volume      Dimension = "volume"      // base: liter
	Mass        Dimension = "mass"        // base: kilogram
	Temperature Dimension = "temperature" // base: kelvin
	Speed       Dimension = "speed"       // base: meter/second
	Pressure    Dimension = "pressure"    // base: pascal
	Energy      Dimension = "energy"      // base: joule
	Power       Dimension = "power"       // base: watt
	FuelEconomy Dimension = "fuel economy" // base: mile_per_gallon_us
	Information Dimension = "information" // base: byte
	Angle       Dimension = "angle"       // base: radian
)

// =============================================================================
// UNIT DEFINITIONS
// =============================================================================

// Unit is an immutable unit definition: a name, the dimension it belongs
// to, and the transform to that dimension's base unit.
type Unit struct {
	Name      string
	Dimension Dimension
	ToBase    Transform
}

// builtins returns the full literal definition table.
//
// Customary-unit factors follow NIST Handbook 44 and SP 811; metric
// entries are exact powers of ten; digital storage uses exact powers of
// 1000 and 1024 per IEC/SI.
func builtins() []Unit {
	return []Unit{
		// Length (base meter)
		{"nanometer", Length, Linear("0.000000001")},
		{"micrometer", Length, Linear("0.000001")},
		{"millimeter", Length, Linear("0.001")},
		{"centimeter", Length, Linear("0.01")},
		{"decimeter", Length, Linear("0.1")},
		{"meter", Length, Linear("1")},
		{"kilometer", Length, Linear("1000")},
		{"inch", Length, Linear("0.0254")},
		{"foot", Length, Linear("0.3048")},
		{"foot_us_survey", Length, Linear("0.3048006096")},
		{"yard", Length, Linear("0.9144")},
		{"statute_mile", Length, Linear("1609.344")},
		{"mile_us_survey", Length, Linear("1609.347218694")},
		{"nautical_mile", Length, Linear("1852")},

		// Area (base meter**2)
		{"millimeter**2", Area, Linear("0.000001")},
		{"centimeter**2", Area, Linear("0.0001")},
		{"meter**2", Area, Linear("1")},
		{"hectare", Area, Linear("10000")},
		{"acre_intl", Area, Linear("4046.8564224")},
		{"acre_us_survey", Area, Linear("4046.872609874")},
		{"kilometer**2", Area, Linear("1000000")},
		{"square_inch", Area, Linear("0.00064516")},
		{"square_foot", Area, Linear("0.09290304")},
		{"square_yard", Area, Linear("0.83612736")},
		{"square_mile", Area, Linear("2589988.110336")},

		// Volume (base liter)
		{"milliliter", Volume, Linear("0.001")},
		{"centiliter", Volume, Linear("0.01")},
		{"deciliter", Volume, Linear("0.1")},
		{"liter", Volume, Linear("1")},
		{"hectoliter", Volume, Linear("100")},
		{"meter**3", Volume, Linear("1000")},
		{"teaspoon_us", Volume, Linear("0.00492892159375")},
		{"tablespoon_us", Volume, Linear("0.01478676478125")},
		{"tablespoon_metric", Volume, Linear("0.015")},
		{"tablespoon_au", Volume, Linear("0.02")},
		{"fluid_ounce_us", Volume, Linear("0.0295735295625")},
		{"cup_us", Volume, Linear("0.2365882365")},
		{"pint_us", Volume, Linear("0.473176473")},
		{"quart_us", Volume, Linear("0.946352946")},
		{"gallon_us", Volume, Linear("3.785411784")},
		{"fluid_ounce_imp", Volume, Linear("0.0284130625")},
		{"pint_imp", Volume, Linear("0.56826125")},
		{"quart_imp", Volume, Linear("1.1365225")},
		{"gallon_imp", Volume, Linear("4.54609")},
		{"barrel_oil_us", Volume, Linear("158.987294928")},
		{"barrel_beer_us", Volume, Linear("117.347765304")},
		{"barrel_beer_uk", Volume, Linear("163.65924")},

		// Mass (base kilogram)
		{"milligram", Mass, Linear("0.000001")},
		{"gram", Mass, Linear("0.001")},
		{"kilogram", Mass, Linear("1")},
		{"quintal", Mass, Linear("100")},
		{"tonne", Mass, Linear("1000")},
		{"ounce", Mass, Linear("0.028349523125")},
		{"pound", Mass, Linear("0.45359237")},
		{"stone", Mass, Linear("6.35029318")},
		{"ton_short", Mass, Linear("907.18474")},
		{"ton_long", Mass, Linear("1016.0469088")},

		// Temperature (base kelvin)
		// K = C + 273.15; K = (F + 459.67) * 5/9
		{"kelvin", Temperature, Linear("1")},
		{"degC", Temperature, Shifted("273.15", "1", "1")},
		{"degF", Temperature, Shifted("459.67", "5", "9")},

		// Speed (base meter/second)
		{"meter/second", Speed, Linear("1")},
		{"kilometer/hour", Speed, Ratio("1", "3.6")},
		{"mile_per_hour", Speed, Linear("0.44704")},
		{"knot", Speed, Linear("0.514444444")},

		// Pressure (base pascal)
		{"pascal", Pressure, Linear("1")},
		{"kilopascal", Pressure, Linear("1000")},
		{"bar", Pressure, Linear("100000")},
		{"millibar", Pressure, Linear("100")},
		{"atmosphere", Pressure, Linear("101325")},
		{"mmHg", Pressure, Linear("133.322387415")},
		{"psi", Pressure, Linear("6894.757293168")},

		// Energy (base joule); watt is power, its own dimension, so a
		// joule->watt request fails the dimension check like any other
		// cross-dimension conversion.
		{"joule", Energy, Linear("1")},
		{"kilojoule", Energy, Linear("1000")},
		{"watt_hour", Energy, Linear("3600")},
		{"kilowatt_hour", Energy, Linear("3600000")},
		{"calorie", Energy, Linear("4.184")},
		{"kcal", Energy, Linear("4184")},
		{"BTU", Energy, Linear("1055.05585262")},
		{"watt", Power, Linear("1")},

		// Fuel economy (base mile_per_gallon_us)
		// 1 L/100km = 235.2145833 / mpg_us; mpg_imp scales by the exact
		// gallon ratio.
		{"mile_per_gallon_us", FuelEconomy, Linear("1")},
		{"mile_per_gallon_imp", FuelEconomy, Ratio("3.785411784", "4.54609")},
		{"liter_per_100_kilometer", FuelEconomy, Inverse("235.2145833")},

		// Digital storage (base byte)
		{"bit", Information, Linear("0.125")},
		{"byte", Information, Linear("1")},
		{"kB", Information, Linear("1000")},
		{"MB", Information, Linear("1000000")},
		{"GB", Information, Linear("1000000000")},
		{"TB", Information, Linear("1000000000000")},
		{"PB", Information, Linear("1000000000000000")},
		{"KiB", Information, Linear("1024")},
		{"MiB", Information, Linear("1048576")},
		{"GiB", Information, Linear("1073741824")},
		{"TiB", Information, Linear("1099511627776")},
		{"PiB", Information, Linear("1125899906842624")},

		// Angle (base radian)
		{"degree", Angle, Linear("0.0174532925199433")},
		{"radian", Angle, Linear("1")},
		{"grad", Angle, Linear("0.015707963267949")},
	}
}

// =============================================================================
// REGISTRY
// =============================================================================

// Registry holds the unit definition table. It is built once at startup
// and read-only afterwards, so it is safe to share without locking.
type Registry struct {
	units map[string]Unit
	names []string
}

// NewRegistry builds the registry from the builtin definition table.
// A duplicate name in the table is a programming error and panics: the
// table is a literal, and silently shadowing a NIST constant would be
// far worse than failing at startup.
func NewRegistry() *Registry {
	defs := builtins()
	r := &Registry{
		units: make(map[string]Unit, len(defs)),
		names: make([]string, 0, len(defs)),
	}
	for _, u := range defs {
		if _, dup := r.units[u.Name]; dup {
			panic(fmt.Sprintf("convert: duplicate unit definition %q", u.Name))
		}
		r.units[u.Name] = u
		r.names = append(r.names, u.Name)
	}
	return r
}

// Lookup resolves a unit name to its definition.
func (r *Registry) Lookup(name string) (Unit, error) {
	u, ok := r.units[name]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUndefinedUnit, name)
	}
	return u, nil
}

// Names returns all registered unit names in definition order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	return len(r.units)
}
