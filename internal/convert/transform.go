// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// =============================================================================
// DECIMAL CONTEXT
// =============================================================================

// workingPrecision is the number of significant digits carried through the
// conversion pipeline. Matches the precision the NIST constant table was
// validated against; far beyond the [3,60] display range.
const workingPrecision = 200

// newContext returns the decimal context used by the conversion pipeline.
// Half-away-from-zero rounding applies only when a quotient does not
// terminate within the working precision.
func newContext() *apd.Context {
	ctx := apd.BaseContext.WithPrecision(workingPrecision)
	ctx.Rounding = apd.RoundHalfUp
	return ctx
}

// mustDecimal parses a literal constant from the unit table.
// Only called on compile-time literals, so a parse failure is a
// programming error and panics at init.
func mustDecimal(s string) *apd.Decimal {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("convert: bad literal constant %q: %v", s, err))
	}
	return d
}

// =============================================================================
// TRANSFORM SUM TYPE
// =============================================================================

// Transform maps a raw unit value to the base unit of its dimension and
// back. Exactly two implementations exist: Affine for every linear and
// temperature unit, and Reciprocal for inherently inverse relationships
// such as fuel economy.
type Transform interface {
	// ToBase converts a value expressed in this unit to the dimension's
	// base unit.
	ToBase(ctx *apd.Context, v *apd.Decimal) (*apd.Decimal, error)

	// FromBase converts a value expressed in the dimension's base unit
	// to this unit.
	FromBase(ctx *apd.Context, v *apd.Decimal) (*apd.Decimal, error)
}

// Affine implements base = (value + Shift) * Num / Den.
//
// The shift is applied before scaling so that temperature constants stay
// exact decimals: degF uses Shift=459.67, Num=5, Den=9, which keeps
// 32 degF -> 273.15 K a terminating division instead of rounding through
// the non-terminating 5/9 scale factor the handbook formula implies.
// For ordinary linear units Shift is zero and Den is one.
type Affine struct {
	Shift *apd.Decimal
	Num   *apd.Decimal
	Den   *apd.Decimal
}

// Linear returns an Affine transform with the given multiplicative scale.
func Linear(scale string) Transform {
	return Affine{Shift: mustDecimal("0"), Num: mustDecimal(scale), Den: mustDecimal("1")}
}

// Ratio returns an Affine transform whose scale is the exact quotient
// num/den. Used where the factor does not terminate as a decimal
// (kilometer/hour = 1/3.6 meter/second, mile_per_gallon_imp).
func Ratio(num, den string) Transform {
	return Affine{Shift: mustDecimal("0"), Num: mustDecimal(num), Den: mustDecimal(den)}
}

// Shifted returns an Affine transform with a pre-scale shift, for
// temperature units.
func Shifted(shift, num, den string) Transform {
	return Affine{Shift: mustDecimal(shift), Num: mustDecimal(num), Den: mustDecimal(den)}
}

// ToBase computes (v + Shift) * Num / Den.
func (a Affine) ToBase(ctx *apd.Context, v *apd.Decimal) (*apd.Decimal, error) {
	var shifted, scaled apd.Decimal
	out := new(apd.Decimal)
	if _, err := ctx.Add(&shifted, v, a.Shift); err != nil {
		return nil, err
	}
	if _, err := ctx.Mul(&scaled, &shifted, a.Num); err != nil {
		return nil, err
	}
	if _, err := ctx.Quo(out, &scaled, a.Den); err != nil {
		return nil, err
	}
	return out, nil
}

// FromBase computes v * Den / Num - Shift.
func (a Affine) FromBase(ctx *apd.Context, v *apd.Decimal) (*apd.Decimal, error) {
	var scaled, unscaled apd.Decimal
	out := new(apd.Decimal)
	if _, err := ctx.Mul(&scaled, v, a.Den); err != nil {
		return nil, err
	}
	if _, err := ctx.Quo(&unscaled, &scaled, a.Num); err != nil {
		return nil, err
	}
	if _, err := ctx.Sub(out, &unscaled, a.Shift); err != nil {
		return nil, err
	}
	return out, nil
}

// Reciprocal implements base = Constant / value. The relationship is its
// own inverse, so FromBase applies the same formula.
type Reciprocal struct {
	Constant *apd.Decimal
}

// Inverse returns a Reciprocal transform with the given constant.
func Inverse(constant string) Transform {
	return Reciprocal{Constant: mustDecimal(constant)}
}

// ToBase computes Constant / v.
func (r Reciprocal) ToBase(ctx *apd.Context, v *apd.Decimal) (*apd.Decimal, error) {
	if v.IsZero() {
		return nil, fmt.Errorf("%w: reciprocal unit value must be nonzero", ErrInvalidNumber)
	}
	out := new(apd.Decimal)
	if _, err := ctx.Quo(out, r.Constant, v); err != nil {
		return nil, err
	}
	return out, nil
}

// FromBase computes Constant / v.
func (r Reciprocal) FromBase(ctx *apd.Context, v *apd.Decimal) (*apd.Decimal, error) {
	return r.ToBase(ctx, v)
}
