// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// =============================================================================
// VALUE PARSING
// =============================================================================

// ParseDecimal parses a user-supplied value string into a decimal.
// Plain and exponent notation are accepted ("1.5", "-0.25", "1.23e-4").
// Inf and NaN spellings are rejected: a conversion input must be finite.
func ParseDecimal(s string) (*apd.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidNumber)
	}
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	if d.Form != apd.Finite {
		return nil, fmt.Errorf("%w: %q is not finite", ErrInvalidNumber, s)
	}
	return d, nil
}

// =============================================================================
// CONVERSION
// =============================================================================

// Convert converts value from one unit to another. Both units must be
// registered and share a dimension. The returned decimal is a fresh
// value; the input is never mutated.
func (r *Registry) Convert(value *apd.Decimal, from, to string) (*apd.Decimal, error) {
	fu, err := r.Lookup(from)
	if err != nil {
		return nil, err
	}
	tu, err := r.Lookup(to)
	if err != nil {
		return nil, err
	}
	if fu.Dimension != tu.Dimension {
		return nil, fmt.Errorf("%w: %s (%s) -> %s (%s)",
			ErrIncompatibleDimension, fu.Name, fu.Dimension, tu.Name, tu.Dimension)
	}

	// Identity conversions return the input unchanged rather than
	// round-tripping through the base unit, which would round
	// non-terminating factors at the working precision.
	if fu.Name == tu.Name {
		out := new(apd.Decimal)
		out.Set(value)
		return out, nil
	}

	ctx := newContext()
	base, err := fu.ToBase.ToBase(ctx, value)
	if err != nil {
		return nil, err
	}
	return tu.ToBase.FromBase(ctx, base)
}

// ConvertString parses value, converts it, and formats the result to the
// given precision. Convenience wrapper used by the CLI and the REPL.
func (r *Registry) ConvertString(value, from, to string, precision int) (string, error) {
	d, err := ParseDecimal(value)
	if err != nil {
		return "", err
	}
	out, err := r.Convert(d, from, to)
	if err != nil {
		return "", err
	}
	return Format(out, precision), nil
}
