// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package convert

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// =============================================================================
// DISPLAY PRECISION BOUNDS
// =============================================================================

const (
	// MinPrecision and MaxPrecision bound the display precision slider.
	MinPrecision = 3
	MaxPrecision = 60

	// DefaultPrecision is the display precision used when none is chosen.
	DefaultPrecision = 8
)

// ClampPrecision forces a precision into the supported [3,60] range.
func ClampPrecision(p int) int {
	if p < MinPrecision {
		return MinPrecision
	}
	if p > MaxPrecision {
		return MaxPrecision
	}
	return p
}

// =============================================================================
// RESULT FORMATTER
// =============================================================================

// Format rounds value to precision decimal places (half away from zero)
// and renders it without trailing zeros or a dangling decimal point.
//
// The decimal path never fails for values produced by the conversion
// pipeline; if quantizing ever does fail (a coefficient too wide for the
// working precision), the value falls back to float64 formatting.
func Format(value *apd.Decimal, precision int) string {
	precision = ClampPrecision(precision)

	ctx := newContext()
	var q apd.Decimal
	if _, err := ctx.Quantize(&q, value, int32(-precision)); err != nil {
		return formatFloatFallback(value, precision)
	}
	return trimZeros(q.Text('f'))
}

// trimZeros strips trailing zeros and a trailing decimal point from a
// fixed-notation decimal string, normalizing "-0" to "0".
func trimZeros(s string) string {
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

// formatFloatFallback renders via float64. Only reachable when the
// decimal path errors; visually equivalent for every supported input.
func formatFloatFallback(value *apd.Decimal, precision int) string {
	f, err := value.Float64()
	if err != nil {
		return value.String()
	}
	return trimZeros(strconv.FormatFloat(f, 'f', precision, 64))
}
