// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package numbase converts integers between binary, octal, decimal, and
// hexadecimal notation. Values are arbitrary-magnitude (math/big), so
// there is no overflow ceiling on any base.
package numbase

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidDigit indicates input that does not parse in the requested base.
var ErrInvalidDigit = errors.New("invalid digits for base")

// ErrUnknownBase indicates a base name outside the supported set.
var ErrUnknownBase = errors.New("unknown base")

// =============================================================================
// BASES
// =============================================================================

// Base is a supported numeric radix.
type Base int

const (
	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

// Bases returns the supported bases in display order.
func Bases() []Base {
	return []Base{Binary, Octal, Decimal, Hexadecimal}
}

// Name returns the human-readable base name.
func (b Base) Name() string {
	switch b {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	default:
		return fmt.Sprintf("base %d", int(b))
	}
}

// ParseBase resolves a base from its name or radix ("hexadecimal",
// "hex", "16").
func ParseBase(s string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "bin", "2":
		return Binary, nil
	case "octal", "oct", "8":
		return Octal, nil
	case "decimal", "dec", "10":
		return Decimal, nil
	case "hexadecimal", "hex", "16":
		return Hexadecimal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBase, s)
	}
}

// =============================================================================
// CONVERSION
// =============================================================================

// Parse reads an integer written in the given base. A leading minus sign
// is accepted; prefixes like 0x are not.
func Parse(s string, base Base) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty input (%s)", ErrInvalidDigit, base.Name())
	}
	n, ok := new(big.Int).SetString(s, int(base))
	if !ok {
		return nil, fmt.Errorf("%w: %q (%s)", ErrInvalidDigit, s, base.Name())
	}
	return n, nil
}

// Render writes an integer in the given base, without a radix prefix.
// Hexadecimal digits are upper-case.
func Render(n *big.Int, base Base) string {
	s := n.Text(int(base))
	if base == Hexadecimal {
		s = strings.ToUpper(s)
	}
	return s
}

// Convert parses s in the from base and renders it in the to base.
func Convert(s string, from, to Base) (string, error) {
	n, err := Parse(s, from)
	if err != nil {
		return "", err
	}
	return Render(n, to), nil
}
