// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package textcodec implements the character-code and encoding helpers:
// ASCII/Unicode code point lookup, Base64, URL percent-encoding, and
// text/hex/binary conversion. Every transform is a stateless single pass
// over the input with validation up front.
package textcodec

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrOutOfRange indicates a code point outside [0, 0x10FFFF] or in
	// the surrogate range.
	ErrOutOfRange = errors.New("code point out of Unicode range")

	// ErrInvalidBase64 indicates a malformed Base64 payload.
	ErrInvalidBase64 = errors.New("invalid base64 input")

	// ErrInvalidHex indicates a malformed hex payload.
	ErrInvalidHex = errors.New("invalid hex input")

	// ErrInvalidBinary indicates a malformed binary payload.
	ErrInvalidBinary = errors.New("invalid binary input")

	// ErrInvalidURLEscape indicates a malformed percent escape.
	ErrInvalidURLEscape = errors.New("invalid URL escape")

	// ErrInvalidUTF8 indicates decoded bytes that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("decoded bytes are not valid UTF-8")

	// ErrEmptyInput indicates an empty string where a character was needed.
	ErrEmptyInput = errors.New("empty input")
)

// =============================================================================
// CHARACTER CODES
// =============================================================================

// CharCodes describes one character in the numeric bases the ASCII and
// Unicode tools display.
type CharCodes struct {
	Char string // the character itself; empty for non-printable ASCII rows
	Dec  int
	Hex  string // upper-case, no prefix
	Oct  string
	Bin  string
	Name string // Unicode character name
}

func codesFor(r rune) CharCodes {
	return CharCodes{
		Char: string(r),
		Dec:  int(r),
		Hex:  strings.ToUpper(strconv.FormatInt(int64(r), 16)),
		Oct:  strconv.FormatInt(int64(r), 8),
		Bin:  strconv.FormatInt(int64(r), 2),
		Name: runenames.Name(r),
	}
}

// CharInfo returns the codes of the first character of s.
func CharInfo(s string) (CharCodes, error) {
	if s == "" {
		return CharCodes{}, ErrEmptyInput
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return CharCodes{}, fmt.Errorf("%w: first byte 0x%02X", ErrInvalidUTF8, s[0])
	}
	return codesFor(r), nil
}

// FromCodePoint returns the character for a code point. Surrogates are
// rejected along with anything outside the Unicode range, since they
// cannot be encoded as UTF-8.
func FromCodePoint(n int64) (CharCodes, error) {
	if n < 0 || n > utf8.MaxRune {
		return CharCodes{}, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	if n >= 0xD800 && n <= 0xDFFF {
		return CharCodes{}, fmt.Errorf("%w: %d is a surrogate", ErrOutOfRange, n)
	}
	return codesFor(rune(n)), nil
}

// ASCIITable returns the 128 rows of the classic ASCII table. The Char
// field is empty for control characters and DEL; Bin is zero-padded to
// seven digits as the table traditionally shows it.
func ASCIITable() []CharCodes {
	rows := make([]CharCodes, 128)
	for i := 0; i < 128; i++ {
		c := codesFor(rune(i))
		c.Bin = fmt.Sprintf("%07b", i)
		if i < 32 || i == 127 {
			c.Char = ""
		}
		rows[i] = c
	}
	return rows
}

// =============================================================================
// BASE64
// =============================================================================

// EncodeBase64 encodes the UTF-8 bytes of s in standard Base64.
func EncodeBase64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// DecodeBase64 decodes a standard Base64 payload back to text.
func DecodeBase64(s string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// =============================================================================
// URL ENCODING
// =============================================================================

// EncodeURL percent-encodes every reserved character, including '/',
// with spaces as %20 rather than '+'.
func EncodeURL(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// DecodeURL resolves percent escapes. A literal '+' is left alone, the
// inverse of EncodeURL.
func DecodeURL(s string) (string, error) {
	out, err := url.PathUnescape(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURLEscape, err)
	}
	return out, nil
}

// =============================================================================
// TEXT <-> HEX / BINARY
// =============================================================================

// TextToHex renders the UTF-8 bytes of s as upper-case hex.
func TextToHex(s string) string {
	return strings.ToUpper(hex.EncodeToString([]byte(s)))
}

// HexToText decodes a hex payload (either case) back to text.
func HexToText(s string) (string, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// TextToBin renders the UTF-8 bytes of s as 8-bit binary groups.
func TextToBin(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) * 8)
	for _, b := range []byte(s) {
		fmt.Fprintf(&sb, "%08b", b)
	}
	return sb.String()
}

// BinToText decodes a string of 8-bit binary groups back to text.
// Whitespace between groups is ignored.
func BinToText(s string) (string, error) {
	compact := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\t' {
			return -1
		}
		return r
	}, s)
	if compact == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidBinary)
	}
	if len(compact)%8 != 0 {
		return "", fmt.Errorf("%w: length %d is not a multiple of 8", ErrInvalidBinary, len(compact))
	}
	b := make([]byte, 0, len(compact)/8)
	for i := 0; i < len(compact); i += 8 {
		v, err := strconv.ParseUint(compact[i:i+8], 2, 8)
		if err != nil {
			return "", fmt.Errorf("%w: group %q", ErrInvalidBinary, compact[i:i+8])
		}
		b = append(b, byte(v))
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}
