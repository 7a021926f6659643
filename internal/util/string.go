// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small string and link helpers shared by the CLI
// and the TUI.
package util

import "github.com/mattn/go-runewidth"

// UNICODE: all width math is display-column based, so CJK and other
// double-width characters never break layout alignment.

// Truncate shortens s to at most maxWidth display columns, appending
// "..." when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// Width returns the display width of s in terminal columns.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// PadRight pads s with spaces to exactly width display columns,
// truncating first if it is too long.
func PadRight(s string, width int) string {
	if Width(s) > width {
		s = Truncate(s, width)
	}
	return runewidth.FillRight(s, width)
}

// FirstRune returns the first character of s, or empty if s is empty.
func FirstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
