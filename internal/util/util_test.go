// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"net/url"
	"strings"
	"testing"
)

// =============================================================================
// STRING HELPER TESTS
// =============================================================================

func TestTruncate(t *testing.T) {
	testCases := []struct {
		input    string
		maxWidth int
		expected string
	}{
		{"hello world", 8, "hello..."},
		{"hello", 5, "hello"},
		{"hi", 5, "hi"},
		{"", 5, ""},
		{"hello world", 0, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := Truncate(tc.input, tc.maxWidth); got != tc.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tc.input, tc.maxWidth, got, tc.expected)
			}
		})
	}
}

func TestWidth_DoubleWidth(t *testing.T) {
	if got := Width("日本語"); got != 6 {
		t.Errorf("Width(CJK) = %d, want 6", got)
	}
	if got := Width("hello"); got != 5 {
		t.Errorf("Width(ascii) = %d, want 5", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := Width(PadRight("hello world", 5)); got != 5 {
		t.Errorf("PadRight over-long width = %d, want 5", got)
	}
}

func TestFirstRune(t *testing.T) {
	testCases := []struct{ input, expected string }{
		{"zebra", "z"},
		{"€100", "€"},
		{"", ""},
	}
	for _, tc := range testCases {
		if got := FirstRune(tc.input); got != tc.expected {
			t.Errorf("FirstRune(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

// =============================================================================
// ISSUE URL TESTS
// =============================================================================

func TestIssueURL(t *testing.T) {
	link := IssueURL()

	if !strings.HasPrefix(link, "https://github.com/LiborBenes-US/Units/issues/new?") {
		t.Errorf("unexpected prefix: %s", link)
	}
	if strings.ContainsAny(link, " \n") {
		t.Error("issue URL must not contain raw whitespace")
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("issue URL does not parse: %v", err)
	}
	q := u.Query()
	if got := q.Get("title"); got != "Unit suggestion:" {
		t.Errorf("title decodes to %q", got)
	}
	if body := q.Get("body"); !strings.Contains(body, "tablespoon_au") {
		t.Errorf("body lost template text: %q", body)
	}
}
