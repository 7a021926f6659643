// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the units TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/liborbenes/units-tui/internal/ui/styles"
	"github.com/liborbenes/units-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Shortcut is a single key hint shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar is the bottom bar: session info on the left, key hints on
// the right.
type StatusBar struct {
	ToolName   string
	Precision  int
	EntryCount int
	Message    string // transient status, e.g. "exported to ..."
	Width      int
	Shortcuts  []Shortcut
	theme      *styles.Theme
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Width: 80,
		theme: theme,
		Shortcuts: []Shortcut{
			{"tab", "next tool"},
			{"enter", "run"},
			{"^j/^v", "export"},
			{"q", "quit"},
		},
	}
}

// SetWidth updates the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	width := s.Width
	if width < 40 {
		width = 40
	}

	left := fmt.Sprintf("%s | prec %d | %d logged", s.ToolName, s.Precision, s.EntryCount)
	if s.Message != "" {
		left += " | " + s.Message
	}

	var hints []string
	for _, sc := range s.Shortcuts {
		hints = append(hints,
			s.theme.ShortcutKey.Render(sc.Key)+" "+s.theme.ShortcutDesc.Render(sc.Desc))
	}
	right := strings.Join(hints, "  ")

	inner := width - 2
	leftWidth := inner - lipgloss.Width(right) - 1
	if leftWidth < 10 {
		leftWidth = 10
	}
	line := util.PadRight(util.Truncate(left, leftWidth), leftWidth) + " " + right

	return s.theme.StatusBar.Width(width).Render(line)
}
