// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the units TUI.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/liborbenes/units-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the title bar: application name on the left, the active
// tool on the right.
type Header struct {
	Title    string
	ToolName string
	Width    int
	theme    *styles.Theme
}

// NewHeader creates a new Header component with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title: "units",
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetTool updates the active tool name.
func (h *Header) SetTool(name string) {
	h.ToolName = name
}

// View renders the header component.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}

	brand := h.theme.HeaderTitle.Render(h.Title)
	tool := h.theme.HeaderSubtitle.Render(h.ToolName)

	innerWidth := width - 4
	gap := innerWidth - lipgloss.Width(brand) - lipgloss.Width(tool)
	if gap < 1 {
		gap = 1
	}

	line := brand + lipgloss.NewStyle().Width(gap).Render("") + tool
	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Padding(0, 1).
		Width(width).
		Render(line)
}
