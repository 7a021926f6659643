// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/liborbenes/units-tui/internal/ui/styles"
)

// =============================================================================
// ERROR BOX COMPONENT
// =============================================================================

// ErrorBox renders an inline operation error. It blocks nothing; the
// form stays editable underneath.
type ErrorBox struct {
	Err   error
	Width int
	theme *styles.Theme
}

// NewErrorBox creates a new ErrorBox component.
func NewErrorBox(theme *styles.Theme) *ErrorBox {
	return &ErrorBox{Width: 80, theme: theme}
}

// SetWidth updates the box width.
func (e *ErrorBox) SetWidth(width int) {
	e.Width = width
}

// View renders the error, or nothing when no error is set.
func (e *ErrorBox) View() string {
	if e.Err == nil {
		return ""
	}
	title := e.theme.ErrorTitle.Render(styles.StatusIndicators.Error + " Error")
	body := e.theme.ErrorMessage.Render(e.Err.Error())
	return e.theme.ErrorBox.Width(e.Width - 2).Render(title + "\n" + body)
}
