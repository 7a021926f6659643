// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package tools

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.header.View())
	b.WriteString("\n")
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	b.WriteString(m.toolState().view(&m))
	b.WriteString("\n")

	if m.err != nil {
		m.errBox.Err = m.err
		b.WriteString("\n")
		b.WriteString(m.errBox.View())
		b.WriteString("\n")
	}

	m.status.ToolName = m.active.String()
	m.status.Precision = m.cfg.Precision
	m.status.EntryCount = m.log.Len()
	m.status.Message = m.statusMsg

	body := b.String()
	pad := m.height - lipgloss.Height(body) - 1
	if pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	return body + m.status.View()
}

// tabBar renders one tab per tool with the active one highlighted.
func (m Model) tabBar() string {
	tabs := make([]string, 0, int(toolCount))
	for t := Tool(0); t < toolCount; t++ {
		if t == m.active {
			tabs = append(tabs, m.theme.TabActive.Render(t.String()))
		} else {
			tabs = append(tabs, m.theme.Tab.Render(t.String()))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return m.theme.TabBar.Width(m.width).Render(row)
}

// formRow renders one "Label  value" form line, highlighting the
// focused field's label.
func (m *Model) formRow(focused bool, label, value string) string {
	style := m.theme.FormLabel
	if focused {
		style = m.theme.FormLabelFocused
	}
	marker := "  "
	if focused {
		marker = "> "
	}
	return marker + style.Render(label) + " " + value + "\n"
}
