// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package tools

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/liborbenes/units-tui/internal/export"
)

// =============================================================================
// MESSAGES
// =============================================================================

// exportDoneMsg reports a finished history export.
type exportDoneMsg struct {
	path string
}

// exportErrMsg reports a failed history export.
type exportErrMsg struct {
	err error
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case exportDoneMsg:
		m.statusMsg = "exported " + msg.path
		return m, nil

	case exportErrMsg:
		m.err = msg.err
		return m, nil
	}

	return m, m.toolState().updateInput(msg)
}

// setSize propagates a terminal resize.
func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)
	m.header.SetWidth(width)
	m.status.SetWidth(width)
	m.errBox.SetWidth(width)
	m.ascii.setSize(width, height)
	m.histView.setSize(width, height)
}

// scrollingTool reports whether arrow keys should scroll instead of
// moving field focus.
func (m *Model) scrollingTool() bool {
	switch m.active {
	case ToolHistory:
		return true
	case ToolASCII:
		return m.ascii.mode == asciiModeTable
	default:
		return false
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.toolState()

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Quit) && !state.typing():
		return m, tea.Quit

	case key.Matches(msg, m.keys.Dismiss):
		m.err = nil
		m.statusMsg = ""
		return m, nil

	case key.Matches(msg, m.keys.NextTool):
		m.setTool(m.active.next())
		return m, nil

	case key.Matches(msg, m.keys.PrevTool):
		m.setTool(m.active.prev())
		return m, nil

	case key.Matches(msg, m.keys.ExportJSON):
		return m, m.exportCmd("json")

	case key.Matches(msg, m.keys.ExportCSV):
		return m, m.exportCmd("csv")

	case key.Matches(msg, m.keys.ClearHistory):
		m.log.Clear()
		m.histView.stale = true
		m.statusMsg = "history cleared"
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		if m.scrollingTool() {
			return m, state.updateInput(msg)
		}
		m.focusDelta(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		if m.scrollingTool() {
			return m, state.updateInput(msg)
		}
		m.focusDelta(-1)
		return m, nil

	case key.Matches(msg, m.keys.NextChoice) && !state.typing():
		state.cycle(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevChoice) && !state.typing():
		state.cycle(-1)
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if err := state.submit(&m); err != nil {
			m.err = err
		} else {
			m.err = nil
			m.histView.stale = true
		}
		return m, nil
	}

	// Everything else is text entry for the focused field.
	return m, state.updateInput(msg)
}

// exportCmd writes the session history in the given format off the
// update loop.
func (m *Model) exportCmd(format string) tea.Cmd {
	log := m.log
	opts := export.DefaultOptions()
	if m.cfg.ExportDir != "" {
		opts.OutputDir = m.cfg.ExportDir
	}

	return func() tea.Msg {
		var (
			path string
			err  error
		)
		switch format {
		case "json":
			path, err = export.ExportJSON(log, opts)
		case "csv":
			path, err = export.ExportCSV(log, opts)
		default:
			err = fmt.Errorf("unknown export format %q", format)
		}
		if err != nil {
			return exportErrMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}
