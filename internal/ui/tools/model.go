// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package tools

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/liborbenes/units-tui/internal/config"
	"github.com/liborbenes/units-tui/internal/convert"
	"github.com/liborbenes/units-tui/internal/history"
	"github.com/liborbenes/units-tui/internal/ui/components"
	"github.com/liborbenes/units-tui/internal/ui/styles"
)

// =============================================================================
// ROOT MODEL
// =============================================================================

// Model is the root Bubble Tea model for the units toolbox.
type Model struct {
	theme *styles.Theme
	keys  KeyMap

	width  int
	height int

	cfg      *config.Config
	registry *convert.Registry
	log      *history.Log
	version  string

	active Tool

	converter converterState
	bases     basesState
	ascii     asciiState
	encodings encodingsState
	histView  historyState
	about     aboutState

	header *components.Header
	status *components.StatusBar
	errBox *components.ErrorBox

	err       error
	statusMsg string
}

// New creates the root model. The registry and log are shared with any
// non-TUI surfaces so history and unit definitions stay consistent.
func New(cfg *config.Config, registry *convert.Registry, log *history.Log, version string) Model {
	theme := styles.NewTheme(cfg.Theme)

	m := Model{
		theme:    theme,
		keys:     DefaultKeyMap(),
		width:    80,
		height:   24,
		cfg:      cfg,
		registry: registry,
		log:      log,
		version:  version,

		converter: newConverterState(cfg.Precision),
		bases:     newBasesState(),
		ascii:     newASCIIState(),
		encodings: newEncodingsState(cfg.HashAlgorithm),
		histView:  newHistoryState(),
		about:     newAboutState(),

		header: components.NewHeader(theme),
		status: components.NewStatusBar(theme),
		errBox: components.NewErrorBox(theme),
	}
	m.header.SetTool(m.active.String())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// toolState returns the state for the active tool. Every tool answers
// the same small set of form questions.
func (m *Model) toolState() toolState {
	switch m.active {
	case ToolConverter:
		return &m.converter
	case ToolBases:
		return &m.bases
	case ToolASCII:
		return &m.ascii
	case ToolEncodings:
		return &m.encodings
	case ToolHistory:
		return &m.histView
	default:
		return &m.about
	}
}

// toolState is the per-tool form contract.
type toolState interface {
	typing() bool
	setFocus(f int)
	cycle(delta int)
	updateInput(msg tea.Msg) tea.Cmd
	submit(m *Model) error
	view(m *Model) string
}

// focusDelta moves field focus on tools that track it.
func (m *Model) focusDelta(delta int) {
	switch m.active {
	case ToolConverter:
		m.converter.setFocus(m.converter.focus + delta)
	case ToolBases:
		m.bases.setFocus(m.bases.focus + delta)
	case ToolASCII:
		m.ascii.setFocus(m.ascii.focus + delta)
	case ToolEncodings:
		m.encodings.setFocus(m.encodings.focus + delta)
	}
}

// setTool switches the active tool and clears any visible error.
func (m *Model) setTool(t Tool) {
	m.active = t
	m.err = nil
	m.header.SetTool(t.String())
	if t == ToolHistory {
		m.histView.stale = true
	}
}
