// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tools implements the root Bubble Tea model of the units TUI.
//
// This file defines keyboard bindings for the toolbox. Each binding
// supports multiple keys and includes help text for the status bar.
package tools

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the toolbox.
type KeyMap struct {
	NextTool     key.Binding
	PrevTool     key.Binding
	NextField    key.Binding
	PrevField    key.Binding
	NextChoice   key.Binding
	PrevChoice   key.Binding
	Submit       key.Binding
	ExportJSON   key.Binding
	ExportCSV    key.Binding
	ClearHistory key.Binding
	Dismiss      key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}

// DefaultKeyMap returns the default key bindings for the toolbox.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTool: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tool"),
		),
		PrevTool: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "previous tool"),
		),
		NextField: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "previous field"),
		),
		NextChoice: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "next choice"),
		),
		PrevChoice: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "previous choice"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		ExportJSON: key.NewBinding(
			key.WithKeys("ctrl+j"),
			key.WithHelp("C-j", "export JSON"),
		),
		ExportCSV: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("C-v", "export CSV"),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "clear history"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss error"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// ShortHelp returns the bindings to show in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTool, k.Submit, k.ExportJSON, k.ForceQuit}
}

// FullHelp returns bindings grouped for a full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTool, k.PrevTool},
		{k.NextField, k.PrevField, k.NextChoice, k.PrevChoice},
		{k.Submit, k.ExportJSON, k.ExportCSV, k.ClearHistory},
		{k.Dismiss, k.Quit, k.ForceQuit},
	}
}
