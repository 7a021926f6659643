// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tools implements the root Bubble Tea model of the units TUI:
// a tab bar of tools, one form per tool, and a bounded in-memory
// session history shared by all of them.
package tools

// Tool identifies one of the toolbox screens.
type Tool int

const (
	ToolConverter Tool = iota
	ToolBases
	ToolASCII
	ToolEncodings
	ToolHistory
	ToolAbout

	toolCount
)

// String returns the tab label for the tool.
func (t Tool) String() string {
	switch t {
	case ToolConverter:
		return "Converter"
	case ToolBases:
		return "Bases"
	case ToolASCII:
		return "ASCII"
	case ToolEncodings:
		return "Encodings"
	case ToolHistory:
		return "History"
	case ToolAbout:
		return "About"
	default:
		return "Unknown"
	}
}

// historyTool returns the key under which the tool logs its entries.
func (t Tool) historyTool() string {
	switch t {
	case ToolConverter:
		return "converter"
	case ToolBases:
		return "bases"
	case ToolASCII:
		return "ascii"
	case ToolEncodings:
		return "encodings"
	default:
		return "unknown"
	}
}

// next returns the following tool, wrapping around.
func (t Tool) next() Tool {
	return (t + 1) % toolCount
}

// prev returns the preceding tool, wrapping around.
func (t Tool) prev() Tool {
	return (t + toolCount - 1) % toolCount
}
