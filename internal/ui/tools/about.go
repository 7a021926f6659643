// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package tools

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/liborbenes/units-tui/internal/util"
)

// =============================================================================
// ABOUT SCREEN
// =============================================================================

const aboutMarkdown = `# units

A terminal toolbox for unit conversion, number bases, character
lookups, text encodings, and digests.

- **Converter** - NIST-sourced factors, decimal arithmetic, no float drift
- **Bases** - binary / octal / decimal / hexadecimal, any magnitude
- **ASCII** - character and code point lookup plus the classic table
- **Encodings** - Base64, URL, hex, binary, and cryptographic digests
- **History** - bounded in-memory session log, exportable as JSON or CSV

History lives only for the session; nothing is written to disk unless
you export it.

Missing a unit? Suggest one on the issue tracker:
`

// aboutState caches the glamour rendering; it only depends on width.
type aboutState struct {
	rendered string
	width    int
}

func newAboutState() aboutState {
	return aboutState{}
}

func (s *aboutState) typing() bool { return false }

func (s *aboutState) setFocus(int) {}

func (s *aboutState) cycle(int) {}

func (s *aboutState) updateInput(tea.Msg) tea.Cmd { return nil }

func (s *aboutState) submit(*Model) error { return nil }

// render formats the about text for the given width. Glamour failures
// fall back to the raw markdown; the screen must never be blank.
func (s *aboutState) render(width int) string {
	if width < 40 {
		width = 40
	}
	if s.rendered != "" && s.width == width {
		return s.rendered
	}

	md := aboutMarkdown + "\n" + util.IssueURL() + "\n"
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-6),
	)
	if err != nil {
		s.rendered = md
		s.width = width
		return s.rendered
	}

	out, err := r.Render(md)
	if err != nil {
		out = md
	}
	s.rendered = out
	s.width = width
	return s.rendered
}

func (s *aboutState) view(m *Model) string {
	var b strings.Builder
	b.WriteString(s.render(m.width))
	b.WriteString("\n")
	b.WriteString(m.theme.FormHint.Render(fmt.Sprintf("units %s", m.version)))
	return b.String()
}
