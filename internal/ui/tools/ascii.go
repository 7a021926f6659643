// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package tools

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/liborbenes/units-tui/internal/textcodec"
)

// =============================================================================
// ASCII / UNICODE TOOL
// =============================================================================

const (
	asciiFieldMode = iota
	asciiFieldInput
	asciiFieldCount
)

// asciiMode selects what the tool looks up.
type asciiMode int

const (
	asciiModeChar asciiMode = iota // character -> codes
	asciiModeCode                  // code point -> character
	asciiModeTable                 // full ASCII table
	asciiModeCount
)

func (m asciiMode) String() string {
	switch m {
	case asciiModeChar:
		return "character"
	case asciiModeCode:
		return "code point"
	case asciiModeTable:
		return "ASCII table"
	default:
		return "unknown"
	}
}

// asciiState holds the character lookup form and the table viewport.
type asciiState struct {
	mode  asciiMode
	input textinput.Model
	table viewport.Model

	focus  int
	result string
}

func newASCIIState() asciiState {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "A"
	input.CharLimit = 16

	table := viewport.New(80, 20)
	table.SetContent(renderASCIITable())

	return asciiState{
		input: input,
		table: table,
	}
}

// renderASCIITable formats the 128-row table the way the classic chart
// prints it.
func renderASCIITable() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-4s %-5s %-5s %-5s %-9s %s\n", "Chr", "Dec", "Hex", "Oct", "Bin", "Name")
	for _, row := range textcodec.ASCIITable() {
		fmt.Fprintf(&b, "%-4s %-5d %-5s %-5s %-9s %s\n",
			row.Char, row.Dec, row.Hex, row.Oct, row.Bin, row.Name)
	}
	return b.String()
}

func (s *asciiState) typing() bool {
	return s.mode != asciiModeTable && s.focus == asciiFieldInput
}

func (s *asciiState) setFocus(f int) {
	if s.mode == asciiModeTable {
		s.focus = asciiFieldMode
		s.input.Blur()
		return
	}
	s.focus = (f + asciiFieldCount) % asciiFieldCount
	s.input.Blur()
	if s.focus == asciiFieldInput {
		s.input.Focus()
	}
}

func (s *asciiState) cycle(delta int) {
	if s.focus != asciiFieldMode {
		return
	}
	s.mode = asciiMode((int(s.mode) + delta + int(asciiModeCount)) % int(asciiModeCount))
	s.result = ""
	if s.mode == asciiModeTable {
		s.setFocus(asciiFieldMode)
	}
	switch s.mode {
	case asciiModeChar:
		s.input.Placeholder = "A"
	case asciiModeCode:
		s.input.Placeholder = "65"
	}
}

func (s *asciiState) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if s.mode == asciiModeTable {
		// arrows scroll the table instead of moving field focus
		s.table, cmd = s.table.Update(msg)
		return cmd
	}
	if s.focus == asciiFieldInput {
		s.input, cmd = s.input.Update(msg)
	}
	return cmd
}

func (s *asciiState) submit(m *Model) error {
	if s.mode == asciiModeTable {
		return nil
	}

	var (
		codes textcodec.CharCodes
		err   error
	)
	raw := s.input.Value()
	switch s.mode {
	case asciiModeChar:
		codes, err = textcodec.CharInfo(raw)
	case asciiModeCode:
		var n int64
		n, err = strconv.ParseInt(strings.TrimSpace(raw), 0, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", textcodec.ErrOutOfRange, raw)
		}
		codes, err = textcodec.FromCodePoint(n)
	}
	if err != nil {
		return err
	}

	s.result = fmt.Sprintf("%q  dec %d  hex %s  oct %s  bin %s  %s",
		codes.Char, codes.Dec, codes.Hex, codes.Oct, codes.Bin, codes.Name)

	m.log.Add(m.active.historyTool(), map[string]string{
		"mode":  s.mode.String(),
		"input": raw,
		"char":  codes.Char,
		"dec":   strconv.Itoa(codes.Dec),
		"hex":   codes.Hex,
		"oct":   codes.Oct,
		"bin":   codes.Bin,
		"name":  codes.Name,
	})
	return nil
}

func (s *asciiState) setSize(width, height int) {
	s.table.Width = width - 4
	if height > 12 {
		s.table.Height = height - 12
	}
}

func (s *asciiState) view(m *Model) string {
	var b strings.Builder

	b.WriteString(m.formRow(asciiFieldMode == s.focus, "Mode", choiceValue(s.mode.String())))

	if s.mode == asciiModeTable {
		b.WriteString("\n")
		b.WriteString(s.table.View())
		b.WriteString("\n")
		b.WriteString(m.theme.FormHint.Render("up/down scroll the table"))
		return b.String()
	}

	b.WriteString(m.formRow(asciiFieldInput == s.focus, "Input", s.input.View()))

	if s.result != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.ResultBox.Width(m.width - 4).Render(s.result))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.FormHint.Render("code points accept decimal, 0x hex, 0o octal"))
	return b.String()
}
