// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package tools

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/liborbenes/units-tui/internal/numbase"
)

// =============================================================================
// NUMBER BASE TOOL
// =============================================================================

const (
	baseFieldValue = iota
	baseFieldFrom
	baseFieldTo
	baseFieldCount
)

// basesState holds the number-base converter form.
type basesState struct {
	bases []numbase.Base
	from  int
	to    int

	value  textinput.Model
	focus  int
	result string
}

func newBasesState() basesState {
	value := textinput.New()
	value.Prompt = ""
	value.Placeholder = "1101"
	value.CharLimit = 256
	value.Focus()

	return basesState{
		bases: numbase.Bases(),
		from:  2, // decimal
		to:    3, // hexadecimal
		value: value,
	}
}

func (s *basesState) typing() bool {
	return s.focus == baseFieldValue
}

func (s *basesState) setFocus(f int) {
	s.focus = (f + baseFieldCount) % baseFieldCount
	s.value.Blur()
	if s.focus == baseFieldValue {
		s.value.Focus()
	}
}

func (s *basesState) cycle(delta int) {
	n := len(s.bases)
	switch s.focus {
	case baseFieldFrom:
		s.from = (s.from + delta + n) % n
	case baseFieldTo:
		s.to = (s.to + delta + n) % n
	}
}

func (s *basesState) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if s.focus == baseFieldValue {
		s.value, cmd = s.value.Update(msg)
	}
	return cmd
}

func (s *basesState) submit(m *Model) error {
	from, to := s.bases[s.from], s.bases[s.to]
	value := strings.TrimSpace(s.value.Value())

	result, err := numbase.Convert(value, from, to)
	if err != nil {
		return err
	}

	s.result = fmt.Sprintf("%s (%s) = %s (%s)", value, from.Name(), result, to.Name())

	m.log.Add(m.active.historyTool(), map[string]string{
		"value":  value,
		"from":   from.Name(),
		"to":     to.Name(),
		"result": result,
	})
	return nil
}

func (s *basesState) view(m *Model) string {
	var b strings.Builder

	b.WriteString(m.formRow(baseFieldValue == s.focus, "Value", s.value.View()))
	b.WriteString(m.formRow(baseFieldFrom == s.focus, "From",
		choiceValue(s.bases[s.from].Name())))
	b.WriteString(m.formRow(baseFieldTo == s.focus, "To",
		choiceValue(s.bases[s.to].Name())))

	if s.result != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.ResultBox.Width(m.width - 4).Render(s.result))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.FormHint.Render("any size integer, negative allowed"))
	return b.String()
}
