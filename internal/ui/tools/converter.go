// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package tools

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/liborbenes/units-tui/internal/convert"
)

// =============================================================================
// CONVERTER TOOL
// =============================================================================

// Converter form fields, in focus order.
const (
	convFieldCategory = iota
	convFieldValue
	convFieldFrom
	convFieldTo
	convFieldPrecision
	convFieldCount
)

// converterState holds the unit converter form.
type converterState struct {
	categories []convert.Category
	category   int // index into categories
	from       int // index into the active category's members
	to         int

	value     textinput.Model
	precision textinput.Model

	focus  int
	result string
}

func newConverterState(defaultPrecision int) converterState {
	value := textinput.New()
	value.Prompt = ""
	value.Placeholder = "2.5"
	value.CharLimit = 64
	value.Focus()

	precision := textinput.New()
	precision.Prompt = ""
	precision.Placeholder = strconv.Itoa(defaultPrecision)
	precision.CharLimit = 3

	s := converterState{
		categories: convert.Categories(),
		value:      value,
		precision:  precision,
		focus:      convFieldValue,
	}
	// Default to a from/to pair that is not the identity
	if len(s.categories) > 0 && len(s.categories[0].Members) > 1 {
		s.to = 1
	}
	return s
}

func (s *converterState) members() []string {
	return s.categories[s.category].Members
}

func (s *converterState) typing() bool {
	return s.focus == convFieldValue || s.focus == convFieldPrecision
}

func (s *converterState) setFocus(f int) {
	s.focus = (f + convFieldCount) % convFieldCount
	s.value.Blur()
	s.precision.Blur()
	switch s.focus {
	case convFieldValue:
		s.value.Focus()
	case convFieldPrecision:
		s.precision.Focus()
	}
}

func (s *converterState) cycle(delta int) {
	switch s.focus {
	case convFieldCategory:
		n := len(s.categories)
		s.category = (s.category + delta + n) % n
		s.from, s.to = 0, 0
		if len(s.members()) > 1 {
			s.to = 1
		}
		s.result = ""
	case convFieldFrom:
		n := len(s.members())
		s.from = (s.from + delta + n) % n
	case convFieldTo:
		n := len(s.members())
		s.to = (s.to + delta + n) % n
	}
}

func (s *converterState) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case convFieldValue:
		s.value, cmd = s.value.Update(msg)
	case convFieldPrecision:
		s.precision, cmd = s.precision.Update(msg)
	}
	return cmd
}

// precisionValue returns the form's precision, falling back to def when
// the field is empty or unparsable.
func (s *converterState) precisionValue(def int) int {
	raw := strings.TrimSpace(s.precision.Value())
	if raw == "" {
		return convert.ClampPrecision(def)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return convert.ClampPrecision(def)
	}
	return convert.ClampPrecision(n)
}

// submit runs the conversion and logs it on success.
func (s *converterState) submit(m *Model) error {
	members := s.members()
	from, to := members[s.from], members[s.to]
	value := strings.TrimSpace(s.value.Value())
	precision := s.precisionValue(m.cfg.Precision)

	result, err := m.registry.ConvertString(value, from, to, precision)
	if err != nil {
		return err
	}

	s.result = fmt.Sprintf("%s %s = %s %s",
		value, convert.Label(from), result, convert.Label(to))

	m.log.Add(m.active.historyTool(), map[string]string{
		"category":  s.categories[s.category].Label,
		"value":     value,
		"from":      from,
		"to":        to,
		"result":    result,
		"precision": strconv.Itoa(precision),
	})
	return nil
}

func (s *converterState) view(m *Model) string {
	var b strings.Builder

	b.WriteString(m.formRow(convFieldCategory == s.focus, "Category",
		choiceValue(s.categories[s.category].Label)))
	b.WriteString(m.formRow(convFieldValue == s.focus, "Value", s.value.View()))
	members := s.members()
	b.WriteString(m.formRow(convFieldFrom == s.focus, "From",
		choiceValue(convert.Label(members[s.from]))))
	b.WriteString(m.formRow(convFieldTo == s.focus, "To",
		choiceValue(convert.Label(members[s.to]))))
	b.WriteString(m.formRow(convFieldPrecision == s.focus, "Precision", s.precision.View()))

	if s.result != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.ResultBox.Width(m.width - 4).Render(s.result))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.FormHint.Render("left/right change selection, enter converts"))
	return b.String()
}

// choiceValue decorates a selector value with cycle arrows.
func choiceValue(v string) string {
	return "< " + v + " >"
}
