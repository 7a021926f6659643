// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package tools

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/liborbenes/units-tui/internal/hashes"
	"github.com/liborbenes/units-tui/internal/textcodec"
)

// =============================================================================
// ENCODINGS AND HASHES TOOL
// =============================================================================

const (
	encFieldOp = iota
	encFieldInput
	encFieldCount
)

// encodingOp is one selectable transformation.
type encodingOp struct {
	name  string
	apply func(string) (string, error)
}

// encodingOps lists the transformations in display order: codecs first,
// then one digest per supported algorithm. The configured preferred
// algorithm leads the digest section.
func encodingOps(preferredAlgo string) []encodingOp {
	ops := []encodingOp{
		{"base64 encode", func(s string) (string, error) { return textcodec.EncodeBase64(s), nil }},
		{"base64 decode", textcodec.DecodeBase64},
		{"URL encode", func(s string) (string, error) { return textcodec.EncodeURL(s), nil }},
		{"URL decode", textcodec.DecodeURL},
		{"text to hex", func(s string) (string, error) { return textcodec.TextToHex(s), nil }},
		{"hex to text", textcodec.HexToText},
		{"text to binary", func(s string) (string, error) { return textcodec.TextToBin(s), nil }},
		{"binary to text", textcodec.BinToText},
	}
	algos := hashes.Algorithms()
	for i, algo := range algos {
		if algo == preferredAlgo && i > 0 {
			algos[0], algos[i] = algos[i], algos[0]
			break
		}
	}
	for _, algo := range algos {
		algo := algo
		ops = append(ops, encodingOp{
			name: algo + " digest",
			apply: func(s string) (string, error) {
				return hashes.HashText(algo, s)
			},
		})
	}
	return ops
}

// encodingsState holds the encode/decode/digest form.
type encodingsState struct {
	ops []encodingOp
	op  int

	input  textinput.Model
	focus  int
	result string
}

func newEncodingsState(preferredAlgo string) encodingsState {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "text to transform"
	input.CharLimit = 4096
	input.Focus()

	return encodingsState{
		ops:   encodingOps(preferredAlgo),
		input: input,
		focus: encFieldInput,
	}
}

func (s *encodingsState) typing() bool {
	return s.focus == encFieldInput
}

func (s *encodingsState) setFocus(f int) {
	s.focus = (f + encFieldCount) % encFieldCount
	s.input.Blur()
	if s.focus == encFieldInput {
		s.input.Focus()
	}
}

func (s *encodingsState) cycle(delta int) {
	if s.focus != encFieldOp {
		return
	}
	n := len(s.ops)
	s.op = (s.op + delta + n) % n
	s.result = ""
}

func (s *encodingsState) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if s.focus == encFieldInput {
		s.input, cmd = s.input.Update(msg)
	}
	return cmd
}

func (s *encodingsState) submit(m *Model) error {
	op := s.ops[s.op]
	input := s.input.Value()

	result, err := op.apply(input)
	if err != nil {
		return err
	}
	s.result = result

	m.log.Add(m.active.historyTool(), map[string]string{
		"operation": op.name,
		"input":     input,
		"result":    result,
	})
	return nil
}

func (s *encodingsState) view(m *Model) string {
	var b strings.Builder

	b.WriteString(m.formRow(encFieldOp == s.focus, "Operation", choiceValue(s.ops[s.op].name)))
	b.WriteString(m.formRow(encFieldInput == s.focus, "Input", s.input.View()))

	if s.result != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.ResultBox.Width(m.width - 4).Render(s.result))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.FormHint.Render("left/right pick the operation, enter runs it"))
	return b.String()
}
