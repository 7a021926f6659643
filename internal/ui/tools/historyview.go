// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/liborbenes/units-tui/internal/history"
	"github.com/liborbenes/units-tui/internal/util"
)

// =============================================================================
// HISTORY VIEW
// =============================================================================

// historyState renders the session log, newest first, in a scrollable
// viewport.
type historyState struct {
	vp    viewport.Model
	stale bool
}

func newHistoryState() historyState {
	vp := viewport.New(80, 20)
	return historyState{vp: vp, stale: true}
}

func (s *historyState) typing() bool { return false }

func (s *historyState) setFocus(int) {}

func (s *historyState) cycle(int) {}

func (s *historyState) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return cmd
}

func (s *historyState) submit(*Model) error { return nil }

// refresh rebuilds the viewport content from the log.
func (s *historyState) refresh(log *history.Log) {
	entries := log.Entries()
	if len(entries) == 0 {
		s.vp.SetContent("No operations logged this session.")
		s.stale = false
		return
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s  %-10s %s\n",
			e.At.Format("15:04:05"), e.Tool, summarizeFields(e.Fields))
	}
	s.vp.SetContent(b.String())
	s.stale = false
}

// summarizeFields renders an entry's fields as "k=v" pairs in key order.
func summarizeFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+util.Truncate(fields[k], 32))
	}
	return strings.Join(parts, " ")
}

func (s *historyState) setSize(width, height int) {
	s.vp.Width = width - 4
	if height > 10 {
		s.vp.Height = height - 10
	}
}

func (s *historyState) view(m *Model) string {
	if s.stale {
		s.refresh(m.log)
	}

	var b strings.Builder
	b.WriteString(m.theme.TableHeader.Render(
		fmt.Sprintf("Session %s - %d of %d entries",
			util.Truncate(m.log.SessionID(), 8), m.log.Len(), m.log.Capacity())))
	b.WriteString("\n")
	b.WriteString(s.vp.View())
	b.WriteString("\n")
	b.WriteString(m.theme.FormHint.Render("C-j export JSON, C-v export CSV, C-l clear"))
	return b.String()
}
