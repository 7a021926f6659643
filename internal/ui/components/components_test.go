// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"errors"
	"strings"
	"testing"

	"github.com/liborbenes/units-tui/internal/ui/styles"
)

func TestHeaderView(t *testing.T) {
	h := NewHeader(styles.NewTheme("dark"))
	h.SetWidth(60)
	h.SetTool("Converter")

	out := h.View()
	if !strings.Contains(out, "units") {
		t.Errorf("header missing brand: %q", out)
	}
	if !strings.Contains(out, "Converter") {
		t.Errorf("header missing tool name: %q", out)
	}
}

func TestStatusBarView(t *testing.T) {
	s := NewStatusBar(styles.NewTheme("dark"))
	s.SetWidth(100)
	s.ToolName = "Bases"
	s.Precision = 8
	s.EntryCount = 3

	out := s.View()
	for _, want := range []string{"Bases", "prec 8", "3 logged", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("status bar missing %q: %q", want, out)
		}
	}
}

func TestErrorBoxView(t *testing.T) {
	e := NewErrorBox(styles.NewTheme("dark"))
	e.SetWidth(60)

	if out := e.View(); out != "" {
		t.Errorf("empty error box should render nothing, got %q", out)
	}

	e.Err = errors.New("undefined unit")
	out := e.View()
	if !strings.Contains(out, "undefined unit") {
		t.Errorf("error box missing message: %q", out)
	}
}
