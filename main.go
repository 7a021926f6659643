// units TUI - a terminal toolbox for unit conversion, number bases,
// character lookups, text encodings, and digests.
//
// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/liborbenes/units-tui/internal/cli"
	"github.com/liborbenes/units-tui/internal/config"
	"github.com/liborbenes/units-tui/internal/convert"
	"github.com/liborbenes/units-tui/internal/history"
	"github.com/liborbenes/units-tui/internal/ui/tools"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI()
	case cli.CmdConvert:
		fail(cli.HandleConvert(args))
	case cli.CmdREPL:
		fail(cli.HandleREPL(args))
	case cli.CmdList:
		fail(cli.HandleList(args))
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	}
}

// fail prints a handler error and exits non-zero.
func fail(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// runTUI starts the full-screen toolbox.
func runTUI() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "units: not a terminal; try `units convert` or `units help`")
		os.Exit(1)
	}

	cfg := config.Global()
	model := tools.New(cfg, convert.NewRegistry(), history.NewLog(cfg.HistoryLimit), Version)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
