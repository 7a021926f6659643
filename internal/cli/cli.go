// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli routes command-line invocations of the units toolbox:
// the TUI by default, plus one-shot conversion, a conversion REPL, unit
// listing, version, and help.
package cli

import (
	"fmt"
	"os"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdConvert
	CmdREPL
	CmdList
	CmdVersion
	CmdHelp
)

// Parse inspects os.Args and returns the command plus its remaining
// arguments. An unrecognized first argument falls through to the TUI so
// plain `units` always works.
func Parse() (Command, []string) {
	if len(os.Args) < 2 {
		return CmdTUI, nil
	}
	rest := os.Args[2:]
	switch os.Args[1] {
	case "convert":
		return CmdConvert, rest
	case "repl":
		return CmdREPL, rest
	case "list":
		return CmdList, rest
	case "version", "--version", "-v":
		return CmdVersion, rest
	case "help", "--help", "-h":
		return CmdHelp, rest
	default:
		return CmdTUI, os.Args[1:]
	}
}

// HandleVersion prints version information.
func HandleVersion() {
	fmt.Printf("units %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}

// HandleHelp prints usage for all commands.
func HandleHelp() {
	fmt.Print(`units - terminal unit converter and encoding toolbox

USAGE:
  units                    Launch the interactive TUI
  units convert VALUE FROM TO [--precision N]
                           One-shot unit conversion
  units repl               Interactive conversion prompt with history
  units list [CATEGORY]    List unit categories or a category's units
  units version            Print version information
  units help               Show this help

EXAMPLES:
  units convert 2.5 pound kilogram
  units convert 1024 MiB MB --precision 12
  units convert -- -40 degF degC
  units list "Digital storage"
  units repl
`)
}
