// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/liborbenes/units-tui/internal/config"
	"github.com/liborbenes/units-tui/internal/convert"
)

// =============================================================================
// CONVERSION REPL
// =============================================================================

// HandleREPL runs the interactive conversion prompt. Input history and
// unit-name completion live only for the session; nothing is written to
// disk.
func HandleREPL(args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("repl requires an interactive terminal")
	}

	cfg := config.Global()
	registry := convert.NewRegistry()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	// Complete unit names on the trailing word.
	names := registry.Names()
	line.SetCompleter(func(input string) []string {
		cut := strings.LastIndexByte(input, ' ') + 1
		prefix := input[cut:]
		if prefix == "" {
			return nil
		}
		var out []string
		for _, n := range names {
			if strings.HasPrefix(n, prefix) {
				out = append(out, input[:cut]+n)
			}
		}
		return out
	})

	fmt.Println("units repl - VALUE FROM TO [PRECISION], 'list', 'quit'")
	for {
		input, err := line.Prompt("units> ")
		if err != nil {
			// liner.ErrPromptAborted on Ctrl+C, io.EOF on Ctrl+D
			fmt.Println()
			return nil
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			return nil
		case "list":
			for _, cat := range convert.Categories() {
				fmt.Printf("%s: %s\n", cat.Label, strings.Join(cat.Members, ", "))
			}
			continue
		case "help":
			fmt.Println("enter: VALUE FROM_UNIT TO_UNIT [PRECISION]  e.g. 2.5 pound kilogram 12")
			continue
		}

		if err := evalConversion(registry, input, cfg.Precision); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}

// evalConversion parses "VALUE FROM TO [PRECISION]" and prints the result.
func evalConversion(registry *convert.Registry, input string, defaultPrecision int) error {
	fields := strings.Fields(input)
	if len(fields) != 3 && len(fields) != 4 {
		return errors.New("expected: VALUE FROM_UNIT TO_UNIT [PRECISION]")
	}

	precision := defaultPrecision
	if len(fields) == 4 {
		n, err := strconv.Atoi(fields[3])
		if err != nil {
			return fmt.Errorf("bad precision %q", fields[3])
		}
		precision = n
	}
	precision = convert.ClampPrecision(precision)

	result, err := registry.ConvertString(fields[0], fields[1], fields[2], precision)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s = %s %s\n", fields[0], convert.Label(fields[1]), result, convert.Label(fields[2]))
	return nil
}
