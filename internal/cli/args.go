// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - unified argument parsing for all CLI commands.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// ARG PARSER
// =============================================================================

// ArgParser provides unified argument parsing for CLI commands. It
// handles long flags (--flag value, --flag=value), boolean flags, and
// positional arguments.
type ArgParser struct {
	flags      map[string]string
	boolFlags  map[string]bool
	positional []string
}

// knownValueFlags are flags that always take a value, so "--flag value"
// is unambiguous without a flag registry.
var knownValueFlags = map[string]bool{
	"precision": true,
	"out":       true,
	"algo":      true,
}

// NewArgParser creates a parser from raw arguments.
func NewArgParser(raw []string) *ArgParser {
	p := &ArgParser{
		flags:     make(map[string]string),
		boolFlags: make(map[string]bool),
	}

	for i := 0; i < len(raw); i++ {
		arg := raw[i]
		if arg == "--" {
			p.positional = append(p.positional, raw[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "--") {
			p.positional = append(p.positional, arg)
			continue
		}
		name := strings.TrimPrefix(arg, "--")
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			p.flags[name[:eq]] = name[eq+1:]
			continue
		}
		if knownValueFlags[name] && i+1 < len(raw) {
			p.flags[name] = raw[i+1]
			i++
			continue
		}
		p.boolFlags[name] = true
	}
	return p
}

// Flag returns the value of a string flag, or empty if unset.
func (p *ArgParser) Flag(name string) string {
	return p.flags[name]
}

// IntFlag returns an integer flag, or def if unset or unparsable.
func (p *ArgParser) IntFlag(name string, def int) int {
	v, ok := p.flags[name]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// BoolFlag reports whether a boolean flag was given.
func (p *ArgParser) BoolFlag(name string) bool {
	return p.boolFlags[name]
}

// Positional returns the positional arguments in order.
func (p *ArgParser) Positional() []string {
	return p.positional
}

// RequirePositional returns exactly n positional arguments or an error
// naming what is missing.
func (p *ArgParser) RequirePositional(n int, usage string) ([]string, error) {
	if len(p.positional) != n {
		return nil, fmt.Errorf("expected %d arguments, got %d\nusage: %s", n, len(p.positional), usage)
	}
	return p.positional, nil
}
