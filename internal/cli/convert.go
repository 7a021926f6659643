// Copyright (c) 2025 Libor Benes
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/liborbenes/units-tui/internal/config"
	"github.com/liborbenes/units-tui/internal/convert"
)

// HandleConvert runs a one-shot conversion: units convert VALUE FROM TO.
func HandleConvert(args []string) error {
	p := NewArgParser(args)
	pos, err := p.RequirePositional(3, "units convert VALUE FROM TO [--precision N]")
	if err != nil {
		return err
	}
	value, from, to := pos[0], pos[1], pos[2]
	precision := convert.ClampPrecision(p.IntFlag("precision", config.Global().Precision))

	registry := convert.NewRegistry()
	result, err := registry.ConvertString(value, from, to, precision)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s = %s %s\n", value, convert.Label(from), result, convert.Label(to))
	return nil
}

// HandleList prints the category catalog, or the units of one category.
func HandleList(args []string) error {
	p := NewArgParser(args)
	pos := p.Positional()

	cats := convert.Categories()
	if len(pos) == 0 {
		for _, cat := range cats {
			fmt.Printf("%-16s %d units\n", cat.Label, len(cat.Members))
		}
		return nil
	}

	want := pos[0]
	for _, cat := range cats {
		if cat.Label == want {
			for _, name := range cat.Members {
				fmt.Printf("%-28s %s\n", name, convert.Label(name))
			}
			return nil
		}
	}
	return fmt.Errorf("unknown category %q (try: units list)", want)
}
