// cmd/bidi/commands/run.go
package commands

import (
	"flag"
	"fmt"

	"bidi/internal/bidi"
	"bidi/internal/bidierr"
)

// RunCommand resolves a one-shot, space-separated list of bidi type-code
// tokens and prints the resulting per-position levels and visual order.
func RunCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	rtl := fs.Bool("rtl", false, "force paragraph base direction to right-to-left")
	ltr := fs.Bool("ltr", false, "force paragraph base direction to left-to-right")
	auto := fs.Bool("auto", false, "auto-detect paragraph base direction from the first strong character (default)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tokens := fs.Args()
	if len(tokens) == 0 {
		return bidierr.NewConformance("no type tokens given; usage: bidi run (--rtl|--ltr|--auto) <types...>")
	}

	base, err := resolveBase(*rtl, *ltr, *auto)
	if err != nil {
		return err
	}

	types := make([]bidi.Type, len(tokens))
	for i, tok := range tokens {
		types[i] = bidi.Type(tok)
	}
	if err := bidi.Validate(types); err != nil {
		return err
	}

	levels, order := bidi.Resolve(types, base)
	printLevels(types, levels)
	fmt.Printf("order: %v\n", order)
	return nil
}

func resolveBase(rtl, ltr, auto bool) (bidi.BaseDirection, error) {
	count := 0
	for _, b := range []bool{rtl, ltr, auto} {
		if b {
			count++
		}
	}
	if count > 1 {
		return bidi.Auto, bidierr.NewConformance("only one of --rtl, --ltr, --auto may be given")
	}
	switch {
	case rtl:
		return bidi.RightToLeft, nil
	case ltr:
		return bidi.LeftToRight, nil
	default:
		return bidi.Auto, nil
	}
}

func printLevels(types []bidi.Type, levels []bidi.Level) {
	for i, t := range types {
		if levels[i].Removed() {
			fmt.Printf("  [%2d] %-4s level=removed\n", i, t)
			continue
		}
		fmt.Printf("  [%2d] %-4s level=%d\n", i, t, levels[i])
	}
}
