// ABOUTME: "explain" subcommand: list or render the embedded reference topics
// ABOUTME: Renders with glamour on a terminal, raw Markdown otherwise

package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/mauromedda/tabline-go/internal/explain"
)

const defaultExplainWidth = 80

func runExplain(args []string, e env) error {
	fs := newFlagSet("explain")
	plain := fs.Bool("plain", false, "Print raw Markdown")
	if ok, err := parseFlags(fs, args, e); !ok {
		return err
	}

	if fs.NArg() == 0 {
		topics, err := explain.Topics()
		if err != nil {
			return err
		}
		for _, t := range topics {
			if _, err := fmt.Fprintf(e.stdout, "%-10s %s\n", t.Key, t.Title); err != nil {
				return err
			}
		}
		return nil
	}

	t, err := explain.Lookup(fs.Arg(0))
	if err != nil {
		return err
	}

	width := defaultExplainWidth
	if e.tty {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	out, err := explain.Render(t, width, *plain || !e.tty)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(e.stdout, out)
	return err
}
