// ABOUTME: CLI entry point for tabline: inspect, preview and serve Neovim tab line buffers
// ABOUTME: Dispatches subcommands, loads config and applies CLI overrides before running

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/tabline-go/internal/termfix"

	"golang.org/x/term"

	"github.com/mauromedda/tabline-go/internal/config"
	tllog "github.com/mauromedda/tabline-go/internal/log"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var errUsage = errors.New("usage")

const usageText = `usage: tabline <command> [flags]

commands:
  buffers   list the buffers a tab line would show
  encode    wrap a label in a click region
  inspect   live view of the valid buffer set
  explain   show reference topics (markup, buffers)
  config    print effective settings
  serve     run as a Neovim remote plugin
  version   print version information
`

// env carries process state into subcommands so tests can swap it.
type env struct {
	stdout io.Writer
	tty    bool
	cwd    string
}

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: getting working directory: %v\n", err)
		os.Exit(1)
	}

	e := env{
		stdout: os.Stdout,
		tty:    term.IsTerminal(int(os.Stdout.Fd())),
		cwd:    cwd,
	}

	if err := run(os.Args[1:], e); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usageText)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches to the subcommand named by args[0].
func run(args []string, e env) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "version", "--version", "-version":
		_, err := fmt.Fprintf(e.stdout, "tabline %s (%s) built %s\n", version, commit, date)
		return err
	case "help", "-h", "--help":
		_, err := fmt.Fprint(e.stdout, usageText)
		return err
	}

	cfg, err := config.Load(e.cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	rest := args[1:]
	switch args[0] {
	case "buffers":
		return runBuffers(rest, cfg, e)
	case "encode":
		return runEncode(rest, cfg, e)
	case "inspect":
		return runInspect(rest, cfg, e)
	case "explain":
		return runExplain(rest, e)
	case "config":
		_, err := fmt.Fprint(e.stdout, config.Explain(cfg))
		return err
	case "serve":
		return runServe(rest, cfg)
	}
	return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
}

// applyLogLevel sets the global level from config, with --verbose winning.
func applyLogLevel(cfg *config.Settings, verbose bool) {
	if verbose {
		tllog.SetLevel(tllog.LevelDebug)
		return
	}
	if lvl, err := tllog.ParseLevel(cfg.LogLevel); err == nil {
		tllog.SetLevel(lvl)
	}
}
