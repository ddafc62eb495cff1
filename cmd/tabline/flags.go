// ABOUTME: CLI flag parsing using stdlib flag FlagSets, one per subcommand
// ABOUTME: Shared host flags (--socket, --snapshot, --mode, --verbose) override config values

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/tabline-go/internal/config"
	"github.com/mauromedda/tabline-go/internal/host"
	"github.com/mauromedda/tabline-go/internal/seq"
)

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

type hostFlags struct {
	sockets  stringList
	snapshot string
	mode     string
	verbose  bool
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (f *hostFlags) register(fs *flag.FlagSet) {
	fs.Var(&f.sockets, "socket", "Neovim server address (repeatable; default $NVIM)")
	fs.StringVar(&f.snapshot, "snapshot", "", "Read buffers from a YAML snapshot instead of Neovim")
	fs.StringVar(&f.mode, "mode", "", "Interaction mode: single-window or multi-window")
	fs.BoolVar(&f.verbose, "verbose", false, "Enable debug logging")
}

// overrides returns a copy of cfg with flag values applied.
func (f *hostFlags) overrides(cfg *config.Settings) (*config.Settings, error) {
	out := *cfg
	if f.mode != "" {
		out.Mode = f.mode
	}
	if len(f.sockets) > 0 {
		out.Socket = f.sockets[0]
		out.Snapshot = ""
	}
	if f.snapshot != "" {
		out.Snapshot = f.snapshot
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// sources lists the hosts to query. Flags win over config, and a snapshot
// wins over sockets at the same level. Repeated sockets are queried once.
func (f *hostFlags) sources(cfg *config.Settings) []host.Source {
	if f.snapshot != "" {
		return []host.Source{{Snapshot: f.snapshot}}
	}
	if len(f.sockets) > 0 {
		sockets := seq.Dedupe([]string(f.sockets))
		out := make([]host.Source, len(sockets))
		for i, s := range sockets {
			out[i] = host.Source{Socket: s}
		}
		return out
	}
	if cfg.Snapshot != "" {
		return []host.Source{{Snapshot: cfg.Snapshot}}
	}
	return []host.Source{{Socket: cfg.Socket}}
}

// parseFlags parses args. It returns false when -h was handled and the
// subcommand should stop without error.
func parseFlags(fs *flag.FlagSet, args []string, e env) (bool, error) {
	err := fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		fs.SetOutput(e.stdout)
		fs.PrintDefaults()
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", fs.Name(), err)
	}
	return true, nil
}
