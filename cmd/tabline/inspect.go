// ABOUTME: "inspect" subcommand: open the live buffer inspector against one host
// ABOUTME: Hot-reloads settings when the global or project config file changes

package main

import (
	"time"

	"github.com/mauromedda/tabline-go/internal/config"
	"github.com/mauromedda/tabline-go/internal/host"
	"github.com/mauromedda/tabline-go/internal/inspect"
)

func runInspect(args []string, cfg *config.Settings, e env) error {
	var hf hostFlags
	fs := newFlagSet("inspect")
	hf.register(fs)
	interval := fs.Duration("interval", 0, "Refresh period (default from config, 1s)")
	if ok, err := parseFlags(fs, args, e); !ok {
		return err
	}

	cfg, err := inspectSettings(&hf, *interval, cfg)
	if err != nil {
		return err
	}
	applyLogLevel(cfg, hf.verbose)

	h, err := host.Open(hf.sources(cfg)[0])
	if err != nil {
		return err
	}
	defer h.Close()

	reload := func() (*config.Settings, error) {
		next, err := config.Load(e.cwd)
		if err != nil {
			return nil, err
		}
		return inspectSettings(&hf, *interval, next)
	}
	watcher := config.NewWatcher(config.Files(e.cwd)...)

	return inspect.Run(inspect.New(h, cfg, reload, watcher))
}

// inspectSettings applies the host flags and --interval to cfg. It runs on
// start and again on every config reload.
func inspectSettings(hf *hostFlags, interval time.Duration, cfg *config.Settings) (*config.Settings, error) {
	out, err := hf.overrides(cfg)
	if err != nil {
		return nil, err
	}
	if interval > 0 {
		out.Inspect.Interval = interval
	}
	return out, nil
}
