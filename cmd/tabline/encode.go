// ABOUTME: "encode" subcommand: print the click-region fragment for one buffer label
// ABOUTME: Uses the host's tablineat capability when a host is configured, else --clickable

package main

import (
	"fmt"

	"github.com/mauromedda/tabline-go/internal/buffer"
	"github.com/mauromedda/tabline-go/internal/clickable"
	"github.com/mauromedda/tabline-go/internal/config"
	"github.com/mauromedda/tabline-go/internal/host"
)

// staticCaps is a fixed capability answer for encoding without a host.
type staticCaps bool

func (c staticCaps) ClickableTabs() bool { return bool(c) }

func runEncode(args []string, cfg *config.Settings, e env) error {
	var (
		hf        hostFlags
		handle    int
		label     string
		clickOnly bool
	)
	fs := newFlagSet("encode")
	hf.register(fs)
	fs.IntVar(&handle, "handle", 0, "Buffer handle tagged on the region")
	fs.StringVar(&label, "label", "", "Rendered tab label")
	fs.BoolVar(&clickOnly, "clickable", true, "Assume clickable tabs when no host is given")
	if ok, err := parseFlags(fs, args, e); !ok {
		return err
	}

	cfg, err := hf.overrides(cfg)
	if err != nil {
		return err
	}
	applyLogLevel(cfg, hf.verbose)

	var caps clickable.Capabilities = staticCaps(clickOnly)
	if cfg.Snapshot != "" || cfg.Socket != "" {
		h, err := host.Open(hf.sources(cfg)[0])
		if err != nil {
			return err
		}
		defer h.Close()
		caps = h
	}

	out := clickable.NewEncoder(caps, cfg.EncoderOptions()...).Encode(clickable.Context{
		Mode:   cfg.InteractionMode(),
		Handle: buffer.Handle(handle),
		Label:  label,
	})
	_, err = fmt.Fprintln(e.stdout, out)
	return err
}
