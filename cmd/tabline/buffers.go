// ABOUTME: "buffers" subcommand: filter each host's buffers and print kept/dropped rows
// ABOUTME: Multiple --socket hosts are queried concurrently with errgroup

package main

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/tabline-go/internal/clickable"
	"github.com/mauromedda/tabline-go/internal/config"
	"github.com/mauromedda/tabline-go/internal/host"
	"github.com/mauromedda/tabline-go/internal/report"
)

func runBuffers(args []string, cfg *config.Settings, e env) error {
	var (
		hf      hostFlags
		match   string
		asJSON  bool
		noStyle bool
	)
	fs := newFlagSet("buffers")
	hf.register(fs)
	fs.StringVar(&match, "match", "", "Fuzzy-filter buffers by name")
	fs.BoolVar(&asJSON, "json", false, "Write JSON")
	fs.BoolVar(&noStyle, "plain", false, "Disable table styling")
	if ok, err := parseFlags(fs, args, e); !ok {
		return err
	}

	cfg, err := hf.overrides(cfg)
	if err != nil {
		return err
	}
	applyLogLevel(cfg, hf.verbose)

	reports, err := collect(hf.sources(cfg), cfg, match)
	if err != nil {
		return err
	}

	if asJSON {
		return report.WriteJSON(e.stdout, reports)
	}
	return report.WriteTable(e.stdout, reports, e.tty && !noStyle)
}

// collect builds one report per source. Sources are independent hosts, so
// they are queried in parallel; each host still sees sequential calls.
func collect(sources []host.Source, cfg *config.Settings, match string) ([]report.Report, error) {
	reports := make([]report.Report, len(sources))
	var g errgroup.Group
	for i, src := range sources {
		g.Go(func() error {
			h, err := host.Open(src)
			if err != nil {
				return err
			}
			defer h.Close()

			enc := clickable.NewEncoder(h, cfg.EncoderOptions()...)
			reports[i] = report.Build(h, enc, cfg.InteractionMode()).Match(match)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("collecting buffers: %w", err)
	}
	return reports, nil
}
