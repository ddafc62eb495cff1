// ABOUTME: "serve" subcommand: Neovim remote plugin exposing the filter and encoder over RPC
// ABOUTME: Registers TablineValidBuffers([bufs]) and TablineClickable(mode, bufnr, label)

package main

import (
	"fmt"
	"os"

	"github.com/neovim/go-client/nvim/plugin"

	"github.com/mauromedda/tabline-go/internal/buffer"
	"github.com/mauromedda/tabline-go/internal/clickable"
	"github.com/mauromedda/tabline-go/internal/config"
	"github.com/mauromedda/tabline-go/internal/host"
	tllog "github.com/mauromedda/tabline-go/internal/log"
	"github.com/mauromedda/tabline-go/internal/seq"
)

func runServe(args []string, cfg *config.Settings) error {
	applyLogLevel(cfg, false)

	// plugin.Main parses its own flags (-manifest, -location) from os.Args.
	os.Args = append([]string{os.Args[0]}, args...)

	plugin.Main(func(p *plugin.Plugin) error {
		h := host.FromClient(p.Nvim)
		enc := clickable.NewEncoder(h, cfg.EncoderOptions()...)

		p.HandleFunction(&plugin.FunctionOptions{Name: "TablineValidBuffers"}, func(args []any) ([]int, error) {
			return validBuffers(h, args)
		})
		p.HandleFunction(&plugin.FunctionOptions{Name: "TablineClickable"}, func(args []any) (string, error) {
			return clickableLabel(enc, args)
		})
		tllog.Debug("serve: registered tabline functions")
		return nil
	})
	return nil
}

// validBuffers handles TablineValidBuffers. Without arguments, or with a
// single nil, it filters every buffer. Otherwise each argument is a list of
// candidates and the lists are joined in order.
func validBuffers(reg buffer.Registry, args []any) ([]int, error) {
	var valid []buffer.Handle
	if len(args) == 0 || (len(args) == 1 && args[0] == nil) {
		valid = buffer.FilterAll(reg)
	} else {
		lists := make([][]buffer.Handle, len(args))
		for i, arg := range args {
			list, err := toHandles(arg)
			if err != nil {
				return nil, fmt.Errorf("TablineValidBuffers: argument %d: %w", i+1, err)
			}
			lists[i] = list
		}
		valid = buffer.Filter(reg, seq.Join(lists...)...)
	}

	out := make([]int, len(valid))
	for i, h := range valid {
		out[i] = int(h)
	}
	return out, nil
}

func toHandles(arg any) ([]buffer.Handle, error) {
	list, ok := arg.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list, got %T", arg)
	}
	out := make([]buffer.Handle, 0, len(list))
	for i, v := range list {
		h, ok := toHandle(v)
		if !ok {
			return nil, fmt.Errorf("item %d is %T, not a number", i, v)
		}
		out = append(out, h)
	}
	return out, nil
}

// clickableLabel handles TablineClickable(mode, bufnr, label).
func clickableLabel(enc *clickable.Encoder, args []any) (string, error) {
	if len(args) != 3 {
		return "", fmt.Errorf("TablineClickable: want 3 arguments (mode, bufnr, label), got %d", len(args))
	}
	mode, _ := args[0].(string)
	h, ok := toHandle(args[1])
	if !ok {
		return "", fmt.Errorf("TablineClickable: bufnr is %T, not a number", args[1])
	}
	label, ok := args[2].(string)
	if !ok {
		return "", fmt.Errorf("TablineClickable: label is %T, not a string", args[2])
	}

	// Unknown modes fall back to the single-window handler inside Encode.
	m, err := clickable.ParseMode(mode)
	if err != nil {
		m = clickable.Mode(mode)
	}
	return enc.Encode(clickable.Context{Mode: m, Handle: h, Label: label}), nil
}

// toHandle converts a msgpack-decoded number to a handle.
func toHandle(v any) (buffer.Handle, bool) {
	switch n := v.(type) {
	case int64:
		return buffer.Handle(n), true
	case uint64:
		return buffer.Handle(n), true
	case int:
		return buffer.Handle(n), true
	case int32:
		return buffer.Handle(n), true
	case float64:
		return buffer.Handle(n), n == float64(int64(n))
	}
	return 0, false
}
