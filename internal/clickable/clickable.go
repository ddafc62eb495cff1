// ABOUTME: Click-region encoder: wraps a rendered tab label so clicks dispatch to a Lua handler
// ABOUTME: Falls back to the plain label when the host lacks clickable tabline support

package clickable

import (
	"fmt"
	"strings"

	"github.com/mauromedda/tabline-go/internal/buffer"
	"github.com/mauromedda/tabline-go/internal/log"
)

// Defaults match the handler table exported by bufferline.nvim.
const (
	DefaultNamespace     = "___bufferline_private"
	DefaultSingleHandler = "handle_click"
	DefaultMultiHandler  = "handle_win_click"
)

// Mode is the tab line interaction mode.
type Mode string

const (
	SingleWindow Mode = "single-window"
	MultiWindow  Mode = "multi-window"
)

// ParseMode accepts the canonical names plus bufferline's "multiwindow".
// An empty string means SingleWindow.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(SingleWindow), "singlewindow", "single":
		return SingleWindow, nil
	case string(MultiWindow), "multiwindow", "multi":
		return MultiWindow, nil
	}
	return SingleWindow, fmt.Errorf("unknown mode %q", s)
}

// Context is the per-tab input to a single encode call.
type Context struct {
	Mode   Mode
	Handle buffer.Handle
	Label  string
}

// Capabilities reports host UI features.
type Capabilities interface {
	ClickableTabs() bool
}

// Encoder turns contexts into click-region fragments.
type Encoder struct {
	caps      Capabilities
	namespace string
	single    string
	multi     string
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithNamespace overrides the Lua table that owns the handlers.
func WithNamespace(ns string) Option {
	return func(e *Encoder) {
		if ns != "" {
			e.namespace = ns
		}
	}
}

// WithHandlers overrides the single- and multi-window handler names.
// Empty values keep the defaults.
func WithHandlers(single, multi string) Option {
	return func(e *Encoder) {
		if single != "" {
			e.single = single
		}
		if multi != "" {
			e.multi = multi
		}
	}
}

// NewEncoder creates an encoder that consults caps on every call.
// A nil caps is treated as a host without clickable tabs.
func NewEncoder(caps Capabilities, opts ...Option) *Encoder {
	e := &Encoder{
		caps:      caps,
		namespace: DefaultNamespace,
		single:    DefaultSingleHandler,
		multi:     DefaultMultiHandler,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Handler returns the handler name selected for mode.
func (e *Encoder) Handler(mode Mode) string {
	if mode == MultiWindow {
		return e.multi
	}
	return e.single
}

// Encode wraps ctx.Label in a click region, or returns it unchanged when the
// host cannot dispatch tabline clicks.
func (e *Encoder) Encode(ctx Context) string {
	if e.caps == nil || !e.caps.ClickableTabs() {
		return ctx.Label
	}

	m, err := NewBuilder().
		Handle(ctx.Handle).
		Namespace(e.namespace).
		Handler(e.Handler(ctx.Mode)).
		Label(ctx.Label).
		Build()
	if err != nil {
		log.Debug("clickable: %v; emitting plain label", err)
		return ctx.Label
	}
	return m.String()
}

// Encode is a shorthand for NewEncoder(caps).Encode(ctx).
func Encode(caps Capabilities, ctx Context) string {
	return NewEncoder(caps).Encode(ctx)
}
