// ABOUTME: Builder and value type for Neovim tabline click-region markup (%N@fn@label)
// ABOUTME: Holds the literal grammar in one place and validates every piece before assembly

package clickable

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mauromedda/tabline-go/internal/buffer"
)

// Host grammar: '%' <minwid> '@' <function> '@' starts a region whose clicks
// call <function> with <minwid> as the first argument. "v:lua." prefixes a
// Lua function reachable from the global table.
const (
	regionStart = "%"
	callDelim   = "@"
	luaPrefix   = "v:lua."
)

var (
	// ErrInvalidHandle is returned when the region tag is not a positive handle.
	ErrInvalidHandle = errors.New("invalid buffer handle")
	// ErrInvalidName is returned for a namespace or handler that is not a Lua identifier path.
	ErrInvalidName = errors.New("invalid lua name")
)

var (
	luaIdent = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	luaPath  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)
)

// Markup is a validated click-region fragment.
type Markup struct {
	handle    buffer.Handle
	namespace string
	handler   string
	label     string
}

// Handle returns the numeric tag carried by the region.
func (m Markup) Handle() buffer.Handle { return m.handle }

// Function returns the fully qualified call reference, e.g. "v:lua.ns.handle_click".
func (m Markup) Function() string {
	return luaPrefix + m.namespace + "." + m.handler
}

// Label returns the label text that follows the region marker.
func (m Markup) Label() string { return m.label }

// String renders the fragment as the host expects it.
func (m Markup) String() string {
	var b strings.Builder
	b.Grow(len(regionStart) + 2*len(callDelim) + len(luaPrefix) + len(m.namespace) + len(m.handler) + len(m.label) + 12)
	b.WriteString(regionStart)
	b.WriteString(strconv.Itoa(int(m.handle)))
	b.WriteString(callDelim)
	b.WriteString(m.Function())
	b.WriteString(callDelim)
	b.WriteString(m.label)
	return b.String()
}

// Builder assembles a Markup. The zero value is not useful; use NewBuilder.
type Builder struct {
	m Markup
}

// NewBuilder returns a builder targeting the default namespace and single handler.
func NewBuilder() *Builder {
	return &Builder{m: Markup{
		namespace: DefaultNamespace,
		handler:   DefaultSingleHandler,
	}}
}

// Handle sets the buffer handle tagged on the region.
func (b *Builder) Handle(h buffer.Handle) *Builder {
	b.m.handle = h
	return b
}

// Namespace sets the Lua table path that owns the handler.
func (b *Builder) Namespace(ns string) *Builder {
	b.m.namespace = ns
	return b
}

// Handler sets the click handler function name.
func (b *Builder) Handler(fn string) *Builder {
	b.m.handler = fn
	return b
}

// Label sets the pre-rendered label text.
func (b *Builder) Label(s string) *Builder {
	b.m.label = s
	return b
}

// Build validates the pieces and returns the fragment.
// Line breaks in the label become spaces so the fragment stays on one line.
func (b *Builder) Build() (Markup, error) {
	m := b.m
	if !m.handle.Valid() {
		return Markup{}, fmt.Errorf("%w: %d", ErrInvalidHandle, m.handle)
	}
	if !luaPath.MatchString(m.namespace) {
		return Markup{}, fmt.Errorf("%w: namespace %q", ErrInvalidName, m.namespace)
	}
	if !luaIdent.MatchString(m.handler) {
		return Markup{}, fmt.Errorf("%w: handler %q", ErrInvalidName, m.handler)
	}
	m.label = flattenLines(m.label)
	return m, nil
}

func flattenLines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
