// ABOUTME: Host abstraction combining the buffer registry, UI capabilities and buffer names
// ABOUTME: Open picks a live Neovim socket or a YAML snapshot based on the given source

package host

import (
	"errors"

	"github.com/mauromedda/tabline-go/internal/buffer"
	"github.com/mauromedda/tabline-go/internal/clickable"
)

// ErrNoHost is returned when neither a socket nor a snapshot was given.
var ErrNoHost = errors.New("no host: set --socket, --snapshot or $NVIM")

// Host is everything the tab line tools read from an editor.
type Host interface {
	buffer.Registry
	clickable.Capabilities

	// Name returns the buffer's display name; "" when unknown.
	Name(h buffer.Handle) string
	String() string
	Close() error
}

// Source selects where a Host comes from. Snapshot wins over Socket.
type Source struct {
	Socket   string
	Snapshot string
}

// Open connects to the host described by src.
func Open(src Source) (Host, error) {
	switch {
	case src.Snapshot != "":
		return LoadSnapshot(src.Snapshot)
	case src.Socket != "":
		return Dial(src.Socket)
	}
	return nil, ErrNoHost
}

var (
	_ Host = (*Snapshot)(nil)
	_ Host = (*Nvim)(nil)
)
