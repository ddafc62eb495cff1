// ABOUTME: Live Neovim host over msgpack-RPC using github.com/neovim/go-client
// ABOUTME: RPC failures degrade to "not valid" / "not clickable" and are logged at debug level

package host

import (
	"fmt"

	"github.com/neovim/go-client/nvim"

	"github.com/mauromedda/tabline-go/internal/buffer"
	"github.com/mauromedda/tabline-go/internal/log"
)

// Nvim reads buffer state from a running Neovim.
type Nvim struct {
	v     *nvim.Nvim
	addr  string
	owned bool
}

// Dial connects to the Neovim listening on addr (a socket path or host:port).
func Dial(addr string) (*Nvim, error) {
	v, err := nvim.Dial(addr)
	if err != nil {
		return nil, fmt.Errorf("dialing nvim at %s: %w", addr, err)
	}
	return &Nvim{v: v, addr: addr, owned: true}, nil
}

// FromClient wraps an existing client, e.g. the one a remote plugin receives.
// Close does not close a borrowed client.
func FromClient(v *nvim.Nvim) *Nvim {
	return &Nvim{v: v}
}

// Buffers returns nvim_list_bufs(). An RPC failure yields no buffers.
func (n *Nvim) Buffers() []buffer.Handle {
	bufs, err := n.v.Buffers()
	if err != nil {
		log.Debug("nvim: listing buffers: %v", err)
		return nil
	}
	out := make([]buffer.Handle, len(bufs))
	for i, b := range bufs {
		out[i] = buffer.Handle(b)
	}
	return out
}

// Exists returns nvim_buf_is_valid(h).
func (n *Nvim) Exists(h buffer.Handle) bool {
	ok, err := n.v.IsBufferValid(nvim.Buffer(h))
	if err != nil {
		log.Debug("nvim: checking buffer %d: %v", h, err)
		return false
	}
	return ok
}

// Listed returns the buffer-local 'buflisted' option.
func (n *Nvim) Listed(h buffer.Handle) bool {
	var listed bool
	if err := n.v.BufferOption(nvim.Buffer(h), "buflisted", &listed); err != nil {
		log.Debug("nvim: reading buflisted for %d: %v", h, err)
		return false
	}
	return listed
}

// Name returns the buffer's file name.
func (n *Nvim) Name(h buffer.Handle) string {
	name, err := n.v.BufferName(nvim.Buffer(h))
	if err != nil {
		log.Debug("nvim: reading name for %d: %v", h, err)
		return ""
	}
	return name
}

// ClickableTabs reports has('tablineat'). A failed call counts as unsupported.
func (n *Nvim) ClickableTabs() bool {
	var has int
	if err := n.v.Call("has", &has, "tablineat"); err != nil {
		log.Debug("nvim: has('tablineat'): %v", err)
		return false
	}
	return has != 0
}

func (n *Nvim) String() string {
	if n.addr == "" {
		return "nvim"
	}
	return "nvim:" + n.addr
}

// Close closes the connection if Dial opened it.
func (n *Nvim) Close() error {
	if !n.owned {
		return nil
	}
	if err := n.v.Close(); err != nil {
		return fmt.Errorf("closing nvim connection: %w", err)
	}
	return nil
}
