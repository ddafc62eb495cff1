// ABOUTME: Frozen host state loaded from YAML: buffers, listed/valid flags and UI capabilities
// ABOUTME: Backs offline previews and fixtures with the same registry contract as a live Neovim

package host

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/tabline-go/internal/buffer"
)

// SnapshotBuffer describes one buffer in a snapshot file.
// Valid defaults to true when omitted.
type SnapshotBuffer struct {
	Handle buffer.Handle `yaml:"handle"`
	Name   string        `yaml:"name,omitempty"`
	Listed bool          `yaml:"listed"`
	Valid  *bool         `yaml:"valid,omitempty"`
}

func (b SnapshotBuffer) exists() bool {
	return b.Valid == nil || *b.Valid
}

// SnapshotCapabilities lists host UI features.
type SnapshotCapabilities struct {
	TablineAt bool `yaml:"tablineat"`
}

// Snapshot is an immutable host registry.
type Snapshot struct {
	Capabilities SnapshotCapabilities `yaml:"capabilities"`
	Entries      []SnapshotBuffer     `yaml:"buffers"`

	source   string
	byHandle map[buffer.Handle]SnapshotBuffer
}

// ParseSnapshot decodes a YAML snapshot. Handles must be unique.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	s.byHandle = make(map[buffer.Handle]SnapshotBuffer, len(s.Entries))
	for _, b := range s.Entries {
		if _, dup := s.byHandle[b.Handle]; dup {
			return nil, fmt.Errorf("parsing snapshot: duplicate buffer handle %d", b.Handle)
		}
		s.byHandle[b.Handle] = b
	}
	return &s, nil
}

// LoadSnapshot reads and parses a YAML snapshot file.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	s, err := ParseSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.source = path
	return s, nil
}

// Buffers returns every handle in file order.
func (s *Snapshot) Buffers() []buffer.Handle {
	out := make([]buffer.Handle, len(s.Entries))
	for i, b := range s.Entries {
		out[i] = b.Handle
	}
	return out
}

// Exists reports whether h is present and not marked invalid.
func (s *Snapshot) Exists(h buffer.Handle) bool {
	b, ok := s.byHandle[h]
	return ok && b.exists()
}

// Listed reports the buffer's listed flag; unknown handles are unlisted.
func (s *Snapshot) Listed(h buffer.Handle) bool {
	return s.byHandle[h].Listed
}

// Name returns the buffer's display name, or "" when unknown.
func (s *Snapshot) Name(h buffer.Handle) string {
	return s.byHandle[h].Name
}

// ClickableTabs reports the tablineat capability.
func (s *Snapshot) ClickableTabs() bool {
	return s.Capabilities.TablineAt
}

// String identifies the snapshot in reports.
func (s *Snapshot) String() string {
	if s.source == "" {
		return "snapshot"
	}
	return "snapshot:" + s.source
}

// Close is a no-op; snapshots hold no resources.
func (s *Snapshot) Close() error { return nil }
