// ABOUTME: Tests for YAML snapshot hosts and Open source selection
// ABOUTME: Uses testdata fixtures and temp files; no live editor required

package host

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/mauromedda/tabline-go/internal/buffer"
)

func TestLoadSnapshot(t *testing.T) {
	t.Parallel()

	s, err := LoadSnapshot(filepath.Join("testdata", "session.yaml"))
	if err != nil {
		t.Fatalf("LoadSnapshot() error: %v", err)
	}

	if got, want := s.Buffers(), []buffer.Handle{1, 2, 3, 5}; !slices.Equal(got, want) {
		t.Errorf("Buffers() = %v, want %v", got, want)
	}
	if !s.ClickableTabs() {
		t.Error("ClickableTabs() = false, want true")
	}

	tests := []struct {
		h      buffer.Handle
		exists bool
		listed bool
		name   string
	}{
		{1, true, true, "main.go"},
		{2, true, false, "[Scratch]"},
		{3, false, true, "README.md"},
		{5, true, true, "internal/buffer/buffer.go"},
		{9, false, false, ""},
	}
	for _, tt := range tests {
		if got := s.Exists(tt.h); got != tt.exists {
			t.Errorf("Exists(%d) = %v, want %v", tt.h, got, tt.exists)
		}
		if got := s.Listed(tt.h); got != tt.listed {
			t.Errorf("Listed(%d) = %v, want %v", tt.h, got, tt.listed)
		}
		if got := s.Name(tt.h); got != tt.name {
			t.Errorf("Name(%d) = %q, want %q", tt.h, got, tt.name)
		}
	}

	if got := buffer.FilterAll(s); !slices.Equal(got, []buffer.Handle{1, 5}) {
		t.Errorf("FilterAll(snapshot) = %v, want [1 5]", got)
	}
	if !strings.HasSuffix(s.String(), "session.yaml") {
		t.Errorf("String() = %q, want source path", s.String())
	}
}

func TestParseSnapshot_Empty(t *testing.T) {
	t.Parallel()

	s, err := ParseSnapshot([]byte(""))
	if err != nil {
		t.Fatalf("ParseSnapshot() error: %v", err)
	}
	if len(s.Buffers()) != 0 || s.ClickableTabs() {
		t.Errorf("empty snapshot = %+v, want no buffers and no capabilities", s)
	}
	if s.String() != "snapshot" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestParseSnapshot_DuplicateHandle(t *testing.T) {
	t.Parallel()

	_, err := ParseSnapshot([]byte("buffers:\n  - handle: 4\n  - handle: 4\n"))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("ParseSnapshot() error = %v, want duplicate handle error", err)
	}
}

func TestParseSnapshot_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ParseSnapshot([]byte("buffers: [oops")); err == nil {
		t.Error("expected parse error")
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	if _, err := Open(Source{}); !errors.Is(err, ErrNoHost) {
		t.Errorf("Open(empty) error = %v, want ErrNoHost", err)
	}

	path := filepath.Join(t.TempDir(), "snap.yaml")
	if err := os.WriteFile(path, []byte("buffers:\n  - handle: 1\n    listed: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	h, err := Open(Source{Snapshot: path, Socket: "/does/not/matter"})
	if err != nil {
		t.Fatalf("Open(snapshot) error: %v", err)
	}
	defer h.Close()

	if got := buffer.FilterAll(h); !slices.Equal(got, []buffer.Handle{1}) {
		t.Errorf("FilterAll() = %v, want [1]", got)
	}
}

func TestOpen_MissingSnapshot(t *testing.T) {
	t.Parallel()

	if _, err := Open(Source{Snapshot: filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
		t.Error("expected error for missing snapshot file")
	}
}
