// ABOUTME: Tests for collecting reports from several hosts at once
// ABOUTME: Uses YAML snapshots so no live editor is needed

package main

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/mauromedda/tabline-go/internal/buffer"
	"github.com/mauromedda/tabline-go/internal/config"
	"github.com/mauromedda/tabline-go/internal/host"
)

func writeSnapshot(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snap.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCollect_KeepsSourceOrder(t *testing.T) {
	t.Parallel()

	a := writeSnapshot(t, "buffers:\n  - {handle: 1, name: a.go, listed: true}\n")
	b := writeSnapshot(t, "buffers:\n  - {handle: 2, name: b.go, listed: true}\n")

	reports, err := collect([]host.Source{{Snapshot: a}, {Snapshot: b}}, &config.Settings{}, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 2 {
		t.Fatalf("len(reports) = %d, want 2", len(reports))
	}
	if !slices.Equal(reports[0].Valid, []buffer.Handle{1}) || !slices.Equal(reports[1].Valid, []buffer.Handle{2}) {
		t.Errorf("Valid = %v, %v", reports[0].Valid, reports[1].Valid)
	}
}

func TestCollect_OneFailingSource(t *testing.T) {
	t.Parallel()

	good := writeSnapshot(t, "buffers: []\n")
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := collect([]host.Source{{Snapshot: good}, {Snapshot: missing}}, &config.Settings{}, ""); err == nil {
		t.Error("collect() error = nil, want error for missing snapshot")
	}
}
