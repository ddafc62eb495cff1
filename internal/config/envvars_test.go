// ABOUTME: Tests for ${VAR} expansion in settings
// ABOUTME: Verifies set, unset and literal values

package config

import "testing"

func TestResolveEnvVars(t *testing.T) {
	t.Setenv("TL_NS", "my_tabs")
	t.Setenv("TL_SOCK", "/tmp/sock")

	s := &Settings{
		Namespace: "${TL_NS}",
		Socket:    "${TL_SOCK}",
		Snapshot:  "${TL_UNSET_FOR_TEST}",
		Mode:      "multi-window",
	}
	ResolveEnvVars(s)

	if s.Namespace != "my_tabs" {
		t.Errorf("Namespace = %q", s.Namespace)
	}
	if s.Socket != "/tmp/sock" {
		t.Errorf("Socket = %q", s.Socket)
	}
	if s.Snapshot != "" {
		t.Errorf("Snapshot = %q, want empty for unset var", s.Snapshot)
	}
	if s.Mode != "multi-window" {
		t.Errorf("Mode = %q, literal should be unchanged", s.Mode)
	}
}
