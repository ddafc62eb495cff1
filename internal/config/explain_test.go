// ABOUTME: Tests for the effective-settings explanation
// ABOUTME: Checks defaults are labelled and overrides are shown verbatim

package config

import (
	"strings"
	"testing"
)

func TestExplain_Defaults(t *testing.T) {
	t.Parallel()

	out := Explain(nil)
	for _, want := range []string{
		"Mode:        single-window",
		"___bufferline_private (default)",
		"handle_click (default)",
		"handle_win_click (default)",
		"(none)",
		"every 1s",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Explain(nil) missing %q:\n%s", want, out)
		}
	}
}

func TestExplain_Overrides(t *testing.T) {
	t.Parallel()

	out := Explain(&Settings{Mode: "multiwindow", Namespace: "tabs", Socket: "/tmp/s", LogLevel: "debug"})
	for _, want := range []string{"multi-window", "Namespace:   tabs\n", "Socket:      /tmp/s", "LogLevel:    debug"} {
		if !strings.Contains(out, want) {
			t.Errorf("Explain() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "(none)") {
		t.Error("Explain() reported no host despite socket")
	}
}
