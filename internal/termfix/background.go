// ABOUTME: Fixes the lipgloss background before bubbletea's init() can probe the terminal
// ABOUTME: Import with _ ahead of bubbletea; "tabline serve" owns stdout for msgpack-RPC

package termfix

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BackgroundEnv selects "light" or "dark" (the default).
const BackgroundEnv = "TABLINE_BACKGROUND"

func init() {
	// An explicit background stops lipgloss from sending OSC 10/11 queries.
	// Their replies would land in the RPC stream when running as a plugin.
	// This package must not import bubbletea, directly or transitively.
	lipgloss.SetHasDarkBackground(darkBackground(os.Getenv(BackgroundEnv)))
}

func darkBackground(v string) bool {
	return !strings.EqualFold(strings.TrimSpace(v), "light")
}
