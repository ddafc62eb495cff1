// ABOUTME: Human-readable rendering of effective tabline configuration
// ABOUTME: Used by the "config" CLI subcommand; shows resolved defaults alongside overrides

package config

import (
	"fmt"
	"strings"

	"github.com/mauromedda/tabline-go/internal/clickable"
)

// Explain renders the effective settings, filling in defaults.
func Explain(s *Settings) string {
	if s == nil {
		s = &Settings{}
	}

	orDefault := func(v, def string) string {
		if v == "" {
			return def + " (default)"
		}
		return v
	}

	var b strings.Builder

	b.WriteString("=== Click regions ===\n")
	fmt.Fprintf(&b, "  Mode:        %s\n", s.InteractionMode())
	fmt.Fprintf(&b, "  Namespace:   %s\n", orDefault(s.Namespace, clickable.DefaultNamespace))
	fmt.Fprintf(&b, "  Single:      %s\n", orDefault(s.Handlers.Single, clickable.DefaultSingleHandler))
	fmt.Fprintf(&b, "  Multi:       %s\n", orDefault(s.Handlers.Multi, clickable.DefaultMultiHandler))
	b.WriteString("\n")

	b.WriteString("=== Host ===\n")
	if s.Snapshot != "" {
		fmt.Fprintf(&b, "  Snapshot:    %s\n", s.Snapshot)
	}
	if s.Socket != "" {
		fmt.Fprintf(&b, "  Socket:      %s\n", s.Socket)
	}
	if s.Snapshot == "" && s.Socket == "" {
		b.WriteString("  (none)\n")
	}
	b.WriteString("\n")

	b.WriteString("=== Runtime ===\n")
	fmt.Fprintf(&b, "  LogLevel:    %s\n", orDefault(s.LogLevel, "info"))
	fmt.Fprintf(&b, "  Inspect:     every %s\n", s.InspectInterval())

	return b.String()
}
