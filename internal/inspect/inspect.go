// ABOUTME: InspectModel is a Bubble Tea view that re-runs the buffer filter on every tick
// ABOUTME: Shows kept/dropped buffers with their click fragments; reloads settings when config files change

package inspect

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mauromedda/tabline-go/internal/clickable"
	"github.com/mauromedda/tabline-go/internal/config"
	"github.com/mauromedda/tabline-go/internal/host"
	"github.com/mauromedda/tabline-go/internal/log"
	"github.com/mauromedda/tabline-go/internal/report"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	droppedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type tickMsg time.Time

type reportMsg report.Report

// Model is the inspector state.
type Model struct {
	host     host.Host
	settings *config.Settings
	reload   func() (*config.Settings, error)
	watcher  *config.Watcher
	encoder  *clickable.Encoder
	mode     clickable.Mode

	report report.Report
	passes int
	err    error
	width  int
}

// New creates an inspector for h using s. reload and watcher may be nil;
// when both are set, settings are reloaded whenever the watcher sees a change.
func New(h host.Host, s *config.Settings, reload func() (*config.Settings, error), watcher *config.Watcher) Model {
	if s == nil {
		s = &config.Settings{}
	}
	return Model{
		host:     h,
		settings: s,
		reload:   reload,
		watcher:  watcher,
		encoder:  clickable.NewEncoder(h, s.EncoderOptions()...),
		mode:     s.InteractionMode(),
	}
}

// Init runs the first pass and schedules the next tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pass(), m.tick())
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.settings.InspectInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) pass() tea.Cmd {
	h, enc, mode := m.host, m.encoder, m.mode
	return func() tea.Msg {
		return reportMsg(report.Build(h, enc, mode))
	}
}

// Update handles ticks, filter results and keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m = m.maybeReload()
		return m, tea.Batch(m.pass(), m.tick())

	case reportMsg:
		m.report = report.Report(msg)
		m.passes++

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "m":
			m = m.WithMode(toggle(m.mode))
			return m, m.pass()
		case "r":
			return m, m.pass()
		}
	}
	return m, nil
}

func toggle(mode clickable.Mode) clickable.Mode {
	if mode == clickable.MultiWindow {
		return clickable.SingleWindow
	}
	return clickable.MultiWindow
}

// WithMode returns a Model encoding fragments for mode.
func (m Model) WithMode(mode clickable.Mode) Model {
	m.mode = mode
	return m
}

// Mode returns the interaction mode in use.
func (m Model) Mode() clickable.Mode { return m.mode }

// Report returns the most recent filter pass.
func (m Model) Report() report.Report { return m.report }

func (m Model) maybeReload() Model {
	if m.reload == nil || m.watcher == nil || !m.watcher.Changed() {
		return m
	}
	s, err := m.reload()
	if err != nil {
		log.Debug("inspect: reloading config: %v", err)
		m.err = err
		return m
	}
	m.err = nil
	m.settings = s
	m.encoder = clickable.NewEncoder(m.host, s.EncoderOptions()...)
	m.mode = s.InteractionMode()
	return m
}

// View renders the buffer table.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  [%s]  %d/%d kept  pass %d",
		m.host.String(), m.mode, len(m.report.Valid), len(m.report.Rows), m.passes)))
	b.WriteString("\n\n")

	for _, row := range m.report.Rows {
		line := fmt.Sprintf("%4d  %-3s %s", row.Handle, status(row), report.Label(row.Name))
		if row.Fragment != "" {
			line += "  " + row.Fragment
		}
		if m.width > 0 {
			line = runewidth.Truncate(line, m.width, "…")
		}
		style := droppedStyle
		if row.Kept {
			style = keptStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("config: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("m toggle mode · r refresh · q quit"))
	return b.String()
}

func status(r report.Row) string {
	switch {
	case r.Kept:
		return "ok"
	case !r.Exists:
		return "gone"
	default:
		return "hid"
	}
}

// Run starts the inspector on the alternate screen and blocks until quit.
func Run(m Model) error {
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running inspector: %w", err)
	}
	return nil
}
