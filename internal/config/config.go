// ABOUTME: Tabline settings loading with global + project YAML deep merge
// ABOUTME: Validates the interaction mode and log level and builds encoder options

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/tabline-go/internal/clickable"
	"github.com/mauromedda/tabline-go/internal/log"
)

// ErrInvalidMode is returned when the configured mode is not recognised.
var ErrInvalidMode = errors.New("invalid tabline mode")

const defaultInspectInterval = time.Second

// Handlers names the Lua click handlers inside Namespace.
type Handlers struct {
	Single string `yaml:"single,omitempty"`
	Multi  string `yaml:"multi,omitempty"`
}

// InspectSettings tunes the live inspector.
type InspectSettings struct {
	Interval time.Duration `yaml:"interval,omitempty"`
}

// Settings holds the merged configuration.
type Settings struct {
	Mode      string          `yaml:"mode,omitempty"`
	Namespace string          `yaml:"namespace,omitempty"`
	Handlers  Handlers        `yaml:"handlers,omitempty"`
	Socket    string          `yaml:"socket,omitempty"`
	Snapshot  string          `yaml:"snapshot,omitempty"`
	LogLevel  string          `yaml:"log_level,omitempty"`
	Inspect   InspectSettings `yaml:"inspect,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings. ${VAR} references are expanded,
// and an unset socket falls back to $NVIM.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	if merged.Socket == "" {
		merged.Socket = os.Getenv("NVIM")
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays non-zero project values onto global.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Mode != "" {
		result.Mode = project.Mode
	}
	if project.Namespace != "" {
		result.Namespace = project.Namespace
	}
	if project.Handlers.Single != "" {
		result.Handlers.Single = project.Handlers.Single
	}
	if project.Handlers.Multi != "" {
		result.Handlers.Multi = project.Handlers.Multi
	}
	if project.Socket != "" {
		result.Socket = project.Socket
	}
	if project.Snapshot != "" {
		result.Snapshot = project.Snapshot
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.Inspect.Interval != 0 {
		result.Inspect.Interval = project.Inspect.Interval
	}

	return &result
}

// Validate checks the enumerated fields.
func (s *Settings) Validate() error {
	if _, err := clickable.ParseMode(s.Mode); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidMode, s.Mode)
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("validating log_level: %w", err)
	}
	if s.Inspect.Interval < 0 {
		return errors.New("validating inspect.interval: must not be negative")
	}
	return nil
}

// InteractionMode returns the parsed mode, SingleWindow when unset or invalid.
func (s *Settings) InteractionMode() clickable.Mode {
	m, _ := clickable.ParseMode(s.Mode)
	return m
}

// InspectInterval returns the inspector refresh period.
func (s *Settings) InspectInterval() time.Duration {
	if s.Inspect.Interval <= 0 {
		return defaultInspectInterval
	}
	return s.Inspect.Interval
}

// EncoderOptions converts namespace and handler overrides into encoder options.
func (s *Settings) EncoderOptions() []clickable.Option {
	return []clickable.Option{
		clickable.WithNamespace(s.Namespace),
		clickable.WithHandlers(s.Handlers.Single, s.Handlers.Multi),
	}
}
