package config

import (
	"fmt"
	"os"
	"time"

	"console-launcher/internal/launcher"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces every environment override, e.g. LAUNCHER_BACKEND or
// LAUNCHER_LAYOUT_ICON_SIZE. Keys come from field names only: an explicit
// envconfig tag would also be looked up without the prefix.
const EnvPrefix = "LAUNCHER"

const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// Settings holds everything that is not part of the application catalog.
type Settings struct {
	Catalog  string         `yaml:"catalog"`
	Backend  string         `yaml:"backend"`
	Title    string         `yaml:"title"`
	Layout   LayoutConfig   `yaml:"layout"`
	Behavior BehaviorConfig `yaml:"behavior"`
	Log      LogConfig      `yaml:"log"`
}

// LayoutConfig holds the fixed window and grid geometry.
type LayoutConfig struct {
	WindowWidth   int           `yaml:"window_width" split_words:"true"`
	WindowHeight  int           `yaml:"window_height" split_words:"true"`
	IconSize      int           `yaml:"icon_size" split_words:"true"`
	Spacing       int           `yaml:"spacing"`
	Columns       int           `yaml:"columns"`
	BorderWidth   int           `yaml:"border_width" split_words:"true"`
	BorderInset   int           `yaml:"border_inset" split_words:"true"`
	FrameInterval time.Duration `yaml:"frame_interval" split_words:"true"`
}

// BehaviorConfig toggles the optional input and exit behaviours.
type BehaviorConfig struct {
	QuitKey       bool `yaml:"quit_key" split_words:"true"`
	ResetTerminal bool `yaml:"reset_terminal" split_words:"true"`
	// LaunchDir is the working directory for launched apps; empty inherits ours.
	LaunchDir string `yaml:"launch_dir" split_words:"true"`
	// ShutdownTimeout bounds each teardown step on exit.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" split_words:"true"`
}

// LogConfig selects log verbosity and encoding.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default mirrors the classic 800x480 three-column launcher.
func Default() *Settings {
	l := launcher.DefaultLayout()
	return &Settings{
		Catalog: "apps.json",
		Backend: BackendWindow,
		Title:   "Switch-like Launcher",
		Layout: LayoutConfig{
			WindowWidth:   l.WindowWidth,
			WindowHeight:  l.WindowHeight,
			IconSize:      l.IconSize,
			Spacing:       l.Spacing,
			Columns:       l.Columns,
			BorderWidth:   l.BorderWidth,
			BorderInset:   l.BorderInset,
			FrameInterval: l.FrameInterval,
		},
		Behavior: BehaviorConfig{
			QuitKey:         true,
			ResetTerminal:   true,
			ShutdownTimeout: 5 * time.Second,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load starts from Default, applies the YAML file if one is given, then
// environment overrides. Values absent from both keep their defaults.
func Load(configPath string) (*Settings, error) {
	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Settings) Validate() error {
	if c.Catalog == "" {
		return fmt.Errorf("catalog path is required")
	}
	switch c.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendWindow, BackendTerminal)
	}
	if c.Behavior.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout %v must be positive", c.Behavior.ShutdownTimeout)
	}
	if c.Behavior.LaunchDir != "" {
		info, err := os.Stat(c.Behavior.LaunchDir)
		if err != nil {
			return fmt.Errorf("launch dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("launch dir %s is not a directory", c.Behavior.LaunchDir)
		}
	}
	return c.Layout.Launcher().Validate()
}

// Launcher converts the geometry into the loop's Layout.
func (l LayoutConfig) Launcher() launcher.Layout {
	return launcher.Layout{
		WindowWidth:   l.WindowWidth,
		WindowHeight:  l.WindowHeight,
		IconSize:      l.IconSize,
		Spacing:       l.Spacing,
		Columns:       l.Columns,
		BorderWidth:   l.BorderWidth,
		BorderInset:   l.BorderInset,
		FrameInterval: l.FrameInterval,
	}
}
