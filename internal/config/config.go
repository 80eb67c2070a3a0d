package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/plantquiz/internal/choreo"
)

// Config holds all plantquiz configuration.
type Config struct {
	// Content is a question bank file; empty uses the embedded bank.
	Content string `yaml:"content"`

	// DBPath is the result journal; empty uses the XDG data path.
	DBPath string `yaml:"db_path"`

	// NoJournal disables the result journal entirely.
	NoJournal bool `yaml:"no_journal"`

	Timings TimingsConfig `yaml:"timings"`
	Logging LoggingConfig `yaml:"logging"`
}

// TimingsConfig holds choreography durations as Go duration strings.
type TimingsConfig struct {
	Leave        string `yaml:"leave"`
	Enter        string `yaml:"enter"`
	Settle       string `yaml:"settle"`
	OverlayDwell string `yaml:"overlay_dwell"`
	OverlayFade  string `yaml:"overlay_fade"`
	Stagger      string `yaml:"stagger"`
	FeedbackHold string `yaml:"feedback_hold"`
	InsightHold  string `yaml:"insight_hold"`
	InsightClear string `yaml:"insight_clear"`
	CountUp      string `yaml:"count_up"`
}

// LoggingConfig configures the file logger. The TUI owns the terminal, so
// logs never go to stdout.
type LoggingConfig struct {
	File  string `yaml:"file"`  // empty disables logging
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	t := choreo.DefaultTimings()
	return &Config{
		Timings: TimingsConfig{
			Leave:        t.Leave.String(),
			Enter:        t.Enter.String(),
			Settle:       t.Settle.String(),
			OverlayDwell: t.OverlayDwell.String(),
			OverlayFade:  t.OverlayFade.String(),
			Stagger:      t.Stagger.String(),
			FeedbackHold: t.FeedbackHold.String(),
			InsightHold:  t.InsightHold.String(),
			InsightClear: t.InsightClear.String(),
			CountUp:      t.CountUp.String(),
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/plantquiz/config.yaml, falling back
// to ~/.config.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "plantquiz", "config.yaml")
}

// Load reads configuration from a YAML file on top of the defaults, then
// applies environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if p := os.Getenv("PLANTQUIZ_DB"); p != "" {
		c.DBPath = p
	}
	if p := os.Getenv("PLANTQUIZ_LOG"); p != "" {
		c.Logging.File = p
	}
	if l := os.Getenv("PLANTQUIZ_LOG_LEVEL"); l != "" {
		c.Logging.Level = l
	}
}

// ChoreoTimings parses the configured durations. Empty fields keep the
// default value.
func (c *Config) ChoreoTimings() (choreo.Timings, error) {
	t := choreo.DefaultTimings()
	fields := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"leave", c.Timings.Leave, &t.Leave},
		{"enter", c.Timings.Enter, &t.Enter},
		{"settle", c.Timings.Settle, &t.Settle},
		{"overlay_dwell", c.Timings.OverlayDwell, &t.OverlayDwell},
		{"overlay_fade", c.Timings.OverlayFade, &t.OverlayFade},
		{"stagger", c.Timings.Stagger, &t.Stagger},
		{"feedback_hold", c.Timings.FeedbackHold, &t.FeedbackHold},
		{"insight_hold", c.Timings.InsightHold, &t.InsightHold},
		{"insight_clear", c.Timings.InsightClear, &t.InsightClear},
		{"count_up", c.Timings.CountUp, &t.CountUp},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		d, err := time.ParseDuration(f.raw)
		if err != nil {
			return choreo.Timings{}, fmt.Errorf("timings.%s: %w", f.name, err)
		}
		if d < 0 {
			return choreo.Timings{}, fmt.Errorf("timings.%s: %w", f.name, ErrNegativeDuration)
		}
		*f.dst = d
	}
	return t, nil
}

// ErrNegativeDuration is returned for a timing below zero.
var ErrNegativeDuration = errors.New("duration must not be negative")

// ValidLevels lists the accepted log levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// Validate checks durations and the log level.
func (c *Config) Validate() error {
	if _, err := c.ChoreoTimings(); err != nil {
		return err
	}
	for _, l := range ValidLevels {
		if c.Logging.Level == l {
			return nil
		}
	}
	return fmt.Errorf("invalid log level %q (valid: %v)", c.Logging.Level, ValidLevels)
}
