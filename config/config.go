package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ringdial/dial"
)

// Config is the on-disk configuration. Every field is optional; a
// missing file or field falls back to the reference defaults.
type Config struct {
	Start       string  `yaml:"start"` // "HH:MM"
	End         string  `yaml:"end"`   // "HH:MM"
	MinDuration int     `yaml:"min_duration"`
	MaxDuration int     `yaml:"max_duration"`
	TickSpacing int     `yaml:"tick_spacing"`
	TickMargin  int     `yaml:"tick_margin"`
	RingRadius  float64 `yaml:"ring_radius"`
	ArcRadius   float64 `yaml:"arc_radius"`
	DebugLog    string  `yaml:"debug_log"`
}

// Default returns the reference configuration: a 23:00-07:00 window
// with the standard duration limits and tick layout.
func Default() Config {
	opts := dial.DefaultOptions()
	return Config{
		Start:       "23:00",
		End:         "07:00",
		MinDuration: opts.MinDuration,
		MaxDuration: opts.MaxDuration,
		TickSpacing: opts.TickSpacing,
		TickMargin:  opts.TickMargin,
		RingRadius:  opts.RingRadius,
		ArcRadius:   opts.ArcRadius,
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ringdial", "config.yaml")
}

// Load reads a config file, filling unset fields from Default. An
// empty path means the conventional location; a missing file there is
// not an error, but an explicitly named file must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the configured values can form a usable dial.
func (c Config) Validate() error {
	if _, err := dial.ParseClock(c.Start); err != nil {
		return fmt.Errorf("invalid start: %w", err)
	}
	if _, err := dial.ParseClock(c.End); err != nil {
		return fmt.Errorf("invalid end: %w", err)
	}
	if c.MinDuration < 1 || c.MinDuration >= dial.MinutesPerDay {
		return fmt.Errorf("min_duration out of range: %d", c.MinDuration)
	}
	if c.MaxDuration < c.MinDuration || c.MaxDuration >= dial.MinutesPerDay {
		return fmt.Errorf("max_duration out of range: %d", c.MaxDuration)
	}
	if c.TickSpacing < 1 {
		return fmt.Errorf("tick_spacing must be positive: %d", c.TickSpacing)
	}
	if c.TickMargin < 0 {
		return fmt.Errorf("tick_margin cannot be negative: %d", c.TickMargin)
	}
	if c.RingRadius <= 0 || c.ArcRadius <= 0 {
		return fmt.Errorf("radii must be positive")
	}
	return nil
}

// Options converts the configuration into dial options.
func (c Config) Options() dial.Options {
	return dial.Options{
		RingRadius:  c.RingRadius,
		ArcRadius:   c.ArcRadius,
		MinDuration: c.MinDuration,
		MaxDuration: c.MaxDuration,
		TickSpacing: c.TickSpacing,
		TickMargin:  c.TickMargin,
		TickLength:  dial.DefaultOptions().TickLength,
	}
}

// Interval parses the configured start and end times.
func (c Config) Interval() (start, end dial.Minute, err error) {
	start, err = dial.ParseClock(c.Start)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start: %w", err)
	}
	end, err = dial.ParseClock(c.End)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end: %w", err)
	}
	return start, end, nil
}
