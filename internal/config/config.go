// Package config loads folio's settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/pelletier/go-toml/v2"

	"github.com/olivier-w/folio/internal/scroll"
)

// Config represents the application configuration.
type Config struct {
	// Content is the path of the content document. Empty opens the browser.
	Content       string          `toml:"content"`
	Theme         string          `toml:"theme"`
	ReducedMotion bool            `toml:"reduced_motion"`
	LogFile       string          `toml:"log_file"`
	Addr          string          `toml:"addr"`
	AssetBase     string          `toml:"asset_base"`
	Scroll        ScrollSettings  `toml:"scroll"`
	Marquee       MarqueeSettings `toml:"marquee"`
}

// ScrollSettings tunes the scroll engine in terminal rows. Zero values fall back
// to the engine defaults, except probe_offset where zero is kept.
type ScrollSettings struct {
	HeaderRows      int     `toml:"header_rows"`
	FrameRate       int     `toml:"frame_rate"`
	ProbeOffset     float64 `toml:"probe_offset"`
	SnapDelayMS     int     `toml:"snap_delay_ms"`
	CueHideDelayMS  int     `toml:"cue_hide_delay_ms"`
	SuspendWindowMS int     `toml:"suspend_window_ms"`
	SnapZone        float64 `toml:"snap_zone"`
	MinSnapDistance float64 `toml:"min_snap_distance"`
	Stiffness       float64 `toml:"stiffness"`
	Damping         float64 `toml:"damping"`
	MaxFrameStepMS  int     `toml:"max_frame_step_ms"`
	SettleDistance  float64 `toml:"settle_distance"`
	SettleSpeed     float64 `toml:"settle_speed"`
}

// MarqueeSettings tunes the licenses marquee.
type MarqueeSettings struct {
	Speed         float64 `toml:"speed"`
	ResumeDelayMS int     `toml:"resume_delay_ms"`
}

// DefaultConfig returns the configuration used when no file exists. Distances are
// scaled down from pixels to terminal rows; timings are unchanged.
func DefaultConfig() *Config {
	return &Config{
		Theme:     "dark",
		LogFile:   "folio.log",
		Addr:      ":8080",
		AssetBase: "/static/",
		Scroll: ScrollSettings{
			HeaderRows:      2,
			FrameRate:       60,
			ProbeOffset:     6,
			SnapDelayMS:     140,
			CueHideDelayMS:  900,
			SuspendWindowMS: 600,
			SnapZone:        0.3,
			MinSnapDistance: 2,
			Stiffness:       130,
			Damping:         26,
			MaxFrameStepMS:  40,
			SettleDistance:  0.6,
			SettleSpeed:     0.6,
		},
		Marquee: MarqueeSettings{
			Speed:         1.5,
			ResumeDelayMS: 1200,
		},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/folio/config.toml, or ./.folio.toml when no
// config directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".folio.toml"
	}
	return filepath.Join(dir, "folio", "config.toml")
}

// LoadFromPath loads configuration from path on top of DefaultConfig. A missing
// file is not an error.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath writes cfg as TOML, creating the directory if needed.
func SaveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from FOLIO_CONTENT, FOLIO_THEME, FOLIO_REDUCED_MOTION,
// FOLIO_LOG, FOLIO_ADDR and PORT.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("FOLIO_CONTENT"); v != "" {
		c.Content = v
	}
	if v := getenv("FOLIO_THEME"); v != "" {
		c.Theme = strings.ToLower(v)
	}
	if v := getenv("FOLIO_REDUCED_MOTION"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FOLIO_REDUCED_MOTION: %w", err)
		}
		c.ReducedMotion = b
	}
	if v := getenv("FOLIO_LOG"); v != "" {
		c.LogFile = v
	}
	if v := getenv("FOLIO_ADDR"); v != "" {
		c.Addr = v
	} else if port := getenv("PORT"); port != "" {
		c.Addr = ":" + port
	}
	return c.Validate()
}

// Validate rejects settings the UI cannot honour.
func (c *Config) Validate() error {
	switch c.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("invalid theme %q (want dark or light)", c.Theme)
	}
	if c.Scroll.SnapZone < 0 || c.Scroll.SnapZone > 1 {
		return fmt.Errorf("scroll.snap_zone must be within [0,1], got %v", c.Scroll.SnapZone)
	}
	if c.Scroll.HeaderRows < 0 {
		return fmt.Errorf("scroll.header_rows must not be negative")
	}
	return nil
}

// Engine converts the scroll settings for the scroll engine.
func (s ScrollSettings) Engine() scroll.Config {
	return scroll.Config{
		ProbeOffset:     s.ProbeOffset,
		SnapDelay:       ms(s.SnapDelayMS),
		CueHideDelay:    ms(s.CueHideDelayMS),
		SuspendWindow:   ms(s.SuspendWindowMS),
		SnapZone:        s.SnapZone,
		MinSnapDistance: s.MinSnapDistance,
		Stiffness:       s.Stiffness,
		Damping:         s.Damping,
		MaxFrameStep:    ms(s.MaxFrameStepMS),
		SettleDistance:  s.SettleDistance,
		SettleSpeed:     s.SettleSpeed,
	}
}

// FrameInterval is the animation frame period.
func (s ScrollSettings) FrameInterval() time.Duration {
	rate := s.FrameRate
	if rate <= 0 {
		rate = 60
	}
	return time.Duration(math.Round(harmonica.FPS(rate) * float64(time.Second)))
}

// Engine converts the marquee settings for the scroll engine.
func (m MarqueeSettings) Engine() scroll.MarqueeConfig {
	return scroll.MarqueeConfig{Speed: m.Speed, ResumeDelay: ms(m.ResumeDelayMS)}
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }
