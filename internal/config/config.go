// Package config provides configuration types, defaults, and persistence
// for tilekit.
package config

import "fmt"

// FrameConfig holds the CLI's framing parameters: the border glyphs drawn
// by --frame, and the default interior spacing. Positive spacing implies
// framing even without --frame, matching the spacing flags.
type FrameConfig struct {
	Horizontal    string `mapstructure:"horizontal"`     // top/bottom border glyph
	Vertical      string `mapstructure:"vertical"`       // left/right border glyph
	WidthSpacing  int    `mapstructure:"width_spacing"`  // blank columns inside the border
	HeightSpacing int    `mapstructure:"height_spacing"` // blank rows inside the border
}

// WatchConfig holds file-watching options for the watch command.
type WatchConfig struct {
	// DebounceMS is the quiet period between a file event and a re-render,
	// in milliseconds.
	DebounceMS int `mapstructure:"debounce_ms"`
}

// Config holds all configuration options for tilekit.
type Config struct {
	Frame   FrameConfig `mapstructure:"frame"`
	Watch   WatchConfig `mapstructure:"watch"`
	LogFile string      `mapstructure:"log_file"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Frame: FrameConfig{
			Horizontal:    "=",
			Vertical:      "|",
			WidthSpacing:  0,
			HeightSpacing: 0,
		},
		Watch: WatchConfig{
			DebounceMS: 250,
		},
		LogFile: "tilekit.log",
	}
}

// Validate checks values that would otherwise fail deep inside rendering.
func Validate(cfg Config) error {
	if cfg.Frame.Horizontal == "" || cfg.Frame.Vertical == "" {
		return fmt.Errorf("frame glyphs must not be empty")
	}
	if cfg.Frame.WidthSpacing < 0 || cfg.Frame.HeightSpacing < 0 {
		return fmt.Errorf("frame spacing must not be negative")
	}
	if cfg.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch debounce must not be negative")
	}
	return nil
}
