// Package config loads the player-facing settings from a YAML file.
// Gameplay tuning is fixed in the simulation and is not exposed here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Frontends.
const (
	FrontendGL   = "gl"
	FrontendTerm = "term"
)

// Themes lists the selectable map names in menu order.
var Themes = []string{"CLASSIC", "NEON NIGHT", "OHIO"}

// Settings is the whole config file.
type Settings struct {
	Frontend  string          `yaml:"frontend"`
	Window    WindowConfig    `yaml:"window"`
	Playfield PlayfieldConfig `yaml:"playfield"`
	Audio     AudioConfig     `yaml:"audio"`
	Theme     string          `yaml:"theme"`
	Seed      uint64          `yaml:"seed"` // 0 seeds from the clock
}

// WindowConfig is the initial desktop window size in screen pixels.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayfieldConfig is the logical simulation area.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	MusicVolume float64 `yaml:"music_volume"` // 0..1
	SFXVolume   float64 `yaml:"sfx_volume"`   // 0..1
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		Frontend:  FrontendGL,
		Window:    WindowConfig{Width: 480, Height: 720},
		Playfield: PlayfieldConfig{Width: 400, Height: 600},
		Audio:     AudioConfig{Enabled: true, MusicVolume: 0.35, SFXVolume: 0.6},
		Theme:     Themes[0],
	}
}

// Load reads path over the defaults. A missing file is not an error;
// keys absent from the file keep their default values.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return s, nil
}

// Save writes s as YAML, creating parent directories.
func Save(path string, s Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects values no frontend can run with.
func (s *Settings) Validate() error {
	switch s.Frontend {
	case FrontendGL, FrontendTerm:
	default:
		return fmt.Errorf("unknown frontend %q", s.Frontend)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height)
	}
	// The gap plus both margins must fit vertically, and the player horizontally.
	if s.Playfield.Width < 40 || s.Playfield.Height <= 350 {
		return fmt.Errorf("playfield %.0fx%.0f too small", s.Playfield.Width, s.Playfield.Height)
	}
	if s.Audio.MusicVolume < 0 || s.Audio.MusicVolume > 1 {
		return fmt.Errorf("music_volume %v outside [0,1]", s.Audio.MusicVolume)
	}
	if s.Audio.SFXVolume < 0 || s.Audio.SFXVolume > 1 {
		return fmt.Errorf("sfx_volume %v outside [0,1]", s.Audio.SFXVolume)
	}
	if ThemeIndex(s.Theme) < 0 {
		return fmt.Errorf("unknown theme %q", s.Theme)
	}
	return nil
}

// ThemeIndex returns the menu position of name, or -1.
func ThemeIndex(name string) int {
	for i, t := range Themes {
		if t == name {
			return i
		}
	}
	return -1
}
