package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings are the player-facing options read from the TOML settings file.
type Settings struct {
	Volume    int    `toml:"volume"`     // Music volume, 0..100
	Muted     bool   `toml:"muted"`      // Start with music muted
	MusicFile string `toml:"music_file"` // Optional MP3 to loop instead of the built-in track
	Seed      int64  `toml:"seed"`       // RNG seed, 0 picks one from the clock
	FPS       int    `toml:"fps"`        // Terminal frame rate
}

// Bounds for settings values.
const (
	MinVolume = 0
	MaxVolume = 100
	MinFPS    = 15
	MaxFPS    = 120
)

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		Volume: 50,
		FPS:    60,
	}
}

// DefaultSettingsPath returns ~/.config/nightmare/config.toml, or the value of
// NIGHTMARE_CONFIG when set.
func DefaultSettingsPath() string {
	if p := GetEnv("NIGHTMARE_CONFIG", ""); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "nightmare", "config.toml")
}

// LoadSettings reads settings from path. A missing file is not an error and
// yields DefaultSettings. Keys absent from the file keep their default value.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), fmt.Errorf("load settings %s: %w", path, err)
	}

	s.Clamp()
	return s, nil
}

// Clamp forces every value into its valid range.
func (s *Settings) Clamp() {
	s.Volume = clampInt(s.Volume, MinVolume, MaxVolume)
	if s.FPS == 0 {
		s.FPS = DefaultSettings().FPS
	}
	s.FPS = clampInt(s.FPS, MinFPS, MaxFPS)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
