// Package config loads walrus-bot's settings from a TOML file,
// falling back to documented defaults whenever the file is missing or
// malformed.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Settings is the full configuration tree, matching the two sections
// a config.toml may supply.
type Settings struct {
	Log    LogConfig    `toml:"log"`
	Engine EngineConfig `toml:"engine"`
}

// LogConfig controls internal/walog.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warning, error
	Path  string `toml:"path"`  // empty means stderr
}

// EngineConfig controls the chess core and the UCI layer wrapping it.
type EngineConfig struct {
	DefaultDepth int    `toml:"default_depth"`
	BookFile     string `toml:"book_file"`
	GameLogFile  string `toml:"game_log_file"`
}

// Default returns the settings used when no config file is present.
func Default() Settings {
	return Settings{
		Log: LogConfig{
			Level: "info",
		},
		Engine: EngineConfig{
			DefaultDepth: 6,
			BookFile:     "",
			GameLogFile:  "",
		},
	}
}

// Load decodes path into a Settings value seeded with Default(). A
// missing or malformed file is not fatal: Load returns the defaults
// (overlaid with whatever fields the file did supply) alongside the
// decode error, so the caller can log it and continue rather than
// abort startup.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return s, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return s, nil
}
