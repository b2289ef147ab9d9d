// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	UI       UIConfig       `toml:"ui"`
}

// PracticeConfig maps practice-related settings.
type PracticeConfig struct {
	Mode      *string `toml:"mode"`
	Words     *int    `toml:"words"`
	Level     *string `toml:"level"`
	WordList  *string `toml:"wordlist"`
	ReleaseMs *int    `toml:"release-ms"`
}

// UIConfig maps display defaults. Toggles made in the UI are persisted in
// the database and take precedence.
type UIConfig struct {
	Theme    *string `toml:"theme"`
	Keyboard *bool   `toml:"keyboard"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
