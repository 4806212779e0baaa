package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// UserConfig holds the user's default settings from config.toml.
type UserConfig struct {
	Defaults Defaults `toml:"defaults"`
}

// Defaults are applied wherever the user has not given an explicit flag.
// Explicit flags always win over the config file.
type Defaults struct {
	// Preset names a bundled cost configuration ("default" or "secure").
	Preset string `toml:"preset,omitempty"`

	// Variant overrides the preset's hash variant.
	Variant string `toml:"variant,omitempty"`

	// Iterations overrides the preset's time cost.
	Iterations uint32 `toml:"iterations,omitempty"`

	// Memory overrides the preset's memory cost, in KiB.
	Memory uint32 `toml:"memory,omitempty"`

	// Parallelism overrides the preset's thread count.
	Parallelism uint8 `toml:"parallelism,omitempty"`

	// PassphraseFile is a path whose first line is the passphrase.
	PassphraseFile string `toml:"passphrase_file,omitempty"`
}

// Path returns the location of the user config file.
func Path() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "chargon", "config.toml"), nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(configDir, "chargon", "config.toml"), nil
}

// LoadUserConfig reads the user config file. A missing file is not an
// error; it yields the zero value so the built-in defaults apply.
func LoadUserConfig() (UserConfig, error) {
	path, err := Path()
	if err != nil {
		return UserConfig{}, err
	}

	var config UserConfig
	if err := LoadTOML(path, &config); err != nil {
		if os.IsNotExist(err) {
			return UserConfig{}, nil
		}
		return UserConfig{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return config, nil
}

// SaveUserConfig writes the user config file, creating the directory if
// needed.
func SaveUserConfig(config UserConfig) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTOML(path, config)
}
