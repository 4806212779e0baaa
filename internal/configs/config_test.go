package configs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathHonorsXDGConfigHome(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	path, err := Path()
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	want := filepath.Join(tmpDir, "chargon", "config.toml")
	if path != want {
		t.Errorf("Path = %q, want %q", path, want)
	}
}

func TestLoadUserConfigMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	config, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("Missing config file should not be an error, got: %v", err)
	}
	if config != (UserConfig{}) {
		t.Errorf("Expected zero value, got: %+v", config)
	}
}

func TestSaveAndLoadUserConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	saved := UserConfig{
		Defaults: Defaults{
			Preset:         "secure",
			Variant:        "argon2id",
			Iterations:     5,
			Memory:         8192,
			Parallelism:    2,
			PassphraseFile: "/tmp/passfile",
		},
	}
	if err := SaveUserConfig(saved); err != nil {
		t.Fatalf("SaveUserConfig failed: %v", err)
	}

	loaded, err := LoadUserConfig()
	if err != nil {
		t.Fatalf("LoadUserConfig failed: %v", err)
	}
	if loaded != saved {
		t.Errorf("Loaded config = %+v, want %+v", loaded, saved)
	}
}

func TestLoadUserConfigMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	configPath := filepath.Join(tmpDir, "chargon", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(configPath, []byte("not [valid toml"), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadUserConfig(); err == nil {
		t.Error("Expected an error for malformed TOML")
	}
}
