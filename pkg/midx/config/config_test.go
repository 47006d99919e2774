package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Use a temp directory that doesn't have a config file
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Root != DefaultRoot {
		t.Errorf("Root = %q, want %q", cfg.Root, DefaultRoot)
	}

	if cfg.Manifest != DefaultManifestPath {
		t.Errorf("Manifest = %q, want %q", cfg.Manifest, DefaultManifestPath)
	}

	if cfg.Output != DefaultOutputFormat {
		t.Errorf("Output = %q, want %q", cfg.Output, DefaultOutputFormat)
	}

	if cfg.Logging.Level != DefaultLogLevel {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, DefaultLogLevel)
	}

	if cfg.Logging.Path != "" {
		t.Errorf("Logging.Path = %q, want empty", cfg.Logging.Path)
	}
}

func TestLoad_FromFile(t *testing.T) {
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, ".config", "midx")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	configContent := `
root: sounds/sequences
manifest: sounds/manifest.json
output: plain
logging:
  level: debug
  path: /tmp/midx-test.log
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Root != "sounds/sequences" {
		t.Errorf("Root = %q, want %q", cfg.Root, "sounds/sequences")
	}

	if cfg.Manifest != "sounds/manifest.json" {
		t.Errorf("Manifest = %q, want %q", cfg.Manifest, "sounds/manifest.json")
	}

	if cfg.Output != "plain" {
		t.Errorf("Output = %q, want %q", cfg.Output, "plain")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}

	if cfg.Logging.Path != "/tmp/midx-test.log" {
		t.Errorf("Logging.Path = %q, want %q", cfg.Logging.Path, "/tmp/midx-test.log")
	}
}

func TestLoad_XDGConfigHome(t *testing.T) {
	tempDir := t.TempDir()
	xdgConfigDir := filepath.Join(tempDir, "xdg-config", "midx")
	if err := os.MkdirAll(xdgConfigDir, 0o755); err != nil {
		t.Fatalf("failed to create XDG config dir: %v", err)
	}

	configContent := `root: /srv/assets/midi`
	configPath := filepath.Join(xdgConfigDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "xdg-config"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Root != "/srv/assets/midi" {
		t.Errorf("Root = %q, want %q", cfg.Root, "/srv/assets/midi")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("MIDX_ROOT", "/mnt/assets/midi")
	t.Setenv("MIDX_LOGGING_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Root != "/mnt/assets/midi" {
		t.Errorf("Root = %q, want %q", cfg.Root, "/mnt/assets/midi")
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
}

func TestLoad_TildeExpansion(t *testing.T) {
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, ".config", "midx")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	configContent := `
root: ~/assets/midi
manifest: ~/assets/midi_manifest.json
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	wantRoot := filepath.Join(tempDir, "assets", "midi")
	if cfg.Root != wantRoot {
		t.Errorf("Root = %q, want %q", cfg.Root, wantRoot)
	}

	wantManifest := filepath.Join(tempDir, "assets", "midi_manifest.json")
	if cfg.Manifest != wantManifest {
		t.Errorf("Manifest = %q, want %q", cfg.Manifest, wantManifest)
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")

		dir, err := ConfigDir()
		if err != nil {
			t.Fatalf("ConfigDir() error = %v", err)
		}

		expected := "/custom/config/midx"
		if dir != expected {
			t.Errorf("ConfigDir() = %q, want %q", dir, expected)
		}
	})

	t.Run("uses HOME/.config when XDG_CONFIG_HOME not set", func(t *testing.T) {
		tempDir := t.TempDir()
		t.Setenv("HOME", tempDir)
		t.Setenv("XDG_CONFIG_HOME", "")

		dir, err := ConfigDir()
		if err != nil {
			t.Fatalf("ConfigDir() error = %v", err)
		}

		expected := filepath.Join(tempDir, ".config", "midx")
		if dir != expected {
			t.Errorf("ConfigDir() = %q, want %q", dir, expected)
		}
	})
}

func TestEnsureConfigDir(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")

	if err := EnsureConfigDir(); err != nil {
		t.Fatalf("EnsureConfigDir() error = %v", err)
	}

	expectedDir := filepath.Join(tempDir, ".config", "midx")
	info, err := os.Stat(expectedDir)
	if err != nil {
		t.Fatalf("os.Stat(%q) error = %v", expectedDir, err)
	}

	if !info.IsDir() {
		t.Errorf("%q is not a directory", expectedDir)
	}
}

func TestWriteDefault(t *testing.T) {
	t.Run("creates default config file", func(t *testing.T) {
		tempDir := t.TempDir()
		t.Setenv("HOME", tempDir)
		t.Setenv("XDG_CONFIG_HOME", "")

		if err := WriteDefault(); err != nil {
			t.Fatalf("WriteDefault() error = %v", err)
		}

		configPath := filepath.Join(tempDir, ".config", "midx", "config.yaml")
		data, err := os.ReadFile(configPath)
		if err != nil {
			t.Fatalf("config file not created: %v", err)
		}

		content := string(data)
		if !strings.Contains(content, "root: "+DefaultRoot) {
			t.Errorf("default config missing root key:\n%s", content)
		}
		if !strings.Contains(content, "manifest: "+DefaultManifestPath) {
			t.Errorf("default config missing manifest key:\n%s", content)
		}
	})

	t.Run("does not overwrite existing file", func(t *testing.T) {
		tempDir := t.TempDir()
		t.Setenv("HOME", tempDir)
		t.Setenv("XDG_CONFIG_HOME", "")

		configDir := filepath.Join(tempDir, ".config", "midx")
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			t.Fatalf("failed to create config dir: %v", err)
		}

		configPath := filepath.Join(configDir, "config.yaml")
		original := "root: /keep/me\n"
		if err := os.WriteFile(configPath, []byte(original), 0o644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		if err := WriteDefault(); err != nil {
			t.Fatalf("WriteDefault() error = %v", err)
		}

		data, err := os.ReadFile(configPath)
		if err != nil {
			t.Fatalf("failed to read config file: %v", err)
		}

		if string(data) != original {
			t.Errorf("config file overwritten: got %q, want %q", string(data), original)
		}
	})
}

func TestExpandPath(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "tilde prefix", input: "~/assets/midi", want: filepath.Join(tempDir, "assets", "midi")},
		{name: "bare tilde", input: "~", want: tempDir},
		{name: "absolute path unchanged", input: "/srv/assets", want: "/srv/assets"},
		{name: "relative path unchanged", input: "assets/midi", want: "assets/midi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			if err != nil {
				t.Fatalf("ExpandPath(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
