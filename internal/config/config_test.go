package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.APIURL != defaultAPIURL {
			t.Errorf("APIURL = %q, want %q", cfg.APIURL, defaultAPIURL)
		}
		if cfg.Backend != BackendJSON {
			t.Errorf("Backend = %q, want %q", cfg.Backend, BackendJSON)
		}
		if cfg.TimeoutSeconds != defaultTimeout {
			t.Errorf("TimeoutSeconds = %d, want %d", cfg.TimeoutSeconds, defaultTimeout)
		}
	})

	t.Run("reads values from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `api_url = "https://prashikshan.example.edu"
data_dir = "/var/lib/prashikshan"
backend = "sqlite"
timeout_seconds = 30
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.APIURL != "https://prashikshan.example.edu" {
			t.Errorf("APIURL = %q", cfg.APIURL)
		}
		if cfg.DataDir != "/var/lib/prashikshan" {
			t.Errorf("DataDir = %q", cfg.DataDir)
		}
		if cfg.Backend != BackendSQLite {
			t.Errorf("Backend = %q, want %q", cfg.Backend, BackendSQLite)
		}
		if cfg.TimeoutSeconds != 30 {
			t.Errorf("TimeoutSeconds = %d, want 30", cfg.TimeoutSeconds)
		}
	})

	t.Run("invalid toml falls back to defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("api_url = [broken"), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.APIURL != defaultAPIURL {
			t.Errorf("APIURL = %q, want default", cfg.APIURL)
		}
	})

	t.Run("bad values are corrected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `api_url = ""
backend = "postgres"
timeout_seconds = -5
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.APIURL != defaultAPIURL {
			t.Errorf("empty APIURL not defaulted, got %q", cfg.APIURL)
		}
		if cfg.Backend != BackendJSON {
			t.Errorf("unknown backend not defaulted, got %q", cfg.Backend)
		}
		if cfg.TimeoutSeconds != defaultTimeout {
			t.Errorf("non-positive timeout not defaulted, got %d", cfg.TimeoutSeconds)
		}
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Config{
		APIURL:         "https://prashikshan.example.edu",
		DataDir:        "/var/lib/prashikshan",
		Backend:        BackendSQLite,
		TimeoutSeconds: 45,
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tilde expands", "~/.config/prashikshan", filepath.Join(home, ".config", "prashikshan")},
		{"absolute untouched", "/var/lib/prashikshan", "/var/lib/prashikshan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandPath(tt.in)
			if err != nil {
				t.Fatalf("expandPath(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("expandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	t.Run("empty path rejected", func(t *testing.T) {
		if _, err := expandPath("  "); err == nil {
			t.Error("expandPath accepted empty path")
		}
	})
}
