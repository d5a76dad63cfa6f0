package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hy4ri/timeline-tui/internal/timeline"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.SortKey() != timeline.SortByStart {
		t.Errorf("expected default sort start, got %s", cfg.SortKey())
	}
	if cfg.Color() != timeline.ColorBlue {
		t.Errorf("expected default color blue, got %s", cfg.Color())
	}
	if cfg.UI.CellWidthPx != 8 || !cfg.UI.Notifications {
		t.Errorf("unexpected defaults: %+v", cfg.UI)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("ui:\n  default_sort: status\n  default_color: purple\n  cell_width_px: 10\n  notifications: false\n")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.SortKey() != timeline.SortByStatus {
		t.Errorf("expected status sort, got %s", cfg.SortKey())
	}
	if cfg.Color() != timeline.ColorPurple {
		t.Errorf("expected purple, got %s", cfg.Color())
	}
	if cfg.UI.CellWidthPx != 10 || cfg.UI.Notifications {
		t.Errorf("unexpected ui config: %+v", cfg.UI)
	}
	// Unset keys keep their defaults.
	if cfg.UI.LogLevel != "info" {
		t.Errorf("expected default log level, got %q", cfg.UI.LogLevel)
	}
}

func TestLoadFileRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"sort":  "ui:\n  default_sort: priority\n",
		"color": "ui:\n  default_color: mauve\n",
		"cell":  "ui:\n  cell_width_px: 0\n",
		"yaml":  "ui: [",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(body), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestWriteTemplateLoadsAsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := WriteTemplate(path); err != nil {
		t.Fatalf("WriteTemplate: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if *loaded != *DefaultConfig() {
		t.Errorf("template should load as the defaults, got %+v", *loaded)
	}
}

func TestLogPathExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		file string
		want string
	}{
		{"~/.config/timeline-tui/timeline.log", filepath.Join(home, ".config", "timeline-tui", "timeline.log")},
		{"~", home},
		{"/var/log/timeline.log", "/var/log/timeline.log"},
		{"~other/timeline.log", "~other/timeline.log"},
		{"logs/timeline.log", "logs/timeline.log"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.UI.LogFile = tt.file
			got, err := cfg.LogPath()
			if err != nil {
				t.Fatalf("LogPath: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
