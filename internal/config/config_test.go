package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Mirror.Axis != "x" {
		t.Errorf("expected axis 'x', got %q", cfg.Mirror.Axis)
	}
	if cfg.Mirror.SeamPolicy != "copy" {
		t.Errorf("expected seam policy 'copy', got %q", cfg.Mirror.SeamPolicy)
	}
	if cfg.Mirror.LeftPositive {
		t.Error("expected left_positive to be false by default")
	}
	if cfg.Mirror.SeamEpsilon != 0 || cfg.Mirror.TieTolerance != 0 {
		t.Error("expected zero tolerances by default (engine defaults apply)")
	}

	if cfg.Naming.LeftMarker != "_l_" {
		t.Errorf("expected left marker '_l_', got %q", cfg.Naming.LeftMarker)
	}
	if cfg.Naming.RightMarker != "_r_" {
		t.Errorf("expected right marker '_r_', got %q", cfg.Naming.RightMarker)
	}

	if cfg.Output.Directory != "" {
		t.Errorf("expected empty output directory, got %q", cfg.Output.Directory)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %q", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "blendmirror.yaml")

	yamlContent := `
mirror:
  axis: "z"
  seam_policy: "reflect"
  left_positive: true
  seam_epsilon: 0.001
  tie_tolerance: 0.0001

naming:
  left_marker: ".L."
  right_marker: ".R."

output:
  directory: "/tmp/shapes"

logging:
  level: "debug"
  log_file: "blendmirror.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Mirror.Axis != "z" {
		t.Errorf("expected axis 'z', got %q", cfg.Mirror.Axis)
	}
	if cfg.Mirror.SeamPolicy != "reflect" {
		t.Errorf("expected seam policy 'reflect', got %q", cfg.Mirror.SeamPolicy)
	}
	if !cfg.Mirror.LeftPositive {
		t.Error("expected left_positive to be true")
	}
	if cfg.Mirror.SeamEpsilon != 0.001 {
		t.Errorf("expected seam epsilon 0.001, got %v", cfg.Mirror.SeamEpsilon)
	}
	if cfg.Mirror.TieTolerance != 0.0001 {
		t.Errorf("expected tie tolerance 0.0001, got %v", cfg.Mirror.TieTolerance)
	}

	if cfg.Naming.LeftMarker != ".L." || cfg.Naming.RightMarker != ".R." {
		t.Errorf("expected markers .L./.R., got %q/%q", cfg.Naming.LeftMarker, cfg.Naming.RightMarker)
	}

	if cfg.Output.Directory != "/tmp/shapes" {
		t.Errorf("expected output directory /tmp/shapes, got %q", cfg.Output.Directory)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "blendmirror.log" {
		t.Errorf("expected log file 'blendmirror.log', got %q", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	// A file that sets only one section leaves the other defaults alone.
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	if err := os.WriteFile(configPath, []byte("mirror:\n  axis: \"y\"\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Mirror.Axis != "y" {
		t.Errorf("expected axis 'y', got %q", cfg.Mirror.Axis)
	}
	if cfg.Naming.LeftMarker != "_l_" {
		t.Errorf("left marker default lost: %q", cfg.Naming.LeftMarker)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
mirror:
  seam_epsilon: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/blendmirror.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %q", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "axis flag",
			setup: func() {
				*flagAxis = "z"
			},
			verify: func(cfg *Config) {
				if cfg.Mirror.Axis != "z" {
					t.Errorf("expected axis 'z', got %q", cfg.Mirror.Axis)
				}
			},
			teardown: func() {
				*flagAxis = ""
			},
		},
		{
			name: "out flag",
			setup: func() {
				*flagOut = "/tmp/mirrored"
			},
			verify: func(cfg *Config) {
				if cfg.Output.Directory != "/tmp/mirrored" {
					t.Errorf("expected output directory '/tmp/mirrored', got %q", cfg.Output.Directory)
				}
			},
			teardown: func() {
				*flagOut = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "blendmirror.yaml")

	yamlContent := `
mirror:
  axis: "y"
output:
  directory: "/from/file"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagAxis = "z"
	defer func() {
		*flagConfig = ""
		*flagAxis = ""
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Axis from flag beats the file; directory comes from the file.
	if cfg.Mirror.Axis != "z" {
		t.Errorf("expected axis 'z' from flag, got %q", cfg.Mirror.Axis)
	}
	if cfg.Output.Directory != "/from/file" {
		t.Errorf("expected output directory from file, got %q", cfg.Output.Directory)
	}
}

func TestSaveTo(t *testing.T) {
	cfg := Default()
	cfg.Mirror.Axis = "y"

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reloading saved config: %v", err)
	}
	if loaded.Mirror.Axis != "y" {
		t.Errorf("round-tripped axis = %q, want 'y'", loaded.Mirror.Axis)
	}
}
