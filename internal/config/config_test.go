package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGlobalPath(t *testing.T) {
	tests := []struct {
		name        string
		xdgConfig   string
		wantContain string
	}{
		{
			name:        "with XDG_CONFIG_HOME set",
			xdgConfig:   "/custom/config",
			wantContain: "/custom/config/pubflow/pubflow.yml",
		},
		{
			name:        "without XDG_CONFIG_HOME",
			xdgConfig:   "",
			wantContain: ".config/pubflow/pubflow.yml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Save original
			origXDG := os.Getenv("XDG_CONFIG_HOME")
			defer func() {
				if origXDG != "" {
					_ = os.Setenv("XDG_CONFIG_HOME", origXDG)
				} else {
					_ = os.Unsetenv("XDG_CONFIG_HOME")
				}
			}()

			// Set test value
			if tt.xdgConfig != "" {
				_ = os.Setenv("XDG_CONFIG_HOME", tt.xdgConfig)
			} else {
				_ = os.Unsetenv("XDG_CONFIG_HOME")
			}

			got := GlobalPath()
			if tt.xdgConfig != "" {
				// When XDG is set, path should be exactly as expected
				if got != tt.wantContain {
					t.Errorf("GlobalPath() = %v, want %v", got, tt.wantContain)
				}
			} else {
				// When XDG not set, should contain .config/pubflow/pubflow.yml
				if !filepath.IsAbs(got) {
					t.Errorf("GlobalPath() should return absolute path, got %v", got)
				}
				if filepath.Base(got) != "pubflow.yml" {
					t.Errorf("GlobalPath() should end with pubflow.yml, got %v", got)
				}
			}
		})
	}
}

func TestProjectPath(t *testing.T) {
	got := ProjectPath()
	want := "pubflow.yml"
	if got != want {
		t.Errorf("ProjectPath() = %v, want %v", got, want)
	}
}

func TestExists(t *testing.T) {
	// Create temp directory for test
	tmpDir := t.TempDir()

	// Save and restore original working directory
	origWd, _ := os.Getwd()
	defer func() { _ = os.Chdir(origWd) }()

	// Change to temp directory
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp dir: %v", err)
	}

	// Save original XDG
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		if origXDG != "" {
			_ = os.Setenv("XDG_CONFIG_HOME", origXDG)
		} else {
			_ = os.Unsetenv("XDG_CONFIG_HOME")
		}
	}()

	// Set XDG to temp directory
	xdgDir := filepath.Join(tmpDir, "config")
	_ = os.Setenv("XDG_CONFIG_HOME", xdgDir)

	t.Run("no config exists", func(t *testing.T) {
		if Exists() {
			t.Error("Exists() = true, want false when no config files exist")
		}
	})

	t.Run("global config exists", func(t *testing.T) {
		// Create global config
		globalPath := GlobalPath()
		if err := os.MkdirAll(filepath.Dir(globalPath), 0755); err != nil {
			t.Fatalf("Failed to create global config dir: %v", err)
		}
		if err := os.WriteFile(globalPath, []byte("lang: en\n"), 0644); err != nil {
			t.Fatalf("Failed to write global config: %v", err)
		}
		defer func() { _ = os.Remove(globalPath) }()

		if !Exists() {
			t.Error("Exists() = false, want true when global config exists")
		}
	})

	t.Run("project config exists", func(t *testing.T) {
		// Remove global config from previous test
		_ = os.Remove(GlobalPath())

		// Create project config
		projectPath := ProjectPath()
		if err := os.WriteFile(projectPath, []byte("lang: en\n"), 0644); err != nil {
			t.Fatalf("Failed to write project config: %v", err)
		}
		defer func() { _ = os.Remove(projectPath) }()

		if !Exists() {
			t.Error("Exists() = false, want true when project config exists")
		}
	})

	t.Run("both configs exist", func(t *testing.T) {
		// Create both configs
		globalPath := GlobalPath()
		if err := os.MkdirAll(filepath.Dir(globalPath), 0755); err != nil {
			t.Fatalf("Failed to create global config dir: %v", err)
		}
		if err := os.WriteFile(globalPath, []byte("lang: en\n"), 0644); err != nil {
			t.Fatalf("Failed to write global config: %v", err)
		}
		defer func() { _ = os.Remove(globalPath) }()

		projectPath := ProjectPath()
		if err := os.WriteFile(projectPath, []byte("lang: ja\n"), 0644); err != nil {
			t.Fatalf("Failed to write project config: %v", err)
		}
		defer func() { _ = os.Remove(projectPath) }()

		if !Exists() {
			t.Error("Exists() = false, want true when both configs exist")
		}
	})
}

func TestWriteGlobal(t *testing.T) {
	// Create temp directory
	tmpDir := t.TempDir()

	// Save original XDG
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		if origXDG != "" {
			_ = os.Setenv("XDG_CONFIG_HOME", origXDG)
		} else {
			_ = os.Unsetenv("XDG_CONFIG_HOME")
		}
	}()

	// Set XDG to temp directory
	xdgDir := filepath.Join(tmpDir, "config")
	_ = os.Setenv("XDG_CONFIG_HOME", xdgDir)

	cfg := &Config{
		Lang:     "en",
		DataDir:  ".test",
		LogLevel: "debug",
		LogFile:  "/tmp/test.log",
	}

	err := WriteGlobal(cfg)
	if err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}

	// Verify file exists
	globalPath := GlobalPath()
	if _, err := os.Stat(globalPath); err != nil {
		t.Errorf("Config file not created at %s: %v", globalPath, err)
	}

	// Verify file content
	data, err := os.ReadFile(globalPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	content := string(data)
	expectedFields := []string{
		"lang: en",
		"data_dir: .test",
		"log_level: debug",
		"log_file: /tmp/test.log",
	}

	for _, field := range expectedFields {
		if !contains(content, field) {
			t.Errorf("Config file missing expected field: %s\nContent:\n%s", field, content)
		}
	}
}

func TestWriteProject(t *testing.T) {
	// Create temp directory and change to it
	tmpDir := t.TempDir()
	origWd, _ := os.Getwd()
	defer func() { _ = os.Chdir(origWd) }()

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp dir: %v", err)
	}

	cfg := &Config{
		Lang:     "ja",
		DataDir:  ".project",
		LogLevel: "info",
		LogFile:  "",
	}

	err := WriteProject(cfg)
	if err != nil {
		t.Fatalf("WriteProject() error = %v", err)
	}

	// Verify file exists
	projectPath := ProjectPath()
	if _, err := os.Stat(projectPath); err != nil {
		t.Errorf("Config file not created at %s: %v", projectPath, err)
	}

	// Verify file content
	data, err := os.ReadFile(projectPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	content := string(data)
	expectedFields := []string{
		"lang: ja",
		"data_dir: .project",
		"log_level: info",
	}

	for _, field := range expectedFields {
		if !contains(content, field) {
			t.Errorf("Config file missing expected field: %s\nContent:\n%s", field, content)
		}
	}
}

func TestLoad_NoConfig(t *testing.T) {
	// Create temp directory
	tmpDir := t.TempDir()
	origWd, _ := os.Getwd()
	defer func() { _ = os.Chdir(origWd) }()

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp dir: %v", err)
	}

	// Save original XDG
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		if origXDG != "" {
			_ = os.Setenv("XDG_CONFIG_HOME", origXDG)
		} else {
			_ = os.Unsetenv("XDG_CONFIG_HOME")
		}
	}()

	// Set XDG to temp directory
	xdgDir := filepath.Join(tmpDir, "config")
	_ = os.Setenv("XDG_CONFIG_HOME", xdgDir)

	// Clear env vars
	origLang := os.Getenv("PUBFLOW_LANG")
	defer func() {
		if origLang != "" {
			_ = os.Setenv("PUBFLOW_LANG", origLang)
		}
	}()
	_ = os.Unsetenv("PUBFLOW_LANG")

	// Load should succeed even without config files (defaults)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Verify defaults
	if cfg.Lang != "ja" {
		t.Errorf("Load() default Lang = %v, want ja", cfg.Lang)
	}
	if cfg.DataDir != ".pubflow" {
		t.Errorf("Load() default DataDir = %v, want .pubflow", cfg.DataDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Load() default LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestLoad_WithGlobalConfig(t *testing.T) {
	// Create temp directory
	tmpDir := t.TempDir()
	origWd, _ := os.Getwd()
	defer func() { _ = os.Chdir(origWd) }()

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp dir: %v", err)
	}

	// Save original XDG
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer func() {
		if origXDG != "" {
			_ = os.Setenv("XDG_CONFIG_HOME", origXDG)
		} else {
			_ = os.Unsetenv("XDG_CONFIG_HOME")
		}
	}()

	// Set XDG to temp directory
	xdgDir := filepath.Join(tmpDir, "config")
	_ = os.Setenv("XDG_CONFIG_HOME", xdgDir)

	// Clear env vars
	origLang := os.Getenv("PUBFLOW_LANG")
	defer func() {
		if origLang != "" {
			_ = os.Setenv("PUBFLOW_LANG", origLang)
		}
	}()
	_ = os.Unsetenv("PUBFLOW_LANG")

	// Write global config
	globalCfg := &Config{
		Lang:     "en",
		DataDir:  ".global",
		LogLevel: "warn",
		LogFile:  "",
	}
	if err := WriteGlobal(globalCfg); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}

	// Load and verify
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Lang != globalCfg.Lang {
		t.Errorf("Load() Lang = %v, want %v", cfg.Lang, globalCfg.Lang)
	}
	if cfg.DataDir != globalCfg.DataDir {
		t.Errorf("Load() DataDir = %v, want %v", cfg.DataDir, globalCfg.DataDir)
	}
	if cfg.LogLevel != globalCfg.LogLevel {
		t.Errorf("Load() LogLevel = %v, want %v", cfg.LogLevel, globalCfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid japanese config",
			config: &Config{
				Lang:    "ja",
				DataDir: ".pubflow",
			},
			wantErr: false,
		},
		{
			name: "valid english config",
			config: &Config{
				Lang:    "en",
				DataDir: ".pubflow",
			},
			wantErr: false,
		},
		{
			name: "invalid config with unsupported language",
			config: &Config{
				Lang:    "fr",
				DataDir: ".pubflow",
			},
			wantErr: true,
		},
		{
			name: "invalid config with empty language",
			config: &Config{
				Lang:    "",
				DataDir: ".pubflow",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// Helper function to check if string contains substring
func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(s) > len(substr) && containsAt(s, substr))
}

func containsAt(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
