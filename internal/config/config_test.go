// ABOUTME: Tests for fitness configuration management.
// ABOUTME: Covers load, save, defaults, env overrides, validation, and path expansion.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func useConfigHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	for _, key := range []string{
		"FITNESS_DATA_DIR", "FITNESS_LISTEN_ADDR", "FITNESS_LOG_LEVEL",
		"FITNESS_LOG_FORMAT", "FITNESS_METRICS_ENABLED", "FITNESS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
	return tmpDir
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.GetListenAddr(); got != "127.0.0.1:5000" {
		t.Errorf("GetListenAddr() = %q, want %q", got, "127.0.0.1:5000")
	}
	if got := cfg.GetLogLevel(); got != "info" {
		t.Errorf("GetLogLevel() = %q, want info", got)
	}
	if got := cfg.GetLogFormat(); got != "console" {
		t.Errorf("GetLogFormat() = %q, want console", got)
	}
	if !cfg.GetMetricsEnabled() {
		t.Error("metrics should default to enabled")
	}
	if got := cfg.GetAllowedOrigins(); !reflect.DeepEqual(got, []string{"*"}) {
		t.Errorf("GetAllowedOrigins() = %v, want [*]", got)
	}
	if cfg.GetDataDir() == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestMetricsDisabled(t *testing.T) {
	off := false
	cfg := &Config{MetricsEnabled: &off}
	if cfg.GetMetricsEnabled() {
		t.Error("expected metrics disabled")
	}
}

func TestDBPath(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/fitness-test"}
	want := filepath.Join("/tmp/fitness-test", "fitness_tracker.db")
	if got := cfg.DBPath(); got != want {
		t.Errorf("DBPath() = %q, want %q", got, want)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/tmp/foo", "/tmp/foo"},
		{"~", home},
		{"~/data/fitness", filepath.Join(home, "data/fitness")},
		{"data/fitness", "data/fitness"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	cfg := &Config{DataDir: "~/fitness-data"}
	want := filepath.Join(home, "fitness-data")
	if got := cfg.GetDataDir(); got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty", Config{}, false},
		{"valid", Config{LogLevel: "debug", LogFormat: "json"}, false},
		{"bad level", Config{LogLevel: "verbose"}, true},
		{"bad format", Config{LogFormat: "xml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	useConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg.DataDir != "" || cfg.ListenAddr != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	useConfigHome(t)

	cfg := &Config{
		DataDir:        "/tmp/fitness-data",
		ListenAddr:     "0.0.0.0:8080",
		LogLevel:       "warn",
		AllowedOrigins: []string{"http://localhost:3000"},
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir := useConfigHome(t)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))

	if err := (&Config{}).Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}

	configDir := filepath.Join(tmpDir, "nonexistent", "fitness")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := useConfigHome(t)

	configDir := filepath.Join(tmpDir, "fitness")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestLoadRejectsInvalidLevel(t *testing.T) {
	useConfigHome(t)
	t.Setenv("FITNESS_LOG_LEVEL", "loud")

	if _, err := Load(); err == nil {
		t.Error("Expected validation error for unknown log level")
	}
}

func TestEnvOverrides(t *testing.T) {
	useConfigHome(t)

	if err := (&Config{ListenAddr: "127.0.0.1:9000", DataDir: "/from/file"}).Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	t.Setenv("FITNESS_DATA_DIR", "/from/env")
	t.Setenv("FITNESS_LOG_FORMAT", "JSON")
	t.Setenv("FITNESS_METRICS_ENABLED", "false")
	t.Setenv("FITNESS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DataDir != "/from/env" {
		t.Errorf("DataDir = %q, want /from/env", cfg.DataDir)
	}
	if cfg.GetListenAddr() != "127.0.0.1:9000" {
		t.Errorf("ListenAddr = %q, want file value", cfg.GetListenAddr())
	}
	if cfg.GetLogFormat() != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.GetLogFormat())
	}
	if cfg.GetMetricsEnabled() {
		t.Error("expected metrics disabled by env")
	}
	want := []string{"http://a.test", "http://b.test"}
	if !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Errorf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, want)
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := useConfigHome(t)

	want := filepath.Join(tmpDir, "fitness", "config.json")
	if got := GetConfigPath(); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestOpenStorage(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &Config{DataDir: tmpDir}

	db, err := cfg.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage() failed: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Join(tmpDir, "fitness_tracker.db")); os.IsNotExist(err) {
		t.Error("Expected fitness_tracker.db to be created")
	}
}

func TestConfigJSONOmitsEmpty(t *testing.T) {
	data, err := json.Marshal(&Config{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Expected empty JSON object, got %s", string(data))
	}
}
