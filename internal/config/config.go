// ABOUTME: Fitness configuration management with environment overrides.
// ABOUTME: Handles settings file, .env loading, validation, and storage factory function.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/harperreed/fitness/internal/storage"
	"github.com/joho/godotenv"
)

// Defaults applied when a field is unset.
const (
	DefaultListenAddr = "127.0.0.1:5000"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "console"
	DBFileName        = "fitness_tracker.db"
)

// Config stores fitness tool configuration.
type Config struct {
	// DataDir is the directory holding fitness_tracker.db.
	// Supports ~ expansion. Defaults to ~/.local/share/fitness.
	DataDir string `json:"data_dir,omitempty"`

	// ListenAddr is the HTTP API bind address.
	ListenAddr string `json:"listen_addr,omitempty"`

	LogLevel  string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `json:"log_format,omitempty" validate:"omitempty,oneof=console json"`

	// MetricsEnabled toggles the /metrics endpoint. Nil means enabled.
	MetricsEnabled *bool `json:"metrics_enabled,omitempty"`

	// AllowedOrigins lists CORS origins for /api routes. Empty means any.
	AllowedOrigins []string `json:"allowed_origins,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetListenAddr returns the API bind address.
func (c *Config) GetListenAddr() string {
	if c.ListenAddr == "" {
		return DefaultListenAddr
	}
	return c.ListenAddr
}

// GetLogLevel returns the configured log level.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return c.LogLevel
}

// GetLogFormat returns the configured log format.
func (c *Config) GetLogFormat() string {
	if c.LogFormat == "" {
		return DefaultLogFormat
	}
	return c.LogFormat
}

// GetMetricsEnabled reports whether the metrics endpoint is served.
func (c *Config) GetMetricsEnabled() bool {
	return c.MetricsEnabled == nil || *c.MetricsEnabled
}

// GetAllowedOrigins returns the CORS origins.
func (c *Config) GetAllowedOrigins() []string {
	if len(c.AllowedOrigins) == 0 {
		return []string{"*"}
	}
	return c.AllowedOrigins
}

// DBPath returns the SQLite database path inside the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.GetDataDir(), DBFileName)
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s=%q", strings.ToLower(fe.Field()), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return err
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the SQLite store at DBPath.
func (c *Config) OpenStorage(opts ...storage.Option) (*storage.DB, error) {
	return storage.Open(c.DBPath(), opts...)
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fitness", "config.json")
}

// Load reads config from disk, then applies .env and FITNESS_* overrides.
func Load() (*Config, error) {
	cfg, err := loadFile(GetConfigPath())
	if err != nil {
		return nil, err
	}

	// A missing .env is normal.
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FITNESS_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("FITNESS_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("FITNESS_LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("FITNESS_LOG_FORMAT"); v != "" {
		c.LogFormat = strings.ToLower(v)
	}
	if v := os.Getenv("FITNESS_METRICS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.MetricsEnabled = &b
		}
	}
	if v := os.Getenv("FITNESS_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.AllowedOrigins = origins
	}
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
