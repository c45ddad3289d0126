package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// ErrInvalidConfig reports a value Load cannot use
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig `yaml:"storage"`
	Chat        ChatConfig    `yaml:"chat"`
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme"`
	LogLevel    string        `yaml:"log_level"`
}

// StorageConfig selects the key-value backend
type StorageConfig struct {
	Backend     string `yaml:"backend"`
	Path        string `yaml:"path"` // sqlite file or directory of JSON files
	RedisAddr   string `yaml:"redis_addr"`
	RedisDB     int    `yaml:"redis_db"`
	RedisPrefix string `yaml:"redis_prefix"`
}

// ChatConfig tunes conversation grouping
type ChatConfig struct {
	ContinuationWindow time.Duration `yaml:"continuation_window"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from SAGE_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("SAGE_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		slog.Warn("failed to read theme file", "path", themeFile, "error", err)
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// loadDotEnv reads .env from the working directory into the environment.
// Variables already set take precedence.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}
}

// Load loads config from the user's config directory, then applies
// SAGE_* environment overrides. Returns default config if the file doesn't
// exist.
func Load() (*Config, error) {
	loadDotEnv()

	config, err := loadFile()
	if err != nil {
		return nil, err
	}

	loadThemeFile(config)
	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	if err := config.Normalize(); err != nil {
		return nil, err
	}
	return config, nil
}

// Normalize fills in missing values with defaults and validates the result.
// Call it again after overriding fields.
func (c *Config) Normalize() error {
	c.applyDefaults()
	return c.validate()
}

func loadFile() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		// Return default config if we can't determine config path
		return &Config{}, nil
	}

	data, err := os.ReadFile(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	return &config, nil
}

// applyEnv overrides file values with SAGE_* variables
func (c *Config) applyEnv() error {
	if v := os.Getenv("SAGE_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("SAGE_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("SAGE_REDIS_ADDR"); v != "" {
		c.Storage.RedisAddr = v
	}
	if v := os.Getenv("SAGE_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: SAGE_REDIS_DB=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Storage.RedisDB = db
	}
	if v := os.Getenv("SAGE_REDIS_PREFIX"); v != "" {
		c.Storage.RedisPrefix = v
	}
	if v := os.Getenv("SAGE_CHAT_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: SAGE_CHAT_WINDOW=%q: %v", ErrInvalidConfig, v, err)
		}
		c.Chat.ContinuationWindow = d
	}
	if v := os.Getenv("SAGE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, c.Storage.Backend)
	}
	if c.Chat.ContinuationWindow < 0 {
		return fmt.Errorf("%w: negative continuation window", ErrInvalidConfig)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Level returns the configured log level, debug when unset
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelDebug
	}
	return level
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns where Load reads and Save writes the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "sage", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "sage", "config.yaml"), nil
}

// DataDir returns ~/.sage, where data and logs live by default
func DataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".sage"
	}
	return filepath.Join(homeDir, ".sage")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Storage.applyDefaults()
	if c.Chat.ContinuationWindow == 0 {
		c.Chat.ContinuationWindow = 5 * time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "debug"
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

func (s *StorageConfig) applyDefaults() {
	if s.Backend == "" {
		s.Backend = BackendSQLite
	}
	s.Backend = strings.ToLower(s.Backend)
	if s.Path == "" {
		switch s.Backend {
		case BackendSQLite:
			s.Path = filepath.Join(DataDir(), "sage.db")
		case BackendFile:
			s.Path = filepath.Join(DataDir(), "data")
		}
	}
	if s.RedisAddr == "" {
		s.RedisAddr = "localhost:6379"
	}
	if s.RedisPrefix == "" {
		s.RedisPrefix = "sage:"
	}
}
