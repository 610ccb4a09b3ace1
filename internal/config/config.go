package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config is the server configuration.
// Values come from defaults, then the YAML file named by BOGGLE_CONFIG,
// then individual environment variables.
type Config struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	LogLevel  string `yaml:"log_level"`
	StaticDir string `yaml:"static_dir"` // Serve assets from disk instead of the embedded copies

	Storage StorageConfig `yaml:"storage"`
	Game    GameConfig    `yaml:"game"`
}

// StorageConfig selects and configures the session store
type StorageConfig struct {
	Type       string        `yaml:"type"`
	RedisURL   string        `yaml:"redis_url"`
	SQLitePath string        `yaml:"sqlite_path"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

// GameConfig holds gameplay settings
type GameConfig struct {
	BoardSize      int    `yaml:"board_size"`
	Seconds        int    `yaml:"seconds"`         // Browser game length
	DictionaryPath string `yaml:"dictionary_path"` // Empty means the embedded common-word list
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		Host:     "",
		Port:     8080,
		LogLevel: "info",
		Storage: StorageConfig{
			Type:       StorageMemory,
			SQLitePath: "data/boggle.db",
			SessionTTL: 7 * 24 * time.Hour,
		},
		Game: GameConfig{
			BoardSize: 5,
			Seconds:   60,
		},
	}
}

// Load reads configuration from the process environment
func Load() (*Config, error) {
	return LoadWith(os.Getenv)
}

// LoadWith reads configuration using getenv for lookups (useful for testing)
func LoadWith(getenv func(string) string) (*Config, error) {
	cfg := Default()

	if path := getenv("BOGGLE_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.mergeEnv(getenv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv(getenv func(string) string) error {
	setString(getenv, "HOST", &c.Host)
	setString(getenv, "LOG_LEVEL", &c.LogLevel)
	setString(getenv, "STORAGE_TYPE", &c.Storage.Type)
	setString(getenv, "REDIS_URL", &c.Storage.RedisURL)
	setString(getenv, "SQLITE_PATH", &c.Storage.SQLitePath)
	setString(getenv, "DICTIONARY_PATH", &c.Game.DictionaryPath)
	setString(getenv, "STATIC_DIR", &c.StaticDir)

	if err := setInt(getenv, "PORT", &c.Port); err != nil {
		return err
	}
	if err := setInt(getenv, "BOARD_SIZE", &c.Game.BoardSize); err != nil {
		return err
	}
	if err := setInt(getenv, "GAME_SECONDS", &c.Game.Seconds); err != nil {
		return err
	}
	if v := getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SESSION_TTL: %w", err)
		}
		c.Storage.SessionTTL = d
	}
	return nil
}

// Validate checks the configuration is usable
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.Game.BoardSize < 1 {
		return fmt.Errorf("board size must be positive, got %d", c.Game.BoardSize)
	}
	if c.Game.Seconds < 1 {
		return fmt.Errorf("game length must be positive, got %d seconds", c.Game.Seconds)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	switch c.Storage.Type {
	case StorageMemory:
	case StorageRedis:
		if c.Storage.RedisURL == "" {
			return errors.New("REDIS_URL required when storage type is redis")
		}
	case StorageSQLite:
		if c.Storage.SQLitePath == "" {
			return errors.New("SQLITE_PATH required when storage type is sqlite")
		}
	default:
		return fmt.Errorf("invalid storage type %q: must be memory, redis or sqlite", c.Storage.Type)
	}
	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Level returns the configured slog level
func (c *Config) Level() slog.Level {
	level, _ := ParseLevel(c.LogLevel)
	return level
}

// ParseLevel maps debug, info, warn and error to slog levels
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

func setString(getenv func(string) string, key string, dst *string) {
	if v := getenv(key); v != "" {
		*dst = v
	}
}

func setInt(getenv func(string) string, key string, dst *int) error {
	v := getenv(key)
	if v == "" {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = i
	return nil
}
