package foodblog

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	if err = toml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: slog.LevelWarn,
		},
		DB: DBConfig{
			Driver:   "sqlite",
			PoolSize: 1,
		},
		Search: SearchConfig{
			OmittedFilter: "intersect",
		},
		Cache: CacheConfig{
			Size: 256,
		},
	}
}

type Config struct {
	Log    LogConfig    `toml:"log"`
	DB     DBConfig     `toml:"db"`
	Search SearchConfig `toml:"search"`
	Cache  CacheConfig  `toml:"cache"`
}

type LogConfig struct {
	Level   slog.Level `toml:"level"`
	NoColor bool       `toml:"no_color"`
}

type DBConfig struct {
	Driver   string `toml:"driver"`
	DSN      string `toml:"dsn"`
	PoolSize int    `toml:"pool_size"`
}

type SearchConfig struct {
	// OmittedFilter is "intersect" or "passthrough".
	OmittedFilter string `toml:"omitted_filter"`
}

type CacheConfig struct {
	Size int `toml:"size"`
}
