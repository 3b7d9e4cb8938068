// Package config loads the dashboard configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr         string   `yaml:"addr"`
		AllowOrigins []string `yaml:"allow_origins"`
	} `yaml:"server"`
	Database struct {
		SQLitePath   string `yaml:"sqlite_path"`
		DividendUnit string `yaml:"dividend_unit"` // fraction | percent
	} `yaml:"database"`
	Redis struct {
		Addr        string `yaml:"addr"` // empty disables the cache
		Password    string `yaml:"password"`
		DB          int    `yaml:"db"`
		RefreshHour int    `yaml:"refresh_hour"` // snapshot refresh hour, entries expire then
		Location    string `yaml:"location"`
	} `yaml:"redis"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Redis.RefreshHour = -1

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DASHBOARD_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		cfg.Server.AllowOrigins = splitList(v)
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("DIVIDEND_UNIT"); v != "" {
		cfg.Database.DividendUnit = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_REFRESH_HOUR"); v != "" {
		if h, err := strconv.Atoi(v); err == nil {
			cfg.Redis.RefreshHour = h
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = "localhost:8513"
	}
	if len(cfg.Server.AllowOrigins) == 0 {
		cfg.Server.AllowOrigins = []string{"http://localhost:8513"}
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "stock_data.db"
	}
	if cfg.Database.DividendUnit == "" {
		cfg.Database.DividendUnit = "fraction"
	}
	if cfg.Redis.RefreshHour < 0 {
		cfg.Redis.RefreshHour = 8
	}
	if cfg.Redis.Location == "" {
		cfg.Redis.Location = "Asia/Tokyo"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks value ranges that defaults cannot repair.
func (c *Config) Validate() error {
	if c.Redis.RefreshHour > 23 {
		return fmt.Errorf("redis.refresh_hour must be between 0 and 23, got %d", c.Redis.RefreshHour)
	}
	switch c.Database.DividendUnit {
	case "fraction", "percent":
	default:
		return fmt.Errorf("database.dividend_unit must be fraction or percent, got %q", c.Database.DividendUnit)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps log.level onto a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return l, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
