package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"` // "console" or "json"
	} `yaml:"log"`
	Fetch struct {
		HistoryDays int     `yaml:"history_days"`
		Workers     int     `yaml:"workers"`
		RatePerSec  float64 `yaml:"rate_per_sec"`
	} `yaml:"fetch"`
	Screener struct {
		MinValueScore int `yaml:"min_value_score"`
		MinTrendScore int `yaml:"min_trend_score"`
	} `yaml:"screener"`
	Watch struct {
		Cron       string   `yaml:"cron"`
		Categories []string `yaml:"categories"` // empty means all
		TopN       int      `yaml:"top_n"`
	} `yaml:"watch"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is fine; defaults cover everything but Telegram.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FETCH_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Fetch.Workers = n
		}
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}

	// Defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Fetch.HistoryDays == 0 {
		cfg.Fetch.HistoryDays = 504 // two years of trading days
	}
	if cfg.Fetch.Workers == 0 {
		cfg.Fetch.Workers = 4
	}
	if cfg.Fetch.RatePerSec == 0 {
		cfg.Fetch.RatePerSec = 4
	}
	if cfg.Screener.MinValueScore == 0 {
		cfg.Screener.MinValueScore = 5
	}
	if cfg.Screener.MinTrendScore == 0 {
		cfg.Screener.MinTrendScore = 2
	}
	if cfg.Watch.Cron == "" {
		cfg.Watch.Cron = "0 0 8 * * 1" // Monday 08:00
	}
	if cfg.Watch.TopN == 0 {
		cfg.Watch.TopN = 10
	}

	return cfg, nil
}

// Validate checks fields every mode needs.
func (c *Config) Validate() error {
	if c.Fetch.HistoryDays < 0 {
		return fmt.Errorf("fetch.history_days must not be negative")
	}
	if c.Fetch.Workers < 1 {
		return fmt.Errorf("fetch.workers must be at least 1")
	}
	return nil
}

// ValidateWatch checks the extra fields watch mode needs.
func (c *Config) ValidateWatch() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required for watch mode")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required for watch mode")
	}
	return nil
}
