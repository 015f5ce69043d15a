package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Symbols []string `yaml:"symbols"`
	Ledger  struct {
		StateFile    string  `yaml:"state_file"`
		StartingCash float64 `yaml:"starting_cash"`
	} `yaml:"ledger"`
	Autotrader struct {
		Enabled         bool    `yaml:"enabled"`
		IntervalSeconds int     `yaml:"interval_seconds"`
		BackoffSeconds  int     `yaml:"backoff_seconds"`
		Quantity        float64 `yaml:"quantity"`
		BarLookback     int     `yaml:"bar_lookback"`
		BarInterval     string  `yaml:"bar_interval"`
	} `yaml:"autotrader"`
	Strategy struct {
		VWAPThresholdPct float64 `yaml:"vwap_threshold_pct"`
		VWAPEMAFilter    bool    `yaml:"vwap_ema_filter"`
	} `yaml:"strategy"`
	Schedule struct {
		DailyReportCron string `yaml:"daily_report_cron"`
		PremarketCron   string `yaml:"premarket_cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
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
	if v := os.Getenv("SYMBOLS"); v != "" {
		cfg.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("STARTING_CASH"); v != "" {
		if cash, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Ledger.StartingCash = cash
		}
	}
	if v := os.Getenv("LEDGER_STATE_FILE"); v != "" {
		cfg.Ledger.StateFile = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("AUTOTRADER_ENABLED"); v != "" {
		cfg.Autotrader.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("AUTOTRADER_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Autotrader.IntervalSeconds = n
		}
	}

	// Defaults
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "NVDA"}
	}
	if cfg.Ledger.StartingCash == 0 {
		cfg.Ledger.StartingCash = 10000
	}
	if cfg.Ledger.StateFile == "" {
		cfg.Ledger.StateFile = "data/ledger.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/trading_bot.db"
	}
	if cfg.Autotrader.IntervalSeconds == 0 {
		cfg.Autotrader.IntervalSeconds = 30
	}
	if cfg.Autotrader.BackoffSeconds == 0 {
		cfg.Autotrader.BackoffSeconds = 60
	}
	if cfg.Autotrader.Quantity == 0 {
		cfg.Autotrader.Quantity = 1
	}
	if cfg.Autotrader.BarLookback == 0 {
		cfg.Autotrader.BarLookback = 120
	}
	if cfg.Autotrader.BarInterval == "" {
		cfg.Autotrader.BarInterval = "1m"
	}
	if cfg.Strategy.VWAPThresholdPct == 0 {
		cfg.Strategy.VWAPThresholdPct = 2.0
	}
	if cfg.Schedule.DailyReportCron == "" {
		cfg.Schedule.DailyReportCron = "0 5 16 * * 1-5"
	}
	if cfg.Schedule.PremarketCron == "" {
		cfg.Schedule.PremarketCron = "0 25 9 * * 1-5"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and coherent.
func (c *Config) Validate() error {
	if len(c.Symbols) == 0 {
		return fmt.Errorf("symbols must not be empty")
	}
	if c.Ledger.StartingCash <= 0 {
		return fmt.Errorf("ledger.starting_cash must be positive")
	}
	if c.Autotrader.IntervalSeconds <= 0 {
		return fmt.Errorf("autotrader.interval_seconds must be positive")
	}
	if c.Autotrader.Quantity <= 0 {
		return fmt.Errorf("autotrader.quantity must be positive")
	}
	return nil
}

func splitSymbols(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToUpper(p))
		}
	}
	return out
}
