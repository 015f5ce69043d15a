package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantSymbols := []string{"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA", "NVDA"}
	if !reflect.DeepEqual(cfg.Symbols, wantSymbols) {
		t.Errorf("default symbols = %v, want %v", cfg.Symbols, wantSymbols)
	}
	if cfg.Ledger.StartingCash != 10000 {
		t.Errorf("starting cash = %.2f, want 10000", cfg.Ledger.StartingCash)
	}
	if cfg.Ledger.StateFile != "data/ledger.json" {
		t.Errorf("state file = %q", cfg.Ledger.StateFile)
	}
	if cfg.Autotrader.IntervalSeconds != 30 || cfg.Autotrader.BackoffSeconds != 60 {
		t.Errorf("loop timing = %d/%d, want 30/60",
			cfg.Autotrader.IntervalSeconds, cfg.Autotrader.BackoffSeconds)
	}
	if cfg.Autotrader.Quantity != 1 || cfg.Autotrader.BarLookback != 120 || cfg.Autotrader.BarInterval != "1m" {
		t.Errorf("autotrader defaults = %+v", cfg.Autotrader)
	}
	if cfg.Strategy.VWAPThresholdPct != 2.0 || cfg.Strategy.VWAPEMAFilter {
		t.Errorf("strategy defaults = %+v", cfg.Strategy)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
symbols: [aapl]
ledger:
  starting_cash: 25000
autotrader:
  enabled: true
  interval_seconds: 10
  quantity: 2
strategy:
  vwap_threshold_pct: 1.0
  vwap_ema_filter: true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg.Symbols, []string{"aapl"}) {
		t.Errorf("symbols = %v", cfg.Symbols)
	}
	if cfg.Ledger.StartingCash != 25000 {
		t.Errorf("starting cash = %.2f, want 25000", cfg.Ledger.StartingCash)
	}
	if !cfg.Autotrader.Enabled || cfg.Autotrader.IntervalSeconds != 10 || cfg.Autotrader.Quantity != 2 {
		t.Errorf("autotrader = %+v", cfg.Autotrader)
	}
	if cfg.Strategy.VWAPThresholdPct != 1.0 || !cfg.Strategy.VWAPEMAFilter {
		t.Errorf("strategy = %+v", cfg.Strategy)
	}
	// Untouched fields still default.
	if cfg.Autotrader.BackoffSeconds != 60 {
		t.Errorf("backoff = %d, want default 60", cfg.Autotrader.BackoffSeconds)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SYMBOLS", " tsla , nvda ")
	t.Setenv("STARTING_CASH", "5000")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token-from-env")
	t.Setenv("AUTOTRADER_ENABLED", "1")
	t.Setenv("AUTOTRADER_INTERVAL", "15")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg.Symbols, []string{"TSLA", "NVDA"}) {
		t.Errorf("symbols = %v, want [TSLA NVDA]", cfg.Symbols)
	}
	if cfg.Ledger.StartingCash != 5000 {
		t.Errorf("starting cash = %.2f, want 5000", cfg.Ledger.StartingCash)
	}
	if cfg.Telegram.BotToken != "token-from-env" {
		t.Errorf("bot token = %q", cfg.Telegram.BotToken)
	}
	if !cfg.Autotrader.Enabled || cfg.Autotrader.IntervalSeconds != 15 {
		t.Errorf("autotrader = %+v", cfg.Autotrader)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("symbols: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no symbols", func(c *Config) { c.Symbols = nil }},
		{"negative cash", func(c *Config) { c.Ledger.StartingCash = -1 }},
		{"zero interval", func(c *Config) { c.Autotrader.IntervalSeconds = -5 }},
		{"zero quantity", func(c *Config) { c.Autotrader.Quantity = -2 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSplitSymbols(t *testing.T) {
	got := splitSymbols("aapl,, Msft ,GOOGL,")
	want := []string{"AAPL", "MSFT", "GOOGL"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitSymbols = %v, want %v", got, want)
	}
}
