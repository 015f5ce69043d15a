package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Arushi221/got-trading-bot/internal/autotrader"
	"github.com/Arushi221/got-trading-bot/internal/collector"
	"github.com/Arushi221/got-trading-bot/internal/config"
	"github.com/Arushi221/got-trading-bot/internal/ledger"
	"github.com/Arushi221/got-trading-bot/internal/market"
	"github.com/Arushi221/got-trading-bot/internal/notifier"
	"github.com/Arushi221/got-trading-bot/internal/recorder"
	"github.com/Arushi221/got-trading-bot/internal/scheduler"
	"github.com/Arushi221/got-trading-bot/internal/strategy"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] trading bot starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init data boundary
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())
	col := collector.NewCollector(fetcher)

	// Init ledger
	book, err := ledger.NewManager(cfg.Ledger.StateFile, cfg.Ledger.StartingCash, cfg.Symbols)
	if err != nil {
		log.Fatalf("[FATAL] init ledger: %v", err)
	}

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	if !tn.Enabled() {
		log.Println("[INFO] telegram not configured, notifications disabled")
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Strategy set and autotrader
	registry := strategy.NewRegistry(cfg.Strategy.VWAPThresholdPct, cfg.Strategy.VWAPEMAFilter)
	clock := market.NewClock()
	trader := autotrader.New(autotrader.Config{
		Symbols:     cfg.Symbols,
		Interval:    time.Duration(cfg.Autotrader.IntervalSeconds) * time.Second,
		Backoff:     time.Duration(cfg.Autotrader.BackoffSeconds) * time.Second,
		Quantity:    cfg.Autotrader.Quantity,
		BarLookback: cfg.Autotrader.BarLookback,
		BarInterval: cfg.Autotrader.BarInterval,
	}, col, registry, book, clock, rec, tn)

	if cfg.Autotrader.Enabled {
		trader.Start()
	} else {
		log.Println("[INFO] autotrader disabled by config")
	}
	defer trader.Stop()

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, trader, book, col, tn, rec)
	if err := sched.RegisterAll(cfg.Schedule.DailyReportCron, cfg.Schedule.PremarketCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	log.Println("[INFO] trading bot is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] trading bot stopped")
}
