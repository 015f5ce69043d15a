// Package scheduler runs the cron-driven ancillary tasks around the trading
// loop: the end-of-day portfolio report and the weekday pre-open warm-up.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/Arushi221/got-trading-bot/internal/autotrader"
	"github.com/Arushi221/got-trading-bot/internal/collector"
	"github.com/Arushi221/got-trading-bot/internal/ledger"
	"github.com/Arushi221/got-trading-bot/internal/notifier"
	"github.com/Arushi221/got-trading-bot/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron      *cron.Cron
	Trader    *autotrader.Trader
	Ledger    *ledger.Manager
	Collector *collector.Collector
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, trader *autotrader.Trader, book *ledger.Manager, col *collector.Collector, tn *notifier.TelegramNotifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Trader:    trader,
		Ledger:    book,
		Collector: col,
		Notifier:  tn,
		Recorder:  rec,
		Ctx:       ctx,
	}
}

// RegisterAll registers the daily report and pre-open warm-up tasks.
func (s *Scheduler) RegisterAll(dailyReportCron, premarketCron string) error {
	if _, err := s.Cron.AddFunc(dailyReportCron, s.dailyReport); err != nil {
		return fmt.Errorf("register daily report: %w", err)
	}
	if _, err := s.Cron.AddFunc(premarketCron, s.premarketWarmup); err != nil {
		return fmt.Errorf("register premarket warm-up: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) dailyReport() {
	log.Println("[INFO] running daily report")
	prices := s.Collector.LatestPrices()
	total, holdingsValue := s.Ledger.Valuation(prices)
	state := s.Ledger.State()

	if err := s.Recorder.RecordValuation(&recorder.ValuationRecord{
		Cash:          state.Cash,
		HoldingsValue: holdingsValue,
		Total:         total,
	}); err != nil {
		log.Printf("[ERROR] record valuation: %v", err)
	}

	if s.Notifier != nil && s.Notifier.Enabled() {
		report := notifier.FormatDailyReport(&state, prices, total, holdingsValue)
		if err := s.Notifier.SendWithRetry(s.Ctx, report, 3); err != nil {
			log.Printf("[ERROR] send daily report: %v", err)
		}
	}
}

func (s *Scheduler) premarketWarmup() {
	log.Println("[INFO] running premarket warm-up")
	s.Trader.WarmPremarket()
}
