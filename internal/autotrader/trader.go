// Package autotrader runs the recurring trading loop: once per interval it
// checks market hours, fetches fresh bars per tracked instrument, evaluates
// the strategy set, arbitrates and applies resulting trades to the ledger.
// The enabled flag is durable intent; the loop goroutine is disposable and
// restarted by Status() if it dies while enabled.
package autotrader

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Arushi221/got-trading-bot/internal/collector"
	"github.com/Arushi221/got-trading-bot/internal/ledger"
	"github.com/Arushi221/got-trading-bot/internal/model"
	"github.com/Arushi221/got-trading-bot/internal/notifier"
	"github.com/Arushi221/got-trading-bot/internal/recorder"
	"github.com/Arushi221/got-trading-bot/internal/strategy"

	"github.com/google/uuid"
)

// Notifier pushes human-readable event messages. May be satisfied by a
// Telegram notifier adapter; a nil Notifier disables notifications.
type Notifier interface {
	Notify(text string)
}

// Market answers whether the exchange is trading. Satisfied by *market.Clock.
type Market interface {
	IsOpen(now time.Time) bool
	Status(now time.Time) model.MarketStatus
}

// Config tunes the trading loop.
type Config struct {
	Symbols     []string
	Interval    time.Duration // sleep between cycles
	Backoff     time.Duration // shorter sleep after a failed cycle
	Quantity    float64       // fixed per-cycle trade quantity
	BarLookback int
	BarInterval string
}

// Trader owns the autotrading loop and the read-only status surface.
type Trader struct {
	cfg      Config
	col      *collector.Collector
	registry *strategy.Registry
	book     *ledger.Manager
	clock    Market
	rec      recorder.Recorder
	notify   Notifier

	mu      sync.Mutex
	enabled bool
	stop    chan struct{}
	done    chan struct{}

	evalMu sync.RWMutex
	evals  map[string]model.Evaluation
	premkt map[string]*model.PremarketLevels
	pmDay  int // year-day the premarket cache belongs to
}

// StatusReport is the read-only query surface: trader state, market status,
// latest prices, latest per-instrument evaluations and portfolio valuation.
type StatusReport struct {
	Enabled       bool                        `json:"enabled"`
	Running       bool                        `json:"running"`
	Market        model.MarketStatus          `json:"market"`
	Prices        map[string]float64          `json:"prices"`
	Evaluations   map[string]model.Evaluation `json:"evaluations"`
	Cash          float64                     `json:"cash"`
	HoldingsValue float64                     `json:"holdings_value"`
	Total         float64                     `json:"total"`
}

// New creates a Trader. Call Start (or SetEnabled) to begin trading.
func New(cfg Config, col *collector.Collector, reg *strategy.Registry, book *ledger.Manager, clock Market, rec recorder.Recorder, notify Notifier) *Trader {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = 60 * time.Second
	}
	if cfg.Quantity <= 0 {
		cfg.Quantity = 1
	}
	if cfg.BarLookback <= 0 {
		cfg.BarLookback = 120
	}
	if cfg.BarInterval == "" {
		cfg.BarInterval = "1m"
	}
	return &Trader{
		cfg:      cfg,
		col:      col,
		registry: reg,
		book:     book,
		clock:    clock,
		rec:      rec,
		notify:   notify,
		evals:    make(map[string]model.Evaluation),
		premkt:   make(map[string]*model.PremarketLevels),
	}
}

// Start launches the loop goroutine and marks the trader enabled.
func (t *Trader) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = true
	t.startLocked()
}

func (t *Trader) startLocked() {
	if t.aliveLocked() {
		return
	}
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.run(t.stop, t.done)
	log.Println("[INFO] autotrader loop started")
}

// Stop marks the trader disabled and interrupts the inter-cycle sleep. A
// cycle already in progress completes before the loop exits.
func (t *Trader) Stop() {
	t.mu.Lock()
	t.enabled = false
	stop, done := t.stop, t.done
	alive := t.aliveLocked()
	t.mu.Unlock()

	if !alive {
		return
	}
	close(stop)
	<-done
	log.Println("[INFO] autotrader loop stopped")
}

// SetEnabled records the durable intent and starts or stops the loop.
func (t *Trader) SetEnabled(enabled bool) {
	if enabled {
		t.Start()
	} else {
		t.Stop()
	}
}

// Enabled reports the durable intent flag.
func (t *Trader) Enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enabled
}

// Running reports whether the loop goroutine is alive.
func (t *Trader) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.aliveLocked()
}

func (t *Trader) aliveLocked() bool {
	if t.done == nil {
		return false
	}
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

func (t *Trader) run(stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.cfg.Interval)
	defer ticker.Stop()

	for {
		failed := t.safeCycle()
		if failed {
			// Bounded backoff instead of terminating the loop.
			select {
			case <-stop:
				return
			case <-time.After(t.cfg.Backoff):
				continue
			}
		}
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

// safeCycle runs one cycle, converting a panic into a logged failure so the
// loop survives transient errors.
func (t *Trader) safeCycle() (failed bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] autotrader cycle panic: %v", r)
			failed = true
		}
	}()
	t.RunCycleNow()
	return false
}

// RunCycleNow executes a single trading cycle immediately. Exposed for
// manual triggering; the scheduled loop calls it through safeCycle.
func (t *Trader) RunCycleNow() {
	now := time.Now()
	if !t.clock.IsOpen(now) {
		log.Println("[INFO] market closed, skipping trading cycle")
		return
	}

	cycleID := uuid.NewString()
	for _, symbol := range t.cfg.Symbols {
		t.evaluateSymbol(cycleID, symbol, now)
	}
}

func (t *Trader) evaluateSymbol(cycleID, symbol string, now time.Time) {
	bars := t.col.Bars(symbol, t.cfg.BarLookback, t.cfg.BarInterval)
	if len(bars) == 0 {
		log.Printf("[WARN] no bars for %s, skipping this cycle", symbol)
		return
	}
	price := bars[len(bars)-1].Close

	signals := t.registry.EvaluateAll(strategy.Context{
		Bars:      bars,
		Premarket: t.premarketFor(symbol, now),
	})

	overall, winner := t.registry.Arbitrate(signals, strategy.Position{
		Quantity:    t.book.Holding(symbol),
		AvgBuyPrice: t.book.AvgBuyPrice(symbol),
	}, price)

	eval := model.Evaluation{
		Symbol:      symbol,
		Price:       price,
		Overall:     overall,
		WinnerKey:   winner,
		Strategies:  signals,
		EvaluatedAt: now.Unix(),
	}
	t.evalMu.Lock()
	t.evals[symbol] = eval
	t.evalMu.Unlock()

	if err := t.rec.RecordSignals(&recorder.SignalSnapshot{
		CycleID:   cycleID,
		Symbol:    symbol,
		Price:     price,
		Overall:   overall,
		Breakdown: signals,
	}); err != nil {
		log.Printf("[ERROR] record signals %s: %v", symbol, err)
	}

	if overall.Action == model.ActionWait {
		return
	}

	tx, err := t.book.ExecuteTrade(symbol, overall.Action, t.cfg.Quantity, price, true, overall.Rationale)
	if err != nil {
		if errors.Is(err, ledger.ErrInsufficientFunds) || errors.Is(err, ledger.ErrInsufficientHoldings) {
			log.Printf("[INFO] %s %s skipped: %v", overall.Action, symbol, err)
		} else {
			log.Printf("[ERROR] auto trade %s %s: %v", overall.Action, symbol, err)
		}
		return
	}

	log.Printf("[INFO] auto %s %s qty=%.2f price=%.2f (%s)", tx.Action, symbol, tx.Quantity, tx.Price, overall.Rationale)
	if err := t.rec.RecordTrade(&tx); err != nil {
		log.Printf("[ERROR] record trade %s: %v", tx.ID, err)
	}
	if t.notify != nil {
		t.notify.Notify(notifier.FormatTrade(&tx))
	}
}

// premarketFor returns today's cached pre-market levels, fetching them once
// per symbol per day. Nil when unavailable; the breakout strategy then waits.
func (t *Trader) premarketFor(symbol string, now time.Time) *model.PremarketLevels {
	day := now.YearDay()

	t.evalMu.RLock()
	levels, cached := t.premkt[symbol]
	sameDay := t.pmDay == day
	t.evalMu.RUnlock()
	if cached && sameDay {
		return levels
	}

	levels = t.col.Premarket(symbol)
	t.evalMu.Lock()
	if t.pmDay != day {
		t.premkt = make(map[string]*model.PremarketLevels)
		t.pmDay = day
	}
	t.premkt[symbol] = levels
	t.evalMu.Unlock()
	return levels
}

// WarmPremarket pre-fetches today's pre-market levels for every tracked
// symbol so the first open cycle has breakout references.
func (t *Trader) WarmPremarket() {
	now := time.Now()
	for _, symbol := range t.cfg.Symbols {
		if t.premarketFor(symbol, now) == nil {
			log.Printf("[WARN] premarket warm-up: no data for %s", symbol)
		}
	}
}

// ExecuteManualTrade applies a user-initiated trade at the latest market
// price, bypassing the strategy evaluators. Returns the transaction and the
// updated ledger snapshot.
func (t *Trader) ExecuteManualTrade(symbol string, action model.Action, qty float64) (model.Transaction, model.PortfolioState, error) {
	if !t.book.Tracked(symbol) {
		return model.Transaction{}, t.book.State(), fmt.Errorf("%w: %s", ledger.ErrInvalidInstrument, symbol)
	}
	price, ok := t.col.LatestPrice(symbol)
	if !ok || price <= 0 {
		return model.Transaction{}, t.book.State(), fmt.Errorf("price unavailable for %s", symbol)
	}

	tx, err := t.book.ExecuteTrade(symbol, action, qty, price, false, "")
	if err != nil {
		return model.Transaction{}, t.book.State(), err
	}
	log.Printf("[INFO] manual %s %s qty=%.2f price=%.2f", tx.Action, symbol, tx.Quantity, tx.Price)
	if err := t.rec.RecordTrade(&tx); err != nil {
		log.Printf("[ERROR] record trade %s: %v", tx.ID, err)
	}
	return tx, t.book.State(), nil
}

// Status reports the trader, market and portfolio state. It is also the
// supervision point: a dead loop goroutine is restarted here when the
// enabled flag says the trader should be running.
func (t *Trader) Status() StatusReport {
	t.mu.Lock()
	if t.enabled && !t.aliveLocked() {
		log.Println("[WARN] autotrader loop found dead while enabled, restarting")
		t.startLocked()
	}
	enabled, running := t.enabled, t.aliveLocked()
	t.mu.Unlock()

	prices := t.col.LatestPrices()
	total, holdingsValue := t.book.Valuation(prices)
	state := t.book.State()

	t.evalMu.RLock()
	evals := make(map[string]model.Evaluation, len(t.evals))
	for k, v := range t.evals {
		evals[k] = v
	}
	t.evalMu.RUnlock()

	return StatusReport{
		Enabled:       enabled,
		Running:       running,
		Market:        t.clock.Status(time.Now()),
		Prices:        prices,
		Evaluations:   evals,
		Cash:          state.Cash,
		HoldingsValue: holdingsValue,
		Total:         total,
	}
}
