package autotrader

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Arushi221/got-trading-bot/internal/collector"
	"github.com/Arushi221/got-trading-bot/internal/ledger"
	"github.com/Arushi221/got-trading-bot/internal/model"
	"github.com/Arushi221/got-trading-bot/internal/recorder"
	"github.com/Arushi221/got-trading-bot/internal/strategy"
)

type fakeMarket struct{ open bool }

func (f fakeMarket) IsOpen(_ time.Time) bool { return f.open }
func (f fakeMarket) Status(_ time.Time) model.MarketStatus {
	return model.MarketStatus{Open: f.open}
}

func steadyBars(price float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		bars[i] = model.Bar{
			Time:   time.Now().Add(-time.Duration(count-i) * time.Minute),
			Open:   price,
			High:   price,
			Low:    price,
			Close:  price,
			Volume: 1000,
		}
	}
	return bars
}

func newTestTrader(t *testing.T, fetcher collector.Fetcher, open bool) (*Trader, *ledger.Manager) {
	t.Helper()
	book, err := ledger.NewManager(filepath.Join(t.TempDir(), "ledger.json"), 10000, []string{"AAPL"})
	if err != nil {
		t.Fatalf("new ledger: %v", err)
	}
	trader := New(Config{
		Symbols:  []string{"AAPL"},
		Quantity: 1,
	}, collector.NewCollector(fetcher), strategy.NewRegistry(0, false), book, fakeMarket{open: open}, recorder.NewNoopRecorder(), nil)
	return trader, book
}

// breakoutFetcher yields bars closing above the premarket high so a cycle
// against an open market produces an AUTO_BUY.
func breakoutFetcher() *collector.MockFetcher {
	return &collector.MockFetcher{
		Bars: map[string][]model.Bar{
			"AAPL": steadyBars(106, 30),
		},
		Premarket: map[string]*model.PremarketLevels{
			"AAPL": {High: 105, Low: 95, Volume: 50000},
		},
	}
}

func TestRunCycleNow_MarketClosedAppendsNoTransaction(t *testing.T) {
	trader, book := newTestTrader(t, breakoutFetcher(), false)

	trader.RunCycleNow()

	state := book.State()
	if len(state.History) != 0 {
		t.Fatalf("closed market cycle must not trade, got %d transactions", len(state.History))
	}
	if state.Cash != 10000 {
		t.Errorf("cash changed on a closed market: %.2f", state.Cash)
	}
}

func TestRunCycleNow_ExecutesBreakoutBuy(t *testing.T) {
	trader, book := newTestTrader(t, breakoutFetcher(), true)

	trader.RunCycleNow()

	state := book.State()
	if len(state.History) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(state.History))
	}
	tx := state.History[0]
	if tx.Action != model.TagAutoBuy {
		t.Errorf("expected AUTO_BUY, got %s", tx.Action)
	}
	if tx.Price != 106 || tx.Quantity != 1 {
		t.Errorf("unexpected fill: qty=%.2f price=%.2f", tx.Quantity, tx.Price)
	}
	if state.Cash != 10000-106 {
		t.Errorf("expected cash %.2f, got %.2f", 10000-106.0, state.Cash)
	}

	eval, ok := trader.Status().Evaluations["AAPL"]
	if !ok {
		t.Fatal("expected an evaluation for AAPL")
	}
	if eval.WinnerKey != "breakout" {
		t.Errorf("expected breakout to win, got %q", eval.WinnerKey)
	}
	if len(eval.Strategies) != 5 {
		t.Errorf("expected all 5 strategy signals, got %d", len(eval.Strategies))
	}
}

func TestRunCycleNow_EmptyBarsSkipsInstrument(t *testing.T) {
	trader, book := newTestTrader(t, &collector.MockFetcher{FailBars: true}, true)

	trader.RunCycleNow()

	if state := book.State(); len(state.History) != 0 {
		t.Fatalf("fetch failure must not trade, got %d transactions", len(state.History))
	}
}

func TestExecuteManualTrade(t *testing.T) {
	trader, book := newTestTrader(t, &collector.MockFetcher{Price: 100}, false)

	tx, state, err := trader.ExecuteManualTrade("AAPL", model.ActionBuy, 5)
	if err != nil {
		t.Fatalf("manual buy: %v", err)
	}
	if tx.Action != model.TagBuy {
		t.Errorf("manual trade must not carry the AUTO tag, got %s", tx.Action)
	}
	if state.Cash != 9500 || state.Holdings["AAPL"] != 5 {
		t.Errorf("unexpected state after buy: %+v", state)
	}

	if _, _, err := trader.ExecuteManualTrade("AAPL", model.ActionSell, 10); !errors.Is(err, ledger.ErrInsufficientHoldings) {
		t.Errorf("expected ErrInsufficientHoldings, got %v", err)
	}
	if _, _, err := trader.ExecuteManualTrade("GME", model.ActionBuy, 1); !errors.Is(err, ledger.ErrInvalidInstrument) {
		t.Errorf("expected ErrInvalidInstrument, got %v", err)
	}
	if got := book.State(); got.Cash != 9500 {
		t.Errorf("rejected trades must not mutate cash: %.2f", got.Cash)
	}
}

func TestExecuteManualTrade_PriceUnavailable(t *testing.T) {
	trader, _ := newTestTrader(t, &collector.MockFetcher{FailPrice: true}, false)
	if _, _, err := trader.ExecuteManualTrade("AAPL", model.ActionBuy, 1); err == nil {
		t.Fatal("expected error when no price is available")
	}
}

func TestLifecycle_StartStop(t *testing.T) {
	trader, _ := newTestTrader(t, breakoutFetcher(), false)

	if trader.Running() {
		t.Fatal("trader should not run before Start")
	}
	trader.Start()
	if !trader.Running() || !trader.Enabled() {
		t.Fatal("trader should be running and enabled after Start")
	}
	trader.Stop()
	if trader.Running() || trader.Enabled() {
		t.Fatal("trader should be stopped and disabled after Stop")
	}
}

func TestStatus_RestartsDeadLoopWhileEnabled(t *testing.T) {
	trader, _ := newTestTrader(t, breakoutFetcher(), false)

	// Enabled intent with no live goroutine, as after a loop death.
	trader.mu.Lock()
	trader.enabled = true
	trader.mu.Unlock()

	st := trader.Status()
	if !st.Running {
		t.Fatal("Status must restart the loop while the trader is enabled")
	}
	trader.Stop()
}

func TestStatus_DoesNotRestartWhenDisabled(t *testing.T) {
	trader, _ := newTestTrader(t, breakoutFetcher(), false)
	if st := trader.Status(); st.Running || st.Enabled {
		t.Fatalf("disabled trader must stay stopped, got %+v", st)
	}
}

func TestSetEnabled(t *testing.T) {
	trader, _ := newTestTrader(t, breakoutFetcher(), false)
	trader.SetEnabled(true)
	if !trader.Running() {
		t.Fatal("SetEnabled(true) should start the loop")
	}
	trader.SetEnabled(false)
	if trader.Running() {
		t.Fatal("SetEnabled(false) should stop the loop")
	}
}
