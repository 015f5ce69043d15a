// Package ledger owns the paper-trading portfolio: cash, per-instrument
// holdings and the append-only trade history. Every mutation goes through
// ExecuteTrade, which validates, mutates and persists as one critical
// section so concurrent manual and automatic trades never read stale state.
package ledger

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Arushi221/got-trading-bot/internal/model"

	"github.com/google/uuid"
)

// Manager guards the mutable portfolio state.
type Manager struct {
	mu       sync.Mutex
	state    *model.PortfolioState
	filePath string
	tracked  map[string]bool
}

// NewManager creates a Manager, loading the snapshot from disk or seeding a
// fresh ledger with the starting cash and a zero holding for every tracked
// instrument.
func NewManager(filePath string, startingCash float64, symbols []string) (*Manager, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	if state.Holdings == nil {
		state.Holdings = make(map[string]float64, len(symbols))
	}
	if state.Cash == 0 && len(state.History) == 0 {
		state.Cash = startingCash
	}
	tracked := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		tracked[s] = true
		if _, ok := state.Holdings[s]; !ok {
			state.Holdings[s] = 0
		}
	}

	m := &Manager{state: state, filePath: filePath, tracked: tracked}
	if err := m.save(); err != nil {
		return nil, fmt.Errorf("save ledger: %w", err)
	}
	return m, nil
}

// Tracked reports whether the instrument belongs to the tracked universe.
func (m *Manager) Tracked(symbol string) bool { return m.tracked[symbol] }

// Symbols returns the tracked universe.
func (m *Manager) Symbols() []string {
	out := make([]string, 0, len(m.tracked))
	for s := range m.tracked {
		out = append(out, s)
	}
	return out
}

// ExecuteTrade validates and applies one BUY or SELL, appends the resulting
// transaction and persists the snapshot before returning. Violating requests
// are rejected with no partial mutation. A failed persist is logged and the
// in-memory state stays authoritative; the next successful save retries.
func (m *Manager) ExecuteTrade(symbol string, action model.Action, qty, price float64, auto bool, rationale string) (model.Transaction, error) {
	if !m.tracked[symbol] {
		return model.Transaction{}, fmt.Errorf("%w: %s", ErrInvalidInstrument, symbol)
	}
	if qty <= 0 {
		return model.Transaction{}, ErrInvalidQuantity
	}
	if price <= 0 {
		return model.Transaction{}, ErrInvalidPrice
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var tag model.TradeTag
	switch action {
	case model.ActionBuy:
		cost := qty * price
		if m.state.Cash < cost {
			return model.Transaction{}, fmt.Errorf("%w: need %.2f, have %.2f", ErrInsufficientFunds, cost, m.state.Cash)
		}
		m.state.Cash -= cost
		m.state.Holdings[symbol] += qty
		tag = model.TagBuy
		if auto {
			tag = model.TagAutoBuy
		}
	case model.ActionSell:
		if m.state.Holdings[symbol] < qty {
			return model.Transaction{}, fmt.Errorf("%w: want %.4f, hold %.4f", ErrInsufficientHoldings, qty, m.state.Holdings[symbol])
		}
		m.state.Cash += qty * price
		m.state.Holdings[symbol] -= qty
		tag = model.TagSell
		if auto {
			tag = model.TagAutoSell
		}
	default:
		return model.Transaction{}, fmt.Errorf("%w: %s", ErrInvalidAction, action)
	}

	tx := model.Transaction{
		ID:        uuid.NewString(),
		Time:      time.Now(),
		Symbol:    symbol,
		Action:    tag,
		Quantity:  qty,
		Price:     price,
		Rationale: rationale,
	}
	m.state.History = append(m.state.History, tx)

	if err := m.save(); err != nil {
		log.Printf("[ERROR] persist ledger after %s %s: %v", tag, symbol, err)
	}
	return tx, nil
}

// State returns a deep copy of the current ledger state.
func (m *Manager) State() model.PortfolioState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

// AvgBuyPrice returns the mean unit price across prior BUY-tagged
// transactions for the symbol, or 0 when the symbol was never bought.
func (m *Manager) AvgBuyPrice(symbol string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	var sum float64
	var count int
	for _, tx := range m.state.History {
		if tx.Symbol == symbol && tx.Action.IsBuy() {
			sum += tx.Price
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// Holding returns the current quantity held for the symbol.
func (m *Manager) Holding(symbol string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Holdings[symbol]
}

// Valuation computes cash plus the market value of all holdings at the given
// latest prices. Instruments with no available price are excluded from the
// holdings value rather than counted as zero.
func (m *Manager) Valuation(prices map[string]float64) (total, holdingsValue float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for symbol, qty := range m.state.Holdings {
		price, ok := prices[symbol]
		if !ok || qty == 0 {
			continue
		}
		holdingsValue += qty * price
	}
	return m.state.Cash + holdingsValue, holdingsValue
}

func (m *Manager) save() error {
	return SaveState(m.filePath, m.state)
}
