package model

import "time"

// TradeTag marks a transaction with its action and origin.
type TradeTag string

const (
	TagBuy      TradeTag = "BUY"
	TagSell     TradeTag = "SELL"
	TagAutoBuy  TradeTag = "AUTO_BUY"
	TagAutoSell TradeTag = "AUTO_SELL"
)

// IsBuy reports whether the tag records a purchase, manual or automatic.
func (t TradeTag) IsBuy() bool { return t == TagBuy || t == TagAutoBuy }

// Transaction is one immutable ledger history entry. Appended, never edited.
type Transaction struct {
	ID        string    `json:"id"`
	Time      time.Time `json:"time"`
	Symbol    string    `json:"symbol"`
	Action    TradeTag  `json:"action"`
	Quantity  float64   `json:"qty"`
	Price     float64   `json:"price"`
	Rationale string    `json:"rationale,omitempty"`
}

// PortfolioState is the persisted paper-trading ledger snapshot: cash,
// per-instrument holdings (an entry exists for every tracked instrument,
// zero allowed) and the append-only trade history.
type PortfolioState struct {
	Cash      float64            `json:"cash"`
	Holdings  map[string]float64 `json:"holdings"`
	History   []Transaction      `json:"history"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Clone returns a deep copy so callers can read state without holding locks.
func (p *PortfolioState) Clone() PortfolioState {
	cp := PortfolioState{
		Cash:      p.Cash,
		Holdings:  make(map[string]float64, len(p.Holdings)),
		History:   make([]Transaction, len(p.History)),
		UpdatedAt: p.UpdatedAt,
	}
	for k, v := range p.Holdings {
		cp.Holdings[k] = v
	}
	copy(cp.History, p.History)
	return cp
}
