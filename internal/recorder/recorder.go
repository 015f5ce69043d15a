package recorder

import "github.com/Arushi221/got-trading-bot/internal/model"

// SignalSnapshot captures one cycle's evaluation of one instrument.
type SignalSnapshot struct {
	CycleID   string
	Symbol    string
	Price     float64
	Overall   model.Signal
	Breakdown map[string]model.Signal
}

// ValuationRecord captures a portfolio valuation at a point in time.
type ValuationRecord struct {
	Cash          float64
	HoldingsValue float64
	Total         float64
}

// Recorder persists historical data for later analysis.
type Recorder interface {
	RecordTrade(tx *model.Transaction) error
	RecordSignals(snap *SignalSnapshot) error
	RecordValuation(rec *ValuationRecord) error
	Close() error
}
