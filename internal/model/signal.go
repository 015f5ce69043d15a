package model

// Action is a trading decision.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
	ActionWait Action = "WAIT"
)

// Signal is the output of a single strategy for one instrument: an action
// plus a human-readable rationale. Signals are ephemeral and recomputed on
// every evaluation cycle.
type Signal struct {
	Action    Action `json:"action"`
	Rationale string `json:"rationale"`
}

// Evaluation aggregates one cycle's strategy outputs for one instrument.
// Overall is the arbitrated decision; Strategies keeps every individual
// strategy signal for inspection, keyed by strategy key.
type Evaluation struct {
	Symbol      string            `json:"symbol"`
	Price       float64           `json:"price"`
	Overall     Signal            `json:"overall"`
	WinnerKey   string            `json:"winner_key,omitempty"`
	Strategies  map[string]Signal `json:"strategies"`
	EvaluatedAt int64             `json:"evaluated_at"`
}
