package strategy

import (
	"fmt"

	"github.com/Arushi221/got-trading-bot/internal/model"
)

const (
	// Position-aware overrides, in percent of the average buy price.
	profitTakingPct = 2.0
	stopLossPct     = -1.0
)

// Position describes the caller's current stake in the instrument being
// arbitrated. AvgBuyPrice is the mean unit price across prior buys and is
// only consulted when Quantity > 0.
type Position struct {
	Quantity    float64
	AvgBuyPrice float64
}

// Arbitrate combines the per-strategy signals into one overall decision.
// A held position is first checked against the profit-taking and stop-loss
// overrides, which short-circuit everything else. Otherwise BUY candidates
// are consulted in priority order, then SELL candidates; with no winner the
// decision is WAIT. The winner's rationale is prefixed with its strategy
// name for observability.
func (r *Registry) Arbitrate(signals map[string]model.Signal, pos Position, currentPrice float64) (model.Signal, string) {
	if pos.Quantity > 0 && pos.AvgBuyPrice > 0 && currentPrice > 0 {
		profitPct := (currentPrice - pos.AvgBuyPrice) / pos.AvgBuyPrice * 100
		if profitPct >= profitTakingPct {
			return model.Signal{
				Action:    model.ActionSell,
				Rationale: fmt.Sprintf("profit taking: up %.2f%% from avg buy %.2f", profitPct, pos.AvgBuyPrice),
			}, ""
		}
		if profitPct <= stopLossPct {
			return model.Signal{
				Action:    model.ActionSell,
				Rationale: fmt.Sprintf("stop loss: down %.2f%% from avg buy %.2f", -profitPct, pos.AvgBuyPrice),
			}, ""
		}
	}

	if sig, key, ok := r.firstMatch(signals, buyPriority, model.ActionBuy); ok {
		return sig, key
	}
	if sig, key, ok := r.firstMatch(signals, sellPriority, model.ActionSell); ok {
		return sig, key
	}
	return model.Signal{Action: model.ActionWait, Rationale: "no strategy consensus"}, ""
}

func (r *Registry) firstMatch(signals map[string]model.Signal, priority []string, action model.Action) (model.Signal, string, bool) {
	for _, key := range priority {
		sig, ok := signals[key]
		if !ok || sig.Action != action {
			continue
		}
		name := key
		if s, ok := r.byKey[key]; ok {
			name = s.Name()
		}
		return model.Signal{
			Action:    action,
			Rationale: fmt.Sprintf("%s: %s", name, sig.Rationale),
		}, key, true
	}
	return model.Signal{}, "", false
}
