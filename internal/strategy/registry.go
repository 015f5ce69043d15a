package strategy

import "github.com/Arushi221/got-trading-bot/internal/model"

// Registry holds the fixed strategy set in enumeration order and defines the
// arbitration priorities.
type Registry struct {
	strategies []Strategy
	byKey      map[string]Strategy
}

// BUY and SELL candidates are consulted in these fixed orders; the first
// strategy signaling the candidate action wins.
var (
	buyPriority  = []string{"breakout", "momentum", "vwap_pullback", "scalping"}
	sellPriority = []string{"breakout", "momentum", "vwap_pullback", "mean_reversion", "scalping"}
)

// NewRegistry builds the default five-strategy set. The VWAP pullback
// parameterization is the configurable one.
func NewRegistry(vwapThresholdPct float64, vwapEMAFilter bool) *Registry {
	return newRegistry(
		Breakout{},
		Momentum{},
		NewVWAPPullback(vwapThresholdPct, vwapEMAFilter),
		MeanReversion{},
		Scalping{},
	)
}

func newRegistry(strategies ...Strategy) *Registry {
	r := &Registry{
		strategies: strategies,
		byKey:      make(map[string]Strategy, len(strategies)),
	}
	for _, s := range strategies {
		r.byKey[s.Key()] = s
	}
	return r
}

// All returns the strategies in registration order.
func (r *Registry) All() []Strategy { return r.strategies }

// Get looks a strategy up by key.
func (r *Registry) Get(key string) (Strategy, bool) {
	s, ok := r.byKey[key]
	return s, ok
}

// EvaluateAll runs every strategy against the context, keyed by strategy key.
func (r *Registry) EvaluateAll(ctx Context) map[string]model.Signal {
	out := make(map[string]model.Signal, len(r.strategies))
	for _, s := range r.strategies {
		out[s.Key()] = s.Evaluate(ctx)
	}
	return out
}
