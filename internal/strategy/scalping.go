package strategy

import (
	"fmt"

	"github.com/Arushi221/got-trading-bot/internal/indicator"
	"github.com/Arushi221/got-trading-bot/internal/model"
)

const (
	scalpingMinBars = 10
	scalpingFastEMA = 5
	scalpingSlowEMA = 10
)

// Scalping trades EMA5/EMA10 crossovers between the previous and current bar.
type Scalping struct{}

func (Scalping) Key() string  { return "scalping" }
func (Scalping) Name() string { return "Scalping" }
func (Scalping) Description() string {
	return "EMA5/EMA10 crossovers on the latest bar"
}
func (Scalping) Indicators() []string { return []string{"EMA(5)", "EMA(10)"} }

func (Scalping) Evaluate(ctx Context) model.Signal {
	if len(ctx.Bars) < scalpingMinBars {
		return wait(fmt.Sprintf("insufficient data: %d bars, need %d", len(ctx.Bars), scalpingMinBars))
	}

	closes := model.Closes(ctx.Bars)
	fast, err := indicator.EMASeries(closes, scalpingFastEMA)
	if err != nil {
		return wait("insufficient data for fast EMA")
	}
	slow, err := indicator.EMASeries(closes, scalpingSlowEMA)
	if err != nil {
		return wait("insufficient data for slow EMA")
	}

	n := len(closes)
	prevFast, prevSlow := fast[n-2], slow[n-2]
	curFast, curSlow := fast[n-1], slow[n-1]

	if prevFast <= prevSlow && curFast > curSlow {
		return buy(fmt.Sprintf("EMA5 %.2f crossed above EMA10 %.2f", curFast, curSlow))
	}
	if prevFast >= prevSlow && curFast < curSlow {
		return sell(fmt.Sprintf("EMA5 %.2f crossed below EMA10 %.2f", curFast, curSlow))
	}
	return wait("no EMA crossover")
}
