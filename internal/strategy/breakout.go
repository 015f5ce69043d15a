package strategy

import (
	"fmt"

	"github.com/Arushi221/got-trading-bot/internal/model"
)

// Breakout trades moves beyond today's pre-market range: a close above the
// pre-market high is bought, a close below the pre-market low is sold. When
// the pre-market extract is unavailable the strategy stands aside.
type Breakout struct{}

func (Breakout) Key() string  { return "breakout" }
func (Breakout) Name() string { return "Breakout" }
func (Breakout) Description() string {
	return "closes beyond the pre-market high/low range"
}
func (Breakout) Indicators() []string { return []string{"Premarket High/Low"} }

func (Breakout) Evaluate(ctx Context) model.Signal {
	if ctx.Premarket == nil {
		return wait("no pre-market data available")
	}
	if len(ctx.Bars) == 0 {
		return wait("no bars available")
	}

	close := ctx.Bars[len(ctx.Bars)-1].Close
	if close > ctx.Premarket.High {
		return buy(fmt.Sprintf("close %.2f broke above pre-market high %.2f", close, ctx.Premarket.High))
	}
	if close < ctx.Premarket.Low {
		return sell(fmt.Sprintf("close %.2f broke below pre-market low %.2f", close, ctx.Premarket.Low))
	}
	return wait(fmt.Sprintf("close %.2f inside pre-market range [%.2f, %.2f]",
		close, ctx.Premarket.Low, ctx.Premarket.High))
}
