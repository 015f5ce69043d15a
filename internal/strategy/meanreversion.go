package strategy

import (
	"fmt"

	"github.com/Arushi221/got-trading-bot/internal/indicator"
	"github.com/Arushi221/got-trading-bot/internal/model"
)

const (
	meanRevMinBars   = 20
	meanRevBollinger = 20
	meanRevBandWidth = 2.0
)

// MeanReversion trades Bollinger band touches confirmed by the session VWAP:
// closes at or below the lower band and VWAP are bought, closes at or above
// the upper band and VWAP are sold.
type MeanReversion struct{}

func (MeanReversion) Key() string  { return "mean_reversion" }
func (MeanReversion) Name() string { return "Mean Reversion" }
func (MeanReversion) Description() string {
	return "Bollinger band extremes confirmed by VWAP"
}
func (MeanReversion) Indicators() []string { return []string{"Bollinger(20,2)", "VWAP"} }

func (MeanReversion) Evaluate(ctx Context) model.Signal {
	if len(ctx.Bars) < meanRevMinBars {
		return wait(fmt.Sprintf("insufficient data: %d bars, need %d", len(ctx.Bars), meanRevMinBars))
	}

	bands, err := indicator.Bollinger(ctx.Bars, meanRevBollinger, meanRevBandWidth)
	if err != nil {
		return wait("insufficient data for Bollinger bands")
	}
	vwap, err := indicator.VWAP(ctx.Bars)
	if err != nil {
		return wait("VWAP unavailable")
	}

	close := ctx.Bars[len(ctx.Bars)-1].Close
	if close <= bands.Lower && close <= vwap {
		return buy(fmt.Sprintf("close %.2f at lower band %.2f, below VWAP %.2f", close, bands.Lower, vwap))
	}
	if close >= bands.Upper && close >= vwap {
		return sell(fmt.Sprintf("close %.2f at upper band %.2f, above VWAP %.2f", close, bands.Upper, vwap))
	}
	return wait(fmt.Sprintf("close %.2f inside bands [%.2f, %.2f]", close, bands.Lower, bands.Upper))
}
