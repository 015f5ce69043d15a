package strategy

import (
	"fmt"

	"github.com/Arushi221/got-trading-bot/internal/indicator"
	"github.com/Arushi221/got-trading-bot/internal/model"
)

const (
	momentumMinBars      = 26
	momentumRSIPeriod    = 14
	momentumOversold     = 30.0
	momentumOverbought   = 70.0
	momentumVolumeWindow = 20
	momentumVolumeFactor = 1.5
)

// Momentum buys oversold instruments showing MACD strength confirmed by a
// volume surge, and sells overbought instruments with MACD weakness.
type Momentum struct{}

func (Momentum) Key() string  { return "momentum" }
func (Momentum) Name() string { return "Momentum" }
func (Momentum) Description() string {
	return "RSI extremes confirmed by MACD direction and a volume surge"
}
func (Momentum) Indicators() []string { return []string{"RSI(14)", "MACD(12,26,9)", "AvgVolume(20)"} }

func (Momentum) Evaluate(ctx Context) model.Signal {
	if len(ctx.Bars) < momentumMinBars {
		return wait(fmt.Sprintf("insufficient data: %d bars, need %d", len(ctx.Bars), momentumMinBars))
	}

	rsi, err := indicator.RSI(ctx.Bars, momentumRSIPeriod)
	if err != nil {
		return wait("insufficient data for RSI")
	}
	macd, err := indicator.MACD(ctx.Bars, 12, 26, 9)
	if err != nil {
		return wait("insufficient data for MACD")
	}
	avgVol, err := indicator.AvgVolume(ctx.Bars, momentumVolumeWindow)
	if err != nil {
		return wait("insufficient data for volume average")
	}

	current := ctx.Bars[len(ctx.Bars)-1]
	volumeSurge := avgVol > 0 && current.Volume > momentumVolumeFactor*avgVol

	if rsi < momentumOversold && macd.MACD > macd.Signal && volumeSurge {
		return buy(fmt.Sprintf("RSI %.1f oversold, MACD above signal, volume %.1fx average",
			rsi, current.Volume/avgVol))
	}
	if rsi > momentumOverbought && macd.MACD < macd.Signal {
		return sell(fmt.Sprintf("RSI %.1f overbought, MACD below signal", rsi))
	}
	return wait(fmt.Sprintf("RSI %.1f, no momentum setup", rsi))
}
