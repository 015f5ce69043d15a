package strategy

import (
	"fmt"
	"math"

	"github.com/Arushi221/got-trading-bot/internal/indicator"
	"github.com/Arushi221/got-trading-bot/internal/model"
)

const (
	vwapPullbackMinBars = 20
	vwapPullbackEMA     = 20

	// DefaultVWAPThreshold is the loose day-trading parameterization; the
	// stricter 1% + EMA-filter variant remains configurable.
	DefaultVWAPThreshold = 2.0
)

// VWAPPullback trades shallow pullbacks toward the session VWAP. With the
// EMA filter enabled, entries additionally require price on the matching
// side of the 20-period EMA.
type VWAPPullback struct {
	ThresholdPct float64
	EMAFilter    bool
}

// NewVWAPPullback builds the strategy with the given distance threshold
// (percent) and trend-filter toggle. A non-positive threshold selects the
// default.
func NewVWAPPullback(thresholdPct float64, emaFilter bool) *VWAPPullback {
	if thresholdPct <= 0 {
		thresholdPct = DefaultVWAPThreshold
	}
	return &VWAPPullback{ThresholdPct: thresholdPct, EMAFilter: emaFilter}
}

func (*VWAPPullback) Key() string  { return "vwap_pullback" }
func (*VWAPPullback) Name() string { return "VWAP Pullback" }
func (*VWAPPullback) Description() string {
	return "shallow pullbacks toward the session VWAP"
}
func (*VWAPPullback) Indicators() []string { return []string{"VWAP", "EMA(20)"} }

func (s *VWAPPullback) Evaluate(ctx Context) model.Signal {
	if len(ctx.Bars) < vwapPullbackMinBars {
		return wait(fmt.Sprintf("insufficient data: %d bars, need %d", len(ctx.Bars), vwapPullbackMinBars))
	}

	vwap, err := indicator.VWAP(ctx.Bars)
	if err != nil {
		return wait("VWAP unavailable")
	}

	close := ctx.Bars[len(ctx.Bars)-1].Close
	distance := math.Abs(close-vwap) / vwap * 100

	if distance >= s.ThresholdPct {
		return wait(fmt.Sprintf("close %.2f is %.2f%% from VWAP %.2f, beyond %.1f%%",
			close, distance, vwap, s.ThresholdPct))
	}

	if s.EMAFilter {
		ema, err := indicator.EMA(model.Closes(ctx.Bars), vwapPullbackEMA)
		if err != nil {
			return wait("insufficient data for EMA filter")
		}
		if close > vwap && close <= ema {
			return wait(fmt.Sprintf("close %.2f above VWAP but below EMA20 %.2f", close, ema))
		}
		if close < vwap && close >= ema {
			return wait(fmt.Sprintf("close %.2f below VWAP but above EMA20 %.2f", close, ema))
		}
	}

	if close > vwap {
		return buy(fmt.Sprintf("close %.2f holding %.2f%% above VWAP %.2f", close, distance, vwap))
	}
	if close < vwap {
		return sell(fmt.Sprintf("close %.2f slipping %.2f%% below VWAP %.2f", close, distance, vwap))
	}
	return wait(fmt.Sprintf("close %.2f at VWAP", close))
}
