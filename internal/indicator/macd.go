package indicator

import "github.com/Arushi221/got-trading-bot/internal/model"

// MACDResult holds the latest MACD line, signal line and histogram values.
type MACDResult struct {
	MACD      float64
	Signal    float64
	Histogram float64
}

// MACD computes Moving Average Convergence Divergence over close prices:
// the difference of fast/slow EMAs, an EMA of that difference (signal line)
// and their difference (histogram). Requires at least `slow` bars.
func MACD(bars []model.Bar, fast, slow, signal int) (MACDResult, error) {
	macdLine, signalLine, err := MACDSeries(bars, fast, slow, signal)
	if err != nil {
		return MACDResult{}, err
	}
	last := len(macdLine) - 1
	return MACDResult{
		MACD:      macdLine[last],
		Signal:    signalLine[last],
		Histogram: macdLine[last] - signalLine[last],
	}, nil
}

// MACDSeries returns the full MACD and signal line series aligned to the
// input bars, for callers that need more than the latest values.
func MACDSeries(bars []model.Bar, fast, slow, signal int) (macdLine, signalLine []float64, err error) {
	if len(bars) < slow {
		return nil, nil, ErrInsufficientData
	}
	closes := model.Closes(bars)

	fastEMA, err := EMASeries(closes, fast)
	if err != nil {
		return nil, nil, err
	}
	slowEMA, err := EMASeries(closes, slow)
	if err != nil {
		return nil, nil, err
	}

	macdLine = make([]float64, len(closes))
	for i := range closes {
		macdLine[i] = fastEMA[i] - slowEMA[i]
	}

	signalLine, err = EMASeries(macdLine, signal)
	if err != nil {
		return nil, nil, err
	}
	return macdLine, signalLine, nil
}
