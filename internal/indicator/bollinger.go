package indicator

import (
	"math"

	"github.com/Arushi221/got-trading-bot/internal/model"
)

// BollingerBands holds the latest band values.
type BollingerBands struct {
	Upper  float64
	Middle float64
	Lower  float64
}

// Bollinger computes the simple moving average of close over `period` plus
// and minus k rolling standard deviations. Requires at least `period` bars.
func Bollinger(bars []model.Bar, period int, k float64) (BollingerBands, error) {
	if len(bars) < period {
		return BollingerBands{}, ErrInsufficientData
	}
	closes := model.Closes(bars)

	mean, err := SMA(closes, period)
	if err != nil {
		return BollingerBands{}, err
	}

	variance := 0.0
	for i := len(closes) - period; i < len(closes); i++ {
		d := closes[i] - mean
		variance += d * d
	}
	stddev := math.Sqrt(variance / float64(period))

	return BollingerBands{
		Upper:  mean + k*stddev,
		Middle: mean,
		Lower:  mean - k*stddev,
	}, nil
}
