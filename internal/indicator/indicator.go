// Package indicator provides pure technical indicator calculations over bar
// series. All functions are deterministic and side-effect free; when a series
// is shorter than the indicator's required window they return
// ErrInsufficientData instead of a value computed from padding.
package indicator

import (
	"errors"

	"github.com/Arushi221/got-trading-bot/internal/model"
)

// ErrInsufficientData is returned when a series is shorter than the
// indicator's minimum window.
var ErrInsufficientData = errors.New("not enough data")

// ErrNoVolume is returned by VWAP when the series carries no traded volume.
var ErrNoVolume = errors.New("no traded volume")

// SMA computes the simple moving average of the last `period` values.
func SMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(values) < period {
		return 0, ErrInsufficientData
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), nil
}

// EMASeries computes the exponential moving average series, seeded from the
// first available value. The result is aligned to the input index.
func EMASeries(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	if len(values) == 0 {
		return nil, ErrInsufficientData
	}
	k := 2.0 / (float64(period) + 1.0)
	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = values[i]*k + out[i-1]*(1.0-k)
	}
	return out, nil
}

// EMA returns the latest exponential moving average value.
func EMA(values []float64, period int) (float64, error) {
	series, err := EMASeries(values, period)
	if err != nil {
		return 0, err
	}
	return series[len(series)-1], nil
}

// AvgVolume computes the simple average volume over the last `period` bars.
func AvgVolume(bars []model.Bar, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(bars) < period {
		return 0, ErrInsufficientData
	}
	sum := 0.0
	for i := len(bars) - period; i < len(bars); i++ {
		sum += bars[i].Volume
	}
	return sum / float64(period), nil
}
