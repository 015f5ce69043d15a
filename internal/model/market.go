package model

import "time"

// Bar represents a single OHLCV candlestick.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Closes extracts the close prices from a bar series in order.
func Closes(bars []Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

// PremarketLevels holds the high/low/volume extracted from bars timestamped
// before the regular session open. Used as breakout reference levels.
type PremarketLevels struct {
	High   float64
	Low    float64
	Volume float64
}

// MarketStatus describes whether the market is currently trading.
type MarketStatus struct {
	Open      bool      `json:"open"`
	State     string    `json:"state"`
	NextOpen  time.Time `json:"next_open"`
	NextClose time.Time `json:"next_close"`
}
