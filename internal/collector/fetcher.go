package collector

import "github.com/Arushi221/got-trading-bot/internal/model"

// Fetcher defines the interface for retrieving market data.
type Fetcher interface {
	// FetchBars returns up to `lookback` chronological bars at the given
	// granularity (e.g. "1m", "5m") for the symbol.
	FetchBars(symbol string, lookback int, interval string) ([]model.Bar, error)
	// FetchPremarket returns the high/low/volume of today's pre-open bars.
	FetchPremarket(symbol string) (*model.PremarketLevels, error)
	// FetchLatestPrice returns the most recent traded price.
	FetchLatestPrice(symbol string) (float64, error)
	Name() string
}
