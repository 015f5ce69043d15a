package collector

import (
	"log"
	"sync"

	"github.com/Arushi221/got-trading-bot/internal/model"
)

// Collector is the data boundary between the trading core and the external
// quote provider. Fetch failures never propagate past it: a failed or empty
// bar fetch yields an empty series, a failed premarket fetch yields nil.
// Callers decide to skip or WAIT. It also caches the latest seen price per
// symbol for valuation and status queries.
type Collector struct {
	fetcher Fetcher

	mu     sync.RWMutex
	latest map[string]float64
}

// NewCollector creates a Collector around a Fetcher.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{
		fetcher: fetcher,
		latest:  make(map[string]float64),
	}
}

// Bars returns up to lookback bars for the symbol, or an empty series when
// the upstream fetch fails or returns nothing.
func (c *Collector) Bars(symbol string, lookback int, interval string) []model.Bar {
	bars, err := c.fetcher.FetchBars(symbol, lookback, interval)
	if err != nil {
		log.Printf("[WARN] fetch bars %s: %v", symbol, err)
		return nil
	}
	if len(bars) > 0 {
		c.mu.Lock()
		c.latest[symbol] = bars[len(bars)-1].Close
		c.mu.Unlock()
	}
	return bars
}

// Premarket returns today's pre-open levels for the symbol, or nil when
// unavailable.
func (c *Collector) Premarket(symbol string) *model.PremarketLevels {
	levels, err := c.fetcher.FetchPremarket(symbol)
	if err != nil {
		log.Printf("[WARN] fetch premarket %s: %v", symbol, err)
		return nil
	}
	return levels
}

// LatestPrice fetches a fresh price for the symbol, falling back to the last
// cached value. The boolean reports whether any price is known.
func (c *Collector) LatestPrice(symbol string) (float64, bool) {
	price, err := c.fetcher.FetchLatestPrice(symbol)
	if err == nil && price > 0 {
		c.mu.Lock()
		c.latest[symbol] = price
		c.mu.Unlock()
		return price, true
	}
	if err != nil {
		log.Printf("[WARN] fetch latest price %s: %v", symbol, err)
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	cached, ok := c.latest[symbol]
	return cached, ok
}

// LatestPrices returns a copy of the cached price map.
func (c *Collector) LatestPrices() map[string]float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]float64, len(c.latest))
	for k, v := range c.latest {
		out[k] = v
	}
	return out
}
