package collector

import (
	"errors"
	"time"

	"github.com/Arushi221/got-trading-bot/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price     float64
	Bars      map[string][]model.Bar
	Premarket map[string]*model.PremarketLevels
	FailBars  bool
	FailPrice bool
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(symbol string, lookback int, _ string) ([]model.Bar, error) {
	if m.FailBars {
		return nil, errors.New("mock: bars unavailable")
	}
	if bars, ok := m.Bars[symbol]; ok {
		if lookback > 0 && len(bars) > lookback {
			bars = bars[len(bars)-lookback:]
		}
		return bars, nil
	}
	return GenerateBars(m.Price, 60), nil
}

func (m *MockFetcher) FetchPremarket(symbol string) (*model.PremarketLevels, error) {
	if levels, ok := m.Premarket[symbol]; ok && levels != nil {
		return levels, nil
	}
	return nil, errors.New("mock: no premarket data")
}

func (m *MockFetcher) FetchLatestPrice(symbol string) (float64, error) {
	if m.FailPrice {
		return 0, errors.New("mock: price unavailable")
	}
	if bars, ok := m.Bars[symbol]; ok && len(bars) > 0 {
		return bars[len(bars)-1].Close, nil
	}
	return m.Price, nil
}

// GenerateBars builds a gently drifting synthetic bar series around basePrice.
func GenerateBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Now().Add(-time.Duration(count-i) * time.Minute),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
