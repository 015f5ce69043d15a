package indicator

import "github.com/Arushi221/got-trading-bot/internal/model"

// VWAP computes the Volume Weighted Average Price over the whole series:
// cumulative(typical price x volume) / cumulative(volume), with typical
// price = (high+low+close)/3. Defined once any volume has traded.
func VWAP(bars []model.Bar) (float64, error) {
	if len(bars) == 0 {
		return 0, ErrInsufficientData
	}
	var pvSum, volSum float64
	for _, b := range bars {
		typical := (b.High + b.Low + b.Close) / 3.0
		pvSum += typical * b.Volume
		volSum += b.Volume
	}
	if volSum == 0 {
		return 0, ErrNoVolume
	}
	return pvSum / volSum, nil
}
