package strategy

import (
	"strings"
	"testing"
	"time"

	"github.com/Arushi221/got-trading-bot/internal/model"
)

// flatBars builds bars where high=low=close so typical price equals close and
// VWAP math stays exact.
func flatBars(closes ...float64) []model.Bar {
	bars := make([]model.Bar, len(closes))
	for i, c := range closes {
		bars[i] = model.Bar{
			Time:   time.Date(2024, 6, 3, 9, 30+i, 0, 0, time.UTC),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func declineThenRecover() []model.Bar {
	closes := make([]float64, 0, 30)
	for i := 0; i <= 26; i++ {
		closes = append(closes, 100-float64(i))
	}
	closes = append(closes, 75, 76, 77)
	return flatBars(closes...)
}

func rallyThenRollover() []model.Bar {
	closes := make([]float64, 0, 30)
	for i := 0; i <= 26; i++ {
		closes = append(closes, 74+float64(i))
	}
	closes = append(closes, 99, 98, 97)
	return flatBars(closes...)
}

func TestMomentum_InsufficientData(t *testing.T) {
	sig := Momentum{}.Evaluate(Context{Bars: flatBars(100, 101, 102)})
	if sig.Action != model.ActionWait {
		t.Fatalf("expected WAIT, got %s", sig.Action)
	}
	if !strings.Contains(sig.Rationale, "insufficient data") {
		t.Errorf("expected insufficient-data rationale, got %q", sig.Rationale)
	}
}

func TestMomentum_BuyOnOversoldWithVolumeSurge(t *testing.T) {
	bars := declineThenRecover()
	bars[len(bars)-1].Volume = 5000 // surge over the 20-bar average
	sig := Momentum{}.Evaluate(Context{Bars: bars})
	if sig.Action != model.ActionBuy {
		t.Fatalf("expected BUY, got %s (%s)", sig.Action, sig.Rationale)
	}
}

func TestMomentum_NoBuyWithoutVolumeSurge(t *testing.T) {
	sig := Momentum{}.Evaluate(Context{Bars: declineThenRecover()})
	if sig.Action != model.ActionWait {
		t.Fatalf("expected WAIT without a volume surge, got %s (%s)", sig.Action, sig.Rationale)
	}
}

func TestMomentum_SellOnOverboughtRollover(t *testing.T) {
	sig := Momentum{}.Evaluate(Context{Bars: rallyThenRollover()})
	if sig.Action != model.ActionSell {
		t.Fatalf("expected SELL, got %s (%s)", sig.Action, sig.Rationale)
	}
}

func TestMeanReversion(t *testing.T) {
	// Alternating base gives the bands realistic width around 100.
	base := make([]float64, 19)
	for i := range base {
		base[i] = 99
		if i%2 == 1 {
			base[i] = 101
		}
	}

	tests := []struct {
		name string
		last float64
		want model.Action
	}{
		{"plunge below lower band", 90, model.ActionBuy},
		{"spike above upper band", 110, model.ActionSell},
		{"inside bands", 100.5, model.ActionWait},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bars := flatBars(append(append([]float64{}, base...), tt.last)...)
			sig := MeanReversion{}.Evaluate(Context{Bars: bars})
			if sig.Action != tt.want {
				t.Errorf("close %.1f: expected %s, got %s (%s)", tt.last, tt.want, sig.Action, sig.Rationale)
			}
		})
	}
}

func TestMeanReversion_InsufficientData(t *testing.T) {
	sig := MeanReversion{}.Evaluate(Context{Bars: flatBars(100, 90)})
	if sig.Action != model.ActionWait {
		t.Fatalf("expected WAIT, got %s", sig.Action)
	}
}

func TestBreakout(t *testing.T) {
	pm := &model.PremarketLevels{High: 105, Low: 95, Volume: 50000}
	tests := []struct {
		name  string
		close float64
		pm    *model.PremarketLevels
		want  model.Action
	}{
		{"above premarket high", 106, pm, model.ActionBuy},
		{"below premarket low", 94, pm, model.ActionSell},
		{"inside premarket range", 100, pm, model.ActionWait},
		{"no premarket data", 106, nil, model.ActionWait},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := Breakout{}.Evaluate(Context{Bars: flatBars(tt.close), Premarket: tt.pm})
			if sig.Action != tt.want {
				t.Errorf("expected %s, got %s (%s)", tt.want, sig.Action, sig.Rationale)
			}
		})
	}
}

func TestVWAPPullback(t *testing.T) {
	base := make([]float64, 19)
	for i := range base {
		base[i] = 100
	}
	s := NewVWAPPullback(0, false) // default 2% threshold

	tests := []struct {
		name string
		last float64
		want model.Action
	}{
		{"shallow pullback above VWAP", 101, model.ActionBuy},
		{"shallow slip below VWAP", 99, model.ActionSell},
		{"too far from VWAP", 104, model.ActionWait},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bars := flatBars(append(append([]float64{}, base...), tt.last)...)
			sig := s.Evaluate(Context{Bars: bars})
			if sig.Action != tt.want {
				t.Errorf("close %.1f: expected %s, got %s (%s)", tt.last, tt.want, sig.Action, sig.Rationale)
			}
		})
	}
}

func TestVWAPPullback_StrictThreshold(t *testing.T) {
	base := make([]float64, 19)
	for i := range base {
		base[i] = 100
	}
	strict := NewVWAPPullback(1.0, false)

	// 1.5% above VWAP passes the default 2% threshold but not the strict 1%.
	bars := flatBars(append(append([]float64{}, base...), 101.5)...)
	if sig := strict.Evaluate(Context{Bars: bars}); sig.Action != model.ActionWait {
		t.Errorf("strict variant: expected WAIT at 1.5%% distance, got %s", sig.Action)
	}
	loose := NewVWAPPullback(2.0, false)
	if sig := loose.Evaluate(Context{Bars: bars}); sig.Action != model.ActionBuy {
		t.Errorf("loose variant: expected BUY at 1.5%% distance, got %s", sig.Action)
	}
}

func TestScalping_BuyCrossover(t *testing.T) {
	// EMA5 crosses from below to above EMA10 exactly at the last bar.
	bars := flatBars(100, 99, 98, 97, 96, 95, 94, 93, 92, 110)
	sig := Scalping{}.Evaluate(Context{Bars: bars})
	if sig.Action != model.ActionBuy {
		t.Fatalf("expected BUY on upward crossover, got %s (%s)", sig.Action, sig.Rationale)
	}
}

func TestScalping_SellCrossover(t *testing.T) {
	bars := flatBars(100, 101, 102, 103, 104, 105, 106, 107, 108, 90)
	sig := Scalping{}.Evaluate(Context{Bars: bars})
	if sig.Action != model.ActionSell {
		t.Fatalf("expected SELL on downward crossover, got %s (%s)", sig.Action, sig.Rationale)
	}
}

func TestScalping_NoCrossover(t *testing.T) {
	bars := flatBars(100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110, 111)
	sig := Scalping{}.Evaluate(Context{Bars: bars})
	if sig.Action != model.ActionWait {
		t.Fatalf("expected WAIT without a crossover, got %s (%s)", sig.Action, sig.Rationale)
	}
}

func TestScalping_InsufficientData(t *testing.T) {
	sig := Scalping{}.Evaluate(Context{Bars: flatBars(100, 101)})
	if sig.Action != model.ActionWait {
		t.Fatalf("expected WAIT, got %s", sig.Action)
	}
}

func TestRegistry_EnumeratesFiveStrategies(t *testing.T) {
	reg := NewRegistry(0, false)
	if got := len(reg.All()); got != 5 {
		t.Fatalf("expected 5 strategies, got %d", got)
	}
	for _, key := range []string{"breakout", "momentum", "vwap_pullback", "mean_reversion", "scalping"} {
		if _, ok := reg.Get(key); !ok {
			t.Errorf("missing strategy %q", key)
		}
	}
}
