// Package strategy implements the five day-trading signal classifiers and
// the arbitrator that combines them into one decision per instrument.
package strategy

import (
	"github.com/Arushi221/got-trading-bot/internal/model"
)

// Context carries the inputs a strategy may consult for one evaluation.
type Context struct {
	Bars      []model.Bar
	Premarket *model.PremarketLevels
}

// Strategy is a pure classifier from market context to a Signal. The
// metadata methods are descriptive only and never affect evaluation.
type Strategy interface {
	Key() string
	Name() string
	Description() string
	Indicators() []string
	Evaluate(ctx Context) model.Signal
}

func wait(rationale string) model.Signal {
	return model.Signal{Action: model.ActionWait, Rationale: rationale}
}

func buy(rationale string) model.Signal {
	return model.Signal{Action: model.ActionBuy, Rationale: rationale}
}

func sell(rationale string) model.Signal {
	return model.Signal{Action: model.ActionSell, Rationale: rationale}
}
