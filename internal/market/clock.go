// Package market answers "is the market open now" against a fixed regional
// trading calendar: 09:30-16:00 America/New_York, Monday through Friday, no
// holiday table.
package market

import (
	"log"
	"time"

	"github.com/Arushi221/got-trading-bot/internal/model"
)

const (
	openHour    = 9
	openMinute  = 30
	closeHour   = 16
	closeMinute = 0
)

// Clock evaluates market hours in a fixed location.
type Clock struct {
	loc *time.Location
}

// NewClock loads the exchange time zone. If the zone database is unavailable
// the clock reports the market closed rather than trading on an unknown
// market state.
func NewClock() *Clock {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		log.Printf("[WARN] load exchange time zone: %v, assuming market closed", err)
		return &Clock{}
	}
	return &Clock{loc: loc}
}

// IsOpen reports whether the regular session is trading at the given instant.
func (c *Clock) IsOpen(now time.Time) bool {
	if c.loc == nil {
		return false
	}
	t := now.In(c.loc)
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	open := time.Date(t.Year(), t.Month(), t.Day(), openHour, openMinute, 0, 0, c.loc)
	close := time.Date(t.Year(), t.Month(), t.Day(), closeHour, closeMinute, 0, 0, c.loc)
	return !t.Before(open) && t.Before(close)
}

// Status returns the open flag plus a human-readable state and the next
// open/close instants.
func (c *Clock) Status(now time.Time) model.MarketStatus {
	if c.loc == nil {
		return model.MarketStatus{Open: false, State: "unknown, assumed closed"}
	}
	t := now.In(c.loc)

	if c.IsOpen(now) {
		close := time.Date(t.Year(), t.Month(), t.Day(), closeHour, closeMinute, 0, 0, c.loc)
		return model.MarketStatus{
			Open:      true,
			State:     "regular session",
			NextOpen:  c.nextOpen(close),
			NextClose: close,
		}
	}

	nextOpen := c.nextOpen(t)
	return model.MarketStatus{
		Open:      false,
		State:     "closed",
		NextOpen:  nextOpen,
		NextClose: time.Date(nextOpen.Year(), nextOpen.Month(), nextOpen.Day(), closeHour, closeMinute, 0, 0, c.loc),
	}
}

// nextOpen finds the first session open strictly after t.
func (c *Clock) nextOpen(t time.Time) time.Time {
	day := t
	for {
		open := time.Date(day.Year(), day.Month(), day.Day(), openHour, openMinute, 0, 0, c.loc)
		if open.After(t) && open.Weekday() != time.Saturday && open.Weekday() != time.Sunday {
			return open
		}
		day = day.AddDate(0, 0, 1)
	}
}
