package dates

import "github.com/jonboulle/clockwork"

const (
	// Layout is the YYYYMMDD form KOBIS expects for targetDt.
	Layout = "20060102"

	lookback = 7 // days
)

// Selector picks the date a weekly report is requested for.
type Selector struct {
	clock clockwork.Clock
}

func NewSelector(clock clockwork.Clock) *Selector {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Selector{clock: clock}
}

// TargetDate returns the local calendar date seven days before now.
func (s *Selector) TargetDate() string {
	return s.clock.Now().AddDate(0, 0, -lookback).Format(Layout)
}

// Resolve prefers an explicit override over the computed target date.
func (s *Selector) Resolve(override string) string {
	if override != "" {
		return override
	}
	return s.TargetDate()
}
