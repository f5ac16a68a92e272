package analytics

import "time"

// Period selects the reporting window for an analytics report.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodAll     Period = "all"
)

// DefaultPeriod applies when a request omits or misspells the period.
const DefaultPeriod = PeriodAll

// ParsePeriod maps a query value to a Period, falling back to DefaultPeriod.
func ParsePeriod(raw string) Period {
	switch Period(raw) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodAll:
		return Period(raw)
	default:
		return DefaultPeriod
	}
}

// Window returns the inclusive lower bound of the reporting window, or nil
// when the period is unbounded.
func (p Period) Window(now time.Time) *time.Time {
	var d time.Duration

	switch p {
	case PeriodDaily:
		d = 24 * time.Hour
	case PeriodWeekly:
		d = 7 * 24 * time.Hour
	case PeriodMonthly:
		d = 30 * 24 * time.Hour
	default:
		return nil
	}

	cutoff := now.Add(-d)
	return &cutoff
}
