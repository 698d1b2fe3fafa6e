package divtrack

import (
	"slices"

	"github.com/divlab/divtrack/date"
)

// DividendEvent is a single dividend entitlement: the amount paid per share,
// recorded on its ex-date. Events are immutable once fetched.
type DividendEvent struct {
	ExDate date.Date
	Amount Money // per share
}

// DividendHistory is a collection of dividend events ordered ascending by
// ex-date. Dates may repeat: a special and a regular dividend on the same
// ex-date are two distinct events and are never deduplicated.
type DividendHistory []DividendEvent

// Sort orders the history ascending by ex-date. The sort is stable so that
// same-day events keep their provider order.
func (h DividendHistory) Sort() {
	slices.SortStableFunc(h, func(a, b DividendEvent) int {
		switch {
		case a.ExDate.Before(b.ExDate):
			return -1
		case a.ExDate.After(b.ExDate):
			return 1
		default:
			return 0
		}
	})
}

// FilterRange returns the events whose ex-date falls within r, boundaries
// included. Filtering is idempotent: filtering an already-filtered history by
// the same range returns the same events.
func (h DividendHistory) FilterRange(r date.Range) DividendHistory {
	var out DividendHistory
	for _, ev := range h {
		if r.Contains(ev.ExDate) {
			out = append(out, ev)
		}
	}
	return out
}

// Since returns the events with ex-date on or after the given day.
func (h DividendHistory) Since(on date.Date) DividendHistory {
	var out DividendHistory
	for _, ev := range h {
		if !ev.ExDate.Before(on) {
			out = append(out, ev)
		}
	}
	return out
}

// Sum returns the total of all per-share amounts, at full precision.
func (h DividendHistory) Sum() Money {
	var total Money
	for _, ev := range h {
		total = total.Add(ev.Amount)
	}
	return total
}

// AggregateByYear filters events to r and groups them by the calendar year of
// their ex-date, summing the per-share amounts per group at full precision.
//
// It produces one partial YearlySummary (year and total only, no price or
// yield yet) per distinct year present, ordered ascending by year. An empty
// input yields an empty output: "no dividends" is a valid state, not an error.
func AggregateByYear(events DividendHistory, r date.Range) []YearlySummary {
	totals := make(map[int]Money)
	for _, ev := range events.FilterRange(r) {
		totals[ev.ExDate.Year()] = totals[ev.ExDate.Year()].Add(ev.Amount)
	}

	years := make([]int, 0, len(totals))
	for y := range totals {
		years = append(years, y)
	}
	slices.Sort(years)

	summaries := make([]YearlySummary, 0, len(years))
	for _, y := range years {
		summaries = append(summaries, YearlySummary{Year: y, TotalDividend: totals[y]})
	}
	return summaries
}
