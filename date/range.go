package date

import "fmt"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range [from, to].
// It returns an error when from is after to, the only invalid input a user can
// type that must be rejected before any computation.
func NewRange(from, to Date) (Range, error) {
	if from.After(to) {
		return Range{}, fmt.Errorf("start date %s is after end date %s", from, to)
	}
	return Range{From: from, To: to}, nil
}

// Contains return true when date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// YearRange returns the range covering a full calendar year.
func YearRange(year int) Range {
	return Range{From: YearStart(year), To: YearEnd(year)}
}

// Window returns the forward-looking range [from, from+days].
func Window(from Date, days int) Range {
	return Range{From: from, To: from.Add(days)}
}

// String formats the range in its standard "from..to" form.
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
