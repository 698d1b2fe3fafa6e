package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", New(2025, time.January, 15), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
		{"2025-13-01", Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		from     Date
		days     int
		expected Date
	}{
		{New(2022, time.December, 31), 1, New(2023, time.January, 1)},
		{New(2022, time.December, 31), 5, New(2023, time.January, 5)},
		{New(2023, time.March, 1), -1, New(2023, time.February, 28)},
		{New(2024, time.March, 1), -1, New(2024, time.February, 29)}, // leap year
	}
	for _, tt := range tests {
		if got := tt.from.Add(tt.days); got != tt.expected {
			t.Errorf("%s.Add(%d) = %s, want %s", tt.from, tt.days, got, tt.expected)
		}
	}
}

func TestUnixRoundTrip(t *testing.T) {
	d := New(2022, time.June, 10)
	if got := FromUnix(d.Unix()); got != d {
		t.Errorf("FromUnix(Unix()) = %s, want %s", got, d)
	}
	// intraday timestamps collapse to their day
	if got := FromUnix(d.Unix() + 3600*14); got != d {
		t.Errorf("FromUnix(mid-day) = %s, want %s", got, d)
	}
}

func TestNewRange(t *testing.T) {
	from, to := New(2022, time.January, 1), New(2022, time.December, 31)
	if _, err := NewRange(from, to); err != nil {
		t.Errorf("NewRange(%s, %s) unexpected error: %v", from, to, err)
	}
	if _, err := NewRange(to, from); err == nil {
		t.Error("NewRange accepted a start date after the end date")
	}
	// a single-day range is valid
	if _, err := NewRange(from, from); err != nil {
		t.Errorf("NewRange(%s, %s) unexpected error: %v", from, from, err)
	}
}

func TestRangeContains(t *testing.T) {
	r := YearRange(2022)
	tests := []struct {
		on       Date
		expected bool
	}{
		{New(2022, time.January, 1), true}, // boundaries are included
		{New(2022, time.December, 31), true},
		{New(2022, time.June, 15), true},
		{New(2021, time.December, 31), false},
		{New(2023, time.January, 1), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.on); got != tt.expected {
			t.Errorf("%s.Contains(%s) = %v, want %v", r, tt.on, got, tt.expected)
		}
	}
}

func TestWindow(t *testing.T) {
	w := Window(New(2022, time.December, 31), 5)
	if want := New(2023, time.January, 5); w.To != want {
		t.Errorf("Window to = %s, want %s", w.To, want)
	}
	if !w.Contains(New(2022, time.December, 31)) || !w.Contains(New(2023, time.January, 5)) {
		t.Errorf("Window %s does not contain its own boundaries", w)
	}
}

func TestDateJSON(t *testing.T) {
	d := New(2022, time.March, 1)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if want := `"2022-03-01"`; string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestHistoryAppend(t *testing.T) {
	var h History[float64]
	h.Append(New(2022, time.June, 1), 110)
	h.Append(New(2022, time.January, 3), 100)
	h.Append(New(2022, time.June, 1), 111) // overwrite

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	// chronological regardless of insertion order
	var days []Date
	for on := range h.Values() {
		days = append(days, on)
	}
	if days[0] != New(2022, time.January, 3) || days[1] != New(2022, time.June, 1) {
		t.Errorf("Values() order = %v", days)
	}
	if v, ok := h.Get(New(2022, time.June, 1)); !ok || v != 111 {
		t.Errorf("Get() = %v, %v, want the overwritten 111", v, ok)
	}
}

func TestHistoryFirstLast(t *testing.T) {
	var h History[float64]
	h.Append(New(2022, time.January, 3), 100)
	h.Append(New(2022, time.June, 1), 110)
	h.Append(New(2023, time.January, 4), 150)

	r := YearRange(2022)
	if on, v, ok := h.First(r); !ok || on != New(2022, time.January, 3) || v != 100 {
		t.Errorf("First(%s) = %s, %v, %v", r, on, v, ok)
	}
	if on, v, ok := h.Last(r); !ok || on != New(2022, time.June, 1) || v != 110 {
		t.Errorf("Last(%s) = %s, %v, %v", r, on, v, ok)
	}
	if _, _, ok := h.First(YearRange(2021)); ok {
		t.Error("First on an empty span reported a value")
	}
}
