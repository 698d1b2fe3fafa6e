package divtrack

import (
	"context"
	"errors"
	"testing"

	"github.com/divlab/divtrack/date"
)

func TestResolverResolve(t *testing.T) {
	provider := &fakeProvider{series: closes("USD", map[string]float64{
		"2022-12-30": 148.00,
		"2023-01-04": 150.00, // first trading day after the new-year break
		"2023-01-05": 151.00,
	})}
	rv := &Resolver{Provider: provider}

	tests := []struct {
		on        string
		wantPrice Money
		wantOK    bool
	}{
		{"2022-12-30", USD(148.00), true}, // exact trading day
		{"2022-12-31", USD(150.00), true}, // gap, next close within window
		{"2023-01-06", Money{}, false},    // no trading day within 5 days
	}
	for _, tt := range tests {
		got, ok, err := rv.Resolve(context.Background(), "AAPL", day(tt.on))
		if err != nil {
			t.Fatalf("Resolve(%s): %v", tt.on, err)
		}
		if ok != tt.wantOK {
			t.Errorf("Resolve(%s) ok = %v, want %v", tt.on, ok, tt.wantOK)
			continue
		}
		if ok && !got.Equal(tt.wantPrice) {
			t.Errorf("Resolve(%s) = %s, want %s", tt.on, got, tt.wantPrice)
		}
	}
}

func TestResolverResolveError(t *testing.T) {
	rv := &Resolver{Provider: &fakeProvider{err: ErrRateLimited}}
	_, ok, err := rv.Resolve(context.Background(), "AAPL", day("2022-12-31"))
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("Resolve() error = %v, want ErrRateLimited", err)
	}
	if ok {
		t.Error("Resolve() reported a price alongside an error")
	}
}

func TestResolverLookahead(t *testing.T) {
	provider := &fakeProvider{series: closes("USD", map[string]float64{
		"2023-01-10": 150.00,
	})}
	rv := &Resolver{Provider: provider, Lookahead: 10}

	got, ok, err := rv.Resolve(context.Background(), "AAPL", day("2023-01-01"))
	if err != nil || !ok {
		t.Fatalf("Resolve() = %v, %v, want a price", ok, err)
	}
	if want := USD(150.00); !got.Equal(want) {
		t.Errorf("Resolve() = %s, want %s", got, want)
	}
}

func TestResolverYearEnd(t *testing.T) {
	provider := &fakeProvider{series: closes("USD", map[string]float64{
		"2022-12-29": 147.00, // last trading day of the year
		"2023-01-04": 150.00,
	})}

	tests := []struct {
		policy YearEndPolicy
		want   Money
	}{
		{Dec31Forward, USD(150.00)},
		{LastCloseInYear, USD(147.00)},
	}
	for _, tt := range tests {
		rv := &Resolver{Provider: provider, Policy: tt.policy}
		got, ok, err := rv.YearEnd(context.Background(), "AAPL", 2022)
		if err != nil || !ok {
			t.Fatalf("YearEnd(%s) = %v, %v, want a price", tt.policy, ok, err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("YearEnd(%s) = %s, want %s", tt.policy, got, tt.want)
		}
	}
}

func TestParseYearEndPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    YearEndPolicy
		wantErr bool
	}{
		{"", Dec31Forward, false},
		{"dec31-forward", Dec31Forward, false},
		{"last-close", LastCloseInYear, false},
		{"middle-out", "", true},
	}
	for _, tt := range tests {
		got, err := ParseYearEndPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseYearEndPolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseYearEndPolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPriceSeriesFirstLast(t *testing.T) {
	s := closes("USD", map[string]float64{
		"2022-01-03": 100,
		"2022-06-01": 110,
		"2022-12-29": 120,
	})
	yr := date.YearRange(2022)

	first, ok := s.First(yr)
	if !ok || first.Date != day("2022-01-03") || !first.Close.Equal(USD(100)) {
		t.Errorf("First() = %v, %v", first, ok)
	}
	last, ok := s.Last(yr)
	if !ok || last.Date != day("2022-12-29") || !last.Close.Equal(USD(120)) {
		t.Errorf("Last() = %v, %v", last, ok)
	}
}
