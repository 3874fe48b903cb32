package date

import (
	"testing"
	"time"
)

func TestPeriod_Next(t *testing.T) {
	on := New(2025, time.January, 31)
	tests := []struct {
		period Period
		want   Date
	}{
		{Weekly, New(2025, time.February, 7)},
		{Biweekly, New(2025, time.February, 14)},
		{Monthly, New(2025, time.March, 3)}, // Jan 31 + 1 calendar month, normalized
		{Quarterly, New(2025, time.May, 1)},
		{Yearly, New(2026, time.January, 31)},
	}
	for _, tt := range tests {
		if got := tt.period.Next(on); got != tt.want {
			t.Errorf("%v.Next(%v) = %v, want %v", tt.period, on, got, tt.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	for _, p := range []Period{Weekly, Biweekly, Monthly, Quarterly, Yearly} {
		got, err := ParsePeriod(p.String())
		if err != nil {
			t.Fatalf("ParsePeriod(%q) error = %v", p, err)
		}
		if got != p {
			t.Errorf("ParsePeriod(%q) = %v", p, got)
		}
	}
	if _, err := ParsePeriod("hourly"); err == nil {
		t.Error("ParsePeriod(hourly) expected an error")
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(New(2025, time.March, 10), New(2025, time.March, 1))
	if r.From != New(2025, time.March, 1) {
		t.Errorf("NewRange did not swap bounds: %+v", r)
	}
	if !r.Contains(New(2025, time.March, 1)) || !r.Contains(New(2025, time.March, 10)) {
		t.Error("Contains should include boundaries")
	}
	if r.Contains(New(2025, time.March, 11)) {
		t.Error("Contains should exclude dates after To")
	}
}
