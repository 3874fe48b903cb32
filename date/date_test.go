package date

import (
	"testing"
	"time"
)

func TestNew_Normalizes(t *testing.T) {
	got := New(2025, time.January, 32)
	want := New(2025, time.February, 1)
	if got != want {
		t.Errorf("New(2025, January, 32) = %v, want %v", got, want)
	}
}

func TestAddMonth_EndOfMonth(t *testing.T) {
	// January 31st + 1 month rolls over to March 3rd (2025 is not a leap year).
	got := New(2025, time.January, 31).AddMonth(1)
	want := New(2025, time.March, 3)
	if got != want {
		t.Errorf("AddMonth(1) = %v, want %v", got, want)
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		a, b Date
		want int
	}{
		{New(2025, time.March, 15), New(2025, time.March, 1), 14},
		{New(2025, time.March, 1), New(2025, time.March, 15), -14},
		{New(2025, time.March, 1), New(2025, time.February, 1), 28},
		{New(2025, time.March, 1), New(2025, time.March, 1), 0},
	}
	for _, tt := range tests {
		if got := tt.a.Sub(tt.b); got != tt.want {
			t.Errorf("%v.Sub(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestYearsSince(t *testing.T) {
	birth := New(1980, time.June, 15)
	tests := []struct {
		on   Date
		want int
	}{
		{New(2025, time.June, 14), 44},
		{New(2025, time.June, 15), 45},
		{New(2025, time.December, 1), 45},
	}
	for _, tt := range tests {
		if got := tt.on.YearsSince(birth); got != tt.want {
			t.Errorf("%v.YearsSince(%v) = %d, want %d", tt.on, birth, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if d != New(2025, time.July, 1) {
		t.Errorf("Parse(2025-7-1) = %v", d)
	}
	if _, err := Parse("not-a-date"); err == nil {
		t.Error("Parse(not-a-date) expected an error")
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := New(2025, time.August, 31)
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(data) != `"2025-08-31"` {
		t.Errorf("MarshalJSON() = %s", data)
	}
	var back Date
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
