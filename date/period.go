package date

import (
	"fmt"
	"strings"
)

// Period is the cadence of a recurring cash flow.
type Period int

const (
	Weekly Period = iota
	Biweekly
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Weekly:
		return "weekly"
	case Biweekly:
		return "biweekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Next returns d advanced by one period. Week-based periods advance by a
// fixed number of days, the others by calendar months, so a monthly cadence
// anchored on the 31st lands on month ends, not on 30-day blocks.
func (p Period) Next(d Date) Date {
	switch p {
	case Weekly:
		return d.Add(7)
	case Biweekly:
		return d.Add(14)
	case Monthly:
		return d.AddMonth(1)
	case Quarterly:
		return d.AddMonth(3)
	case Yearly:
		return d.AddMonth(12)
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Days returns the nominal length of the period in days.
func (p Period) Days() float64 {
	switch p {
	case Weekly:
		return 7
	case Biweekly:
		return 14
	case Monthly:
		return 30
	case Quarterly:
		return 90
	case Yearly:
		return 365
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod parses a period name, accepting both noun and adjective forms.
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "weekly", "week":
		return Weekly, nil
	case "biweekly", "fortnight", "fortnightly":
		return Biweekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Weekly, fmt.Errorf("unknown period %s", p)
	}
}
