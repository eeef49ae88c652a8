package ledger

import (
	"fmt"
	"time"
)

// Month is a year-month pair as selected in the console range picker.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses the "YYYY-MM" form used by the range selector.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// FirstDay returns midnight UTC on the first day of the month.
func (m Month) FirstDay() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	t := m.FirstDay().AddDate(0, 1, 0)
	return Month{Year: t.Year(), Month: t.Month()}
}

// After reports whether m is strictly later than other.
func (m Month) After(other Month) bool {
	return m.FirstDay().After(other.FirstDay())
}

// BuildWorkingDays walks every calendar date from the first day of
// fromMonth up to (but excluding) the first day of the month after
// toMonth, skipping the weekly rest day (Sunday). The result is
// strictly ascending. An inverted range yields an empty sequence;
// flagging that is the caller's job.
func BuildWorkingDays(fromMonth, toMonth Month) []time.Time {
	days := []time.Time{}
	end := toMonth.Next().FirstDay()
	for d := fromMonth.FirstDay(); d.Before(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			continue
		}
		days = append(days, d)
	}
	return days
}
