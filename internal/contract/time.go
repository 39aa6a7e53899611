package contract

import (
	"time"
)

// FormatMonthDay renders the short month/day form used for x-axis labels.
// Month and day extraction lives here so the renderer stays free of locale
// concerns.
func FormatMonthDay(t time.Time) string {
	return t.Format("1/2")
}

// FormatDate renders the canonical calendar-date form.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DaysBetween counts calendar days from a to b inclusive, ignoring the
// wall-clock portion of both timestamps.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
