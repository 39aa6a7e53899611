package schema

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar-day timestamp. It accepts both "2006-01-02" and RFC3339
// strings in JSON, since tracking collaborators export either, and always
// marshals back to the date-only form.
type Date struct {
	time.Time
}

// NewDate wraps a timestamp as a calendar date.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// Key reduces the date to its canonical calendar-day key.
func (d Date) Key() string {
	return d.Format(DateKeyFormat)
}

// UnmarshalJSON parses a date-only or RFC3339 string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(DateKeyFormat, s); err == nil {
		d.Time = t
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	return fmt.Errorf("invalid date: %q (expected YYYY-MM-DD or RFC3339)", s)
}

// MarshalJSON renders the canonical date-only form.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Key() + `"`), nil
}
