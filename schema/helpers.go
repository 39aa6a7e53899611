package schema

import (
	"fmt"
	"time"
)

// DateKeyFormat is the canonical calendar-day key used to align series.
const DateKeyFormat = "2006-01-02"

// DateKey reduces a timestamp to its calendar-day key. Alignment between the
// ideal line and the observed samples is exact-match on this key; there is no
// fuzzy date matching.
func DateKey(t time.Time) string {
	return t.Format(DateKeyFormat)
}

// CheckIdealLine validates the ideal-line invariant for a burndown:
// one point per calendar day from start to end inclusive, strictly ordered,
// monotonically non-increasing, starting at totalPoints and ending at zero.
func CheckIdealLine(b *SprintBurndown) error {
	n := len(b.IdealLine)
	if n == 0 {
		return fmt.Errorf("ideal line is empty")
	}
	first := b.IdealLine[0]
	last := b.IdealLine[n-1]
	if first.Remaining != b.TotalPoints {
		return fmt.Errorf("ideal line starts at %.2f, want total points %.2f", first.Remaining, b.TotalPoints)
	}
	if last.Remaining != 0 {
		return fmt.Errorf("ideal line ends at %.2f, want 0", last.Remaining)
	}
	for i := 1; i < n; i++ {
		prev, cur := b.IdealLine[i-1], b.IdealLine[i]
		if !cur.Date.After(prev.Date.Time) {
			return fmt.Errorf("ideal line dates not strictly increasing at index %d", i)
		}
		if cur.Date.Sub(prev.Date.Time) != 24*time.Hour {
			return fmt.Errorf("ideal line has a calendar gap at index %d", i)
		}
		if cur.Remaining > prev.Remaining {
			return fmt.Errorf("ideal line remaining increases at index %d", i)
		}
	}
	return nil
}
