package core

import (
	"github.com/northstarwang/burnlens/schema"
)

// AlignedSeries merges the dense ideal line with the sparse observed samples
// on a common date index. Index has one slot per ideal-line point; a nil slot
// means no sample exists for that calendar day. Unaligned holds samples whose
// date has no ideal-line counterpart; they carry no drawable x-coordinate but
// still count toward aggregate totals.
type AlignedSeries struct {
	Ideal     []schema.IdealPoint
	Index     []*schema.BurndownPoint
	Unaligned []schema.BurndownPoint
}

// HasData reports whether any sample landed on the ideal-line index.
func (s AlignedSeries) HasData() bool {
	for _, p := range s.Index {
		if p != nil {
			return true
		}
	}
	return false
}

// AlignSeries builds the common date index for an ideal line and a sample
// sequence. Lookup is exact-match on the calendar-day key; sample order is
// not assumed. When several samples share a day, the later recording wins.
func AlignSeries(ideal []schema.IdealPoint, points []schema.BurndownPoint) AlignedSeries {
	slots := make(map[string]int, len(ideal))
	for i, ip := range ideal {
		slots[ip.Date.Key()] = i
	}

	aligned := AlignedSeries{
		Ideal: ideal,
		Index: make([]*schema.BurndownPoint, len(ideal)),
	}
	for i := range points {
		p := points[i]
		slot, ok := slots[p.Date.Key()]
		if !ok {
			aligned.Unaligned = append(aligned.Unaligned, p)
			continue
		}
		prev := aligned.Index[slot]
		if prev == nil || !p.Timestamp.Before(prev.Timestamp) {
			aligned.Index[slot] = &p
		}
	}
	return aligned
}
