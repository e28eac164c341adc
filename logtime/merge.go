package logtime

import (
	"slices"
	"time"
)

// clip resolves open sessions against now and clips every session to w.
// Sessions that do not intersect w, or cover no time once clipped, are dropped.
func clip(sessions []Session, w Window, now time.Time) []Interval {
	ivs := make([]Interval, 0, len(sessions))
	for _, s := range sessions {
		end := s.ResolvedEnd(now)
		if !s.Begin.Before(w.End) || !end.After(w.Start) {
			continue
		}
		iv := Interval{Start: s.Begin, End: end}
		if iv.Start.Before(w.Start) {
			iv.Start = w.Start
		}
		if iv.End.After(w.End) {
			iv.End = w.End
		}
		if !iv.End.After(iv.Start) {
			continue
		}
		ivs = append(ivs, iv)
	}
	return ivs
}

// sweep merges intervals in place after a stable sort by start. Touching
// intervals are merged too, so the result is strictly increasing.
func sweep(ivs []Interval) []Interval {
	slices.SortStableFunc(ivs, func(a, b Interval) int {
		return a.Start.Compare(b.Start)
	})
	merged := ivs[:0]
	for _, iv := range ivs {
		if n := len(merged); n > 0 && !iv.Start.After(merged[n-1].End) {
			if iv.End.After(merged[n-1].End) {
				merged[n-1].End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// Merge returns the minimal set of non-overlapping intervals covering the
// sessions restricted to w. Open sessions count until now.
func Merge(sessions []Session, w Window, now time.Time) []Interval {
	return sweep(clip(sessions, w, now))
}

// DailyBucket groups merged intervals by the day their start falls on.
type DailyBucket map[Date][]Interval

// MergeByDay merges across the whole window first, then files each merged
// interval under the day containing its start. An interval crossing midnight
// stays whole on its first day and is never counted twice.
func MergeByDay(sessions []Session, w Window, now time.Time) DailyBucket {
	b := make(DailyBucket)
	for _, iv := range Merge(sessions, w, now) {
		d := DateOf(iv.Start)
		b[d] = append(b[d], iv)
	}
	return b
}

// Dates returns the bucket keys in chronological order.
func (b DailyBucket) Dates() []Date {
	ds := make([]Date, 0, len(b))
	for d := range b {
		ds = append(ds, d)
	}
	slices.Sort(ds)
	return ds
}
