package holiday

import (
	"slices"
	"time"
)

const dateLayout = "2006-01-02"

// Set is an immutable collection of holidays keyed by calendar date.
type Set struct {
	byDate map[string]Holiday
}

func newSet(hs []Holiday) Set {
	s := Set{byDate: make(map[string]Holiday, len(hs))}
	for _, h := range hs {
		key := h.Date.Format(dateLayout)
		// two holidays can fall on the same day; keep the first name
		if _, ok := s.byDate[key]; ok {
			continue
		}
		s.byDate[key] = h
	}
	return s
}

func (s Set) Len() int {
	return len(s.byDate)
}

// Contains reports whether the calendar date of t (read in t's own location) is a holiday.
func (s Set) Contains(t time.Time) bool {
	_, ok := s.byDate[t.Format(dateLayout)]
	return ok
}

func (s Set) Lookup(t time.Time) (Holiday, bool) {
	h, ok := s.byDate[t.Format(dateLayout)]
	return h, ok
}

// Sorted returns the holidays in chronological order.
func (s Set) Sorted() []Holiday {
	hs := make([]Holiday, 0, len(s.byDate))
	for _, h := range s.byDate {
		hs = append(hs, h)
	}
	slices.SortFunc(hs, func(a, b Holiday) int {
		return a.Date.Compare(b.Date)
	})
	return hs
}
