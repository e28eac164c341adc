package holiday

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const cachedYears = 16

// Calendar answers working-day questions for one ruleset. Holiday sets are
// computed once per year and kept in an LRU cache, so a Calendar can be
// shared between concurrent requests.
type Calendar struct {
	ruleset Ruleset
	years   *lru.Cache[int, Set]
}

func NewCalendar(rs Ruleset) (*Calendar, error) {
	years, err := lru.New[int, Set](cachedYears)
	if err != nil {
		return nil, err
	}
	return &Calendar{ruleset: rs, years: years}, nil
}

func (c *Calendar) Ruleset() Ruleset {
	return c.ruleset
}

func (c *Calendar) HolidaysFor(year int) Set {
	if s, ok := c.years.Get(year); ok {
		return s
	}
	s := newSet(c.ruleset.Holidays(year))
	c.years.Add(year, s)
	return s
}

func (c *Calendar) IsHoliday(t time.Time) bool {
	return c.HolidaysFor(t.Year()).Contains(t)
}

func (c *Calendar) HolidayName(t time.Time) (string, bool) {
	h, ok := c.HolidaysFor(t.Year()).Lookup(t)
	if !ok {
		return "", false
	}
	return h.Name, true
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWorkingDay reports whether t falls on a weekday that is not a public holiday.
func (c *Calendar) IsWorkingDay(t time.Time) bool {
	return !IsWeekend(t) && !c.IsHoliday(t)
}

// WorkingDays lists the working days between the dates of from and to, both
// inclusive, as midnights in from's location.
func (c *Calendar) WorkingDays(from, to time.Time) []time.Time {
	var days []time.Time
	last := midnight(to.In(from.Location()))
	for d := midnight(from); !d.After(last); d = d.AddDate(0, 0, 1) {
		if c.IsWorkingDay(d) {
			days = append(days, d)
		}
	}
	return days
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
