package logtime

import "time"

// DaySummary is one row of a month view.
type DaySummary struct {
	Date      Date
	Day       time.Time
	Intervals []Interval
	Done      time.Duration
	Working   bool
	Holiday   string
	Goal      time.Duration
}

// MonthBreakdown summarises every day of the given month. Days after now are
// listed with no activity.
func MonthBreakdown(sessions []Session, year int, month time.Month, now time.Time, goals *GoalCalculator) []DaySummary {
	now = now.UTC()
	m := CalendarMonth(year, month)
	w := m
	if end := endOfToday(now); end.Before(w.End) {
		w.End = end
	}
	var bucket DailyBucket
	if w.End.After(w.Start) {
		bucket = MergeByDay(sessions, w, now)
	}

	days := m.Days()
	summaries := make([]DaySummary, 0, len(days))
	for _, day := range days {
		d := DateOf(day)
		s := DaySummary{
			Date:      d,
			Day:       day,
			Intervals: bucket[d],
			Done:      bucket.DayTotal(d),
			Working:   goals.IsWorkingDay(day),
		}
		s.Holiday, _ = goals.cal.HolidayName(day)
		if s.Working {
			s.Goal = goals.dailyTarget
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// TotalDone sums the floored day totals of a breakdown.
func TotalDone(days []DaySummary) time.Duration {
	var total time.Duration
	for _, d := range days {
		total += d.Done
	}
	return total
}
