package logtime

import "time"

const dateLayout = "2006-01-02"

// Date is a calendar day in UTC, formatted as 2006-01-02.
type Date string

func DateOf(t time.Time) Date {
	return Date(t.UTC().Format(dateLayout))
}

func (d Date) Time() (time.Time, error) {
	return time.Parse(dateLayout, string(d))
}

// Window is the half-open range [Start, End) a report is computed over.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Days lists the midnight of every day the window touches.
func (w Window) Days() []time.Time {
	var days []time.Time
	for d := StartOfDay(w.Start); d.Before(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfWeek returns the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	d := StartOfDay(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func StartOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func endOfToday(now time.Time) time.Time {
	return StartOfDay(now).AddDate(0, 0, 1)
}

func TodayWindow(now time.Time) Window {
	return Window{Start: StartOfDay(now), End: endOfToday(now)}
}

func WeekWindow(now time.Time) Window {
	return Window{Start: StartOfWeek(now), End: endOfToday(now)}
}

// CountedWeekWindow is the week window with its start clamped to the first
// of the month, the part of the week that counts toward the weekly goal.
func CountedWeekWindow(now time.Time) Window {
	w := WeekWindow(now)
	if ms := StartOfMonth(now); w.Start.Before(ms) {
		w.Start = ms
	}
	return w
}

func MonthWindow(now time.Time) Window {
	return Window{Start: StartOfMonth(now), End: endOfToday(now)}
}

// CalendarMonth covers every day of the given month.
func CalendarMonth(year int, month time.Month) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}
