package logtime

import (
	"testing"
	"time"

	"logtime/holiday"
)

func at(t testing.TB, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func closed(t testing.TB, begin, end string) Session {
	e := at(t, end)
	return Session{Begin: at(t, begin), End: &e}
}

func open(t testing.TB, begin string) Session {
	return Session{Begin: at(t, begin)}
}

func newGoals(t testing.TB) *GoalCalculator {
	t.Helper()
	cal, err := holiday.NewCalendar(holiday.France)
	if err != nil {
		t.Fatal(err)
	}
	return NewGoalCalculator(cal, DefaultDailyTarget)
}
