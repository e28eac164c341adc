package logtime

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

func dates(days []time.Time) []Date {
	ds := make([]Date, len(days))
	for i, d := range days {
		ds[i] = DateOf(d)
	}
	return ds
}

func TestWeekWorkingDaysClampsToMonthStart(t *testing.T) {
	g := newGoals(t)
	// friday, the week started on monday 2025-09-29
	now := at(t, "2025-10-03T15:00:00Z")

	got := dates(g.WeekWorkingDays(now))
	want := []Date{"2025-10-01", "2025-10-02", "2025-10-03"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("day %d: got %s, want %s", i, got[i], want[i])
		}
	}
	if goal := g.WeeklyGoal(now); goal != 21*time.Hour {
		t.Errorf("weekly goal: got %s, want 21h", goal)
	}
}

func TestWeekWorkingDaysSkipsHolidays(t *testing.T) {
	g := newGoals(t)
	// Ascension 2025 is thursday May 29
	got := dates(g.WeekWorkingDays(at(t, "2025-05-30T09:00:00Z")))
	want := []Date{"2025-05-26", "2025-05-27", "2025-05-28", "2025-05-30"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("day %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestMonthlyGoal(t *testing.T) {
	g := newGoals(t)
	tests := []struct {
		name string
		now  string
		days int
	}{
		// 30 days, 8 weekend days, Nov 1 holiday (Nov 11 falls on a saturday)
		{"november 2023", "2023-11-15T12:00:00Z", 21},
		{"october 2025", "2025-10-31T23:59:59Z", 23},
		// May 1, May 8, May 29 on weekdays
		{"may 2025", "2025-05-02T08:00:00Z", 19},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := at(t, tt.now)
			if got := len(g.MonthWorkingDays(now)); got != tt.days {
				t.Errorf("working days: got %d, want %d", got, tt.days)
			}
			if got, want := g.MonthlyGoal(now), time.Duration(tt.days)*7*time.Hour; got != want {
				t.Errorf("monthly goal: got %s, want %s", got, want)
			}
		})
	}
}

func TestRemaining(t *testing.T) {
	g := newGoals(t)
	now := at(t, "2025-10-03T15:00:00Z")

	r := g.Remaining(now, 20*time.Hour, 200*time.Hour)
	if r.Week != time.Hour {
		t.Errorf("remaining week: got %s, want 1h", r.Week)
	}
	if r.Month != 0 {
		t.Errorf("remaining month: got %s, want 0", r.Month)
	}
	if r.WeeklyGoal != 21*time.Hour || r.MonthlyGoal != 161*time.Hour {
		t.Errorf("goals: got %s / %s", r.WeeklyGoal, r.MonthlyGoal)
	}
}

func TestNoWorkingDaysYet(t *testing.T) {
	g := newGoals(t)
	// saturday November 1st 2025, also a holiday
	now := at(t, "2025-11-01T10:00:00Z")
	if n := len(g.WeekWorkingDays(now)); n != 0 {
		t.Errorf("expected no working days, got %d", n)
	}
	r := g.Remaining(now, 0, 0)
	if r.Week != 0 || r.WeeklyGoal != 0 {
		t.Errorf("expected zero weekly goal and remaining, got %+v", r)
	}
}

func TestRemainingNeverNegative(t *testing.T) {
	g := newGoals(t)
	rapid.Check(t, func(t *rapid.T) {
		now := generateNow(t).AddDate(0, rapid.IntRange(0, 24).Draw(t, "months"), 0)
		week := time.Duration(rapid.Int64Range(0, 400*3600).Draw(t, "week_s")) * time.Second
		month := time.Duration(rapid.Int64Range(0, 400*3600).Draw(t, "month_s")) * time.Second
		r := g.Remaining(now, week, month)
		if r.Week < 0 || r.Month < 0 {
			t.Fatalf("negative remaining: %+v", r)
		}
		if r.Week > r.WeeklyGoal || r.Month > r.MonthlyGoal {
			t.Fatalf("remaining above goal: %+v", r)
		}
	})
}

func TestDefaultDailyTarget(t *testing.T) {
	cal := newGoals(t).cal
	if got := NewGoalCalculator(cal, 0).DailyTarget(); got != DefaultDailyTarget {
		t.Errorf("got %s, want %s", got, DefaultDailyTarget)
	}
	if got := NewGoalCalculator(cal, 8*time.Hour).WeeklyGoal(at(t, "2025-10-03T15:00:00Z")); got != 24*time.Hour {
		t.Errorf("got %s, want 24h", got)
	}
}
