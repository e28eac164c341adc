package logtime

import "time"

const DefaultDailyTarget = 7 * time.Hour

// WorkingCalendar is satisfied by *holiday.Calendar.
type WorkingCalendar interface {
	IsWorkingDay(t time.Time) bool
	HolidayName(t time.Time) (string, bool)
}

type GoalCalculator struct {
	cal         WorkingCalendar
	dailyTarget time.Duration
}

func NewGoalCalculator(cal WorkingCalendar, dailyTarget time.Duration) *GoalCalculator {
	if dailyTarget <= 0 {
		dailyTarget = DefaultDailyTarget
	}
	return &GoalCalculator{cal: cal, dailyTarget: dailyTarget}
}

func (g *GoalCalculator) DailyTarget() time.Duration {
	return g.dailyTarget
}

func (g *GoalCalculator) IsWorkingDay(t time.Time) bool {
	return g.cal.IsWorkingDay(t)
}

func (g *GoalCalculator) workingDays(from, until time.Time) []time.Time {
	var days []time.Time
	for d := from; d.Before(until); d = d.AddDate(0, 0, 1) {
		if g.cal.IsWorkingDay(d) {
			days = append(days, d)
		}
	}
	return days
}

// WeekWorkingDays lists the working days from Monday through today. The week
// start is clamped to the first of the month so days of the previous month
// never count toward this month's week.
func (g *GoalCalculator) WeekWorkingDays(now time.Time) []time.Time {
	w := CountedWeekWindow(now)
	return g.workingDays(w.Start, w.End)
}

// MonthWorkingDays lists every working day of the month containing now.
func (g *GoalCalculator) MonthWorkingDays(now time.Time) []time.Time {
	m := CalendarMonth(now.UTC().Year(), now.UTC().Month())
	return g.workingDays(m.Start, m.End)
}

func (g *GoalCalculator) WeeklyGoal(now time.Time) time.Duration {
	return time.Duration(len(g.WeekWorkingDays(now))) * g.dailyTarget
}

func (g *GoalCalculator) MonthlyGoal(now time.Time) time.Duration {
	return time.Duration(len(g.MonthWorkingDays(now))) * g.dailyTarget
}

type Remaining struct {
	Week        time.Duration
	Month       time.Duration
	WeeklyGoal  time.Duration
	MonthlyGoal time.Duration
}

func (g *GoalCalculator) Remaining(now time.Time, doneWeek, doneMonth time.Duration) Remaining {
	weekly := g.WeeklyGoal(now)
	monthly := g.MonthlyGoal(now)
	return Remaining{
		Week:        remaining(weekly, doneWeek),
		Month:       remaining(monthly, doneMonth),
		WeeklyGoal:  weekly,
		MonthlyGoal: monthly,
	}
}

func remaining(goal, done time.Duration) time.Duration {
	if done >= goal {
		return 0
	}
	return goal - done
}
