package view

import (
	"context"
	"fmt"
	"time"

	"logtime/logtime"
)

type ViewRepository interface {
	ListDays(ctx context.Context, login, yearMonth string) (monthForView, error)
}

type viewRepository struct {
	reporter *logtime.Reporter
	clock    func() time.Time
}

func NewViewRepository(reporter *logtime.Reporter) ViewRepository {
	return &viewRepository{reporter: reporter, clock: time.Now}
}

func (r *viewRepository) ListDays(ctx context.Context, login, yearMonth string) (monthForView, error) {
	now := r.clock().UTC()
	monthStart, err := getMonthStart(yearMonth, now)
	if err != nil {
		return monthForView{}, err
	}

	ss, err := r.reporter.Sessions(ctx, login)
	if err != nil {
		return monthForView{}, err
	}
	if err := logtime.Validate(ss); err != nil {
		return monthForView{}, err
	}

	return monthForView{
		Login: login,
		Month: monthStart,
		Days:  logtime.MonthBreakdown(ss, monthStart.Year(), monthStart.Month(), now, r.reporter.Goals()),
	}, nil
}

// getMonthStart parses 2006-01; an empty string means the month of now.
func getMonthStart(yearMonth string, now time.Time) (time.Time, error) {
	if yearMonth == "" {
		return logtime.StartOfMonth(now), nil
	}
	monthStart, err := time.Parse("2006-01", yearMonth)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM (ex: 2024-03)", yearMonth)
	}
	return monthStart, nil
}

type monthForView struct {
	Login string
	Month time.Time
	Days  []logtime.DaySummary
}

func (m monthForView) YearMonth() string {
	return m.Month.Format("2006-01")
}

func (m monthForView) Total() time.Duration {
	return logtime.TotalDone(m.Days)
}

// Goal is the sum of the daily goals of the month's working days.
func (m monthForView) Goal() time.Duration {
	var total time.Duration
	for _, d := range m.Days {
		total += d.Goal
	}
	return total
}

func (m monthForView) FindByDate(date logtime.Date) (logtime.DaySummary, bool) {
	for _, d := range m.Days {
		if d.Date == date {
			return d, true
		}
	}
	return logtime.DaySummary{}, false
}
