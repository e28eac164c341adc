package logtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Manager polls the report of one login and notifies once per period when
// the weekly or monthly goal is reached.
type Manager struct {
	reporter        *Reporter
	repo            GoalStateRepository
	notificator     Notificator
	logger          *slog.Logger
	login           string
	pollingInterval time.Duration
	clock           func() time.Time
}

func NewManager(reporter *Reporter, repo GoalStateRepository, notificator Notificator, logger *slog.Logger, login string, pollingInterval time.Duration) *Manager {
	return &Manager{
		reporter:        reporter,
		repo:            repo,
		notificator:     notificator,
		logger:          logger,
		login:           login,
		pollingInterval: pollingInterval,
		clock:           time.Now,
	}
}

func (m *Manager) Watch(ctx context.Context) error {
	m.logger.Debug("start polling", slog.String("login", m.login), slog.Duration("interval", m.pollingInterval))
	for {
		if err := m.Check(ctx, m.clock()); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			m.logger.Error("check goals", slog.String("login", m.login), slog.String("err", err.Error()))
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(m.pollingInterval):
		}
	}
}

// Check builds the report at now and sends the pending notifications.
func (m *Manager) Check(ctx context.Context, now time.Time) error {
	if m.login == "" {
		return ErrEmptyLogin
	}
	rp, err := m.reporter.BuildReport(ctx, m.login, now)
	if err != nil {
		return err
	}
	s, err := m.repo.GetGoalState(m.login)
	if err != nil {
		return err
	}
	m.logger.Debug("poll goals", slog.String("login", m.login), slog.String("remaining_week", rp.RemainingWeek), slog.String("remaining_month", rp.RemainingMonth))

	rem := m.reporter.Goals().Remaining(now, time.Duration(rp.WeekRaw)*time.Second, time.Duration(rp.MonthRaw)*time.Second)
	next := s
	var errs []error
	week := weekKey(now)
	if rem.WeeklyGoal > 0 && rem.Week == 0 && s.WeekReached != week {
		if err := m.notificator.Notify("Weekly goal reached", fmt.Sprintf("%s done this week (goal %dh)", rp.Week, rp.WeeklyGoalHours)); err != nil {
			errs = append(errs, err)
		} else {
			next.WeekReached = week
		}
	}
	month := monthKey(now)
	if rem.MonthlyGoal > 0 && rem.Month == 0 && s.MonthReached != month {
		if err := m.notificator.Notify("Monthly goal reached", fmt.Sprintf("%s done this month (goal %dh)", rp.Month, rp.MonthlyGoalHours)); err != nil {
			errs = append(errs, err)
		} else {
			next.MonthReached = month
		}
	}
	if next != s {
		if err := m.repo.SaveGoalState(m.login, next); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// weekKey identifies the counted part of a week; a week spanning two months
// gets a new key on the first of the month.
func weekKey(now time.Time) Date {
	return DateOf(CountedWeekWindow(now).Start)
}

func monthKey(now time.Time) string {
	return now.UTC().Format("2006-01")
}
