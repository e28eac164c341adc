package logtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

type Report struct {
	Today            string `json:"today"`
	Week             string `json:"week"`
	Month            string `json:"month"`
	WeekRaw          int64  `json:"week_raw"`
	MonthRaw         int64  `json:"month_raw"`
	RemainingWeek    string `json:"remaining_week"`
	RemainingMonth   string `json:"remaining_month"`
	WeeklyGoalHours  int    `json:"weekly_goal_hours"`
	MonthlyGoalHours int    `json:"monthly_goal_hours"`
}

// SessionSource supplies the raw sessions of one login.
type SessionSource interface {
	FetchSessions(ctx context.Context, login string) ([]Session, error)
}

// Build computes the report for sessions as seen at now.
// Today and month credit every day; the week only credits the working days
// that also count toward the weekly goal.
func Build(sessions []Session, now time.Time, goals *GoalCalculator) (Report, error) {
	if err := Validate(sessions); err != nil {
		return Report{}, err
	}
	now = now.UTC()

	today := MergeByDay(sessions, TodayWindow(now), now).Total()
	month := MergeByDay(sessions, MonthWindow(now), now).Total()
	week := MergeByDay(sessions, CountedWeekWindow(now), now).TotalOn(goals.WeekWorkingDays(now))

	rem := goals.Remaining(now, week, month)
	return Report{
		Today:            FormatDuration(today),
		Week:             FormatDuration(week),
		Month:            FormatDuration(month),
		WeekRaw:          int64(week / time.Second),
		MonthRaw:         int64(month / time.Second),
		RemainingWeek:    FormatDuration(rem.Week),
		RemainingMonth:   FormatDuration(rem.Month),
		WeeklyGoalHours:  int(rem.WeeklyGoal / time.Hour),
		MonthlyGoalHours: int(rem.MonthlyGoal / time.Hour),
	}, nil
}

type Reporter struct {
	source SessionSource
	goals  *GoalCalculator
	logger *slog.Logger
}

func NewReporter(source SessionSource, goals *GoalCalculator, logger *slog.Logger) *Reporter {
	return &Reporter{
		source: source,
		goals:  goals,
		logger: logger,
	}
}

func (r *Reporter) Goals() *GoalCalculator {
	return r.goals
}

// Sessions fetches the sessions of login once. Any failure of the source is
// reported as ErrSourceUnavailable.
func (r *Reporter) Sessions(ctx context.Context, login string) ([]Session, error) {
	if login == "" {
		return nil, ErrEmptyLogin
	}
	ss, err := r.source.FetchSessions(ctx, login)
	if err != nil {
		var malformed *MalformedSessionError
		if errors.As(err, &malformed) || errors.Is(err, ErrSourceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return ss, nil
}

func (r *Reporter) BuildReport(ctx context.Context, login string, now time.Time) (Report, error) {
	ss, err := r.Sessions(ctx, login)
	if err != nil {
		r.logger.Error("fetch sessions", slog.String("login", login), slog.String("err", err.Error()))
		return Report{}, err
	}
	r.logger.Debug("build report", slog.String("login", login), slog.Int("sessions", len(ss)), slog.Time("now", now))

	rp, err := Build(ss, now, r.goals)
	if err != nil {
		r.logger.Error("build report", slog.String("login", login), slog.String("err", err.Error()))
		return Report{}, err
	}
	return rp, nil
}
