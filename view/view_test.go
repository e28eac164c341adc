package view

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"logtime/holiday"
	"logtime/logtime"

	"github.com/gdamore/tcell/v2"
)

type staticSource []logtime.Session

func (s staticSource) FetchSessions(ctx context.Context, login string) ([]logtime.Session, error) {
	return s, nil
}

func newTestRepository(t *testing.T, ss []logtime.Session, now time.Time) *viewRepository {
	t.Helper()
	cal, err := holiday.NewCalendar(holiday.France)
	if err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reporter := logtime.NewReporter(staticSource(ss), logtime.NewGoalCalculator(cal, logtime.DefaultDailyTarget), logger)
	return &viewRepository{reporter: reporter, clock: func() time.Time { return now }}
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func testSessions() []logtime.Session {
	day := time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC)
	return []logtime.Session{
		{Begin: day.Add(9 * time.Hour), End: timePtr(day.Add(12 * time.Hour))},
		{Begin: day.Add(13 * time.Hour), End: timePtr(day.Add(17*time.Hour + 30*time.Minute))},
	}
}

func TestListDays(t *testing.T) {
	now := time.Date(2025, time.November, 20, 12, 0, 0, 0, time.UTC)
	repo := newTestRepository(t, testSessions(), now)

	m, err := repo.ListDays(context.Background(), "pledieu", "")
	if err != nil {
		t.Fatal(err)
	}
	if m.YearMonth() != "2025-11" {
		t.Errorf("expected the current month, got %s", m.YearMonth())
	}
	if len(m.Days) != 30 {
		t.Fatalf("expected 30 days, got %d", len(m.Days))
	}
	if m.Total() != 7*time.Hour+30*time.Minute {
		t.Errorf("total: got %s", m.Total())
	}
	// 20 weekdays minus Nov 11
	if m.Goal() != 19*7*time.Hour {
		t.Errorf("goal: got %s", m.Goal())
	}
	d, ok := m.FindByDate("2025-11-03")
	if !ok || len(d.Intervals) != 2 {
		t.Errorf("november 3rd: %+v", d)
	}

	if _, err := repo.ListDays(context.Background(), "pledieu", "11/2025"); err == nil {
		t.Error("expected an error for a malformed month")
	}
}

func TestTableViewer(t *testing.T) {
	now := time.Date(2025, time.November, 20, 12, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	v := NewTableViewer(newTestRepository(t, testSessions(), now), &buf)
	if err := v.Do(context.Background(), "pledieu", "2025-11"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"pledieu 2025-11", "09:00 ~ 12:00, 13:00 ~ 17:30", "7h 30min", "Toussaint", "Armistice", "133h 0min"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReport(t *testing.T) {
	var buf bytes.Buffer
	RenderReport(&buf, "pledieu", logtime.Report{
		Today:            "1h 2min",
		Week:             "3h 4min",
		Month:            "5h 6min",
		RemainingWeek:    "31h 56min",
		RemainingMonth:   "141h 54min",
		WeeklyGoalHours:  35,
		MonthlyGoalHours: 147,
	})
	out := buf.String()
	for _, want := range []string{"pledieu", "1h 2min", "35h", "31h 56min", "147h", "141h 54min"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHolidays(t *testing.T) {
	cal, _ := holiday.NewCalendar(holiday.France)
	var buf bytes.Buffer
	RenderHolidays(&buf, "fr", cal.HolidaysFor(2026).Sorted())
	out := buf.String()
	for _, want := range []string{"2026-04-06", "Lundi de Pâques", "2026-05-14", "Ascension"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestDayColor(t *testing.T) {
	tests := []struct {
		name string
		d    logtime.DaySummary
		want tcell.Color
	}{
		{"weekday", logtime.DaySummary{Day: time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC)}, tcell.ColorWhite},
		{"sunday", logtime.DaySummary{Day: time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC)}, tcell.ColorBlue},
		{"holiday", logtime.DaySummary{Day: time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC), Holiday: "Armistice"}, tcell.ColorRed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dayColor(tt.d); got != tt.want {
				t.Errorf("got color %v, want %v", got, tt.want)
			}
			if !strings.Contains(dateToCell(tt.d).Text, tt.d.Holiday) {
				t.Errorf("cell %q is missing the holiday name", dateToCell(tt.d).Text)
			}
		})
	}
}
