package view

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"logtime/holiday"
	"logtime/logtime"

	"github.com/jedib0t/go-pretty/v6/table"
)

type Viewer interface {
	Do(ctx context.Context, login, yearMonth string) error
}

type tableViewer struct {
	repo ViewRepository
	out  io.Writer
}

func NewTableViewer(repo ViewRepository, out io.Writer) Viewer {
	return &tableViewer{repo: repo, out: out}
}

func (t *tableViewer) Do(ctx context.Context, login, yearMonth string) error {
	m, err := t.repo.ListDays(ctx, login, yearMonth)
	if err != nil {
		return err
	}
	buildMonthTable(t.out, m).Render()
	return nil
}

func buildMonthTable(out io.Writer, m monthForView) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(fmt.Sprintf("%s %s", m.Login, m.YearMonth()))
	t.AppendHeader(table.Row{"Date", "Sessions", "Done", "Goal", "Note"})

	for _, d := range m.Days {
		t.AppendRow(table.Row{
			d.Day.Format("Mon 02"),
			intervalsToString(d.Intervals),
			durationToString(d.Done),
			goalToString(d.Goal),
			d.Holiday,
		})
	}
	t.AppendFooter(table.Row{"", "Total", durationToString(m.Total()), durationToString(m.Goal()), ""})
	t.SetStyle(table.StyleRounded)
	return t
}

// RenderReport prints the report of one login.
func RenderReport(out io.Writer, login string, rp logtime.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(login)
	t.AppendHeader(table.Row{"Period", "Done", "Goal", "Remaining"})
	t.AppendRows([]table.Row{
		{"Today", rp.Today, "", ""},
		{"Week", rp.Week, fmt.Sprintf("%dh", rp.WeeklyGoalHours), rp.RemainingWeek},
		{"Month", rp.Month, fmt.Sprintf("%dh", rp.MonthlyGoalHours), rp.RemainingMonth},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func RenderHolidays(out io.Writer, ruleset string, hs []holiday.Holiday) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(ruleset)
	t.AppendHeader(table.Row{"Date", "Day", "Holiday"})
	for _, h := range hs {
		t.AppendRow(table.Row{h.Date.Format("2006-01-02"), h.Date.Weekday().String(), h.Name})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func durationToString(d time.Duration) string {
	return logtime.FormatDuration(d)
}

func goalToString(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	return durationToString(d)
}

func intervalsToString(ivs []logtime.Interval) string {
	parts := make([]string, 0, len(ivs))
	for _, iv := range ivs {
		parts = append(parts, fmt.Sprintf("%s ~ %s", iv.Start.Format("15:04"), iv.End.Format("15:04")))
	}
	return strings.Join(parts, ", ")
}
