package view

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"logtime/logtime"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func NewTUI(repo ViewRepository, logger *slog.Logger) Viewer {
	return &tui{
		repo:   repo,
		logger: logger,
	}
}

type tui struct {
	repo   ViewRepository
	logger *slog.Logger

	app *tview.Application
}

// Do opens the month browser. h/l or the arrow keys move between months,
// q or Esc quits.
func (t *tui) Do(ctx context.Context, login, yearMonth string) error {
	m, err := t.repo.ListDays(ctx, login, yearMonth)
	if err != nil {
		return err
	}

	t.app = tview.NewApplication()
	status := tview.NewTextView().SetDynamicColors(true)
	t.render(m, status)

	t.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		var shift int
		switch {
		case event.Key() == tcell.KeyEscape, event.Rune() == 'q':
			t.app.Stop()
			return nil
		case event.Key() == tcell.KeyLeft, event.Rune() == 'h':
			shift = -1
		case event.Key() == tcell.KeyRight, event.Rune() == 'l':
			shift = 1
		default:
			return event
		}
		next, err := t.repo.ListDays(ctx, login, m.Month.AddDate(0, shift, 0).Format("2006-01"))
		if err != nil {
			t.logger.Error("list days", slog.String("login", login), slog.String("err", err.Error()))
			status.SetText(fmt.Sprintf("[red]%s", err))
			return nil
		}
		m = next
		t.render(m, status)
		return nil
	})
	return t.app.Run()
}

func (t *tui) render(m monthForView, status *tview.TextView) {
	status.SetText(fmt.Sprintf("%s  done %s / goal %s   [gray](h/l: month, q: quit)",
		m.YearMonth(), durationToString(m.Total()), durationToString(m.Goal())))
	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tview.NewTextView().SetText(fmt.Sprintf("logtime: %s", m.Login)), 1, 1, false).
		AddItem(newMonthTable(m), 0, 1, true).
		AddItem(status, 1, 1, false)
	t.app.SetRoot(root, true)
}

func newMonthTable(m monthForView) *tview.Table {
	table := tview.NewTable().SetBorders(true).SetFixed(1, 1)

	for col, title := range []string{"Date", "Sessions", "Done", "Goal"} {
		table.SetCell(0, col, tview.NewTableCell(title).SetAlign(tview.AlignCenter).SetSelectable(false))
	}

	offset := 1
	for i, d := range m.Days {
		table.SetCell(i+offset, 0, dateToCell(d))
		table.SetCell(i+offset, 1, newIntervalsCell(d.Intervals))
		table.SetCell(i+offset, 2, tview.NewTableCell(durationToString(d.Done)).SetAlign(tview.AlignCenter))
		table.SetCell(i+offset, 3, tview.NewTableCell(goalToString(d.Goal)).SetAlign(tview.AlignCenter))
	}
	return table
}

var week = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func dayColor(d logtime.DaySummary) tcell.Color {
	switch {
	case d.Holiday != "":
		return tcell.ColorRed
	case d.Day.Weekday() == time.Saturday, d.Day.Weekday() == time.Sunday:
		return tcell.ColorBlue
	}
	return tcell.ColorWhite
}

func dateToCell(d logtime.DaySummary) *tview.TableCell {
	s := fmt.Sprintf(" %s (%s) ", d.Day.Format("01/02"), week[d.Day.Weekday()])
	if d.Holiday != "" {
		s += d.Holiday + " "
	}
	return tview.NewTableCell(s).SetTextColor(dayColor(d)).SetAlign(tview.AlignLeft)
}

const emptyTimeStr = "--:--"

func newIntervalsCell(ivs []logtime.Interval) *tview.TableCell {
	if len(ivs) == 0 {
		return tview.NewTableCell(fmt.Sprintf("  %s ~ %s  ", emptyTimeStr, emptyTimeStr)).SetAlign(tview.AlignCenter)
	}
	return tview.NewTableCell("  " + intervalsToString(ivs) + "  ").SetAlign(tview.AlignCenter)
}
