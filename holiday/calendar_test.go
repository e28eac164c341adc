package holiday

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFranceHolidays2025(t *testing.T) {
	cal, err := NewCalendar(France)
	if err != nil {
		t.Fatal(err)
	}
	set := cal.HolidaysFor(2025)
	if set.Len() != 11 {
		t.Fatalf("expected 11 holidays, got %d", set.Len())
	}

	want := map[string]string{
		"2025-01-01": "Jour de l'an",
		"2025-04-21": "Lundi de Pâques",
		"2025-05-29": "Ascension",
		"2025-06-09": "Lundi de Pentecôte",
		"2025-07-14": "Fête nationale",
		"2025-12-25": "Noël",
	}
	for d, name := range want {
		day, _ := time.Parse(dateLayout, d)
		got, ok := cal.HolidayName(day)
		if !ok {
			t.Errorf("%s: expected a holiday", d)
			continue
		}
		if got != name {
			t.Errorf("%s: got %q, want %q", d, got, name)
		}
	}

	if cal.IsHoliday(date(2025, time.April, 20)) {
		t.Error("Easter Sunday itself is not a listed holiday")
	}
}

func TestSetSorted(t *testing.T) {
	cal, _ := NewCalendar(France)
	hs := cal.HolidaysFor(2026).Sorted()
	for i := 1; i < len(hs); i++ {
		if !hs[i-1].Date.Before(hs[i].Date) {
			t.Fatalf("not sorted at %d: %s then %s", i, hs[i-1].Date, hs[i].Date)
		}
	}
	if hs[0].Name != "Jour de l'an" || hs[len(hs)-1].Name != "Noël" {
		t.Errorf("unexpected bounds: %s .. %s", hs[0].Name, hs[len(hs)-1].Name)
	}
}

func TestAlsaceMoselle(t *testing.T) {
	cal, _ := NewCalendar(AlsaceMoselle)
	if got := cal.HolidaysFor(2025).Len(); got != 13 {
		t.Fatalf("expected 13 holidays, got %d", got)
	}
	if name, ok := cal.HolidayName(date(2025, time.April, 18)); !ok || name != "Vendredi saint" {
		t.Errorf("Good Friday 2025: got %q, %v", name, ok)
	}
	if !cal.IsHoliday(date(2025, time.December, 26)) {
		t.Error("expected December 26 to be a holiday")
	}
	// the base ruleset is untouched
	if len(France.Holidays(2025)) != 11 {
		t.Error("France ruleset modified")
	}
}

func TestIsWorkingDay(t *testing.T) {
	cal, _ := NewCalendar(France)
	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"plain monday", date(2025, time.October, 6), true},
		{"saturday", date(2025, time.October, 4), false},
		{"sunday", date(2025, time.October, 5), false},
		{"holiday on a weekday", date(2023, time.November, 1), false},
		{"holiday on a weekend", date(2023, time.November, 11), false},
		{"afternoon of a working day", time.Date(2025, time.October, 7, 15, 30, 0, 0, time.UTC), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cal.IsWorkingDay(tt.day); got != tt.want {
				t.Errorf("IsWorkingDay(%s) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestWorkingDaysAcrossYearBoundary(t *testing.T) {
	cal, _ := NewCalendar(France)
	// Mon 2024-12-30 .. Fri 2025-01-03, Jan 1 is a holiday
	days := cal.WorkingDays(date(2024, time.December, 30), time.Date(2025, time.January, 3, 18, 0, 0, 0, time.UTC))
	var got []string
	for _, d := range days {
		got = append(got, d.Format(dateLayout))
	}
	want := []string{"2024-12-30", "2024-12-31", "2025-01-02", "2025-01-03"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("day %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestWorkingDaysEmptyRange(t *testing.T) {
	cal, _ := NewCalendar(France)
	if days := cal.WorkingDays(date(2025, time.October, 4), date(2025, time.October, 5)); len(days) != 0 {
		t.Errorf("expected no working days on a weekend, got %v", days)
	}
	if days := cal.WorkingDays(date(2025, time.October, 8), date(2025, time.October, 6)); len(days) != 0 {
		t.Errorf("expected no working days for an inverted range, got %v", days)
	}
}

func TestHolidaysForIsMemoized(t *testing.T) {
	rs := &countingRuleset{Ruleset: France}
	cal, _ := NewCalendar(rs)
	for i := 0; i < 5; i++ {
		cal.HolidaysFor(2025)
		cal.IsWorkingDay(date(2025, time.March, 3))
	}
	if rs.calls != 1 {
		t.Errorf("expected 1 computation for 2025, got %d", rs.calls)
	}
	cal.HolidaysFor(2026)
	if rs.calls != 2 {
		t.Errorf("expected a second computation for 2026, got %d", rs.calls)
	}
}

type countingRuleset struct {
	Ruleset
	calls int
}

func (r *countingRuleset) Holidays(year int) []Holiday {
	r.calls++
	return r.Ruleset.Holidays(year)
}

func TestLookup(t *testing.T) {
	for _, code := range []string{"fr", "fr-alsace-moselle", "none"} {
		rs, err := Lookup(code)
		if err != nil {
			t.Errorf("Lookup(%q): %v", code, err)
			continue
		}
		if rs.Name() != code {
			t.Errorf("Lookup(%q).Name() = %q", code, rs.Name())
		}
	}
	if _, err := Lookup("xx"); err == nil {
		t.Error("expected an error for an unknown ruleset")
	}
}
