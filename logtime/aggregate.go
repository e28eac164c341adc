package logtime

import (
	"fmt"
	"time"
)

// TotalDuration sums the raw durations of already merged intervals.
func TotalDuration(ivs []Interval) time.Duration {
	var total time.Duration
	for _, iv := range ivs {
		total += iv.Duration()
	}
	return total
}

// floorMinute drops the partial minute: fractional minutes are not credited.
func floorMinute(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return d.Truncate(time.Minute)
}

// DayTotal is the floored total of a single day.
func (b DailyBucket) DayTotal(d Date) time.Duration {
	return floorMinute(TotalDuration(b[d]))
}

// Total floors every day to whole minutes and sums the days.
func (b DailyBucket) Total() time.Duration {
	var total time.Duration
	for d := range b {
		total += b.DayTotal(d)
	}
	return total
}

// TotalOn is Total restricted to the given days.
func (b DailyBucket) TotalOn(days []time.Time) time.Duration {
	var total time.Duration
	for _, day := range days {
		total += b.DayTotal(DateOf(day))
	}
	return total
}

// FormatDuration renders d as "{H}h {M}min", dropping seconds.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int64(d / time.Minute)
	return fmt.Sprintf("%dh %dmin", minutes/60, minutes%60)
}
