package scheduling

import (
	"time"

	"github.com/jinzhu/now"
)

// StartOfDay returns midnight of t's calendar day in t's location
func StartOfDay(t time.Time) time.Time {
	return now.With(t).BeginningOfDay()
}

// AddDays moves t by n calendar days keeping the wall clock time
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// HoursBetween whole hours from 'from' to 'to', truncated toward zero
func HoursBetween(to, from time.Time) int {
	return int(to.Sub(from) / time.Hour)
}

// DateIn midnight of d's calendar date (year, month, day as written) in loc
func DateIn(d time.Time, loc *time.Location) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc)
}
