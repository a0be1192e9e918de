package timeutil

import (
	"math"
	"time"
)

// -----------------------------
// Angles
// -----------------------------

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

// Normalize360 maps d into [0, 360). NaN is returned unchanged.
//
// Adding 360 to a tiny negative remainder can round up to exactly 360.0,
// so that case is folded back to 0.
func Normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	if d >= 360.0 {
		d = 0
	}
	return d
}

// -----------------------------
// Calendar helpers
// -----------------------------

// ClockOn returns the wall-clock time hour:minute on the calendar date of
// date, in date's location.
func ClockOn(date time.Time, hour, minute int) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day, hour, minute, 0, 0, date.Location())
}

// LocalNoon returns 12:00 on the calendar date of date.
func LocalNoon(date time.Time) time.Time {
	return ClockOn(date, 12, 0)
}

// WithLocalDate returns a copy of t but with its calendar date
// forced to (year, month, day), keeping the same clock time and location.
func WithLocalDate(t time.Time, year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// Midpoint returns the instant halfway between a and b.
func Midpoint(a, b time.Time) time.Time {
	return a.Add(b.Sub(a) / 2)
}

// Within reports whether t lies within window of anchor (inclusive).
func Within(t, anchor time.Time, window time.Duration) bool {
	d := t.Sub(anchor)
	if d < 0 {
		d = -d
	}
	return d <= window
}

// AbsMinutes returns |a-b| in minutes.
func AbsMinutes(a, b time.Time) float64 {
	return math.Abs(a.Sub(b).Minutes())
}
