package skyphase_test

import (
	"testing"
	"time"

	"github.com/thurmanmarka/skyphase"
)

var (
	phoenix = skyphase.Coordinates{Lat: 33.4484, Lon: -112.0740}
	newYork = skyphase.Coordinates{Lat: 40.7128, Lon: -74.0060}
	quito   = skyphase.Coordinates{Lat: -0.1807, Lon: -78.4678}
)

// diffMinutes returns the absolute difference between two times in minutes.
func diffMinutes(a, b time.Time) float64 {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d.Minutes()
}

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("failed to load %s: %v", name, err)
	}
	return loc
}

// hhmm returns hh:mm on date's calendar day in date's location.
func hhmm(t *testing.T, date time.Time, s string) time.Time {
	t.Helper()
	c, err := time.Parse("15:04", s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour(), c.Minute(), 0, 0, date.Location())
}
