package profile

import (
	"math"
	"time"
)

// Stats accumulates min, max and mean of a series of errors in minutes.
// NaN samples (missing data) are ignored.
type Stats struct {
	Count int
	Sum   float64
	Min   float64
	Max   float64
}

func (s *Stats) Add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.Count == 0 {
		s.Min, s.Max = v, v
	} else {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Sum += v
	s.Count++
}

// Mean returns NaN when no samples were added.
func (s Stats) Mean() float64 {
	if s.Count == 0 {
		return math.NaN()
	}
	return s.Sum / float64(s.Count)
}

// diffMinutes returns |a-b| in minutes, or NaN if either is the zero time.
func diffMinutes(a, b time.Time) float64 {
	return math.Abs(diffMinutesSigned(a, b))
}

// diffMinutesSigned returns a-b in minutes, or NaN if either is the zero time.
func diffMinutesSigned(a, b time.Time) float64 {
	if a.IsZero() || b.IsZero() {
		return math.NaN()
	}
	return a.Sub(b).Minutes()
}
