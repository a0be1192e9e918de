// Package fallback resolves an instant from an ordered list of candidate
// sources, taking the first one that can produce a value.
package fallback

import "time"

// Candidate yields an instant, or false if it cannot.
type Candidate func() (time.Time, bool)

// First returns the value of the first candidate that succeeds, or last if
// none does.
func First(last time.Time, candidates ...Candidate) time.Time {
	for _, c := range candidates {
		if t, ok := c(); ok {
			return t
		}
	}
	return last
}

// Value is a candidate that yields t when ok is set.
func Value(t time.Time, ok bool) Candidate {
	return func() (time.Time, bool) {
		return t, ok
	}
}

// Offset is a candidate that yields t+d when ok is set.
func Offset(t time.Time, ok bool, d time.Duration) Candidate {
	return func() (time.Time, bool) {
		if !ok {
			return time.Time{}, false
		}
		return t.Add(d), true
	}
}
