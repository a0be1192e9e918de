// Package crossing finds the instants at which a time-varying altitude
// passes through a target value.
package crossing

import (
	"time"
)

// Func returns an altitude in degrees at time t.
type Func func(t time.Time) float64

// Direction selects rising or setting crossings.
type Direction int

const (
	// Up means the altitude is increasing through the target (rise, dawn).
	Up Direction = iota
	// Down means the altitude is decreasing through the target (set, dusk).
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Search controls the sampling density and bisection tolerance.
type Search struct {
	Steps     int
	Tolerance time.Duration
}

// Default samples a day every half hour and refines to 30 seconds.
var Default = Search{Steps: 48, Tolerance: 30 * time.Second}

// Find returns the first instant in [start, end] at which f crosses target
// in direction dir. It samples the window to bracket a sign change and then
// bisects the bracket.
func (s Search) Find(f Func, start, end time.Time, target float64, dir Direction) (time.Time, bool) {
	if !start.Before(end) {
		return time.Time{}, false
	}
	steps := s.Steps
	if steps < 2 {
		steps = 2
	}
	interval := end.Sub(start) / time.Duration(steps-1)

	prevT, prev := start, f(start)-target
	for i := 1; i < steps; i++ {
		t := start.Add(time.Duration(i) * interval)
		if i == steps-1 {
			t = end
		}
		cur := f(t) - target
		if crosses(prev, cur, dir) {
			return s.bisect(f, prevT, t, prev, target, dir), true
		}
		prevT, prev = t, cur
	}
	return time.Time{}, false
}

// Find uses the Default search.
func Find(f Func, start, end time.Time, target float64, dir Direction) (time.Time, bool) {
	return Default.Find(f, start, end, target, dir)
}

func crosses(a, b float64, dir Direction) bool {
	if dir == Up {
		return a < 0 && b >= 0
	}
	return a > 0 && b <= 0
}

func (s Search) bisect(f Func, a, b time.Time, fa, target float64, dir Direction) time.Time {
	tol := s.Tolerance
	if tol <= 0 {
		tol = time.Second
	}
	for b.Sub(a) > tol {
		mid := a.Add(b.Sub(a) / 2)
		fm := f(mid) - target
		if crosses(fa, fm, dir) {
			b = mid
		} else {
			a, fa = mid, fm
		}
	}
	return a.Add(b.Sub(a) / 2)
}
