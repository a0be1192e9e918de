package skyphase

import (
	"fmt"
	"time"

	"github.com/thurmanmarka/skyphase/internal/crossing"
	"github.com/thurmanmarka/skyphase/internal/ephemeris"
	"github.com/thurmanmarka/skyphase/internal/timeutil"
)

// Body represents a celestial body.
type Body int

const (
	Sun Body = iota
	Moon
)

func (b Body) String() string {
	switch b {
	case Sun:
		return "sun"
	case Moon:
		return "moon"
	default:
		return fmt.Sprintf("Body(%d)", int(b))
	}
}

// ParseBody is the inverse of Body.String.
func ParseBody(s string) (Body, error) {
	switch s {
	case "sun":
		return Sun, nil
	case "moon":
		return Moon, nil
	}
	return 0, fmt.Errorf("unknown body %q", s)
}

// TwilightKind identifies the type of twilight based on the Sun's altitude
// below the horizon.
type TwilightKind int

const (
	// TwilightCivil corresponds to the Sun's center at -6 degrees altitude.
	TwilightCivil TwilightKind = iota

	// TwilightNautical corresponds to the Sun's center at -12 degrees altitude.
	TwilightNautical

	// TwilightAstronomical corresponds to the Sun's center at -18 degrees altitude.
	TwilightAstronomical
)

func (k TwilightKind) String() string {
	switch k {
	case TwilightCivil:
		return "civil"
	case TwilightNautical:
		return "nautical"
	case TwilightAstronomical:
		return "astronomical"
	default:
		return fmt.Sprintf("TwilightKind(%d)", int(k))
	}
}

// RiseSet holds rise and set times of a body on a given date. Either may
// be the zero time when the body only rises or only sets that day.
type RiseSet struct {
	Rise time.Time `json:"rise"`
	Set  time.Time `json:"set"`
}

// PhaseWindow represents a continuous time interval where the Sun's altitude
// stays within a particular range (e.g. golden hour or blue hour).
type PhaseWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Duration returns End - Start.
func (w PhaseWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Contains reports whether t lies in [Start, End).
func (w PhaseWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// DaylightPhases holds the morning and evening windows for a given phase
// (e.g. golden hour or blue hour).
type DaylightPhases struct {
	// Morning is the interval after dawn / sunrise.
	Morning PhaseWindow `json:"morning"`
	// Evening is the interval before dusk / sunset.
	Evening PhaseWindow `json:"evening"`

	// HasMorning / HasEvening indicate whether the corresponding window
	// exists on this date at this location (high latitudes can be weird).
	HasMorning bool `json:"hasMorning"`
	HasEvening bool `json:"hasEvening"`
}

// RiseSetFor returns rise and set times for the given body and location on a date.
// The date's time zone is used for the returned times, and both are pinned
// to date's calendar day.
func RiseSetFor(body Body, loc Coordinates, date time.Time) (RiseSet, error) {
	switch body {
	case Sun:
		ev := ephemeris.SunEvents(date, loc.Lat, loc.Lon)
		return pinned(date, ev.Sunrise, ev.Sunset)
	case Moon:
		mt := ephemeris.MoonTimes(date, loc.Lat, loc.Lon)
		return pinned(date, mt.Rise, mt.Set)
	default:
		return RiseSet{}, fmt.Errorf("%w: %v", ErrNotImplemented, body)
	}
}

// SlideIntoSunset is the convenience form of RiseSetFor(Sun, ...).
func SlideIntoSunset(loc Coordinates, date time.Time) (RiseSet, error) {
	return RiseSetFor(Sun, loc, date)
}

// DaylightHours calculates the duration of daylight (time between sunrise and
// sunset) for the Sun at the given location and date. Returns the duration in
// hours as a float64.
//
// If the sun does not rise or set on the given date (e.g., polar regions), it
// returns 0 and ErrNoRiseNoSet.
func DaylightHours(loc Coordinates, date time.Time) (float64, error) {
	rs, err := SlideIntoSunset(loc, date)
	if err != nil {
		return 0, err
	}
	if rs.Rise.IsZero() || rs.Set.IsZero() {
		return 0, ErrNoRiseNoSet
	}
	return rs.Set.Sub(rs.Rise).Hours(), nil
}

// TwilightFor returns the dawn (Rise) and dusk (Set) instants at which the
// Sun's center crosses the altitude of the given kind of twilight. Unlike
// TwilightTimesFor it applies no fallbacks: if neither crossing happens
// that day ErrNoRiseNoSet is returned.
func TwilightFor(loc Coordinates, date time.Time, kind TwilightKind) (RiseSet, error) {
	ev := ephemeris.SunEvents(date, loc.Lat, loc.Lon)
	switch kind {
	case TwilightCivil:
		return pinned(date, ev.CivilDawn, ev.CivilDusk)
	case TwilightNautical:
		return pinned(date, ev.NauticalDawn, ev.NauticalDusk)
	case TwilightAstronomical:
		return pinned(date, ev.AstronomicalDawn, ev.AstronomicalDusk)
	default:
		return RiseSet{}, fmt.Errorf("unknown TwilightKind: %d", kind)
	}
}

// GoldenHourFor computes the golden hour intervals for the given local
// calendar date and location. Golden hour is (approximately) defined as
// the period when the Sun's center altitude is between -4° and +6°.
//
// If neither morning nor evening golden hour exists (e.g. extreme
// high-latitude edge cases), ErrNoRiseNoSet is returned.
func GoldenHourFor(loc Coordinates, date time.Time) (DaylightPhases, error) {
	return altitudeBand(loc, date, -4, 6)
}

// BlueHourFor computes the blue hour intervals for the given local calendar
// date and location, when the Sun's center is between -6° and -4°.
func BlueHourFor(loc Coordinates, date time.Time) (DaylightPhases, error) {
	return altitudeBand(loc, date, -6, -4)
}

// altitudeBand finds the morning window in which the Sun climbs from low to
// high and the evening window in which it descends from high to low.
func altitudeBand(loc Coordinates, date time.Time, low, high float64) (DaylightPhases, error) {
	start := timeutil.ClockOn(date, 0, 0)
	end := start.AddDate(0, 0, 1)
	alt := func(t time.Time) float64 {
		return timeutil.Rad2Deg(ephemeris.Sun(t, loc.Lat, loc.Lon).Altitude)
	}

	var phases DaylightPhases

	mLow, okMLow := crossing.Find(alt, start, end, low, crossing.Up)
	mHigh, okMHigh := crossing.Find(alt, start, end, high, crossing.Up)
	if okMLow && okMHigh && mHigh.After(mLow) {
		phases.Morning = PhaseWindow{Start: mLow, End: mHigh}
		phases.HasMorning = true
	}

	eHigh, okEHigh := crossing.Find(alt, start, end, high, crossing.Down)
	eLow, okELow := crossing.Find(alt, start, end, low, crossing.Down)
	if okEHigh && okELow && eLow.After(eHigh) {
		phases.Evening = PhaseWindow{Start: eHigh, End: eLow}
		phases.HasEvening = true
	}

	if !phases.HasMorning && !phases.HasEvening {
		return DaylightPhases{}, ErrNoRiseNoSet
	}
	return phases, nil
}

// pinned converts a pair of events to a RiseSet on date's calendar day.
func pinned(date time.Time, rise, set ephemeris.Event) (RiseSet, error) {
	if !rise.Valid && !set.Valid {
		return RiseSet{}, ErrNoRiseNoSet
	}
	year, month, day := date.Date()
	var rs RiseSet
	if rise.Valid {
		rs.Rise = timeutil.WithLocalDate(rise.Time.In(date.Location()), year, month, day)
	}
	if set.Valid {
		rs.Set = timeutil.WithLocalDate(set.Time.In(date.Location()), year, month, day)
	}
	return rs, nil
}
