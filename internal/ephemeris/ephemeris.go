// Package ephemeris is the boundary between skyphase and the suncalc
// ephemeris. It reports positions in the library's native units (radians,
// azimuth measured from south towards west) and per-day event instants
// together with a validity flag, leaving unit conversion and fallback
// policy to the caller.
package ephemeris

import (
	"time"

	"github.com/sixdouglas/suncalc"

	"github.com/thurmanmarka/skyphase/internal/timeutil"
)

// Horizontal is a raw topocentric position in radians.
type Horizontal struct {
	Azimuth  float64 // radians, 0 = south, positive towards west
	Altitude float64 // radians
}

// Illumination describes the lit portion of the Moon.
type Illumination struct {
	Fraction float64 // [0,1]
	Phase    float64 // [0,1), 0 = new, 0.5 = full
	Angle    float64 // radians, midpoint angle of the bright limb
}

// Event is a per-day instant that may be undefined for the date,
// e.g. astronomical dusk during a polar summer.
type Event struct {
	Time  time.Time
	Valid bool
}

// Events holds the nine per-day solar instants.
type Events struct {
	Sunrise          Event
	Sunset           Event
	SolarNoon        Event
	CivilDawn        Event
	CivilDusk        Event
	NauticalDawn     Event
	NauticalDusk     Event
	AstronomicalDawn Event
	AstronomicalDusk Event
}

// MoonEvents holds lunar rise and set for a local calendar day.
type MoonEvents struct {
	Rise       Event
	Set        Event
	AlwaysUp   bool
	AlwaysDown bool
}

// validWindow bounds how far a reported event may lie from local noon of
// the requested day. Undefined events come back from suncalc as the zero
// time or as an instant decades away, both of which fall outside it.
const validWindow = 36 * time.Hour

// Sun returns the raw position of the Sun at t for (lat, lon).
func Sun(t time.Time, lat, lon float64) Horizontal {
	p := suncalc.GetPosition(t, lat, lon)
	return Horizontal{Azimuth: p.Azimuth, Altitude: p.Altitude}
}

// Moon returns the raw position of the Moon at t for (lat, lon).
func Moon(t time.Time, lat, lon float64) Horizontal {
	p := suncalc.GetMoonPosition(t, lat, lon)
	return Horizontal{Azimuth: p.Azimuth, Altitude: p.Altitude}
}

// MoonIllumination returns the illuminated fraction and phase of the Moon at
// t. It is independent of the observer.
func MoonIllumination(t time.Time) Illumination {
	m := suncalc.GetMoonIllumination(t)
	return Illumination{Fraction: m.Fraction, Phase: m.Phase, Angle: m.Angle}
}

// SunEvents computes the nine solar instants for the day containing date at
// (lat, lon). Returned times are in date's location.
func SunEvents(date time.Time, lat, lon float64) Events {
	anchor := timeutil.LocalNoon(date)
	// suncalc picks the solar day whose transit is nearest the instant.
	times := suncalc.GetTimes(anchor, lat, lon)

	pick := func(name suncalc.DayTimeName) Event {
		dt, ok := times[name]
		if !ok {
			return Event{}
		}
		return newEvent(dt.Value, date.Location(), anchor)
	}

	return Events{
		Sunrise:          pick(suncalc.Sunrise),
		Sunset:           pick(suncalc.Sunset),
		SolarNoon:        pick(suncalc.SolarNoon),
		CivilDawn:        pick(suncalc.Dawn),
		CivilDusk:        pick(suncalc.Dusk),
		NauticalDawn:     pick(suncalc.NauticalDawn),
		NauticalDusk:     pick(suncalc.NauticalDusk),
		AstronomicalDawn: pick(suncalc.NightEnd),
		AstronomicalDusk: pick(suncalc.Night),
	}
}

// MoonTimes computes moonrise and moonset during the local calendar day of
// date at (lat, lon). Returned times are in date's location.
func MoonTimes(date time.Time, lat, lon float64) MoonEvents {
	mt := suncalc.GetMoonTimes(date, lat, lon, false)
	anchor := timeutil.LocalNoon(date)
	return MoonEvents{
		Rise:       newEvent(mt.Rise, date.Location(), anchor),
		Set:        newEvent(mt.Set, date.Location(), anchor),
		AlwaysUp:   mt.AlwaysUp,
		AlwaysDown: mt.AlwaysDown,
	}
}

func newEvent(t time.Time, loc *time.Location, anchor time.Time) Event {
	if t.IsZero() || !timeutil.Within(t, anchor, validWindow) {
		return Event{}
	}
	return Event{Time: t.In(loc), Valid: true}
}
