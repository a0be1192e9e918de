package skyphase

import (
	"time"

	"github.com/thurmanmarka/skyphase/internal/ephemeris"
	"github.com/thurmanmarka/skyphase/internal/fallback"
	"github.com/thurmanmarka/skyphase/internal/timeutil"
)

// TwilightTimes holds the solar events of one calendar day. At ordinary
// latitudes
//
//	AstronomicalDawn <= NauticalDawn <= CivilDawn <= Sunrise <= SolarNoon
//	<= Sunset <= CivilDusk <= NauticalDusk <= AstronomicalDusk
//
// but near the poles some fields are estimates and the ordering may not
// hold.
type TwilightTimes struct {
	Sunrise          time.Time `json:"sunrise"`
	Sunset           time.Time `json:"sunset"`
	SolarNoon        time.Time `json:"solarNoon"`
	CivilDawn        time.Time `json:"civilDawn"`
	CivilDusk        time.Time `json:"civilDusk"`
	NauticalDawn     time.Time `json:"nauticalDawn"`
	NauticalDusk     time.Time `json:"nauticalDusk"`
	AstronomicalDawn time.Time `json:"astronomicalDawn"`
	AstronomicalDusk time.Time `json:"astronomicalDusk"`
}

// Wall-clock substitutes used when the ephemeris has no value for an event.
type clock struct{ hour, minute int }

var (
	fallbackSunrise      = clock{6, 0}
	fallbackSunset       = clock{18, 0}
	fallbackSolarNoon    = clock{12, 0}
	fallbackCivilDawn    = clock{5, 30}
	fallbackCivilDusk    = clock{18, 30}
	fallbackNauticalDawn = clock{5, 0}
	fallbackNauticalDusk = clock{19, 0}
	fallbackAstroDawn    = clock{5, 0}
	fallbackAstroDusk    = clock{19, 0}
)

const (
	astroFromNautical = 60 * time.Minute
	astroFromHorizon  = 90 * time.Minute
)

// TwilightTimesFor returns the nine solar events for the calendar day of
// date at loc, in date's location. It never fails: an event the ephemeris
// cannot produce is replaced independently of the others.
//
//   - Sunrise, Sunset and SolarNoon fall back to 06:00, 18:00 and 12:00.
//   - Civil dawn/dusk fall back to 05:30 / 18:30.
//   - Nautical dawn/dusk fall back to 05:00 / 19:00.
//   - Astronomical dawn (dusk) is estimated as nautical dawn - 60m (dusk
//     + 60m), else sunrise - 90m (sunset + 90m), else 05:00 (19:00).
//
// Fixed times are wall-clock times on date's calendar day. For the zero
// time every event uses its fixed time.
func TwilightTimesFor(date time.Time, loc Coordinates) TwilightTimes {
	var ev ephemeris.Events
	if !date.IsZero() {
		ev = ephemeris.SunEvents(date, loc.Lat, loc.Lon)
	}

	at := func(c clock) time.Time {
		return timeutil.ClockOn(date, c.hour, c.minute)
	}
	raw := func(e ephemeris.Event) fallback.Candidate {
		return fallback.Value(e.Time, e.Valid)
	}
	offset := func(e ephemeris.Event, d time.Duration) fallback.Candidate {
		return fallback.Offset(e.Time, e.Valid, d)
	}

	return TwilightTimes{
		Sunrise:      fallback.First(at(fallbackSunrise), raw(ev.Sunrise)),
		Sunset:       fallback.First(at(fallbackSunset), raw(ev.Sunset)),
		SolarNoon:    fallback.First(at(fallbackSolarNoon), raw(ev.SolarNoon)),
		CivilDawn:    fallback.First(at(fallbackCivilDawn), raw(ev.CivilDawn)),
		CivilDusk:    fallback.First(at(fallbackCivilDusk), raw(ev.CivilDusk)),
		NauticalDawn: fallback.First(at(fallbackNauticalDawn), raw(ev.NauticalDawn)),
		NauticalDusk: fallback.First(at(fallbackNauticalDusk), raw(ev.NauticalDusk)),
		AstronomicalDawn: fallback.First(at(fallbackAstroDawn),
			raw(ev.AstronomicalDawn),
			offset(ev.NauticalDawn, -astroFromNautical),
			offset(ev.Sunrise, -astroFromHorizon),
		),
		AstronomicalDusk: fallback.First(at(fallbackAstroDusk),
			raw(ev.AstronomicalDusk),
			offset(ev.NauticalDusk, astroFromNautical),
			offset(ev.Sunset, astroFromHorizon),
		),
	}
}

// In returns a copy of tt with every instant expressed in loc.
func (tt TwilightTimes) In(loc *time.Location) TwilightTimes {
	return TwilightTimes{
		Sunrise:          tt.Sunrise.In(loc),
		Sunset:           tt.Sunset.In(loc),
		SolarNoon:        tt.SolarNoon.In(loc),
		CivilDawn:        tt.CivilDawn.In(loc),
		CivilDusk:        tt.CivilDusk.In(loc),
		NauticalDawn:     tt.NauticalDawn.In(loc),
		NauticalDusk:     tt.NauticalDusk.In(loc),
		AstronomicalDawn: tt.AstronomicalDawn.In(loc),
		AstronomicalDusk: tt.AstronomicalDusk.In(loc),
	}
}
