package skyphase_test

import (
	"testing"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/thurmanmarka/skyphase"
)

const twilightToleranceMinutes = 5.0

func fields(tt skyphase.TwilightTimes) map[string]time.Time {
	return map[string]time.Time{
		"sunrise":          tt.Sunrise,
		"sunset":           tt.Sunset,
		"solarNoon":        tt.SolarNoon,
		"civilDawn":        tt.CivilDawn,
		"civilDusk":        tt.CivilDusk,
		"nauticalDawn":     tt.NauticalDawn,
		"nauticalDusk":     tt.NauticalDusk,
		"astronomicalDawn": tt.AstronomicalDawn,
		"astronomicalDusk": tt.AstronomicalDusk,
	}
}

// Reference values from an online twilight calculator for Phoenix, AZ on
// 2025-11-28 (America/Phoenix).
func TestTwilightTimes_Phoenix_2025_11_28(t *testing.T) {
	loc := mustLoad(t, "America/Phoenix")
	date := time.Date(2025, time.November, 28, 0, 0, 0, 0, loc)

	tt := skyphase.TwilightTimesFor(date, phoenix)

	want := map[string]string{
		"astronomicalDawn": "05:44",
		"nauticalDawn":     "06:14",
		"civilDawn":        "06:45",
		"sunrise":          "07:11",
		"sunset":           "17:21",
		"civilDusk":        "17:47",
		"nauticalDusk":     "18:18",
		"astronomicalDusk": "18:48",
	}
	got := fields(tt)
	for name, ref := range want {
		refT := hhmm(t, date, ref)
		if d := diffMinutes(got[name], refT); d > twilightToleranceMinutes {
			t.Errorf("%s off by %.1f minutes (got %v, want ~%v)", name, d, got[name], refT)
		}
		if got[name].Location() != loc {
			t.Errorf("%s: location %v, want %v", name, got[name].Location(), loc)
		}
	}

	noon := tt.SolarNoon
	if !noon.After(tt.Sunrise) || !noon.Before(tt.Sunset) {
		t.Errorf("solar noon %v not between sunrise %v and sunset %v", noon, tt.Sunrise, tt.Sunset)
	}
}

func TestTwilightTimes_EquatorOrdering(t *testing.T) {
	date := time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC)
	tt := skyphase.TwilightTimesFor(date, skyphase.Coordinates{})

	// Sunrise at (0, 0) is close to 06:00 UTC all year.
	if d := diffMinutes(tt.Sunrise, hhmm(t, date, "06:00")); d > 15 {
		t.Errorf("equator sunrise %v, off by %.1f minutes from 06:00", tt.Sunrise, d)
	}

	order := []time.Time{
		tt.AstronomicalDawn, tt.NauticalDawn, tt.CivilDawn, tt.Sunrise,
		tt.SolarNoon,
		tt.Sunset, tt.CivilDusk, tt.NauticalDusk, tt.AstronomicalDusk,
	}
	for i := 1; i < len(order); i++ {
		if !order[i-1].Before(order[i]) {
			t.Errorf("event %d (%v) not before event %d (%v)", i-1, order[i-1], i, order[i])
		}
	}
}

func TestTwilightTimes_PolarDayFallbacks(t *testing.T) {
	date := time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC)
	tt := skyphase.TwilightTimesFor(date, skyphase.Coordinates{Lat: 89, Lon: 0})

	for name, v := range fields(tt) {
		if v.IsZero() {
			t.Errorf("%s is zero", name)
		}
	}

	// The Sun never sets, so every horizon and twilight event is a fixed
	// clock estimate; solar noon is still real.
	want := map[string]string{
		"sunrise":          "06:00",
		"sunset":           "18:00",
		"civilDawn":        "05:30",
		"civilDusk":        "18:30",
		"nauticalDawn":     "05:00",
		"nauticalDusk":     "19:00",
		"astronomicalDawn": "05:00",
		"astronomicalDusk": "19:00",
	}
	got := fields(tt)
	for name, ref := range want {
		if refT := hhmm(t, date, ref); !got[name].Equal(refT) {
			t.Errorf("%s = %v, want fallback %v", name, got[name], refT)
		}
	}
	if d := diffMinutes(tt.SolarNoon, hhmm(t, date, "12:00")); d > 15 {
		t.Errorf("solar noon %v, off by %.1f minutes from 12:00", tt.SolarNoon, d)
	}
}

func TestTwilightTimes_AstronomicalFromNautical(t *testing.T) {
	// Around the June solstice at 52°N the Sun dips below -12° but never
	// reaches -18°, so astronomical twilight is estimated from nautical.
	date := time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC)
	tt := skyphase.TwilightTimesFor(date, skyphase.Coordinates{Lat: 52, Lon: 0})

	if got, want := tt.NauticalDawn.Sub(tt.AstronomicalDawn), time.Hour; got != want {
		t.Errorf("astronomical dawn is %v before nautical dawn, want %v", got, want)
	}
	if got, want := tt.AstronomicalDusk.Sub(tt.NauticalDusk), time.Hour; got != want {
		t.Errorf("astronomical dusk is %v after nautical dusk, want %v", got, want)
	}
}

func TestTwilightTimes_AstronomicalFromHorizon(t *testing.T) {
	// At 58°N on the June solstice the Sun stays above about -8.6°:
	// civil twilight exists, nautical does not, so astronomical twilight
	// is estimated from sunrise and sunset while nautical uses its clock
	// fallback.
	date := time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC)
	tt := skyphase.TwilightTimesFor(date, skyphase.Coordinates{Lat: 58, Lon: 0})

	if got, want := tt.Sunrise.Sub(tt.AstronomicalDawn), 90*time.Minute; got != want {
		t.Errorf("astronomical dawn is %v before sunrise, want %v", got, want)
	}
	if got, want := tt.AstronomicalDusk.Sub(tt.Sunset), 90*time.Minute; got != want {
		t.Errorf("astronomical dusk is %v after sunset, want %v", got, want)
	}
	if !tt.NauticalDawn.Equal(hhmm(t, date, "05:00")) || !tt.NauticalDusk.Equal(hhmm(t, date, "19:00")) {
		t.Errorf("nautical %v / %v, want clock fallbacks", tt.NauticalDawn, tt.NauticalDusk)
	}
	if !tt.CivilDawn.Before(tt.Sunrise) || !tt.CivilDusk.After(tt.Sunset) {
		t.Errorf("civil %v / %v not around sunrise %v / sunset %v", tt.CivilDawn, tt.CivilDusk, tt.Sunrise, tt.Sunset)
	}
}

func TestTwilightTimes_ZeroDate(t *testing.T) {
	tt := skyphase.TwilightTimesFor(time.Time{}, newYork)
	var zero time.Time
	want := map[string]string{
		"sunrise":          "06:00",
		"sunset":           "18:00",
		"solarNoon":        "12:00",
		"civilDawn":        "05:30",
		"civilDusk":        "18:30",
		"nauticalDawn":     "05:00",
		"nauticalDusk":     "19:00",
		"astronomicalDawn": "05:00",
		"astronomicalDusk": "19:00",
	}
	got := fields(tt)
	for name, ref := range want {
		if refT := hhmm(t, zero, ref); !got[name].Equal(refT) {
			t.Errorf("%s = %v, want %v", name, got[name], refT)
		}
	}
}

func TestTwilightTimes_Deterministic(t *testing.T) {
	date := time.Date(2025, time.March, 1, 9, 30, 0, 0, mustLoad(t, "America/New_York"))
	a := skyphase.TwilightTimesFor(date, newYork)
	b := skyphase.TwilightTimesFor(date, newYork)
	if a != b {
		t.Errorf("repeated calls differ: %+v vs %+v", a, b)
	}
}

// The sunrise and sunset reported by TwilightTimesFor agree with an
// independent NOAA-style implementation.
func TestTwilightTimes_AgreesWithSunrisePackage(t *testing.T) {
	for _, tc := range []struct {
		name string
		loc  skyphase.Coordinates
	}{
		{"phoenix", phoenix},
		{"new york", newYork},
		{"quito", quito},
	} {
		for _, month := range []time.Month{time.January, time.April, time.July, time.October} {
			date := time.Date(2025, month, 15, 0, 0, 0, 0, time.UTC)
			tt := skyphase.TwilightTimesFor(date, tc.loc)
			rise, set := sunrise.SunriseSunset(tc.loc.Lat, tc.loc.Lon, 2025, month, 15)
			if d := diffMinutes(tt.Sunrise, rise); d > 5 && d < 24*60-5 {
				t.Errorf("%s %s: sunrise %v vs %v", tc.name, month, tt.Sunrise, rise)
			}
			if d := diffMinutes(tt.Sunset, set); d > 5 && d < 24*60-5 {
				t.Errorf("%s %s: sunset %v vs %v", tc.name, month, tt.Sunset, set)
			}
		}
	}
}

func TestTwilightTimesIn(t *testing.T) {
	phx := mustLoad(t, "America/Phoenix")
	date := time.Date(2025, time.November, 28, 0, 0, 0, 0, phx)
	tt := skyphase.TwilightTimesFor(date, phoenix)
	utc := tt.In(time.UTC)
	for name, v := range fields(utc) {
		if v.Location() != time.UTC {
			t.Errorf("%s: location %v", name, v.Location())
		}
		if !v.Equal(fields(tt)[name]) {
			t.Errorf("%s: instant changed", name)
		}
	}
}
