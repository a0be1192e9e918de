package skyphase_test

import (
	"math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solstice"

	"github.com/thurmanmarka/skyphase"
)

func TestSunPositionRanges(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, loc := range []skyphase.Coordinates{phoenix, newYork, quito, {Lat: 89.9}, {Lat: -89.9, Lon: 179.9}} {
		for h := 0; h < 24*365; h += 37 {
			at := start.Add(time.Duration(h) * time.Hour)
			s := skyphase.SunPositionAt(at, loc)
			if s.Azimuth < 0 || s.Azimuth >= 360 {
				t.Fatalf("%v at %v: azimuth %v", loc, at, s.Azimuth)
			}
			if s.Altitude < -90 || s.Altitude > 90 {
				t.Fatalf("%v at %v: altitude %v", loc, at, s.Altitude)
			}
			m := skyphase.MoonPositionAt(at, loc)
			if m.Azimuth < 0 || m.Azimuth >= 360 {
				t.Fatalf("%v at %v: moon azimuth %v", loc, at, m.Azimuth)
			}
			if m.Illumination < 0 || m.Illumination > 1 || m.Phase < 0 || m.Phase >= 1 {
				t.Fatalf("%v at %v: moon %+v", loc, at, m)
			}
			if m.Visible != (m.Altitude > -6) {
				t.Fatalf("%v at %v: visible %v with altitude %v", loc, at, m.Visible, m.Altitude)
			}
		}
	}
}

func TestSunPositionAtSolarNoon(t *testing.T) {
	// At the June solstice the noon Sun stands at 90 - (lat - 23.44)
	// degrees and due south for northern mid-latitudes.
	sol := julian.JDToTime(solstice.June(2025))
	noon := skyphase.TwilightTimesFor(sol, newYork).SolarNoon
	s := skyphase.SunPositionAt(noon, newYork)

	want := 90 - (newYork.Lat - 23.44)
	if math.Abs(s.Altitude-want) > 0.5 {
		t.Errorf("noon altitude %.2f, want ~%.2f", s.Altitude, want)
	}
	if math.Abs(s.Azimuth-180) > 1 {
		t.Errorf("noon azimuth %.2f, want ~180", s.Azimuth)
	}
}

func TestSunPositionCompass(t *testing.T) {
	loc := mustLoad(t, "America/Phoenix")
	date := time.Date(2025, time.March, 20, 0, 0, 0, 0, loc)
	tt := skyphase.TwilightTimesFor(date, phoenix)

	// Near the equinox the Sun rises close to due east and sets close to
	// due west.
	rise := skyphase.SunPositionAt(tt.Sunrise, phoenix)
	if math.Abs(rise.Azimuth-90) > 3 {
		t.Errorf("sunrise azimuth %.2f, want ~90", rise.Azimuth)
	}
	if math.Abs(rise.Altitude+0.833) > 0.2 {
		t.Errorf("sunrise altitude %.3f, want ~-0.833", rise.Altitude)
	}
	set := skyphase.SunPositionAt(tt.Sunset, phoenix)
	if math.Abs(set.Azimuth-270) > 3 {
		t.Errorf("sunset azimuth %.2f, want ~270", set.Azimuth)
	}
}

func TestPositionZeroTime(t *testing.T) {
	s := skyphase.SunPositionAt(time.Time{}, newYork)
	if !math.IsNaN(s.Azimuth) || !math.IsNaN(s.Altitude) {
		t.Errorf("got %+v, want NaN", s)
	}
	m := skyphase.MoonPositionAt(time.Time{}, newYork)
	if !math.IsNaN(m.Azimuth) || !math.IsNaN(m.Altitude) || !math.IsNaN(m.Phase) || !math.IsNaN(m.Illumination) {
		t.Errorf("got %+v, want NaN", m)
	}
	if m.Visible {
		t.Errorf("moon visible at the zero time")
	}
}

func TestMoonPositionFullMoon(t *testing.T) {
	full := fullMoonNear(time.Date(2024, time.September, 18, 0, 0, 0, 0, time.UTC))
	m := skyphase.MoonPositionAt(full, newYork)
	if math.Abs(m.Phase-0.5) > 0.02 {
		t.Errorf("phase %.3f at full moon %v", m.Phase, full)
	}
	if m.Illumination < 0.98 {
		t.Errorf("illumination %.3f at full moon %v", m.Illumination, full)
	}
}

func TestCoordinatesValidate(t *testing.T) {
	for _, tc := range []struct {
		loc skyphase.Coordinates
		ok  bool
	}{
		{newYork, true},
		{skyphase.Coordinates{Lat: 90, Lon: -180}, true},
		{skyphase.Coordinates{Lat: 90.01}, false},
		{skyphase.Coordinates{Lon: 181}, false},
		{skyphase.Coordinates{Lat: math.NaN()}, false},
	} {
		err := tc.loc.Validate()
		if (err == nil) != tc.ok {
			t.Errorf("%v: Validate() = %v", tc.loc, err)
		}
	}
}
