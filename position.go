package skyphase

import (
	"math"
	"time"

	"github.com/thurmanmarka/skyphase/internal/ephemeris"
	"github.com/thurmanmarka/skyphase/internal/timeutil"
)

// moonVisibleAltitude is the altitude above which the Moon is drawn.
const moonVisibleAltitude = -6.0

// SunPosition is the apparent position of the Sun for an observer.
type SunPosition struct {
	Azimuth  float64 `json:"azimuth"`  // degrees clockwise from true north, [0,360)
	Altitude float64 `json:"altitude"` // degrees above the horizon, [-90,90]
}

// MoonPosition is the apparent position and appearance of the Moon.
type MoonPosition struct {
	Azimuth      float64 `json:"azimuth"`      // degrees clockwise from true north, [0,360)
	Altitude     float64 `json:"altitude"`     // degrees above the horizon, [-90,90]
	Phase        float64 `json:"phase"`        // [0,1), 0 = new, 0.5 = full
	Illumination float64 `json:"illumination"` // illuminated fraction [0,1]
	Visible      bool    `json:"visible"`      // altitude > -6°
}

// SunPositionAt returns the Sun's azimuth and altitude at t for loc.
// Coordinates are not range checked. For the zero time both fields are NaN.
func SunPositionAt(t time.Time, loc Coordinates) SunPosition {
	if t.IsZero() {
		return SunPosition{Azimuth: math.NaN(), Altitude: math.NaN()}
	}
	az, alt := toCompass(ephemeris.Sun(t, loc.Lat, loc.Lon))
	return SunPosition{Azimuth: az, Altitude: alt}
}

// MoonPositionAt returns the Moon's azimuth, altitude, phase and
// illuminated fraction at t for loc. For the zero time all numeric fields
// are NaN and Visible is false.
func MoonPositionAt(t time.Time, loc Coordinates) MoonPosition {
	if t.IsZero() {
		nan := math.NaN()
		return MoonPosition{Azimuth: nan, Altitude: nan, Phase: nan, Illumination: nan}
	}
	az, alt := toCompass(ephemeris.Moon(t, loc.Lat, loc.Lon))
	illum := ephemeris.MoonIllumination(t)
	return MoonPosition{
		Azimuth:      az,
		Altitude:     alt,
		Phase:        illum.Phase,
		Illumination: illum.Fraction,
		Visible:      alt > moonVisibleAltitude,
	}
}

// toCompass converts the ephemeris' south-based radians to degrees with
// azimuth measured from north.
func toCompass(h ephemeris.Horizontal) (azimuth, altitude float64) {
	return compassAzimuth(h.Azimuth), timeutil.Rad2Deg(h.Altitude)
}

func compassAzimuth(raw float64) float64 {
	return timeutil.Normalize360(timeutil.Rad2Deg(raw) + 180)
}
