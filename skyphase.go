// Package skyphase computes where the Sun and Moon are in the sky for an
// observer, the day's twilight times, and which phase of the day an
// instant falls into.
//
// The core is four pure functions:
//
//   - SunPositionAt / MoonPositionAt return apparent altitude and compass
//     azimuth in degrees (plus illumination and phase for the Moon).
//   - TwilightTimesFor returns sunrise, sunset, solar noon and the civil,
//     nautical and astronomical dawn/dusk instants for a calendar date.
//     Instants the ephemeris cannot produce (polar day or night) are
//     replaced by deterministic estimates, so the result is always complete.
//   - ClassifyDayPhase places an instant into one of ten ordered phases.
//   - SelectRelevantTwilight picks the dawn or dusk half of the twilight
//     times depending on whether it is currently night.
//
// All of them take plain values and may be called concurrently. Callers
// that poll frequently can share a TwilightCache, which is the only stateful
// type in the package.
//
// Positions and per-day instants come from the suncalc ephemeris. The
// zero time.Time is treated as an invalid instant: position functions
// report NaN for it, while TwilightTimesFor falls back to fixed clock times.
package skyphase

import (
	"errors"
	"fmt"
)

// Coordinates represent an observer's location.
type Coordinates struct {
	// Lat is in degrees, north positive.
	Lat float64 `json:"latitude" yaml:"latitude"`
	// Lon is in degrees, east positive (west negative, e.g. -105 for 105°W).
	Lon float64 `json:"longitude" yaml:"longitude"`
	// Elevation is meters above sea level (reserved for future use).
	Elevation float64 `json:"elevation,omitempty" yaml:"elevation,omitempty"`
}

// DefaultCoordinates is used when no location is available (New York City).
var DefaultCoordinates = Coordinates{Lat: 40.7128, Lon: -74.0060}

var (
	// ErrNoRiseNoSet is returned when a body does not rise or set on that date at that location.
	ErrNoRiseNoSet = errors.New("body does not rise or set on this date")

	// ErrNotImplemented is returned when that body isn't supported (yet).
	ErrNotImplemented = errors.New("not implemented for this body yet")

	// ErrInvalidCoordinates is returned by Coordinates.Validate.
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrInvalidInstant is returned for the zero time by functions that
	// report errors rather than NaN.
	ErrInvalidInstant = errors.New("invalid instant")
)

// Validate reports whether the coordinates are within [-90,90] and
// [-180,180]. None of the calculations call it; it is meant for input
// boundaries such as command line flags and HTTP parameters.
func (c Coordinates) Validate() error {
	switch {
	case !(c.Lat >= -90 && c.Lat <= 90):
		return fmt.Errorf("%w: latitude %v not in [-90, 90]", ErrInvalidCoordinates, c.Lat)
	case !(c.Lon >= -180 && c.Lon <= 180):
		return fmt.Errorf("%w: longitude %v not in [-180, 180]", ErrInvalidCoordinates, c.Lon)
	}
	return nil
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f°, %.4f°", c.Lat, c.Lon)
}
