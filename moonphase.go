package skyphase

import (
	"math"
	"time"

	"github.com/thurmanmarka/skyphase/internal/ephemeris"
)

// MoonPhase describes the illuminated fraction and qualitative phase
// of the Moon at a given instant.
type MoonPhase struct {
	Time     time.Time `json:"time"`     // the instant this phase is evaluated at
	Fraction float64   `json:"fraction"` // illuminated fraction [0..1], 0=new, 1=full
	Phase    float64   `json:"phase"`    // position in the lunation [0..1), 0=new, 0.5=full
	Angle    float64   `json:"angle"`    // midpoint angle of the bright limb, radians
	Waxing   bool      `json:"waxing"`   // true if waxing (illumination increasing), false if waning
	Name     string    `json:"name"`     // e.g. "New Moon", "Waxing Crescent", "First Quarter", ...
}

// MoonPhaseAt computes the Moon's illuminated fraction and qualitative phase
// at the given time. Phase is a global property (independent of observer
// location). The zero time yields ErrInvalidInstant.
func MoonPhaseAt(t time.Time) (MoonPhase, error) {
	if t.IsZero() {
		return MoonPhase{}, ErrInvalidInstant
	}
	m := ephemeris.MoonIllumination(t)
	return MoonPhase{
		Time:     t,
		Fraction: m.Fraction,
		Phase:    m.Phase,
		Angle:    m.Angle,
		Waxing:   m.Phase < 0.5,
		Name:     MoonPhaseLabel(m.Phase),
	}, nil
}

// MoonPhaseLabel names a lunation phase in [0,1). Values outside that
// range are wrapped; NaN is "Unknown".
func MoonPhaseLabel(phase float64) string {
	if math.IsNaN(phase) {
		return "Unknown"
	}
	phase -= math.Floor(phase)

	switch {
	case phase < 0.03:
		return "New Moon"
	case phase < 0.22:
		return "Waxing Crescent"
	case phase < 0.28:
		return "First Quarter"
	case phase < 0.47:
		return "Waxing Gibbous"
	case phase < 0.53:
		return "Full Moon"
	case phase < 0.72:
		return "Waning Gibbous"
	case phase < 0.78:
		return "Third Quarter"
	case phase < 0.97:
		return "Waning Crescent"
	default:
		return "New Moon"
	}
}
