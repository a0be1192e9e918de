package skyphase

import (
	"fmt"
	"time"

	"github.com/thurmanmarka/skyphase/internal/timeutil"
)

// DayPhase is the lighting period of the day an instant falls into.
type DayPhase int

const (
	Night DayPhase = iota
	AstronomicalTwilight
	NauticalTwilight
	CivilTwilight
	Dawn
	Morning
	Midday
	Afternoon
	Evening
	Dusk
)

var dayPhaseNames = [...]string{
	Night:                "night",
	AstronomicalTwilight: "astronomical-twilight",
	NauticalTwilight:     "nautical-twilight",
	CivilTwilight:        "civil-twilight",
	Dawn:                 "dawn",
	Morning:              "morning",
	Midday:               "midday",
	Afternoon:            "afternoon",
	Evening:              "evening",
	Dusk:                 "dusk",
}

var dayPhaseLabels = [...]string{
	Night:                "Night",
	AstronomicalTwilight: "Astronomical Twilight",
	NauticalTwilight:     "Nautical Twilight",
	CivilTwilight:        "Civil Twilight",
	Dawn:                 "Dawn",
	Morning:              "Morning",
	Midday:               "Midday",
	Afternoon:            "Afternoon",
	Evening:              "Evening",
	Dusk:                 "Dusk",
}

// DayPhases lists every phase in enum order.
var DayPhases = []DayPhase{
	Night, AstronomicalTwilight, NauticalTwilight, CivilTwilight, Dawn,
	Morning, Midday, Afternoon, Evening, Dusk,
}

func (p DayPhase) valid() bool {
	return p >= Night && p <= Dusk
}

// String returns the machine name, e.g. "nautical-twilight".
func (p DayPhase) String() string {
	if !p.valid() {
		return fmt.Sprintf("DayPhase(%d)", int(p))
	}
	return dayPhaseNames[p]
}

// Label returns the display name, e.g. "Nautical Twilight".
func (p DayPhase) Label() string {
	if !p.valid() {
		return "Unknown"
	}
	return dayPhaseLabels[p]
}

// IsDark reports whether the sky is dark enough for a night scene.
func (p DayPhase) IsDark() bool {
	return p == Night || p == AstronomicalTwilight || p == NauticalTwilight
}

// ParseDayPhase is the inverse of DayPhase.String.
func ParseDayPhase(s string) (DayPhase, error) {
	for i, name := range dayPhaseNames {
		if name == s {
			return DayPhase(i), nil
		}
	}
	return 0, fmt.Errorf("unknown day phase %q", s)
}

func (p DayPhase) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, fmt.Errorf("invalid day phase %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *DayPhase) UnmarshalText(b []byte) error {
	v, err := ParseDayPhase(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ClassifyDayPhase returns the phase of the day that t falls into, given
// that day's twilight times. Each phase is a half-open interval closed at
// its start, so an instant equal to a boundary belongs to the later phase.
//
// The dawn phase covers the first hour after sunrise and the evening
// phase the last hour before sunset. Morning runs until halfway between
// sunrise and solar noon, midday until halfway between solar noon and
// sunset.
//
// Dusk is never returned; after sunset the phases run back through the
// twilights to night. Inconsistent twilight times (for example fallbacks
// near the poles, or the zero value) still yield a phase; a zero
// TwilightTimes classifies every later instant as Night.
func ClassifyDayPhase(t time.Time, tt TwilightTimes) DayPhase {
	switch {
	case t.Before(tt.AstronomicalDawn):
		return Night
	case t.Before(tt.NauticalDawn):
		return AstronomicalTwilight
	case t.Before(tt.CivilDawn):
		return NauticalTwilight
	case t.Before(tt.Sunrise):
		return CivilTwilight
	case t.Before(tt.Sunrise.Add(time.Hour)):
		return Dawn
	case t.Before(timeutil.Midpoint(tt.Sunrise, tt.SolarNoon)):
		return Morning
	case t.Before(timeutil.Midpoint(tt.SolarNoon, tt.Sunset)):
		return Midday
	case t.Before(tt.Sunset.Add(-time.Hour)):
		return Afternoon
	case t.Before(tt.Sunset):
		return Evening
	case t.Before(tt.CivilDusk):
		return CivilTwilight
	case t.Before(tt.NauticalDusk):
		return NauticalTwilight
	case t.Before(tt.AstronomicalDusk):
		return AstronomicalTwilight
	default:
		return Night
	}
}
