package skyphase

import (
	"fmt"
	"time"
)

// TwilightSide selects the morning or evening half of a day's twilights.
type TwilightSide int

const (
	DawnSide TwilightSide = iota
	DuskSide
)

func (s TwilightSide) String() string {
	switch s {
	case DawnSide:
		return "dawn"
	case DuskSide:
		return "dusk"
	default:
		return fmt.Sprintf("TwilightSide(%d)", int(s))
	}
}

func (s TwilightSide) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// RelevantTwilightSet holds the civil, nautical and astronomical instants
// of the upcoming (or current) twilight.
type RelevantTwilightSet struct {
	Side         TwilightSide `json:"kind"`
	Civil        time.Time    `json:"civil"`
	Nautical     time.Time    `json:"nautical"`
	Astronomical time.Time    `json:"astronomical"`
}

// SelectRelevantTwilight returns the dawn twilights when t is before
// astronomical dawn or after astronomical dusk, and the dusk twilights
// otherwise.
func SelectRelevantTwilight(t time.Time, tt TwilightTimes) RelevantTwilightSet {
	night := t.Before(tt.AstronomicalDawn) || t.After(tt.AstronomicalDusk)
	if night {
		return RelevantTwilightSet{
			Side:         DawnSide,
			Civil:        tt.CivilDawn,
			Nautical:     tt.NauticalDawn,
			Astronomical: tt.AstronomicalDawn,
		}
	}
	return RelevantTwilightSet{
		Side:         DuskSide,
		Civil:        tt.CivilDusk,
		Nautical:     tt.NauticalDusk,
		Astronomical: tt.AstronomicalDusk,
	}
}

// Countdown is the time remaining from an instant to each twilight of a
// RelevantTwilightSet. Negative values mean the milestone has passed.
type Countdown struct {
	Civil        time.Duration `json:"civil"`
	Nautical     time.Duration `json:"nautical"`
	Astronomical time.Duration `json:"astronomical"`
}

// Until returns the durations from now to each twilight in the set.
func (r RelevantTwilightSet) Until(now time.Time) Countdown {
	return Countdown{
		Civil:        r.Civil.Sub(now),
		Nautical:     r.Nautical.Sub(now),
		Astronomical: r.Astronomical.Sub(now),
	}
}
