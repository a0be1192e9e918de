package skyphase

import "time"

// Snapshot is everything a display needs for one instant.
type Snapshot struct {
	Time       time.Time           `json:"time"`
	Location   Coordinates         `json:"location"`
	Sun        SunPosition         `json:"sun"`
	Moon       MoonPosition        `json:"moon"`
	MoonPhase  string              `json:"moonPhase"`
	Twilight   TwilightTimes       `json:"twilight"`
	Phase      DayPhase            `json:"phase"`
	PhaseLabel string              `json:"phaseLabel"`
	Dark       bool                `json:"dark"`
	Relevant   RelevantTwilightSet `json:"relevant"`
	Countdown  Countdown           `json:"countdown"`
}

// Observe computes a Snapshot of the sky at t for loc. Twilight times are
// those of t's calendar day in t's location, taken from cache when it is
// non-nil. A cached day is shared by every location in the same 0.01° cell
// (see TwilightCache), so Twilight may have been computed for a point up to
// about a kilometre from Location; its instants then differ by seconds.
// Positions are always computed for loc.
func Observe(t time.Time, loc Coordinates, cache *TwilightCache) Snapshot {
	tt := cache.twilightTimes(t, loc)
	phase := ClassifyDayPhase(t, tt)
	moon := MoonPositionAt(t, loc)
	rel := SelectRelevantTwilight(t, tt)
	return Snapshot{
		Time:       t,
		Location:   loc,
		Sun:        SunPositionAt(t, loc),
		Moon:       moon,
		MoonPhase:  MoonPhaseLabel(moon.Phase),
		Twilight:   tt,
		Phase:      phase,
		PhaseLabel: phase.Label(),
		Dark:       phase.IsDark(),
		Relevant:   rel,
		Countdown:  rel.Until(t),
	}
}
