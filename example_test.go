package skyphase_test

import (
	"fmt"
	"time"

	"github.com/thurmanmarka/skyphase"
)

// ExampleSlideIntoSunset demonstrates computing sunrise and sunset for a location.
func ExampleSlideIntoSunset() {
	locNY, _ := time.LoadLocation("America/New_York")
	date := time.Date(2025, time.November, 30, 0, 0, 0, 0, locNY)

	rs, err := skyphase.SlideIntoSunset(skyphase.DefaultCoordinates, date)
	if err != nil {
		panic(err)
	}

	fmt.Println("Sunrise:", rs.Rise.Format(time.RFC3339))
	fmt.Println("Sunset:", rs.Set.Format(time.RFC3339))
	// No Output block: the ephemeris may be refined.
}

// ExampleClassifyDayPhase shows the usual polling loop body: compute the
// day's twilight times once, then classify the current instant.
func ExampleClassifyDayPhase() {
	loc := skyphase.Coordinates{Lat: 33.4484, Lon: -112.0740} // Phoenix, AZ

	locPHX, _ := time.LoadLocation("America/Phoenix")
	now := time.Date(2025, time.November, 28, 18, 0, 0, 0, locPHX)

	tt := skyphase.TwilightTimesFor(now, loc)
	phase := skyphase.ClassifyDayPhase(now, tt)
	next := skyphase.SelectRelevantTwilight(now, tt)

	fmt.Println(phase.Label())
	fmt.Println("Astronomical", next.Side, "at", skyphase.FormatClock(next.Astronomical))
}

// ExampleDaylightHours demonstrates calculating daylight duration.
func ExampleDaylightHours() {
	loc := skyphase.Coordinates{Lat: 33.4484, Lon: -112.0740}
	locPHX, _ := time.LoadLocation("America/Phoenix")

	summer := time.Date(2025, time.June, 21, 0, 0, 0, 0, locPHX)
	summerHours, _ := skyphase.DaylightHours(loc, summer)
	fmt.Printf("Summer solstice daylight: %.2f hours\n", summerHours)

	winter := time.Date(2025, time.December, 21, 0, 0, 0, 0, locPHX)
	winterHours, _ := skyphase.DaylightHours(loc, winter)
	fmt.Printf("Winter solstice daylight: %.2f hours\n", winterHours)
}
