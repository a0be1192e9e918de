package main

import (
	"context"
	"fmt"
	"time"

	"github.com/thurmanmarka/skyphase"
)

type twilightFlags struct {
	LocationFlags
	Date string `subcmd:"date,,'date in YYYY-MM-DD, defaults to today'"`
	JSON bool   `subcmd:"json,false,output result as JSON"`
}

type twilightOutput struct {
	Date       string                   `json:"date"`
	Location   skyphase.Coordinates     `json:"location"`
	Timezone   string                   `json:"timezone"`
	Twilight   skyphase.TwilightTimes   `json:"twilight"`
	GoldenHour *skyphase.DaylightPhases `json:"goldenHour,omitempty"`
	BlueHour   *skyphase.DaylightPhases `json:"blueHour,omitempty"`
}

func twilight(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*twilightFlags)
	ctx, places, err := setup(ctx)
	if err != nil {
		return err
	}
	coords, zone, err := fv.resolve(ctx, places)
	if err != nil {
		return err
	}
	date, err := parseDate(fv.Date, zone)
	if err != nil {
		return err
	}

	out := twilightOutput{
		Date:     date.Format(time.DateOnly),
		Location: coords,
		Timezone: zone.String(),
		Twilight: skyphase.TwilightTimesFor(date, coords),
	}
	if g, err := skyphase.GoldenHourFor(coords, date); err == nil {
		out.GoldenHour = &g
	}
	if b, err := skyphase.BlueHourFor(coords, date); err == nil {
		out.BlueHour = &b
	}
	if fv.JSON {
		return printJSON(out)
	}

	tt := out.Twilight
	fmt.Printf("Twilight for %v on %s (%s)\n\n", coords, out.Date, out.Timezone)
	for _, row := range []struct {
		name string
		t    time.Time
	}{
		{"Astronomical dawn", tt.AstronomicalDawn},
		{"Nautical dawn", tt.NauticalDawn},
		{"Civil dawn", tt.CivilDawn},
		{"Sunrise", tt.Sunrise},
		{"Solar noon", tt.SolarNoon},
		{"Sunset", tt.Sunset},
		{"Civil dusk", tt.CivilDusk},
		{"Nautical dusk", tt.NauticalDusk},
		{"Astronomical dusk", tt.AstronomicalDusk},
	} {
		fmt.Printf("  %-18s %s\n", row.name, skyphase.FormatClock(row.t))
	}
	printWindows("Golden hour", out.GoldenHour)
	printWindows("Blue hour", out.BlueHour)
	return nil
}

func printWindows(name string, p *skyphase.DaylightPhases) {
	if p == nil {
		return
	}
	fmt.Printf("\n%s\n", name)
	if p.HasMorning {
		fmt.Printf("  morning %s - %s\n", skyphase.FormatClock(p.Morning.Start), skyphase.FormatClock(p.Morning.End))
	}
	if p.HasEvening {
		fmt.Printf("  evening %s - %s\n", skyphase.FormatClock(p.Evening.Start), skyphase.FormatClock(p.Evening.End))
	}
}
