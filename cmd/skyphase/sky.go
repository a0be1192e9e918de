package main

import (
	"context"
	"fmt"
	"time"

	"github.com/thurmanmarka/skyphase"
)

type skyFlags struct {
	LocationFlags
	Time string `subcmd:"time,,'time in RFC3339 or YYYY-MM-DDTHH:MM, defaults to now'"`
	JSON bool   `subcmd:"json,false,output result as JSON"`
}

func sky(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*skyFlags)
	ctx, places, err := setup(ctx)
	if err != nil {
		return err
	}
	coords, zone, err := fv.resolve(ctx, places)
	if err != nil {
		return err
	}
	at, err := parseInstant(fv.Time, zone)
	if err != nil {
		return err
	}
	s := skyphase.Observe(at, coords, nil)
	if fv.JSON {
		return printJSON(s)
	}
	printSnapshot(s)
	return nil
}

func printSnapshot(s skyphase.Snapshot) {
	fmt.Printf("Sky at %s for %v\n\n", s.Time.Format(time.RFC3339), s.Location)
	fmt.Printf("  Phase : %s\n", s.PhaseLabel)
	fmt.Printf("  Sun   : altitude %6.2f°  azimuth %6.2f°\n", s.Sun.Altitude, s.Sun.Azimuth)
	fmt.Printf("  Moon  : altitude %6.2f°  azimuth %6.2f°  %s, %.0f%% lit\n",
		s.Moon.Altitude, s.Moon.Azimuth, s.MoonPhase, s.Moon.Illumination*100)
	r := s.Relevant
	fmt.Printf("\n  Next %s twilights\n", r.Side)
	fmt.Printf("    civil        %s\n", skyphase.FormatClock(r.Civil))
	fmt.Printf("    nautical     %s\n", skyphase.FormatClock(r.Nautical))
	fmt.Printf("    astronomical %s\n", skyphase.FormatClock(r.Astronomical))
}
