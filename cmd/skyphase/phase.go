package main

import (
	"context"
	"fmt"
	"time"

	"github.com/thurmanmarka/skyphase"
)

type phaseFlags struct {
	TZ   string `subcmd:"tz,UTC,'IANA time zone name (e.g. America/Phoenix)'"`
	Time string `subcmd:"time,,'time in RFC3339 or YYYY-MM-DDTHH:MM, defaults to now'"`
	JSON bool   `subcmd:"json,false,output result as JSON"`
}

func moonPhase(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*phaseFlags)
	if _, _, err := setup(ctx); err != nil {
		return err
	}
	loc, err := time.LoadLocation(fv.TZ)
	if err != nil {
		return fmt.Errorf("invalid time zone %q: %w", fv.TZ, err)
	}
	at, err := parseInstant(fv.Time, loc)
	if err != nil {
		return err
	}
	phase, err := skyphase.MoonPhaseAt(at)
	if err != nil {
		return err
	}
	if fv.JSON {
		return printJSON(phase)
	}

	fmt.Printf("Moon phase at %s (%s)\n", phase.Time.Format(time.RFC3339), loc.String())
	fmt.Printf("  Name     : %s\n", phase.Name)
	fmt.Printf("  Fraction : %.3f (%.1f%% illuminated)\n", phase.Fraction, phase.Fraction*100)
	fmt.Printf("  Phase    : %.3f of the lunation\n", phase.Phase)
	if phase.Waxing {
		fmt.Printf("  Trend    : Waxing (illumination increasing)\n")
	} else {
		fmt.Printf("  Trend    : Waning (illumination decreasing)\n")
	}
	return nil
}
