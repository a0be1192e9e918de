package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/thurmanmarka/skyphase"
)

type riseSetFlags struct {
	LocationFlags
	Date  string `subcmd:"date,,'date in YYYY-MM-DD, defaults to today'"`
	Body  string `subcmd:"body,sun,'celestial body: sun or moon'"`
	Event string `subcmd:"event,both,'event: rise, set, or both'"`
	JSON  bool   `subcmd:"json,false,output result as JSON"`
}

type riseSetOutput struct {
	Body      string           `json:"body"`
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Date      string           `json:"date"` // YYYY-MM-DD
	Rise      *time.Time       `json:"rise,omitempty"`
	Set       *time.Time       `json:"set,omitempty"`
	Timezone  string           `json:"timezone"`
	Raw       skyphase.RiseSet `json:"raw"`
}

func riseSet(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*riseSetFlags)
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
	body, err := skyphase.ParseBody(strings.ToLower(fv.Body))
	if err != nil {
		return err
	}
	event := strings.ToLower(fv.Event)
	switch event {
	case "rise", "set", "both":
	default:
		return fmt.Errorf("unknown event %q (use rise, set or both)", fv.Event)
	}

	rs, err := skyphase.RiseSetFor(body, coords, date)
	if err != nil {
		return fmt.Errorf("computing %v rise/set: %w", body, err)
	}

	if fv.JSON {
		out := riseSetOutput{
			Body:      body.String(),
			Latitude:  coords.Lat,
			Longitude: coords.Lon,
			Date:      date.Format(time.DateOnly),
			Timezone:  zone.String(),
			Raw:       rs,
		}
		if event != "set" && !rs.Rise.IsZero() {
			out.Rise = &rs.Rise
		}
		if event != "rise" && !rs.Set.IsZero() {
			out.Set = &rs.Set
		}
		return printJSON(out)
	}

	fmt.Printf("%s rise/set for %v\n", strings.ToUpper(body.String()[:1])+body.String()[1:], coords)
	fmt.Printf("Date: %s (%s)\n\n", date.Format(time.DateOnly), zone)
	if event != "set" {
		fmt.Printf("Rise: %s\n", formatInstant(rs.Rise))
	}
	if event != "rise" {
		fmt.Printf("Set:  %s\n", formatInstant(rs.Set))
	}
	return nil
}

func formatInstant(t time.Time) string {
	if t.IsZero() {
		return "none"
	}
	return t.Format(time.RFC3339)
}
