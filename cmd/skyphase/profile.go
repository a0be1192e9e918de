package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thurmanmarka/skyphase"
	"github.com/thurmanmarka/skyphase/internal/profile"
)

type profileFlags struct {
	LocationFlags
	Body     string `subcmd:"body,sun,'celestial body: sun or moon'"`
	Twilight string `subcmd:"twilight,,'twilight kind: civil, nautical, astronomical (sun only)'"`
	RefCSV   string `subcmd:"refcsv,,'path to a reference CSV file (date,rise,set)'"`
	From     string `subcmd:"from,,'first date (YYYY-MM-DD) when generating the reference, defaults to today'"`
	Days     int    `subcmd:"days,365,number of days when generating the reference"`
	OutCSV   string `subcmd:"outcsv,,optional path to write per-row errors as CSV"`
}

func parseTwilightKind(s string) (*skyphase.TwilightKind, error) {
	var k skyphase.TwilightKind
	switch strings.ToLower(s) {
	case "":
		return nil, nil
	case "civil":
		k = skyphase.TwilightCivil
	case "nautical":
		k = skyphase.TwilightNautical
	case "astronomical":
		k = skyphase.TwilightAstronomical
	default:
		return nil, fmt.Errorf("unknown twilight kind %q (use civil, nautical, or astronomical)", s)
	}
	return &k, nil
}

func checkDays(days int) error {
	if days <= 0 {
		return fmt.Errorf("--days must be positive, got %d", days)
	}
	return nil
}

func runProfile(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*profileFlags)
	ctx, places, err := setup(ctx)
	if err != nil {
		return err
	}
	coords, zone, err := fv.resolve(ctx, places)
	if err != nil {
		return err
	}
	body, err := skyphase.ParseBody(strings.ToLower(fv.Body))
	if err != nil {
		return err
	}
	kind, err := parseTwilightKind(fv.Twilight)
	if err != nil {
		return err
	}

	var (
		rows    []profile.Row
		skipped int
	)
	if fv.RefCSV != "" {
		f, err := os.Open(fv.RefCSV)
		if err != nil {
			return err
		}
		defer f.Close()
		if rows, skipped, err = profile.ReadCSV(ctx, f, zone); err != nil {
			return fmt.Errorf("%s: %w", fv.RefCSV, err)
		}
	} else {
		if body != skyphase.Sun || kind != nil {
			return fmt.Errorf("the generated reference only covers sunrise and sunset; use --refcsv")
		}
		if err := checkDays(fv.Days); err != nil {
			return err
		}
		from, err := parseDate(fv.From, zone)
		if err != nil {
			return err
		}
		rows = profile.SunriseReference(coords, from, fv.Days)
	}

	var out io.Writer
	if fv.OutCSV != "" {
		f, err := os.Create(fv.OutCSV)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	rep, err := profile.Run(ctx, profile.Options{Location: coords, Body: body, Twilight: kind}, rows, out)
	if err != nil {
		return err
	}
	rep.Skipped += skipped
	rep.Rows += skipped
	rep.WriteSummary(os.Stdout)
	return nil
}
