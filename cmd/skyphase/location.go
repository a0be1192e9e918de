package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloudeng.io/logging/ctxlog"

	"github.com/thurmanmarka/skyphase"
	"github.com/thurmanmarka/skyphase/internal/config"
)

type LocationFlags struct {
	Lat   string `subcmd:"lat,,'latitude in degrees (north positive)'"`
	Lon   string `subcmd:"lon,,'longitude in degrees (east positive, west negative)'"`
	Place string `subcmd:"place,,name of a place in the --places file"`
	TZ    string `subcmd:"tz,,'IANA time zone, e.g. America/Phoenix; defaults to the place zone or local time'"`
}

// resolve picks the observer: --lat/--lon, then --place, then the default
// place of the places file, then the built-in default coordinates.
func (lf LocationFlags) resolve(ctx context.Context, places *config.Places) (skyphase.Coordinates, *time.Location, error) {
	coords, zone := skyphase.DefaultCoordinates, time.Local
	switch {
	case lf.Lat != "" || lf.Lon != "":
		if lf.Lat == "" || lf.Lon == "" {
			return coords, zone, fmt.Errorf("--lat and --lon must be given together")
		}
		lat, err := strconv.ParseFloat(lf.Lat, 64)
		if err != nil {
			return coords, zone, fmt.Errorf("invalid --lat %q: %w", lf.Lat, err)
		}
		lon, err := strconv.ParseFloat(lf.Lon, 64)
		if err != nil {
			return coords, zone, fmt.Errorf("invalid --lon %q: %w", lf.Lon, err)
		}
		coords = skyphase.Coordinates{Lat: lat, Lon: lon}
		if err := coords.Validate(); err != nil {
			return coords, zone, err
		}
	case lf.Place != "":
		p, ok := places.Lookup(lf.Place)
		if !ok {
			return coords, zone, fmt.Errorf("unknown place %q", lf.Place)
		}
		coords, zone = p.Coordinates(), p.Location()
	default:
		if p, ok := places.DefaultPlace(); ok {
			coords, zone = p.Coordinates(), p.Location()
		} else {
			ctxlog.Logger(ctx).Info("no location given, using the default", "location", coords.String())
		}
	}
	if lf.TZ != "" {
		loc, err := time.LoadLocation(lf.TZ)
		if err != nil {
			return coords, zone, fmt.Errorf("invalid --tz %q: %w", lf.TZ, err)
		}
		zone = loc
	}
	return coords, zone, nil
}

// parseDate parses YYYY-MM-DD in zone, defaulting to today.
func parseDate(s string, zone *time.Location) (time.Time, error) {
	if s == "" {
		y, m, d := time.Now().In(zone).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, zone), nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
}

// parseInstant accepts RFC 3339 or local date/time forms, defaulting to now.
func parseInstant(s string, zone *time.Location) (time.Time, error) {
	if s == "" {
		return time.Now().In(zone), nil
	}
	var err error
	for _, layout := range instantLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, s, zone); err == nil {
			return t.In(zone), nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse time %q: %w", s, err)
}
