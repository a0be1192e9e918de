package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/thurmanmarka/skyphase"
)

// observer resolves the location and time zone of a request. lat and lon
// must be given together; without them the default place is used, and
// failing that the default coordinates. tz overrides the place's zone;
// explicit coordinates without tz get a fixed zone derived from the
// longitude so that the observer's local calendar day is used.
func observer(r *http.Request, opts Options) (skyphase.Coordinates, *time.Location, error) {
	q := r.URL.Query()
	coords, zone := skyphase.DefaultCoordinates, time.UTC
	if p, ok := opts.Places.DefaultPlace(); ok {
		coords, zone = p.Coordinates(), p.Location()
	}

	latS, lonS := q.Get("lat"), q.Get("lon")
	switch {
	case latS != "" && lonS != "":
		lat, err := strconv.ParseFloat(latS, 64)
		if err != nil {
			return coords, zone, fmt.Errorf("invalid lat %q", latS)
		}
		lon, err := strconv.ParseFloat(lonS, 64)
		if err != nil {
			return coords, zone, fmt.Errorf("invalid lon %q", lonS)
		}
		coords = skyphase.Coordinates{Lat: lat, Lon: lon}
		if err := coords.Validate(); err != nil {
			return coords, zone, err
		}
		zone = longitudeZone(lon)
	case latS != "" || lonS != "":
		return coords, zone, fmt.Errorf("lat and lon must be given together")
	}

	if tz := q.Get("tz"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return coords, zone, fmt.Errorf("invalid tz %q", tz)
		}
		zone = loc
	}
	return coords, zone, nil
}

// longitudeZone approximates local time as one hour per 15° of longitude.
func longitudeZone(lon float64) *time.Location {
	hours := int(math.Round(lon / 15))
	if hours == 0 {
		return time.UTC
	}
	return time.FixedZone(fmt.Sprintf("UTC%+d", hours), hours*3600)
}

// instant parses the at parameter as RFC 3339, defaulting to now.
func instant(r *http.Request, opts Options, zone *time.Location) (time.Time, error) {
	at := r.URL.Query().Get("at")
	if at == "" {
		return opts.Now().In(zone), nil
	}
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid at %q: want RFC 3339", at)
	}
	if t.IsZero() {
		return time.Time{}, fmt.Errorf("at %q: %w", at, skyphase.ErrInvalidInstant)
	}
	return t.In(zone), nil
}

// day parses the date parameter as YYYY-MM-DD in zone, defaulting to today.
func day(r *http.Request, opts Options, zone *time.Location) (time.Time, error) {
	ds := r.URL.Query().Get("date")
	if ds == "" {
		y, m, d := opts.Now().In(zone).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, zone), nil
	}
	t, err := time.ParseInLocation(time.DateOnly, ds, zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", ds)
	}
	if t.IsZero() {
		return time.Time{}, fmt.Errorf("date %q: %w", ds, skyphase.ErrInvalidInstant)
	}
	return t, nil
}
