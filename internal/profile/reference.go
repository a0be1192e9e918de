package profile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"cloudeng.io/logging/ctxlog"
	"github.com/nathan-osman/go-sunrise"

	"github.com/thurmanmarka/skyphase"
)

// Row is one reference day.
type Row struct {
	Line int // 1-based line in the source, 0 if generated
	Date time.Time
	Rise time.Time
	Set  time.Time
}

// ReadCSV reads reference rows in the form
//
//	date,rise,set
//	2025-01-01,07:32,17:12
//
// where date is YYYY-MM-DD and rise/set are HH:MM local times in loc. A
// leading header row is skipped. An empty rise or set means the event does
// not occur that day. Malformed rows are logged and counted as skipped.
func ReadCSV(ctx context.Context, r io.Reader, loc *time.Location) (rows []Row, skipped int, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, 0, fmt.Errorf("empty CSV file")
	}

	logger := ctxlog.Logger(ctx)
	start := 0
	if len(records[0]) >= 1 && strings.EqualFold(strings.TrimSpace(records[0][0]), "date") {
		start = 1
	}
	for i := start; i < len(records); i++ {
		rec := records[i]
		line := i + 1
		if len(rec) < 3 {
			logger.Warn("skipping row", "line", line, "reason", fmt.Sprintf("expected 3 columns, got %d", len(rec)))
			skipped++
			continue
		}
		date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(rec[0]), loc)
		if err != nil {
			logger.Warn("skipping row", "line", line, "error", err)
			skipped++
			continue
		}
		rise, err := parseLocalTime(date, rec[1])
		if err != nil {
			logger.Warn("skipping row", "line", line, "field", "rise", "error", err)
			skipped++
			continue
		}
		set, err := parseLocalTime(date, rec[2])
		if err != nil {
			logger.Warn("skipping row", "line", line, "field", "set", "error", err)
			skipped++
			continue
		}
		rows = append(rows, Row{Line: line, Date: date, Rise: rise, Set: set})
	}
	return rows, skipped, nil
}

// parseLocalTime parses HH:MM on date's calendar day. Blank or "-" is the
// zero time.
func parseLocalTime(date time.Time, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return time.Time{}, nil
	}
	c, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour(), c.Minute(), 0, 0, date.Location()), nil
}

// SunriseReference generates days consecutive rows starting at from using
// the NOAA sunrise equation. Times are converted to from's location.
// A non-positive days yields no rows.
func SunriseReference(loc skyphase.Coordinates, from time.Time, days int) []Row {
	if days <= 0 {
		return nil
	}
	rows := make([]Row, 0, days)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i)
		y, m, d := date.Date()
		rise, set := sunrise.SunriseSunset(loc.Lat, loc.Lon, y, m, d)
		row := Row{Date: time.Date(y, m, d, 0, 0, 0, 0, from.Location())}
		if !rise.IsZero() {
			row.Rise = rise.In(from.Location())
		}
		if !set.IsZero() {
			row.Set = set.In(from.Location())
		}
		rows = append(rows, row)
	}
	return rows
}
