package profile

import (
	"bytes"
	"context"
	"encoding/csv"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/thurmanmarka/skyphase"
)

var phoenix = skyphase.Coordinates{Lat: 33.4484, Lon: -112.0740}

func TestStats(t *testing.T) {
	var s Stats
	if !math.IsNaN(s.Mean()) {
		t.Errorf("empty mean should be NaN")
	}
	for _, v := range []float64{2, math.NaN(), -1, 5} {
		s.Add(v)
	}
	if s.Count != 3 || s.Min != -1 || s.Max != 5 || s.Mean() != 2 {
		t.Errorf("got %+v mean %v", s, s.Mean())
	}
}

func TestReadCSV(t *testing.T) {
	loc, err := time.LoadLocation("America/Phoenix")
	if err != nil {
		t.Fatal(err)
	}
	in := `date,rise,set
2025-11-28,07:11,17:21
2025-11-29,7:12,
bad,07:00,17:00
2025-11-30,07:13
2025-12-01,25:00,17:20
`
	rows, skipped, err := ReadCSV(context.Background(), strings.NewReader(in), loc)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(rows), 2; got != want {
		t.Fatalf("got %d rows, want %d", got, want)
	}
	if skipped != 3 {
		t.Errorf("skipped %d, want 3", skipped)
	}
	want := time.Date(2025, time.November, 28, 7, 11, 0, 0, loc)
	if !rows[0].Rise.Equal(want) || rows[0].Line != 2 {
		t.Errorf("row 0: %+v", rows[0])
	}
	if !rows[1].Set.IsZero() {
		t.Errorf("blank set should be the zero time: %v", rows[1].Set)
	}

	if _, _, err := ReadCSV(context.Background(), strings.NewReader(""), loc); err == nil {
		t.Errorf("expected error for empty input")
	}
}

func TestSunriseReferenceNoDays(t *testing.T) {
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, days := range []int{0, -1} {
		if rows := SunriseReference(phoenix, from, days); len(rows) != 0 {
			t.Errorf("days %d: got %d rows, want 0", days, len(rows))
		}
	}
}

func TestRunAgainstSunriseReference(t *testing.T) {
	loc, err := time.LoadLocation("America/Phoenix")
	if err != nil {
		t.Fatal(err)
	}
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, loc)
	rows := SunriseReference(phoenix, from, 30)

	var out bytes.Buffer
	rep, err := Run(context.Background(), Options{Location: phoenix, Body: skyphase.Sun}, rows, &out)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Rows != 30 || rep.Skipped != 0 {
		t.Errorf("rows %d skipped %d", rep.Rows, rep.Skipped)
	}
	if rep.Rise.Max > 5 || rep.Set.Max > 5 {
		t.Errorf("max error rise %.2f set %.2f minutes", rep.Rise.Max, rep.Set.Max)
	}

	records, err := csv.NewReader(&out).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(records), 31; got != want {
		t.Errorf("got %d CSV records, want %d", got, want)
	}
	if records[1][2] != "SUN" {
		t.Errorf("mode %q", records[1][2])
	}

	var summary bytes.Buffer
	rep.WriteSummary(&summary)
	if !strings.Contains(summary.String(), "Rise error (minutes)") {
		t.Errorf("summary: %s", summary.String())
	}
}

func TestRunTwilightAndMoon(t *testing.T) {
	civil := skyphase.TwilightCivil
	if _, err := Run(context.Background(), Options{Location: phoenix, Body: skyphase.Moon, Twilight: &civil}, nil, nil); err == nil {
		t.Errorf("expected error for moon twilight")
	}
	if got, want := (Options{Twilight: &civil}).Mode(), "SUN (CIVIL TWILIGHT)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	loc, _ := time.LoadLocation("America/Phoenix")
	rows := []Row{{
		Date: time.Date(2025, time.November, 30, 0, 0, 0, 0, loc),
		Rise: time.Date(2025, time.November, 30, 14, 10, 0, 0, loc),
		Set:  time.Date(2025, time.November, 30, 2, 13, 0, 0, loc),
	}}
	var out bytes.Buffer
	rep, err := Run(context.Background(), Options{Location: phoenix, Body: skyphase.Moon}, rows, &out)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Rise.Count != 1 {
		t.Errorf("moon rows not compared: %+v", rep)
	}
	records, _ := csv.NewReader(&out).ReadAll()
	if len(records) != 2 || records[1][8] == "" {
		t.Errorf("moon phase columns missing: %v", records)
	}
}
