// Package profile measures how far computed rise/set or twilight instants
// are from a reference ephemeris.
package profile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"cloudeng.io/logging/ctxlog"

	"github.com/thurmanmarka/skyphase"
)

// Options selects what is compared.
type Options struct {
	Location skyphase.Coordinates
	Body     skyphase.Body
	// Twilight, when set, compares dawn/dusk of that kind instead of
	// rise/set (Sun only).
	Twilight *skyphase.TwilightKind
}

// Mode describes the comparison, e.g. "SUN (CIVIL TWILIGHT)".
func (o Options) Mode() string {
	if o.Twilight != nil {
		return fmt.Sprintf("SUN (%s TWILIGHT)", strings.ToUpper(o.Twilight.String()))
	}
	return strings.ToUpper(o.Body.String())
}

func (o Options) validate() error {
	if o.Twilight != nil && o.Body != skyphase.Sun {
		return fmt.Errorf("twilight mode only supported for the sun")
	}
	return o.Location.Validate()
}

// Report is the outcome of a profiling run.
type Report struct {
	Mode       string
	Location   skyphase.Coordinates
	Zone       string
	Rows       int
	Skipped    int
	Rise       Stats // absolute error, minutes
	Set        Stats
	RiseSigned Stats // computed - reference, minutes
	SetSigned  Stats
}

var csvHeader = []string{
	"date", "body", "mode",
	"rise_err", "set_err", "rise_signed", "set_signed",
	"phase_fraction", "phase_name", "phase_waxing",
}

// Run compares each row against the computed instants. Rows for which the
// calculation fails are logged and counted as skipped. If out is non-nil a
// per-row CSV is written to it.
func Run(ctx context.Context, opts Options, rows []Row, out io.Writer) (Report, error) {
	if err := opts.validate(); err != nil {
		return Report{}, err
	}
	logger := ctxlog.Logger(ctx)
	rep := Report{Mode: opts.Mode(), Location: opts.Location}

	var w *csv.Writer
	if out != nil {
		w = csv.NewWriter(out)
		if err := w.Write(csvHeader); err != nil {
			return rep, fmt.Errorf("failed to write CSV header: %w", err)
		}
	}

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		rep.Zone = row.Date.Location().String()
		rep.Rows++

		var (
			rs  skyphase.RiseSet
			err error
		)
		if opts.Twilight != nil {
			rs, err = skyphase.TwilightFor(opts.Location, row.Date, *opts.Twilight)
		} else {
			rs, err = skyphase.RiseSetFor(opts.Body, opts.Location, row.Date)
		}
		if err != nil {
			logger.Warn("skipping row", "date", row.Date.Format(time.DateOnly), "line", row.Line, "error", err)
			rep.Skipped++
			continue
		}

		loc := row.Date.Location()
		gotRise, gotSet := rs.Rise.In(loc), rs.Set.In(loc)
		riseErr, setErr := diffMinutes(gotRise, row.Rise), diffMinutes(gotSet, row.Set)
		riseSigned, setSigned := diffMinutesSigned(gotRise, row.Rise), diffMinutesSigned(gotSet, row.Set)
		rep.Rise.Add(riseErr)
		rep.Set.Add(setErr)
		rep.RiseSigned.Add(riseSigned)
		rep.SetSigned.Add(setSigned)

		logger.Debug("row",
			"date", row.Date.Format(time.DateOnly),
			"rise_err", riseErr, "set_err", setErr,
			"rise", gotRise.Format("15:04"), "ref_rise", row.Rise.Format("15:04"),
			"set", gotSet.Format("15:04"), "ref_set", row.Set.Format("15:04"))

		if w == nil {
			continue
		}
		rec := []string{
			row.Date.Format(time.DateOnly),
			strings.ToUpper(opts.Body.String()),
			rep.Mode,
			fmt.Sprintf("%.6f", riseErr),
			fmt.Sprintf("%.6f", setErr),
			fmt.Sprintf("%.6f", riseSigned),
			fmt.Sprintf("%.6f", setSigned),
			"", "", "",
		}
		if opts.Body == skyphase.Moon {
			// Phase at local noon for the day.
			y, m, d := row.Date.Date()
			if mp, err := skyphase.MoonPhaseAt(time.Date(y, m, d, 12, 0, 0, 0, loc)); err == nil {
				rec[7] = fmt.Sprintf("%.6f", mp.Fraction)
				rec[8] = mp.Name
				rec[9] = "waning"
				if mp.Waxing {
					rec[9] = "waxing"
				}
			}
		}
		if err := w.Write(rec); err != nil {
			return rep, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	if w != nil {
		w.Flush()
		if err := w.Error(); err != nil {
			return rep, err
		}
	}
	return rep, nil
}

// WriteSummary prints a human readable summary of the report.
func (r Report) WriteSummary(w io.Writer) {
	fmt.Fprintln(w, "=== skyphase profiler summary ===")
	fmt.Fprintf(w, "Mode:    %s\n", r.Mode)
	fmt.Fprintf(w, "Lat/Lon: %.4f / %.4f\n", r.Location.Lat, r.Location.Lon)
	fmt.Fprintf(w, "TZ:      %s\n", r.Zone)
	fmt.Fprintf(w, "Rows:    %d (processed), %d skipped\n", r.Rows-r.Skipped, r.Skipped)

	if r.Rise.Count == 0 && r.Set.Count == 0 {
		fmt.Fprintln(w, "No valid rows to compute stats.")
		return
	}
	for _, s := range []struct {
		title string
		stats Stats
	}{
		{"Rise error (minutes)", r.Rise},
		{"Set error (minutes)", r.Set},
		{"Rise signed error (minutes, ours - ref)", r.RiseSigned},
		{"Set signed error (minutes, ours - ref)", r.SetSigned},
	} {
		fmt.Fprintf(w, "\n%s:\n", s.title)
		fmt.Fprintf(w, "  count: %d\n", s.stats.Count)
		fmt.Fprintf(w, "  min:   %.3f\n", s.stats.Min)
		fmt.Fprintf(w, "  max:   %.3f\n", s.stats.Max)
		fmt.Fprintf(w, "  avg:   %.3f\n", s.stats.Mean())
	}
}
