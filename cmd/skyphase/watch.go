package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloudeng.io/logging/ctxlog"

	"github.com/thurmanmarka/skyphase"
)

type watchFlags struct {
	LocationFlags
	Interval time.Duration `subcmd:"interval,30s,how often to recompute the sky"`
	Once     bool          `subcmd:"once,false,print the current snapshot and exit"`
}

// tracker remembers the last phase and calendar day seen so that only
// changes are reported.
type tracker struct {
	loc   skyphase.Coordinates
	cache *skyphase.TwilightCache

	started bool
	phase   skyphase.DayPhase
	day     string
}

type observation struct {
	snapshot     skyphase.Snapshot
	phaseChanged bool
	newDay       bool
	previous     skyphase.DayPhase
}

func newTracker(loc skyphase.Coordinates) *tracker {
	return &tracker{loc: loc, cache: skyphase.NewTwilightCache(4)}
}

func (t *tracker) observe(now time.Time) observation {
	s := skyphase.Observe(now, t.loc, t.cache)
	day := now.Format(time.DateOnly)
	o := observation{
		snapshot:     s,
		previous:     t.phase,
		phaseChanged: !t.started || s.Phase != t.phase,
		newDay:       !t.started || day != t.day,
	}
	t.started, t.phase, t.day = true, s.Phase, day
	return o
}

func watch(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*watchFlags)
	ctx, places, err := setup(ctx)
	if err != nil {
		return err
	}
	coords, zone, err := fv.resolve(ctx, places)
	if err != nil {
		return err
	}
	if fv.Interval <= 0 {
		return fmt.Errorf("--interval must be positive, got %v", fv.Interval)
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := ctxlog.Logger(ctx).With("location", coords.String(), "zone", zone.String())
	tr := newTracker(coords)
	report := func(now time.Time) {
		o := tr.observe(now.In(zone))
		s := o.snapshot
		if o.newDay {
			tt := s.Twilight
			logger.Info("twilight times",
				"date", now.In(zone).Format(time.DateOnly),
				"astronomical_dawn", skyphase.FormatClock(tt.AstronomicalDawn),
				"sunrise", skyphase.FormatClock(tt.Sunrise),
				"sunset", skyphase.FormatClock(tt.Sunset),
				"astronomical_dusk", skyphase.FormatClock(tt.AstronomicalDusk))
		}
		if o.phaseChanged {
			logger.Info("phase", "phase", s.Phase, "label", s.PhaseLabel, "previous", o.previous, "dark", s.Dark)
		}
		logger.Debug("sky",
			"sun_altitude", s.Sun.Altitude, "sun_azimuth", s.Sun.Azimuth,
			"moon_altitude", s.Moon.Altitude, "moon_azimuth", s.Moon.Azimuth,
			"moon_visible", s.Moon.Visible, "moon_phase", s.MoonPhase,
			"next", s.Relevant.Side, "civil_in", s.Countdown.Civil.Round(time.Second))
	}

	if fv.Once {
		printSnapshot(tr.observe(time.Now().In(zone)).snapshot)
		return nil
	}

	report(time.Now())
	ticker := time.NewTicker(fv.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			report(now)
		}
	}
}
