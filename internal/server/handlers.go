package server

import (
	"net/http"
	"time"

	"cloudeng.io/logging/ctxlog"
	"github.com/go-chi/chi/v5"

	"github.com/thurmanmarka/skyphase"
	"github.com/thurmanmarka/skyphase/internal/config"
)

func handleHealth(opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hits, misses := opts.Cache.Stats()
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"cache":  map[string]int64{"hits": hits, "misses": misses},
		})
	}
}

func handleSky(opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		coords, zone, err := observer(r, opts)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		at, err := instant(r, opts, zone)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, skyphase.Observe(at, coords, opts.Cache))
	}
}

type twilightResponse struct {
	Date          string                   `json:"date"`
	Location      skyphase.Coordinates     `json:"location"`
	Zone          string                   `json:"timezone"`
	Twilight      skyphase.TwilightTimes   `json:"twilight"`
	DaylightHours *float64                 `json:"daylightHours,omitempty"`
	GoldenHour    *skyphase.DaylightPhases `json:"goldenHour,omitempty"`
	BlueHour      *skyphase.DaylightPhases `json:"blueHour,omitempty"`
}

func handleTwilight(opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		coords, zone, err := observer(r, opts)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		date, err := day(r, opts, zone)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		resp := twilightResponse{
			Date:     date.Format(time.DateOnly),
			Location: coords,
			Zone:     zone.String(),
			Twilight: opts.Cache.Get(date, coords),
		}
		logger := ctxlog.Logger(r.Context())
		if h, err := skyphase.DaylightHours(coords, date); err == nil {
			resp.DaylightHours = &h
		} else {
			logger.Debug("no daylight hours", "date", resp.Date, "error", err)
		}
		if g, err := skyphase.GoldenHourFor(coords, date); err == nil {
			resp.GoldenHour = &g
		}
		if b, err := skyphase.BlueHourFor(coords, date); err == nil {
			resp.BlueHour = &b
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handlePlaces(opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		places := []config.Place{}
		if opts.Places != nil {
			places = opts.Places.Places
		}
		writeJSON(w, http.StatusOK, map[string]any{"places": places})
	}
}

func handlePlaceSky(opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		p, ok := opts.Places.Lookup(name)
		if !ok {
			writeError(w, http.StatusNotFound, "place not found")
			return
		}
		at, err := instant(r, opts, p.Location())
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, skyphase.Observe(at, p.Coordinates(), opts.Cache))
	}
}
