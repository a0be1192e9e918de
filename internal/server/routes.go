package server

import (
	"github.com/go-chi/chi/v5"
)

func addRoutes(r chi.Router, opts Options) {
	r.Get("/healthz", handleHealth(opts))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/sky", handleSky(opts))
		r.Get("/twilight", handleTwilight(opts))
		r.Get("/places", handlePlaces(opts))
		r.Get("/places/{name}/sky", handlePlaceSky(opts))
	})
}
