package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter wires the redirect, tracking, stats and health routes.
// Only click ingestion is rate limited. The client address comes from the
// configured platform header or the connection, never from X-Forwarded-For
// style headers.
func NewRouter(handler *Handler, logger *zap.Logger, rateLimiter *RateLimiter) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handler.Healthz)
	r.Get("/readyz", handler.Readyz)

	r.Get("/go", handler.Redirect)
	r.Get("/go/", handler.Redirect)
	r.Get("/go/{reference}", handler.Redirect)

	r.Route("/api", func(r chi.Router) {
		r.Get("/stats/{reference}", handler.Stats)

		r.Route("/track-click", func(r chi.Router) {
			r.Use(CORS(handler.cfg.CORSAllowOrigin))
			r.Options("/", handler.TrackClickPreflight)
			r.With(rateLimiter.Middleware).Post("/", handler.TrackClick)
		})
	})

	return r
}
