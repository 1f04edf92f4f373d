package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	middleware "github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/platform/http/middleware"
)

// NewRouter wires the public health and metrics routes and the key-protected /v1 API.
// metricsHandler may be nil, in which case the default Prometheus registry is served.
func NewRouter(h *Handler, apiKey string, metricsHandler http.Handler) chi.Router {
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(apiKey))
		h.RegisterRoutes(r)
	})

	return r
}
