package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/roommatch-backend/internal/config"
	"github.com/heartmarshall/roommatch-backend/internal/transport/middleware"
)

// RouterDeps collects everything the HTTP surface needs.
type RouterDeps struct {
	Logger          *slog.Logger
	CORS            config.CORSConfig
	RateLimit       config.RateLimitConfig
	Auth            middleware.Middleware
	Health          *HealthHandler
	Recommendations *RecommendationHandler
	Connections     *ConnectionHandler
	Applications    *ApplicationHandler
	// Notifications serves the WebSocket stream. Optional.
	Notifications http.Handler
	// Metrics serves the Prometheus scrape endpoint. Optional.
	Metrics http.Handler
}

// NewRouter builds the chi router: health endpoints and /metrics at the root, the
// authenticated API under /api/v1.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
	))

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(d.RateLimit), d.Auth)

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/", d.Recommendations.Personalized)
			r.Get("/high-quality", d.Recommendations.HighQuality)
			r.Get("/students", d.Recommendations.Students)
		})

		r.Route("/announcements/{id}", func(r chi.Router) {
			r.Get("/compatible-applicants", d.Recommendations.Applicants)
			r.Post("/applications", d.Applications.Apply)
			r.Get("/applications", d.Applications.ListForAnnouncement)
		})

		r.Route("/connections", func(r chi.Router) {
			r.Post("/", d.Connections.Send)
			r.Get("/sent", d.Connections.ListSent)
			r.Get("/received", d.Connections.ListReceived)
			r.Get("/network", d.Connections.ListNetwork)
			r.Get("/status/{userId}", d.Connections.Status)
			r.Get("/{id}", d.Connections.Get)
			r.Post("/{id}/respond", d.Connections.Respond)
		})

		r.Route("/applications", func(r chi.Router) {
			r.Get("/mine", d.Applications.ListMine)
			r.Get("/{id}", d.Applications.Get)
			r.Post("/{id}/respond", d.Applications.Respond)
			r.Post("/{id}/withdraw", d.Applications.Withdraw)
		})

		if d.Notifications != nil {
			r.Method(http.MethodGet, "/ws", d.Notifications)
		}
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})
	return r
}
