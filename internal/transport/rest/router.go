package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/voicejournal-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Usage      *UsageHandler
	Stats      *StatsHandler
	Processing *ProcessingHandler
	Journal    *JournalHandler
	Profile    *ProfileHandler
}

// RouterOptions holds the middleware applied inside the router.
type RouterOptions struct {
	// Auth guards every route under /api.
	Auth middleware.Middleware
	// Metrics, when set, observes every matched route.
	Metrics middleware.Middleware
	// MetricsHandler, when set, is mounted at /metrics.
	MetricsHandler http.Handler
}

// NewRouter builds the route table.
func NewRouter(h Handlers, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	r.Use(mux.MiddlewareFunc(middleware.Chain(opts.Metrics)))

	r.HandleFunc("/live", h.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	if opts.MetricsHandler != nil {
		r.Handle("/metrics", opts.MetricsHandler).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()
	api.Use(mux.MiddlewareFunc(middleware.Chain(opts.Auth)))

	api.HandleFunc("/usage", h.Usage.Get).Methods(http.MethodGet)
	api.HandleFunc("/stats", h.Stats.Get).Methods(http.MethodGet)

	api.HandleFunc("/transcribe", h.Processing.Transcribe).Methods(http.MethodPost)
	api.HandleFunc("/analyze", h.Processing.Analyze).Methods(http.MethodPost)
	api.HandleFunc("/generate-image", h.Processing.GenerateImage).Methods(http.MethodPost)

	api.HandleFunc("/journals", h.Journal.Create).Methods(http.MethodPost)
	api.HandleFunc("/journals", h.Journal.List).Methods(http.MethodGet)
	api.HandleFunc("/journals/{id}", h.Journal.Get).Methods(http.MethodGet)
	api.HandleFunc("/journals/{id}", h.Journal.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/timecapsule", h.Journal.TimeCapsule).Methods(http.MethodGet)

	api.HandleFunc("/profile", h.Profile.Get).Methods(http.MethodGet)
	api.HandleFunc("/profile", h.Profile.Upsert).Methods(http.MethodPut, http.MethodPost)

	return r
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, codeNotFound, "route not found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
}
