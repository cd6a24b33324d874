package rest

import (
	"context"
	"net/http"
	"time"
)

const (
	healthCheckTimeout = 3 * time.Second

	statusOK           = "ok"
	statusDown         = "down"
	statusDegraded     = "degraded"
	statusUnconfigured = "unconfigured"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// AIStatus is the configured state of the inference backends. It is read
// from configuration; health checks never call the paid endpoints.
type AIStatus struct {
	Analyzer   string
	Configured bool
}

// HealthDeps are the components reported by /health. Storage may be nil.
type HealthDeps struct {
	DB      pinger
	Storage pinger
	AI      AIStatus
}

// HealthHandler serves /live, /ready and /health.
type HealthHandler struct {
	deps    HealthDeps
	version string
}

func NewHealthHandler(deps HealthDeps, version string) *HealthHandler {
	return &HealthHandler{deps: deps, version: version}
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the state of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready answers 503 until the database is reachable. Journals cannot be
// read or written without it.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.deps.DB.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: statusDown, Timestamp: time.Now()})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Health reports every component. A database failure is fatal (503).
// Storage failures and missing AI credentials degrade the service: journals
// still work, image generation or processing does not.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	components := map[string]CompStatus{
		"database": pingComponent(ctx, h.deps.DB),
		"ai":       aiComponent(h.deps.AI),
	}
	if h.deps.Storage != nil {
		components["storage"] = pingComponent(ctx, h.deps.Storage)
	}

	overall := statusOK
	for name, c := range components {
		if c.Status == statusOK {
			continue
		}
		if name == "database" {
			overall = statusDown
			break
		}
		overall = statusDegraded
	}

	code := http.StatusOK
	if overall == statusDown {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func pingComponent(ctx context.Context, p pinger) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown}
	}
	return CompStatus{Status: statusOK, Latency: time.Since(start).String()}
}

func aiComponent(ai AIStatus) CompStatus {
	if !ai.Configured {
		return CompStatus{Status: statusUnconfigured, Detail: ai.Analyzer}
	}
	return CompStatus{Status: statusOK, Detail: ai.Analyzer}
}
