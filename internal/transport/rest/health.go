package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/frahmantamala/legaltech-workflows/internal/session"
)

type HealthStatus string

const HealthHealthy HealthStatus = "healthy"

type HealthResponse struct {
	Status     HealthStatus          `json:"status"`
	CheckedAt  time.Time             `json:"checked_at"`
	Components map[string]CheckEntry `json:"components"`
}

type CheckEntry struct {
	Status    HealthStatus   `json:"status"`
	Details   map[string]any `json:"details,omitempty"`
	CheckedAt time.Time      `json:"checked_at"`
}

type HealthHandler struct {
	sessions  *session.Store
	startedAt time.Time
}

func NewHealthHandler(sessions *session.Store) *HealthHandler {
	return &HealthHandler{sessions: sessions, startedAt: time.Now()}
}

// pingHandler just says the service is up.
func (h *HealthHandler) pingHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "OK"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// healthCheckHandler reports the only stateful component this demo has:
// the in-memory session store.
func (h *HealthHandler) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	resp := HealthResponse{
		Status:    HealthHealthy,
		CheckedAt: now,
		Components: map[string]CheckEntry{
			"session_store": {
				Status: HealthHealthy,
				Details: map[string]any{
					"live_sessions":  h.sessions.Count(),
					"uptime_seconds": int64(now.Sub(h.startedAt).Seconds()),
				},
				CheckedAt: now,
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
