package rest

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"
)

type healthCheck struct {
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type healthResponse struct {
	Status     string                 `json:"status"`
	CheckedAt  time.Time              `json:"checked_at"`
	Components map[string]healthCheck `json:"components"`
}

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// pingHandler is the liveness probe: the process answers, nothing else.
func (h *HealthHandler) pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "OK"})
}

// healthCheckHandler is the readiness probe: it requires a live database.
func (h *HealthHandler) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	start := time.Now()
	pingErr := h.db.PingContext(ctx)

	check := healthCheck{
		Status:     "healthy",
		DurationMs: time.Since(start).Milliseconds(),
	}
	statusCode := http.StatusOK
	if pingErr != nil {
		check.Status = "unhealthy"
		check.Message = pingErr.Error()
		statusCode = http.StatusServiceUnavailable
	}

	resp := healthResponse{
		Status:     check.Status,
		CheckedAt:  time.Now(),
		Components: map[string]healthCheck{"postgres": check},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}
