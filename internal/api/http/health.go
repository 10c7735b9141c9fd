package http

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthHandler reports liveness.
// GET /healthz
func HealthHandler(botName string) http.HandlerFunc {
	type out struct {
		Status    string `json:"status"`
		Bot       string `json:"bot"`
		Timestamp string `json:"timestamp"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out{
			Status:    "ok",
			Bot:       botName,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
