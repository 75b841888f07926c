package web

import (
	"context"
	"net/http"
	"time"
)

// handleHealth always answers 200; a down store is reported in the body, not
// as a failed request.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	database := "Connected"
	var errMsg any
	if err := s.service.Ping(ctx); err != nil {
		database = "Disconnected"
		errMsg = err.Error()
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "Online",
		"message":  "Portfolio API is running",
		"database": database,
		"error":    errMsg,
	})
}
