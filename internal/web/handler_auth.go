package web

import (
	"crypto/subtle"
	"net/http"
)

type loginRequest struct {
	Password string `json:"password"`
}

// handleLogin checks the submitted password against the configured admin
// secret. No token, no server-side session: the caller keeps a flag in
// browser session storage. The response never echoes the secret.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.adminPassword)) != 1 {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"error":   "Incorrect password",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Authenticated",
	})
}
