package web

import (
	"net/http"

	"github.com/nbeaumont/folio/internal/domain"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	msg, err := s.service.CreateMessage(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "id": msg.ID})
}

// handleListMessages backs the admin dashboard inbox.
func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := s.service.ListMessages(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if messages == nil {
		messages = []*domain.Message{}
	}
	writeJSON(w, http.StatusOK, messages)
}
