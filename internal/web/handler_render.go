package web

import (
	"errors"
	"net/http"

	"github.com/nbeaumont/folio/internal/domain"
)

func (s *Server) handleListRenders(w http.ResponseWriter, r *http.Request) {
	renders, err := s.service.ListRenders(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if renders == nil {
		renders = []*domain.Render{}
	}
	writeJSON(w, http.StatusOK, renders)
}

// handleUploadRender is the server-side intake mode: the image arrives as a
// multipart file and the backend performs the media-host upload.
func (s *Server) handleUploadRender(w http.ResponseWriter, r *http.Request) {
	if err := parseUploadForm(w, r); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	data, err := readFormFile(file, header)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	format, err := imageFormat(data)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	render, err := s.service.UploadRender(r.Context(),
		r.FormValue("title"), r.FormValue("subtitle"), data, format)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, render)
}

type saveRenderRequest struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	ImageURL     string `json:"imageUrl"`
	CloudinaryID string `json:"cloudinaryId"`
}

// handleSaveRender is the pre-uploaded intake mode: the client already pushed
// the binary to the media host and sends back the URL/handle pair.
func (s *Server) handleSaveRender(w http.ResponseWriter, r *http.Request) {
	var req saveRenderRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	render, err := s.service.SaveRender(r.Context(), req.Title, req.Subtitle, req.ImageURL, req.CloudinaryID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, render)
}

func (s *Server) handleDeleteRender(w http.ResponseWriter, r *http.Request) {
	err := s.service.DeleteRender(r.Context(), r.PathValue("id"))
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Render not found"})
		return
	}
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Render deleted"})
}
