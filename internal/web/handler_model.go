package web

import (
	"errors"
	"net/http"

	"github.com/nbeaumont/folio/internal/domain"
)

func (s *Server) handleListModels(w http.ResponseWriter, r *http.Request) {
	models, err := s.service.ListModels(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if models == nil {
		models = []*domain.Model{}
	}
	writeJSON(w, http.StatusOK, models)
}

// handleUploadModel takes the primary 3D file (required) and a thumbnail
// image (optional) as multipart files and uploads them server-side.
func (s *Server) handleUploadModel(w http.ResponseWriter, r *http.Request) {
	if err := parseUploadForm(w, r); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	modelFile, modelHeader, err := r.FormFile("modelFile")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No model file uploaded"})
		return
	}
	defer modelFile.Close()

	modelData, err := readFormFile(modelFile, modelHeader)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	format, err := modelFormat(modelHeader.Filename)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	var (
		thumbData   []byte
		thumbFormat string
	)
	if thumbFile, thumbHeader, err := r.FormFile("thumbnailFile"); err == nil {
		defer thumbFile.Close()

		thumbData, err = readFormFile(thumbFile, thumbHeader)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
		thumbFormat, err = imageFormat(thumbData)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}
	}

	model, err := s.service.UploadModel(r.Context(),
		r.FormValue("name"), modelData, format, thumbData, thumbFormat)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, model)
}

type saveModelRequest struct {
	Name                  string  `json:"name"`
	FileURL               string  `json:"fileUrl"`
	CloudinaryID          string  `json:"cloudinaryId"`
	ThumbnailURL          *string `json:"thumbnailUrl"`
	ThumbnailCloudinaryID *string `json:"thumbnailCloudinaryId"`
}

func (s *Server) handleSaveModel(w http.ResponseWriter, r *http.Request) {
	var req saveModelRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	model, err := s.service.SaveModel(r.Context(),
		req.Name, req.FileURL, req.CloudinaryID, req.ThumbnailURL, req.ThumbnailCloudinaryID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, model)
}

func (s *Server) handleDeleteModel(w http.ResponseWriter, r *http.Request) {
	err := s.service.DeleteModel(r.Context(), r.PathValue("id"))
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Model not found"})
		return
	}
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Model deleted"})
}
