package web

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/nbeaumont/folio/internal/domain"
)

// maxUploadSize caps each uploaded asset at 10 MiB. Oversized requests are
// rejected here, before any media-host call.
const maxUploadSize = 10 << 20

// parseUploadForm applies the size cap to the request body and parses the
// multipart form, translating an overrun into the size-specific error.
func parseUploadForm(w http.ResponseWriter, r *http.Request) error {
	// Headroom for field names and multipart framing around the file itself.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+512*1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) || r.ContentLength > maxUploadSize {
			return &domain.PayloadTooLargeError{Limit: maxUploadSize}
		}
		return domain.Validationf("invalid multipart form")
	}
	return nil
}

// readFormFile reads one uploaded file fully into memory, enforcing the size
// cap per file as well.
func readFormFile(file multipart.File, header *multipart.FileHeader) ([]byte, error) {
	if header.Size > maxUploadSize {
		return nil, &domain.PayloadTooLargeError{Limit: maxUploadSize}
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, domain.Validationf("failed to read uploaded file")
	}
	return data, nil
}

// allowedImageTypes maps sniffed MIME types to the upload format tag.
// http.DetectContentType identifies JPEG and PNG from magic bytes; the
// gallery accepts nothing else for images.
var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
}

// imageFormat sniffs data and returns the format tag, or an error when the
// bytes are not an accepted image.
func imageFormat(data []byte) (string, error) {
	mime := http.DetectContentType(data)
	format, ok := allowedImageTypes[mime]
	if !ok {
		return "", &domain.UnsupportedFormatError{Format: mime}
	}
	return format, nil
}

// modelFormat derives the 3D format from the uploaded filename. glTF assets
// are JSON or a binary container, so extension is the only reliable signal.
func modelFormat(filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext != "glb" && ext != "gltf" {
		return "", &domain.UnsupportedFormatError{Format: ext}
	}
	return ext, nil
}
