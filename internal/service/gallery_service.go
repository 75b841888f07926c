package service

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/nbeaumont/folio/internal/domain"
	"github.com/nbeaumont/folio/internal/mediastore"
)

// renderRepository is the subset of store.RenderStore that GalleryService requires.
type renderRepository interface {
	Create(ctx context.Context, title, subtitle, imageURL, cloudinaryID string, order int) (*domain.Render, error)
	GetByID(ctx context.Context, id string) (*domain.Render, error)
	List(ctx context.Context) ([]*domain.Render, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// modelRepository is the subset of store.ModelStore that GalleryService requires.
type modelRepository interface {
	Create(ctx context.Context, name, fileURL, cloudinaryID, modelType string, thumbnailURL, thumbnailCloudinaryID *string) (*domain.Model, error)
	GetByID(ctx context.Context, id string) (*domain.Model, error)
	List(ctx context.Context) ([]*domain.Model, error)
	Delete(ctx context.Context, id string) error
}

// messageRepository is the subset of store.MessageStore that GalleryService requires.
type messageRepository interface {
	Create(ctx context.Context, name, email, message string) (*domain.Message, error)
	List(ctx context.Context) ([]*domain.Message, error)
}

type GalleryService struct {
	renders  renderRepository
	models   modelRepository
	messages messageRepository
	media    mediastore.MediaStore
	logger   *slog.Logger
}

func NewGalleryService(
	renders renderRepository,
	models modelRepository,
	messages messageRepository,
	media mediastore.MediaStore,
	logger *slog.Logger,
) *GalleryService {
	return &GalleryService{
		renders:  renders,
		models:   models,
		messages: messages,
		media:    media,
		logger:   logger,
	}
}

func (s *GalleryService) ListRenders(ctx context.Context) ([]*domain.Render, error) {
	return s.renders.List(ctx)
}

func (s *GalleryService) ListModels(ctx context.Context) ([]*domain.Model, error) {
	return s.models.List(ctx)
}

func (s *GalleryService) ListMessages(ctx context.Context) ([]*domain.Message, error) {
	return s.messages.List(ctx)
}

// UploadRender pushes the image to the media host, then persists the
// metadata row. If the insert fails the uploaded binary stays behind in the
// media host; there is no compensating delete.
func (s *GalleryService) UploadRender(ctx context.Context, title, subtitle string, image []byte, format string) (*domain.Render, error) {
	s.logger.Info("upload render started", "title", title, "bytes", len(image), "format", format)

	asset, err := s.media.Upload(ctx, bytes.NewReader(image), mediastore.KindImage, format)
	if err != nil {
		return nil, err
	}

	render, err := s.renders.Create(ctx, title, subtitle, asset.URL, asset.DeletionHandle, 0)
	if err != nil {
		s.logger.Error("render insert failed after upload, asset orphaned",
			"handle", asset.DeletionHandle, "error", err)
		return nil, err
	}

	s.logger.Info("render created", "id", render.ID)
	return render, nil
}

// SaveRender persists metadata for an asset the client already uploaded to
// the media host directly.
func (s *GalleryService) SaveRender(ctx context.Context, title, subtitle, imageURL, cloudinaryID string) (*domain.Render, error) {
	if strings.TrimSpace(imageURL) == "" || strings.TrimSpace(cloudinaryID) == "" {
		return nil, domain.Validationf("imageUrl and cloudinaryId are required")
	}
	return s.renders.Create(ctx, title, subtitle, imageURL, cloudinaryID, 0)
}

// UploadModel pushes the primary 3D file (and optional thumbnail) to the
// media host, then persists the metadata row. The thumbnail is independent:
// pass nil thumbnail data for a model without one.
func (s *GalleryService) UploadModel(ctx context.Context, name string, model []byte, modelFormat string, thumbnail []byte, thumbnailFormat string) (*domain.Model, error) {
	s.logger.Info("upload model started", "name", name,
		"model_bytes", len(model), "has_thumbnail", thumbnail != nil)

	primary, err := s.media.Upload(ctx, bytes.NewReader(model), mediastore.KindRaw, modelFormat)
	if err != nil {
		return nil, err
	}

	var thumbURL, thumbHandle *string
	if thumbnail != nil {
		thumb, err := s.media.Upload(ctx, bytes.NewReader(thumbnail), mediastore.KindImage, thumbnailFormat)
		if err != nil {
			return nil, err
		}
		thumbURL = &thumb.URL
		thumbHandle = &thumb.DeletionHandle
	}

	created, err := s.models.Create(ctx, name, primary.URL, primary.DeletionHandle, modelFormat, thumbURL, thumbHandle)
	if err != nil {
		s.logger.Error("model insert failed after upload, asset orphaned",
			"handle", primary.DeletionHandle, "error", err)
		return nil, err
	}

	s.logger.Info("model created", "id", created.ID)
	return created, nil
}

// SaveModel persists metadata for assets the client already uploaded to the
// media host directly. The thumbnail pair is all-or-nothing.
func (s *GalleryService) SaveModel(ctx context.Context, name, fileURL, cloudinaryID string, thumbnailURL, thumbnailCloudinaryID *string) (*domain.Model, error) {
	if strings.TrimSpace(fileURL) == "" || strings.TrimSpace(cloudinaryID) == "" {
		return nil, domain.Validationf("fileUrl and cloudinaryId are required")
	}
	if (thumbnailURL == nil) != (thumbnailCloudinaryID == nil) {
		return nil, domain.Validationf("thumbnailUrl and thumbnailCloudinaryId must be provided together")
	}
	return s.models.Create(ctx, name, fileURL, cloudinaryID, "", thumbnailURL, thumbnailCloudinaryID)
}

// DeleteRender removes the stored binary first, then the metadata row.
// Returns domain.ErrNotFound without touching the media host when the id is
// unknown.
func (s *GalleryService) DeleteRender(ctx context.Context, id string) error {
	render, err := s.renders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if render == nil {
		return domain.ErrNotFound
	}

	if err := s.media.Delete(ctx, render.CloudinaryID, mediastore.KindImage); err != nil {
		return err
	}

	if err := s.renders.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("render deleted", "id", id)
	return nil
}

// DeleteModel removes the primary binary (kind raw), the thumbnail if
// present (kind image), then the metadata row. A thumbnail delete failure is
// logged and does not block removal: failing here would strand the row after
// its primary asset is already gone.
func (s *GalleryService) DeleteModel(ctx context.Context, id string) error {
	model, err := s.models.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if model == nil {
		return domain.ErrNotFound
	}

	if err := s.media.Delete(ctx, model.CloudinaryID, mediastore.KindRaw); err != nil {
		return err
	}

	if model.ThumbnailCloudinaryID != nil {
		if err := s.media.Delete(ctx, *model.ThumbnailCloudinaryID, mediastore.KindImage); err != nil {
			s.logger.Error("thumbnail delete failed, continuing",
				"id", id, "handle", *model.ThumbnailCloudinaryID, "error", err)
		}
	}

	if err := s.models.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("model deleted", "id", id)
	return nil
}

// CreateMessage validates and stores a contact form submission. Nothing is
// sent anywhere; the admin reads messages from the dashboard.
func (s *GalleryService) CreateMessage(ctx context.Context, name, email, message string) (*domain.Message, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		return nil, domain.Validationf("All fields are required")
	}
	return s.messages.Create(ctx, name, email, message)
}

// Ping reports whether the metadata store is reachable.
func (s *GalleryService) Ping(ctx context.Context) error {
	return s.renders.Ping(ctx)
}
