package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nbeaumont/folio/internal/domain"
)

type ModelStore struct {
	db *sql.DB
}

func NewModelStore(db *sql.DB) *ModelStore {
	return &ModelStore{db: db}
}

// Create inserts a model. thumbnailURL and thumbnailCloudinaryID must be
// both nil or both set; the thumbnail columns are never half-populated.
func (s *ModelStore) Create(ctx context.Context, name, fileURL, cloudinaryID, modelType string, thumbnailURL, thumbnailCloudinaryID *string) (*domain.Model, error) {
	if (thumbnailURL == nil) != (thumbnailCloudinaryID == nil) {
		return nil, domain.Validationf("thumbnail URL and id must be provided together")
	}
	if modelType == "" {
		modelType = "glb"
	}

	id := uuid.NewString()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO models (id, name, file_url, cloudinary_id, type, thumbnail_url, thumbnail_cloudinary_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, name, fileURL, cloudinaryID, modelType, thumbnailURL, thumbnailCloudinaryID, formatTime(now))
	if err != nil {
		return nil, &domain.StoreError{Op: "create model", Err: err}
	}

	return s.GetByID(ctx, id)
}

// GetByID returns (nil, nil) when no model has the given id.
func (s *ModelStore) GetByID(ctx context.Context, id string) (*domain.Model, error) {
	model := &domain.Model{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, file_url, cloudinary_id, type, thumbnail_url, thumbnail_cloudinary_id, created_at
		FROM models WHERE id = ?
	`, id).Scan(&model.ID, &model.Name, &model.FileURL, &model.CloudinaryID,
		&model.Type, &model.ThumbnailURL, &model.ThumbnailCloudinaryID, &model.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.StoreError{Op: "get model", Err: err}
	}

	return model, nil
}

// List returns all models newest first.
func (s *ModelStore) List(ctx context.Context) ([]*domain.Model, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, file_url, cloudinary_id, type, thumbnail_url, thumbnail_cloudinary_id, created_at
		FROM models ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, &domain.StoreError{Op: "list models", Err: err}
	}
	defer rows.Close()

	var models []*domain.Model
	for rows.Next() {
		model := &domain.Model{}
		if err := rows.Scan(&model.ID, &model.Name, &model.FileURL, &model.CloudinaryID,
			&model.Type, &model.ThumbnailURL, &model.ThumbnailCloudinaryID, &model.CreatedAt); err != nil {
			return nil, &domain.StoreError{Op: "scan model", Err: err}
		}
		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "iterate models", Err: err}
	}

	return models, nil
}

func (s *ModelStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM models WHERE id = ?`, id)
	if err != nil {
		return &domain.StoreError{Op: "delete model", Err: err}
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return &domain.StoreError{Op: "delete model", Err: err}
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
