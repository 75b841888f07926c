package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nbeaumont/folio/internal/domain"
)

type RenderStore struct {
	db *sql.DB
}

func NewRenderStore(db *sql.DB) *RenderStore {
	return &RenderStore{db: db}
}

// Create inserts a render. The id and createdAt are assigned here; callers
// cannot supply either.
func (s *RenderStore) Create(ctx context.Context, title, subtitle, imageURL, cloudinaryID string, order int) (*domain.Render, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO renders (id, title, subtitle, image_url, cloudinary_id, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, title, subtitle, imageURL, cloudinaryID, order, formatTime(now))
	if err != nil {
		return nil, &domain.StoreError{Op: "create render", Err: err}
	}

	return s.GetByID(ctx, id)
}

// GetByID returns (nil, nil) when no render has the given id.
func (s *RenderStore) GetByID(ctx context.Context, id string) (*domain.Render, error) {
	render := &domain.Render{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, subtitle, image_url, cloudinary_id, sort_order, created_at
		FROM renders WHERE id = ?
	`, id).Scan(&render.ID, &render.Title, &render.Subtitle, &render.ImageURL,
		&render.CloudinaryID, &render.Order, &render.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.StoreError{Op: "get render", Err: err}
	}

	return render, nil
}

// List returns all renders ordered by sort key ascending, oldest first within
// equal sort keys.
func (s *RenderStore) List(ctx context.Context) ([]*domain.Render, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, subtitle, image_url, cloudinary_id, sort_order, created_at
		FROM renders ORDER BY sort_order ASC, created_at ASC
	`)
	if err != nil {
		return nil, &domain.StoreError{Op: "list renders", Err: err}
	}
	defer rows.Close()

	var renders []*domain.Render
	for rows.Next() {
		render := &domain.Render{}
		if err := rows.Scan(&render.ID, &render.Title, &render.Subtitle, &render.ImageURL,
			&render.CloudinaryID, &render.Order, &render.CreatedAt); err != nil {
			return nil, &domain.StoreError{Op: "scan render", Err: err}
		}
		renders = append(renders, render)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "iterate renders", Err: err}
	}

	return renders, nil
}

func (s *RenderStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM renders WHERE id = ?`, id)
	if err != nil {
		return &domain.StoreError{Op: "delete render", Err: err}
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return &domain.StoreError{Op: "delete render", Err: err}
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Ping verifies the underlying database is reachable.
func (s *RenderStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &domain.StoreError{Op: "ping", Err: err}
	}
	return nil
}
