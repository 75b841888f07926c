package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nbeaumont/folio/internal/domain"
)

type MessageStore struct {
	db *sql.DB
}

func NewMessageStore(db *sql.DB) *MessageStore {
	return &MessageStore{db: db}
}

func (s *MessageStore) Create(ctx context.Context, name, email, message string) (*domain.Message, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (id, name, email, message, is_read, created_at)
		VALUES (?, ?, ?, ?, 0, ?)
	`, id, name, email, message, formatTime(now))
	if err != nil {
		return nil, &domain.StoreError{Op: "create message", Err: err}
	}

	return s.GetByID(ctx, id)
}

// GetByID returns (nil, nil) when no message has the given id.
func (s *MessageStore) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	msg := &domain.Message{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, message, is_read, created_at FROM messages WHERE id = ?
	`, id).Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.IsRead, &msg.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.StoreError{Op: "get message", Err: err}
	}

	return msg, nil
}

// List returns all messages newest first.
func (s *MessageStore) List(ctx context.Context) ([]*domain.Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, message, is_read, created_at
		FROM messages ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, &domain.StoreError{Op: "list messages", Err: err}
	}
	defer rows.Close()

	var messages []*domain.Message
	for rows.Next() {
		msg := &domain.Message{}
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.IsRead, &msg.CreatedAt); err != nil {
			return nil, &domain.StoreError{Op: "scan message", Err: err}
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "iterate messages", Err: err}
	}

	return messages, nil
}
