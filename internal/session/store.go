package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/codeexplainer/internal/db"
)

// Store persists session records in SQLite.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// create inserts a new session with a generated ID.
func (s *Store) create(ctx context.Context, theme Theme) (*record, error) {
	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, theme) VALUES (?, ?)`, id, string(theme))
	if err != nil {
		return nil, fmt.Errorf("inserting session: %w", err)
	}
	return s.get(ctx, id)
}

func (s *Store) get(ctx context.Context, id string) (*record, error) {
	var (
		r         record
		theme, ts string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, theme, language, explanation, html, source, notice, updated_at
		FROM sessions WHERE id = ?`, id).Scan(
		&r.ID, &theme, &r.Language, &r.Explanation, &r.HTML, &r.Source, &r.Notice, &ts,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading session %s: %w", id, err)
	}
	r.Theme = Theme(theme)
	r.UpdatedAt = parseTime(ts)
	return &r, nil
}

func (s *Store) setTheme(ctx context.Context, id string, theme Theme) error {
	return s.update(ctx, id, `UPDATE sessions SET theme = ?, updated_at = datetime('now') WHERE id = ?`,
		string(theme), id)
}

// setExplanation replaces the latest explanation. Empty values clear it.
func (s *Store) setExplanation(ctx context.Context, r record) error {
	return s.update(ctx, r.ID, `
		UPDATE sessions
		SET language = ?, explanation = ?, html = ?, source = ?, notice = ?, updated_at = datetime('now')
		WHERE id = ?`,
		r.Language, r.Explanation, r.HTML, r.Source, r.Notice, r.ID)
}

func (s *Store) update(ctx context.Context, id, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating session %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating session %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// parseTime accepts both the datetime('now') layout and the RFC 3339 form
// the driver produces for DATETIME columns.
func parseTime(ts string) time.Time {
	if t, err := time.Parse(time.DateTime, ts); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t
	}
	return time.Time{}
}
