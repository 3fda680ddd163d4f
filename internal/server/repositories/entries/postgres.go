// Package entries stores journal entries in PostgreSQL. Entries are keyed by
// (user_id, id), so every statement is scoped to its owner.
package entries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/dbx"
	"github.com/dmitrijs2005/unsaid/internal/diary"
	"github.com/dmitrijs2005/unsaid/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const columns = `id, user_id, timestamp_ms, content, type, emotions, is_silent, is_pinned, is_favorite, audio_id, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*models.Entry, error) {
	var (
		e        models.Entry
		typ      string
		emotions []byte
	)
	err := s.Scan(&e.ID, &e.UserID, &e.Timestamp, &e.Content, &typ, &emotions,
		&e.IsSilent, &e.IsPinned, &e.IsFavorite, &e.AudioID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Type = diary.EntryType(typ)
	if len(emotions) > 0 {
		if err := json.Unmarshal(emotions, &e.Emotions); err != nil {
			return nil, fmt.Errorf("decode emotions: %w", err)
		}
	}
	return &e, nil
}

func encodeEmotions(tags []diary.Emotion) (string, error) {
	if tags == nil {
		tags = []diary.Emotion{}
	}
	b, err := json.Marshal(tags)
	return string(b), err
}

func (r *PostgresRepository) one(ctx context.Context, query string, args ...any) (*models.Entry, error) {
	e, err := scanEntry(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) CreateOrUpdate(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	emotions, err := encodeEmotions(entry.Emotions)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO entries (id, user_id, timestamp_ms, content, type, emotions, is_silent, is_favorite, audio_id)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8, $9)
		ON CONFLICT (user_id, id)
		DO UPDATE SET
			content = EXCLUDED.content,
			type = EXCLUDED.type,
			emotions = EXCLUDED.emotions,
			is_silent = EXCLUDED.is_silent,
			is_favorite = EXCLUDED.is_favorite,
			audio_id = EXCLUDED.audio_id,
			updated_at = now()
		RETURNING ` + columns
	return r.one(ctx, query,
		entry.ID, entry.UserID, entry.Timestamp, entry.Content, string(entry.Type), emotions,
		entry.IsSilent, entry.IsFavorite, entry.AudioID)
}

// ListByUser returns the user's entries newest first. sinceMs > 0 limits the
// result to entries created at or after it.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, sinceMs int64) ([]*models.Entry, error) {
	query := `SELECT ` + columns + ` FROM entries
		WHERE user_id = $1 AND timestamp_ms >= $2
		ORDER BY timestamp_ms DESC`
	rows, err := r.db.QueryContext(ctx, query, userID, sinceMs)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*models.Entry, error) {
	return r.one(ctx, `SELECT `+columns+` FROM entries WHERE user_id = $1 AND id = $2`, userID, id)
}

func (r *PostgresRepository) UpdateFlags(ctx context.Context, userID, id string, flags models.EntryFlags) (*models.Entry, error) {
	query := `
		UPDATE entries SET
			is_favorite = COALESCE($3, is_favorite),
			audio_id = COALESCE($4, audio_id),
			updated_at = now()
		WHERE user_id = $1 AND id = $2
		RETURNING ` + columns
	return r.one(ctx, query, userID, id, nullBool(flags.IsFavorite), nullString(flags.AudioID))
}

func (r *PostgresRepository) UnpinAll(ctx context.Context, userID string) error {
	query := `UPDATE entries SET is_pinned = false, updated_at = now() WHERE user_id = $1 AND is_pinned`
	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SetPinned(ctx context.Context, userID, id string, pinned bool) error {
	query := `UPDATE entries SET is_pinned = $3, updated_at = now() WHERE user_id = $1 AND id = $2`
	res, err := r.db.ExecContext(ctx, query, userID, id, pinned)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if err := dbx.RequireAffected(res); err != nil {
		if errors.Is(err, dbx.ErrNoRowsAffected) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) (string, error) {
	var audioID string
	err := r.db.QueryRowContext(ctx,
		`DELETE FROM entries WHERE user_id = $1 AND id = $2 RETURNING audio_id`, userID, id).Scan(&audioID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return audioID, nil
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
