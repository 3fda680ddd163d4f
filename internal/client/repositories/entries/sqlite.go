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
)

const columns = `id, timestamp, content, type, emotions, is_silent, is_pinned, is_favorite, audio_id, pending, deleted`

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func encodeEmotions(em []diary.Emotion) (string, error) {
	if em == nil {
		em = []diary.Emotion{}
	}
	b, err := json.Marshal(em)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (Record, error) {
	var r Record
	var emotions string
	err := s.Scan(&r.ID, &r.Timestamp, &r.Content, &r.Type, &emotions,
		&r.IsSilent, &r.IsPinned, &r.IsFavorite, &r.AudioID, &r.Pending, &r.Deleted)
	if err != nil {
		return Record{}, err
	}
	if err := json.Unmarshal([]byte(emotions), &r.Emotions); err != nil {
		return Record{}, fmt.Errorf("decode emotions of %s: %w", r.ID, err)
	}
	if len(r.Emotions) == 0 {
		r.Emotions = nil
	}
	return r, nil
}

func (r *SQLiteRepository) Upsert(ctx context.Context, userID string, e diary.Entry, pending bool) error {
	emotions, err := encodeEmotions(e.Emotions)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO entries (user_id, id, timestamp, content, type, emotions, is_silent, is_pinned, is_favorite, audio_id, pending, deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0)
		ON CONFLICT(user_id, id) DO UPDATE SET
			timestamp = excluded.timestamp,
			content = excluded.content,
			type = excluded.type,
			emotions = excluded.emotions,
			is_silent = excluded.is_silent,
			is_pinned = excluded.is_pinned,
			is_favorite = excluded.is_favorite,
			audio_id = excluded.audio_id,
			pending = excluded.pending,
			deleted = 0
	`, userID, e.ID, e.Timestamp, e.Content, string(e.Type), emotions,
		e.IsSilent, e.IsPinned, e.IsFavorite, e.AudioID, pending)
	if err != nil {
		return fmt.Errorf("upsert entry %s: %w", e.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) InsertSynced(ctx context.Context, userID string, e diary.Entry) error {
	emotions, err := encodeEmotions(e.Emotions)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO entries (user_id, id, timestamp, content, type, emotions, is_silent, is_pinned, is_favorite, audio_id, pending, deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, 0)
		ON CONFLICT(user_id, id) DO NOTHING
	`, userID, e.ID, e.Timestamp, e.Content, string(e.Type), emotions,
		e.IsSilent, e.IsPinned, e.IsFavorite, e.AudioID)
	if err != nil {
		return fmt.Errorf("insert entry %s: %w", e.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, userID, id string) (diary.Entry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+columns+` FROM entries WHERE user_id = ? AND id = ? AND deleted = 0`, userID, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return diary.Entry{}, common.ErrorNotFound
	}
	if err != nil {
		return diary.Entry{}, fmt.Errorf("get entry %s: %w", id, err)
	}
	return rec.Entry, nil
}

func (r *SQLiteRepository) query(ctx context.Context, q string, args ...any) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) List(ctx context.Context, userID string) ([]diary.Entry, error) {
	recs, err := r.query(ctx,
		`SELECT `+columns+` FROM entries WHERE user_id = ? AND deleted = 0 ORDER BY timestamp DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	out := make([]diary.Entry, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.Entry)
	}
	return out, nil
}

func (r *SQLiteRepository) ListPending(ctx context.Context, userID string) ([]Record, error) {
	recs, err := r.query(ctx,
		`SELECT `+columns+` FROM entries WHERE user_id = ? AND pending = 1 ORDER BY timestamp, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list pending entries: %w", err)
	}
	return recs, nil
}

func (r *SQLiteRepository) DropSynced(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE user_id = ? AND pending = 0`, userID); err != nil {
		return fmt.Errorf("drop synced entries: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) MarkSynced(ctx context.Context, userID, id string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE entries SET pending = 0 WHERE user_id = ? AND id = ?`, userID, id); err != nil {
		return fmt.Errorf("mark entry %s synced: %w", id, err)
	}
	return nil
}

func (r *SQLiteRepository) MarkDeleted(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE entries SET deleted = 1, pending = 1, is_pinned = 0 WHERE user_id = ? AND id = ? AND deleted = 0`, userID, id)
	if err != nil {
		return fmt.Errorf("mark entry %s deleted: %w", id, err)
	}
	if err := dbx.RequireAffected(res); err != nil {
		if errors.Is(err, dbx.ErrNoRowsAffected) {
			return common.ErrorNotFound
		}
		return err
	}
	return nil
}

func (r *SQLiteRepository) Remove(ctx context.Context, userID, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE user_id = ? AND id = ?`, userID, id); err != nil {
		return fmt.Errorf("remove entry %s: %w", id, err)
	}
	return nil
}

func (r *SQLiteRepository) UnpinAll(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE entries SET is_pinned = 0 WHERE user_id = ? AND is_pinned = 1`, userID); err != nil {
		return fmt.Errorf("unpin entries: %w", err)
	}
	return nil
}
