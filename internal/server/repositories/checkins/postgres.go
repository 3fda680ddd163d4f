// Package checkins stores privacy-mode check-in metadata. Only shape
// information about a check-in is kept, never its text.
package checkins

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/unsaid/internal/dbx"
	"github.com/dmitrijs2005/unsaid/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.CheckIn) error {
	query := `
		INSERT INTO checkins (user_id, has_text, text_length, has_audio, ai_used)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, c.UserID, c.HasText, c.TextLength, c.HasAudio, c.AIUsed).Scan(&c.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// CountSince reports how many check-ins the user made since the given unix time.
func (r *PostgresRepository) CountSince(ctx context.Context, userID string, sinceUnix int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM checkins WHERE user_id = $1 AND created_at >= to_timestamp($2)`, userID, sinceUnix).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
