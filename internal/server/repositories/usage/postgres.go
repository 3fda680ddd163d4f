// Package usage keeps the per-user daily companion counter in PostgreSQL.
// It satisfies quota.Repository and quota.Incrementer.
package usage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/dbx"
	"github.com/dmitrijs2005/unsaid/internal/quota"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (quota.Record, error) {
	var rec quota.Record
	err := r.db.QueryRowContext(ctx,
		`SELECT date, count_today, updated_at FROM usage WHERE user_id = $1`, userID).
		Scan(&rec.Date, &rec.CountToday, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quota.Record{}, common.ErrorNotFound
		}
		return quota.Record{}, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

func (r *PostgresRepository) Put(ctx context.Context, userID string, rec quota.Record) error {
	query := `
		INSERT INTO usage (user_id, date, count_today, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET date = EXCLUDED.date, count_today = EXCLUDED.count_today, updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, userID, rec.Date, rec.CountToday, rec.UpdatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Increment bumps the counter in one statement: a row from another day is
// reset to 1, otherwise the count grows by one. Concurrent callers never
// lose an increment.
func (r *PostgresRepository) Increment(ctx context.Context, userID, today string, now time.Time) (int, error) {
	query := `
		INSERT INTO usage (user_id, date, count_today, updated_at)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (user_id)
		DO UPDATE SET
			count_today = CASE WHEN usage.date = EXCLUDED.date THEN usage.count_today + 1 ELSE 1 END,
			date = EXCLUDED.date,
			updated_at = EXCLUDED.updated_at
		RETURNING count_today
	`
	var n int
	if err := r.db.QueryRowContext(ctx, query, userID, today, now).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
