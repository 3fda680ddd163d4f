package checkins

import (
	"context"

	"github.com/dmitrijs2005/unsaid/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.CheckIn) error
	CountSince(ctx context.Context, userID string, sinceUnix int64) (int, error)
}
