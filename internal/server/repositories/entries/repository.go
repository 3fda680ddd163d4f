package entries

import (
	"context"

	"github.com/dmitrijs2005/unsaid/internal/server/models"
)

type Repository interface {
	// CreateOrUpdate inserts the entry or, when the owner already has an entry
	// with that id, replaces its mutable fields. Timestamp and pin state are
	// never changed by it.
	CreateOrUpdate(ctx context.Context, entry *models.Entry) (*models.Entry, error)
	ListByUser(ctx context.Context, userID string, sinceMs int64) ([]*models.Entry, error)
	GetByID(ctx context.Context, userID, id string) (*models.Entry, error)
	UpdateFlags(ctx context.Context, userID, id string, flags models.EntryFlags) (*models.Entry, error)
	// UnpinAll clears the pin of every entry of the user.
	UnpinAll(ctx context.Context, userID string) error
	SetPinned(ctx context.Context, userID, id string, pinned bool) error
	// Delete removes the entry and returns its voice-note id ("" if none).
	Delete(ctx context.Context, userID, id string) (string, error)
}
