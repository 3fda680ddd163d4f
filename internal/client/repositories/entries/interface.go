// Package entries is the local cache of a user's journal. Rows carry two
// flags: pending marks a local change the server has not seen yet and
// deleted marks a tombstone waiting to be pushed.
package entries

import (
	"context"

	"github.com/dmitrijs2005/unsaid/internal/diary"
)

// Record is a cached entry together with its sync state.
type Record struct {
	diary.Entry
	Pending bool
	Deleted bool
}

type Repository interface {
	// Upsert stores e for userID with the given pending state and clears
	// any tombstone.
	Upsert(ctx context.Context, userID string, e diary.Entry, pending bool) error

	// Get returns a live entry or common.ErrorNotFound.
	Get(ctx context.Context, userID, id string) (diary.Entry, error)

	// List returns live entries, newest first.
	List(ctx context.Context, userID string) ([]diary.Entry, error)

	// ListPending returns rows with local changes, tombstones included.
	ListPending(ctx context.Context, userID string) ([]Record, error)

	// DropSynced removes every row the server already has.
	DropSynced(ctx context.Context, userID string) error

	// InsertSynced stores a server copy unless a pending local row with the
	// same id exists.
	InsertSynced(ctx context.Context, userID string, e diary.Entry) error

	MarkSynced(ctx context.Context, userID, id string) error
	MarkDeleted(ctx context.Context, userID, id string) error
	Remove(ctx context.Context, userID, id string) error
	UnpinAll(ctx context.Context, userID string) error
}
