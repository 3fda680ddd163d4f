package models

import (
	"time"

	"github.com/dmitrijs2005/unsaid/internal/diary"
)

// Entry is a journal entry row. Content is stored exactly as the client sent
// it, normally an encrypted envelope.
type Entry struct {
	diary.Entry
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EntryFlags is a partial update; nil fields are left unchanged.
type EntryFlags struct {
	IsFavorite *bool
	AudioID    *string
}
