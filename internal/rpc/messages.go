package rpc

import (
	"github.com/dmitrijs2005/unsaid/internal/companion"
	"github.com/dmitrijs2005/unsaid/internal/diary"
	"github.com/dmitrijs2005/unsaid/internal/quota"
)

type Profile struct {
	Username string
	diary.UserProfile
}

// UpdateEntryRequest changes the mutable parts of an entry. Nil fields are
// left as they are.
type UpdateEntryRequest struct {
	ID         string
	IsFavorite *bool
	AudioID    *string
}

type ChatRequest struct {
	Text    string
	History []companion.Message
	Mode    string
}

type ChatResponse struct {
	Reply     string
	Allowed   bool
	Remaining int
	Fallback  bool
}

type Allowance = quota.Allowance
