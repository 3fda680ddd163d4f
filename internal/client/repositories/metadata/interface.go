package metadata

import (
	"context"
)

// Keys of the session record kept between runs.
const (
	KeyUserName     = "username"
	KeyUserID       = "user_id"
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
)

type Repository interface {
	// Get returns common.ErrorNotFound for an absent key.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
