package client

import (
	"context"

	"github.com/dmitrijs2005/unsaid/internal/diary"
	"github.com/dmitrijs2005/unsaid/internal/quota"
	"github.com/dmitrijs2005/unsaid/internal/rpc"
)

// Session is what a successful login hands back.
type Session struct {
	UserID       string
	AccessToken  string
	RefreshToken string
}

// Client is the server API as the client services see it.
type Client interface {
	Close() error

	Register(ctx context.Context, username string, salt, verifier []byte) (string, error)
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifier []byte) (Session, error)
	SetSession(accessToken, refreshToken string)
	OnTokensRefreshed(fn func(accessToken, refreshToken string))
	Ping(ctx context.Context) error

	Profile(ctx context.Context) (rpc.Profile, error)
	SetName(ctx context.Context, name string) error

	PutEntry(ctx context.Context, e diary.Entry) (diary.Entry, error)
	ListEntries(ctx context.Context, sinceMs int64) ([]diary.Entry, error)
	UpdateEntry(ctx context.Context, req rpc.UpdateEntryRequest) (diary.Entry, error)
	PinEntry(ctx context.Context, id string, pinned bool) error
	DeleteEntry(ctx context.Context, id string) error

	Allowance(ctx context.Context) (quota.Allowance, error)
	Chat(ctx context.Context, req rpc.ChatRequest) (rpc.ChatResponse, error)

	PresignAudioUpload(ctx context.Context, audioID string) (string, string, error)
	PresignAudioDownload(ctx context.Context, audioID string) (string, error)
}
