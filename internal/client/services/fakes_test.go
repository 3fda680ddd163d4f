package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dmitrijs2005/unsaid/internal/client/client"
	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/cryptox"
	"github.com/dmitrijs2005/unsaid/internal/diary"
	"github.com/dmitrijs2005/unsaid/internal/quota"
	"github.com/dmitrijs2005/unsaid/internal/rpc"
	"github.com/stretchr/testify/require"
)

// fakeClient is an in-memory server. Setting down makes every call fail
// the way an unreachable server does.
type fakeClient struct {
	mu sync.Mutex

	down bool

	users     map[string]fakeUser
	entries   map[string]diary.Entry
	access    string
	refresh   string
	onRefresh func(string, string)
	closed    bool

	chatReqs  []rpc.ChatRequest
	chatResp  rpc.ChatResponse
	chatErr   error
	allowance quota.Allowance

	putErr    error
	uploadURL string
	getURL    string
	presignID string
}

type fakeUser struct {
	id       string
	salt     []byte
	verifier []byte
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		users:   map[string]fakeUser{},
		entries: map[string]diary.Entry{},
	}
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error { f.closed = true; return nil }

func (f *fakeClient) Register(_ context.Context, username string, salt, verifier []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return "", client.ErrUnavailable
	}
	if _, ok := f.users[username]; ok {
		return "", common.ErrorAlreadyExists
	}
	id := "uid-" + username
	f.users[username] = fakeUser{id: id, salt: salt, verifier: verifier}
	return id, nil
}

func (f *fakeClient) GetSalt(_ context.Context, username string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return nil, client.ErrUnavailable
	}
	u, ok := f.users[username]
	if !ok {
		return []byte("random-salt"), nil
	}
	return u.salt, nil
}

func (f *fakeClient) Login(_ context.Context, username string, verifier []byte) (client.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return client.Session{}, client.ErrUnavailable
	}
	u, ok := f.users[username]
	if !ok || string(u.verifier) != string(verifier) {
		return client.Session{}, client.ErrUnauthorized
	}
	f.access, f.refresh = "A-"+username, "R-"+username
	return client.Session{UserID: u.id, AccessToken: f.access, RefreshToken: f.refresh}, nil
}

func (f *fakeClient) SetSession(a, r string) {
	f.mu.Lock()
	f.access, f.refresh = a, r
	f.mu.Unlock()
}

func (f *fakeClient) OnTokensRefreshed(fn func(string, string)) { f.onRefresh = fn }

func (f *fakeClient) Ping(context.Context) error {
	if f.down {
		return client.ErrUnavailable
	}
	return nil
}

func (f *fakeClient) Profile(context.Context) (rpc.Profile, error) {
	return rpc.Profile{Username: "ana"}, nil
}

func (f *fakeClient) SetName(context.Context, string) error { return nil }

func (f *fakeClient) PutEntry(_ context.Context, e diary.Entry) (diary.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return diary.Entry{}, client.ErrUnavailable
	}
	if f.putErr != nil {
		return diary.Entry{}, f.putErr
	}
	f.entries[e.ID] = e
	return e, nil
}

func (f *fakeClient) ListEntries(context.Context, int64) ([]diary.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return nil, client.ErrUnavailable
	}
	out := make([]diary.Entry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeClient) UpdateEntry(_ context.Context, req rpc.UpdateEntryRequest) (diary.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return diary.Entry{}, client.ErrUnavailable
	}
	e, ok := f.entries[req.ID]
	if !ok {
		return diary.Entry{}, common.ErrorNotFound
	}
	if req.IsFavorite != nil {
		e.IsFavorite = *req.IsFavorite
	}
	if req.AudioID != nil {
		e.AudioID = *req.AudioID
	}
	f.entries[req.ID] = e
	return e, nil
}

func (f *fakeClient) PinEntry(_ context.Context, id string, pinned bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return client.ErrUnavailable
	}
	e, ok := f.entries[id]
	if !ok {
		return common.ErrorNotFound
	}
	if pinned {
		for k, other := range f.entries {
			other.IsPinned = false
			f.entries[k] = other
		}
	}
	e.IsPinned = pinned
	f.entries[id] = e
	return nil
}

func (f *fakeClient) DeleteEntry(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return client.ErrUnavailable
	}
	if _, ok := f.entries[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.entries, id)
	return nil
}

func (f *fakeClient) Allowance(context.Context) (quota.Allowance, error) {
	if f.down {
		return quota.Allowance{}, client.ErrUnavailable
	}
	return f.allowance, nil
}

func (f *fakeClient) Chat(_ context.Context, req rpc.ChatRequest) (rpc.ChatResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chatReqs = append(f.chatReqs, req)
	if f.chatErr != nil {
		return rpc.ChatResponse{}, f.chatErr
	}
	return f.chatResp, nil
}

func (f *fakeClient) PresignAudioUpload(context.Context, string) (string, string, error) {
	if f.down {
		return "", "", client.ErrUnavailable
	}
	return f.presignID, f.uploadURL, nil
}

func (f *fakeClient) PresignAudioDownload(context.Context, string) (string, error) {
	if f.down {
		return "", client.ErrUnavailable
	}
	return f.getURL, nil
}

func (f *fakeClient) setDown(v bool) {
	f.mu.Lock()
	f.down = v
	f.mu.Unlock()
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "unsaid.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testCodec(t *testing.T) *cryptox.Codec {
	t.Helper()
	c, err := cryptox.Default()
	require.NoError(t, err)
	return c
}
