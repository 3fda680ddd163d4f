package services

import (
	"context"
	"database/sql"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/dbx"
	"github.com/dmitrijs2005/unsaid/internal/quota"
	"github.com/dmitrijs2005/unsaid/internal/server/config"
	"github.com/dmitrijs2005/unsaid/internal/server/models"
	"github.com/dmitrijs2005/unsaid/internal/server/repositories/checkins"
	"github.com/dmitrijs2005/unsaid/internal/server/repositories/entries"
	"github.com/dmitrijs2005/unsaid/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/unsaid/internal/server/repositories/usage"
	"github.com/dmitrijs2005/unsaid/internal/server/repositories/users"
)

var errBoom = errors.New("boom")

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
		DailyLimit:                   3,
		TimeZone:                     "UTC",
		S3Bucket:                     "bucket",
		S3Region:                     "us-east-1",
		S3BaseEndpoint:               "http://127.0.0.1:9000",
	}
}

type fakeUsers struct {
	mu     sync.Mutex
	byName map[string]*models.User
	err    error
}

func newFakeUsers(us ...*models.User) *fakeUsers {
	f := &fakeUsers{byName: map[string]*models.User{}}
	for _, u := range us {
		f.byName[u.UserName] = u
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.byName[u.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}
	cp := *u
	cp.ID = "id-" + u.UserName
	cp.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f.byName[u.UserName] = &cp
	return &cp, nil
}

func (f *fakeUsers) GetUserByLogin(_ context.Context, login string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byName[login]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) SetName(_ context.Context, id, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byName {
		if u.ID == id {
			u.Name = name
			return nil
		}
	}
	return common.ErrorNotFound
}

type fakeRefresh struct {
	tokens    map[string]*models.RefreshToken
	findErr   error
	delErr    error
	createErr error
}

func newFakeRefresh() *fakeRefresh {
	return &fakeRefresh{tokens: map[string]*models.RefreshToken{}}
}

func (f *fakeRefresh) Create(_ context.Context, userID, token string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token] = &models.RefreshToken{UserID: userID, Expires: time.Now().Add(validity)}
	return nil
}

func (f *fakeRefresh) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	t, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return t, nil
}

func (f *fakeRefresh) Delete(_ context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.tokens, token)
	return nil
}

func (f *fakeRefresh) DeleteExpired(context.Context, time.Time) (int64, error) { return 0, nil }

type fakeEntries struct {
	rows    []*models.Entry
	err     error
	unpinFn func() error
}

func (f *fakeEntries) find(userID, id string) *models.Entry {
	for _, r := range f.rows {
		if r.UserID == userID && r.ID == id {
			return r
		}
	}
	return nil
}

func (f *fakeEntries) CreateOrUpdate(_ context.Context, e *models.Entry) (*models.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	if old := f.find(e.UserID, e.ID); old != nil {
		old.Content, old.Type, old.Emotions = e.Content, e.Type, e.Emotions
		old.IsSilent, old.IsFavorite, old.AudioID = e.IsSilent, e.IsFavorite, e.AudioID
		return old, nil
	}
	cp := *e
	cp.IsPinned = false
	f.rows = append(f.rows, &cp)
	return &cp, nil
}

func (f *fakeEntries) ListByUser(_ context.Context, userID string, sinceMs int64) ([]*models.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Entry
	for _, r := range f.rows {
		if r.UserID == userID && r.Timestamp >= sinceMs {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(a, b *models.Entry) int { return int(b.Timestamp - a.Timestamp) })
	return out, nil
}

func (f *fakeEntries) GetByID(_ context.Context, userID, id string) (*models.Entry, error) {
	if r := f.find(userID, id); r != nil {
		return r, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeEntries) UpdateFlags(_ context.Context, userID, id string, flags models.EntryFlags) (*models.Entry, error) {
	r := f.find(userID, id)
	if r == nil {
		return nil, common.ErrorNotFound
	}
	if flags.IsFavorite != nil {
		r.IsFavorite = *flags.IsFavorite
	}
	if flags.AudioID != nil {
		r.AudioID = *flags.AudioID
	}
	return r, nil
}

func (f *fakeEntries) UnpinAll(_ context.Context, userID string) error {
	if f.unpinFn != nil {
		if err := f.unpinFn(); err != nil {
			return err
		}
	}
	for _, r := range f.rows {
		if r.UserID == userID {
			r.IsPinned = false
		}
	}
	return nil
}

func (f *fakeEntries) SetPinned(_ context.Context, userID, id string, pinned bool) error {
	r := f.find(userID, id)
	if r == nil {
		return common.ErrorNotFound
	}
	r.IsPinned = pinned
	return nil
}

func (f *fakeEntries) Delete(_ context.Context, userID, id string) (string, error) {
	for i, r := range f.rows {
		if r.UserID == userID && r.ID == id {
			f.rows = slices.Delete(f.rows, i, i+1)
			return r.AudioID, nil
		}
	}
	return "", common.ErrorNotFound
}

type fakeCheckIns struct {
	mu   sync.Mutex
	rows []models.CheckIn
	err  error
}

func (f *fakeCheckIns) Create(_ context.Context, c *models.CheckIn) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, *c)
	return nil
}

func (f *fakeCheckIns) CountSince(_ context.Context, userID string, _ int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.rows {
		if c.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fakeRepoManager struct {
	users    *fakeUsers
	refresh  *fakeRefresh
	entries  *fakeEntries
	usage    usage.Repository
	checkins *fakeCheckIns
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:    newFakeUsers(),
		refresh:  newFakeRefresh(),
		entries:  &fakeEntries{},
		usage:    quota.NewMemoryRepository(),
		checkins: &fakeCheckIns{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.users }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.refresh }
func (m *fakeRepoManager) Entries(dbx.DBTX) entries.Repository             { return m.entries }
func (m *fakeRepoManager) Usage(dbx.DBTX) usage.Repository                 { return m.usage }
func (m *fakeRepoManager) CheckIns(dbx.DBTX) checkins.Repository           { return m.checkins }
