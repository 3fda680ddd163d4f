package admin

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/unsaid/internal/diary"
	"github.com/dmitrijs2005/unsaid/internal/server/config"
	"github.com/dmitrijs2005/unsaid/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)

type fakeManager struct {
	*repomanager.PostgresRepositoryManager
	migrated int
	err      error
}

func (m *fakeManager) RunMigrations(context.Context, *sql.DB) error {
	m.migrated++
	return m.err
}

type harness struct {
	manager *fakeManager
	cfg     *config.Config
	dsn     string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.TimeZone = "UTC"
	cfg.DailyLimit = 10

	return &harness{
		manager: &fakeManager{PostgresRepositoryManager: repomanager.NewPostgresRepositoryManager()},
		cfg:     cfg,
	}
}

func (h *harness) run(t *testing.T, db *sql.DB, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(h.cfg, deps{
		open: func(_ context.Context, dsn string) (*sql.DB, error) {
			h.dsn = dsn
			return db, nil
		},
		manager: h.manager,
		now:     func() time.Time { return fixedNow },
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestMigrate(t *testing.T) {
	h := newHarness(t)
	db, mock := newMockDB(t)
	mock.ExpectClose()

	out, err := h.run(t, db, "migrate", "--dsn", "postgres://x")
	require.NoError(t, err)
	assert.Equal(t, 1, h.manager.migrated)
	assert.Equal(t, "postgres://x", h.dsn)
	assert.Contains(t, out, "migrations applied")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_Error(t *testing.T) {
	h := newHarness(t)
	h.manager.err = errors.New("migrate: boom")
	db, _ := newMockDB(t)

	_, err := h.run(t, db, "migrate")
	assert.ErrorContains(t, err, "boom")
}

func TestUsageShow(t *testing.T) {
	h := newHarness(t)
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT\s+date,\s*count_today,\s*updated_at\s+FROM\s+usage`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"date", "count_today", "updated_at"}).AddRow("2026-10-17", 4, fixedNow))

	out, err := h.run(t, db, "usage", "show", "u1")
	require.NoError(t, err)
	assert.Contains(t, out, "used:      4/10")
	assert.Contains(t, out, "remaining: 6")
	assert.Contains(t, out, "allowed:   true")
}

func TestUsageShow_LimitFlag(t *testing.T) {
	h := newHarness(t)
	db, mock := newMockDB(t)
	mock.ExpectQuery(`FROM\s+usage`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"date", "count_today", "updated_at"}).AddRow("2026-10-17", 4, fixedNow))

	out, err := h.run(t, db, "usage", "show", "u1", "--limit", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "allowed:   false")
}

func TestUsageShow_RequiresUser(t *testing.T) {
	h := newHarness(t)
	db, _ := newMockDB(t)

	_, err := h.run(t, db, "usage", "show")
	assert.Error(t, err)
}

func TestUsageReset(t *testing.T) {
	h := newHarness(t)
	db, mock := newMockDB(t)
	mock.ExpectExec(`(?s)INSERT\s+INTO\s+usage.*ON\s+CONFLICT`).
		WithArgs("u1", "2026-10-17", 0, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	out, err := h.run(t, db, "usage", "reset", "u1")
	require.NoError(t, err)
	assert.Contains(t, out, "usage of u1 reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokensPurge(t *testing.T) {
	h := newHarness(t)
	db, mock := newMockDB(t)
	mock.ExpectExec(`DELETE\s+FROM\s+refresh_tokens\s+WHERE\s+expires_at\s*<\s*\$1`).
		WithArgs(fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 3))

	out, err := h.run(t, db, "tokens", "purge")
	require.NoError(t, err)
	assert.Contains(t, out, "3 expired refresh token(s) deleted")
}

func TestPrompt(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, nil, "prompt", "--date", "2025-01-05")
	require.NoError(t, err)
	want, _ := diary.DailyPrompt(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, out, "2025-01-05")
	assert.Contains(t, out, want)

	out, err = h.run(t, nil, "prompt")
	require.NoError(t, err)
	assert.Contains(t, out, "2026-10-17")

	_, err = h.run(t, nil, "prompt", "--date", "tomorrow")
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}
