package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/diary"
	"github.com/dmitrijs2005/unsaid/internal/server/auth"
	"github.com/dmitrijs2005/unsaid/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	s := NewUserService(db, rm, testConfig())
	ctx := context.Background()

	u, err := s.Register(ctx, "  alice ", []byte("salt"), []byte("verifier"))
	require.NoError(t, err)
	assert.Equal(t, "alice", u.UserName)

	_, err = s.Register(ctx, "alice", []byte("salt"), []byte("verifier"))
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	pair, err := s.Login(ctx, "alice", []byte("verifier"))
	require.NoError(t, err)
	assert.Equal(t, u.ID, pair.UserID)

	uid, err := auth.GetUserIDFromToken(pair.AccessToken, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, u.ID, uid)
	assert.Contains(t, rm.refresh.tokens, pair.RefreshToken)

	_, err = s.Login(ctx, "alice", []byte("wrong"))
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Login(ctx, "ghost", []byte("verifier"))
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRegister_Validation(t *testing.T) {
	db, _ := newSQLMockDB(t)
	s := NewUserService(db, newFakeRepoManager(), testConfig())

	for _, tc := range []struct {
		name           string
		user           string
		salt, verifier []byte
	}{
		{"blank username", " ", []byte("s"), []byte("v")},
		{"no salt", "bob", nil, []byte("v")},
		{"no verifier", "bob", []byte("s"), nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), tc.user, tc.salt, tc.verifier)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestRegister_RepoError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.users.err = errBoom
	s := NewUserService(db, rm, testConfig())

	_, err := s.Register(context.Background(), "bob", []byte("s"), []byte("v"))
	assert.ErrorContains(t, err, "error creating user")
	assert.ErrorIs(t, err, errBoom)
}

func TestGetSalt(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.users = newFakeUsers(&models.User{ID: "1", UserName: "alice", Salt: []byte("SALT")})
	s := NewUserService(db, rm, testConfig())

	salt, err := s.GetSalt(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("SALT"), salt)

	salt, err = s.GetSalt(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Len(t, salt, 32)

	rm.users.err = errBoom
	_, err = s.GetSalt(context.Background(), "alice")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestRefreshToken_Rotates(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := newFakeRepoManager()
	rm.refresh.tokens["old"] = &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(time.Minute)}
	s := NewUserService(db, rm, testConfig())

	pair, err := s.RefreshToken(context.Background(), "old")
	require.NoError(t, err)
	assert.Equal(t, "u1", pair.UserID)
	assert.NotContains(t, rm.refresh.tokens, "old")
	assert.Contains(t, rm.refresh.tokens, pair.RefreshToken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshToken_Failures(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		db, _ := newSQLMockDB(t)
		rm := newFakeRepoManager()
		rm.refresh.tokens["r"] = &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(-time.Minute)}
		s := NewUserService(db, rm, testConfig())

		_, err := s.RefreshToken(context.Background(), "r")
		assert.ErrorIs(t, err, common.ErrRefreshTokenExpired)
		assert.NotContains(t, rm.refresh.tokens, "r")
	})

	t.Run("unknown", func(t *testing.T) {
		db, _ := newSQLMockDB(t)
		s := NewUserService(db, newFakeRepoManager(), testConfig())
		_, err := s.RefreshToken(context.Background(), "nope")
		assert.ErrorIs(t, err, common.ErrorUnauthorized)
	})

	t.Run("find error", func(t *testing.T) {
		db, _ := newSQLMockDB(t)
		rm := newFakeRepoManager()
		rm.refresh.findErr = errBoom
		s := NewUserService(db, rm, testConfig())
		_, err := s.RefreshToken(context.Background(), "r")
		assert.ErrorContains(t, err, "error searching refresh token")
	})

	t.Run("delete error rolls back", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()
		rm := newFakeRepoManager()
		rm.refresh.tokens["r"] = &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(time.Minute)}
		rm.refresh.delErr = errBoom
		s := NewUserService(db, rm, testConfig())

		_, err := s.RefreshToken(context.Background(), "r")
		assert.ErrorContains(t, err, "error deleting refresh token")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("create error rolls back", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()
		rm := newFakeRepoManager()
		rm.refresh.tokens["r"] = &models.RefreshToken{UserID: "u1", Expires: time.Now().Add(time.Minute)}
		rm.refresh.createErr = errBoom
		s := NewUserService(db, rm, testConfig())

		_, err := s.RefreshToken(context.Background(), "r")
		assert.True(t, errors.Is(err, common.ErrorInternal), "got %v", err)
	})
}

func TestGetProfile(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	joined := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	rm.users = newFakeUsers(&models.User{ID: "u1", UserName: "alice", Name: "Mira", CreatedAt: joined})

	now := time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC)
	today := now.Add(-2 * time.Hour).UnixMilli()
	yesterday := now.Add(-26 * time.Hour).UnixMilli()
	rm.entries.rows = []*models.Entry{
		{UserID: "u1", Entry: diary.Entry{ID: "a", Timestamp: yesterday, Type: diary.TypeVent}},
		{UserID: "u1", Entry: diary.Entry{ID: "b", Timestamp: today, Type: diary.TypeLetter}},
		{UserID: "u2", Entry: diary.Entry{ID: "c", Timestamp: now.UnixMilli(), Type: diary.TypeVent}},
	}

	s := NewUserService(db, rm, testConfig())
	s.now = func() time.Time { return now }

	p, err := s.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", p.UserName)
	assert.Equal(t, "Mira", p.Name)
	assert.Equal(t, joined.UnixMilli(), p.JoinedDate)
	assert.Equal(t, 2, p.Streak)
	assert.Equal(t, today, p.LastUsed)

	_, err = s.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSetName(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.users = newFakeUsers(&models.User{ID: "u1", UserName: "alice"})
	s := NewUserService(db, rm, testConfig())

	require.NoError(t, s.SetName(context.Background(), "u1", "  Mira "))
	assert.Equal(t, "Mira", rm.users.byName["alice"].Name)

	long := make([]byte, 65)
	for i := range long {
		long[i] = 'x'
	}
	assert.ErrorIs(t, s.SetName(context.Background(), "u1", string(long)), common.ErrorValidation)
	assert.ErrorIs(t, s.SetName(context.Background(), "nobody", "x"), common.ErrorNotFound)
}
