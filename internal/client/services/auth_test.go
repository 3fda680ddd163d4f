package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/unsaid/internal/client/client"
	"github.com/dmitrijs2005/unsaid/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_RegisterLoginRestoreLogout(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient()
	db := newTestDB(t)
	as := NewAuthService(fc, db, logging.Nop{})

	require.NoError(t, as.Register(ctx, "  ana ", []byte("pw")))
	require.Contains(t, fc.users, "ana")
	assert.Len(t, fc.users["ana"].salt, 32)

	require.ErrorIs(t, as.Register(ctx, "ana", []byte("pw")), common.ErrorAlreadyExists)

	_, err := as.Login(ctx, "ana", []byte("wrong"))
	require.ErrorIs(t, err, client.ErrUnauthorized)

	id, err := as.Login(ctx, "ana", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, Identity{UserName: "ana", UserID: "uid-ana"}, id)

	repo := metadata.NewSQLiteRepository(db)
	tok, err := metadata.GetString(ctx, repo, metadata.KeyRefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "R-ana", tok)

	// A fresh process restores the session from the cache.
	fc2 := newFakeClient()
	as2 := NewAuthService(fc2, db, logging.Nop{})
	restored, ok, err := as2.Restore(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, id, restored)
	assert.Equal(t, "A-ana", fc2.access)
	assert.Equal(t, "R-ana", fc2.refresh)

	require.NoError(t, as2.Logout(ctx))
	assert.Empty(t, fc2.access)
	_, ok, err = as2.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuth_RefreshedTokensArePersisted(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient()
	db := newTestDB(t)
	NewAuthService(fc, db, logging.Nop{})

	require.NotNil(t, fc.onRefresh)
	fc.onRefresh("A2", "R2")

	repo := metadata.NewSQLiteRepository(db)
	a, _ := metadata.GetString(ctx, repo, metadata.KeyAccessToken)
	r, _ := metadata.GetString(ctx, repo, metadata.KeyRefreshToken)
	assert.Equal(t, "A2", a)
	assert.Equal(t, "R2", r)
}

func TestAuth_Validation(t *testing.T) {
	ctx := context.Background()
	as := NewAuthService(newFakeClient(), newTestDB(t), logging.Nop{})

	require.ErrorIs(t, as.Register(ctx, " ", []byte("pw")), common.ErrorValidation)
	require.ErrorIs(t, as.Register(ctx, "ana", nil), common.ErrorValidation)
	_, err := as.Login(ctx, "", []byte("pw"))
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestAuth_ServerDown(t *testing.T) {
	ctx := context.Background()
	fc := newFakeClient()
	fc.down = true
	as := NewAuthService(fc, newTestDB(t), logging.Nop{})

	_, err := as.Login(ctx, "ana", []byte("pw"))
	require.ErrorIs(t, err, client.ErrUnavailable)
	require.ErrorIs(t, as.Ping(ctx), client.ErrUnavailable)

	require.NoError(t, as.Close(ctx))
	assert.True(t, fc.closed)
}

func TestAuth_ProfileAndName(t *testing.T) {
	ctx := context.Background()
	as := NewAuthService(newFakeClient(), newTestDB(t), logging.Nop{})

	p, err := as.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ana", p.Username)

	require.NoError(t, as.SetName(ctx, "Ana"))
	require.ErrorIs(t, as.SetName(ctx, "  "), common.ErrorValidation)
}
