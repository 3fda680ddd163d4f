// Package services holds the client's application services. They sit
// between the REPL and two collaborators: the server API (client.Client)
// and the local SQLite cache.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/unsaid/internal/client/client"
	"github.com/dmitrijs2005/unsaid/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/cryptox"
	"github.com/dmitrijs2005/unsaid/internal/dbx"
	"github.com/dmitrijs2005/unsaid/internal/logging"
	"github.com/dmitrijs2005/unsaid/internal/rpc"
)

// Identity is the signed-in user as remembered locally.
type Identity struct {
	UserName string
	UserID   string
}

type AuthService interface {
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) (Identity, error)
	// Restore reinstalls a session saved by an earlier Login. ok is false
	// when there is none.
	Restore(ctx context.Context) (id Identity, ok bool, err error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (rpc.Profile, error)
	SetName(ctx context.Context, name string) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
	logger logging.Logger
}

// NewAuthService wires the token refresh callback so rotated tokens are
// persisted as soon as the client receives them.
func NewAuthService(c client.Client, db *sql.DB, l logging.Logger) AuthService {
	a := &authService{client: c, db: db, logger: l}
	c.OnTokensRefreshed(a.saveTokens)
	return a
}

func (a *authService) saveTokens(access, refresh string) {
	ctx := context.Background()
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, metadata.KeyAccessToken, []byte(access)); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyRefreshToken, []byte(refresh))
	})
	if err != nil {
		a.logger.Warn(ctx, "persisting refreshed tokens failed", "error", err)
	}
}

func validUserName(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", fmt.Errorf("%w: username is required", common.ErrorValidation)
	}
	return username, nil
}

// Register derives a verifier from the password and a fresh random salt
// and sends both to the server. The password itself never leaves the
// process.
func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	username, err := validUserName(username)
	if err != nil {
		return err
	}
	if len(password) == 0 {
		return fmt.Errorf("%w: password is required", common.ErrorValidation)
	}

	salt := common.GenerateRandByteArray(32)
	key := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)

	if _, err := a.client.Register(ctx, username, salt, cryptox.MakeVerifier(key)); err != nil {
		return err
	}
	return nil
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (Identity, error) {
	username, err := validUserName(username)
	if err != nil {
		return Identity{}, err
	}

	salt, err := a.client.GetSalt(ctx, username)
	if err != nil {
		return Identity{}, fmt.Errorf("get salt error: %w", err)
	}

	key := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)

	sess, err := a.client.Login(ctx, username, cryptox.MakeVerifier(key))
	if err != nil {
		return Identity{}, fmt.Errorf("login error: %w", err)
	}

	id := Identity{UserName: username, UserID: sess.UserID}
	if err := a.saveSession(ctx, id, sess); err != nil {
		return Identity{}, fmt.Errorf("session saving error: %w", err)
	}
	return id, nil
}

func (a *authService) saveSession(ctx context.Context, id Identity, sess client.Session) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		values := map[string]string{
			metadata.KeyUserName:     id.UserName,
			metadata.KeyUserID:       id.UserID,
			metadata.KeyAccessToken:  sess.AccessToken,
			metadata.KeyRefreshToken: sess.RefreshToken,
		}
		for k, v := range values {
			if err := repo.Set(ctx, k, []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (a *authService) Restore(ctx context.Context) (Identity, bool, error) {
	repo := metadata.NewSQLiteRepository(a.db)

	all, err := repo.List(ctx)
	if err != nil {
		return Identity{}, false, err
	}

	id := Identity{UserName: string(all[metadata.KeyUserName]), UserID: string(all[metadata.KeyUserID])}
	refresh := string(all[metadata.KeyRefreshToken])
	if id.UserID == "" || refresh == "" {
		return Identity{}, false, nil
	}

	a.client.SetSession(string(all[metadata.KeyAccessToken]), refresh)
	return id, true, nil
}

// Logout forgets the session. Cached entries stay; they are keyed by user.
func (a *authService) Logout(ctx context.Context) error {
	a.client.SetSession("", "")
	return metadata.NewSQLiteRepository(a.db).Clear(ctx)
}

func (a *authService) Profile(ctx context.Context) (rpc.Profile, error) {
	return a.client.Profile(ctx)
}

// SetName changes the display name shown in greetings.
func (a *authService) SetName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	return a.client.SetName(ctx, name)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
