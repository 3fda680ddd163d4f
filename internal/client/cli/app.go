package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/unsaid/internal/client/client"
	"github.com/dmitrijs2005/unsaid/internal/client/config"
	"github.com/dmitrijs2005/unsaid/internal/client/services"
	"github.com/dmitrijs2005/unsaid/internal/companion"
	"github.com/dmitrijs2005/unsaid/internal/cryptox"
	"github.com/dmitrijs2005/unsaid/internal/diary"
	"github.com/dmitrijs2005/unsaid/internal/filex"
	"github.com/dmitrijs2005/unsaid/internal/logging"
	"github.com/dmitrijs2005/unsaid/internal/quota"
	"github.com/dmitrijs2005/unsaid/internal/rpc"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type journalAPI interface {
	Save(ctx context.Context, userID string, d services.Draft) (services.Saved, error)
	List(ctx context.Context, userID string, f diary.Filter) (services.Listing, error)
	Get(ctx context.Context, userID, id string) (diary.Entry, error)
	Pin(ctx context.Context, userID, id string) error
	Unpin(ctx context.Context, userID, id string) error
	ToggleFavorite(ctx context.Context, userID, id string) (bool, error)
	AttachAudio(ctx context.Context, userID, id, audioID string) error
	Delete(ctx context.Context, userID, id string) (bool, error)
	Sync(ctx context.Context, userID string) (services.SyncReport, error)
	Stats(ctx context.Context, userID string) (services.Stats, error)
	Now() time.Time
	Location() *time.Location
}

type companionAPI interface {
	Chat(ctx context.Context, text string) (rpc.ChatResponse, error)
	Listen(ctx context.Context, text string) (rpc.ChatResponse, error)
	Allowance(ctx context.Context) (quota.Allowance, error)
	History() []companion.Message
	Reset()
}

type audioAPI interface {
	Attach(ctx context.Context, path string) (string, error)
	Fetch(ctx context.Context, audioID string) (string, error)
}

type App struct {
	config      *config.Config
	authService services.AuthService
	journal     journalAPI
	companion   companionAPI
	audio       audioAPI
	logger      logging.Logger

	identity services.Identity

	mu   sync.Mutex
	mode Mode

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local cache, dials the server and builds the services.
// Dialing is lazy, so an unreachable server does not fail start-up.
func NewApp(ctx context.Context, c *config.Config, l logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		l.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient, err := client.NewUnsaidClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	codec, err := cryptox.Default()
	if err != nil {
		return nil, fmt.Errorf("content codec: %w", err)
	}

	audioDir, err := filex.EnsureDir(c.AudioDir)
	if err != nil {
		return nil, fmt.Errorf("audio dir: %w", err)
	}

	return &App{
		config:      c,
		authService: services.NewAuthService(apiClient, db, l),
		journal:     services.NewJournalService(apiClient, db, codec, c.Location(), l),
		companion:   services.NewCompanionService(apiClient),
		audio:       services.NewAudioService(apiClient, audioDir, &http.Client{Timeout: time.Minute}),
		logger:      l,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// setMode records the connectivity mode and reports whether it changed.
func (a *App) setMode(ctx context.Context, mode Mode) bool {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, "connectivity changed", "mode", mode)
	}
	return changed
}

func (a *App) isLoggedIn() bool {
	return a.userID() != ""
}

func (a *App) userID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.identity.UserID
}

func (a *App) identityName() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.identity.UserName
}

func (a *App) setIdentity(id services.Identity) {
	a.mu.Lock()
	a.identity = id
	a.mu.Unlock()
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	a.Root(ctx)
}

// checkOnline pings the server once and updates the mode. Coming back
// online pushes whatever was queued while offline.
func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.authService.Ping(pctx)
	cancel()

	if err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	if uid := a.userID(); a.setMode(ctx, ModeOnline) && uid != "" {
		rep, err := a.journal.Sync(ctx, uid)
		if err != nil {
			a.logger.Warn(ctx, "background sync failed", "error", err)
			return
		}
		if rep.Pushed > 0 || rep.Failed > 0 {
			a.logger.Info(ctx, "background sync done", "pushed", rep.Pushed, "failed", rep.Failed)
		}
	}
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
