// Package server wires the Unsaid backend together: PostgreSQL
// repositories, services, the gRPC API and the HTTP companion proxy, and
// runs them until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/unsaid/internal/companion"
	"github.com/dmitrijs2005/unsaid/internal/logging"
	"github.com/dmitrijs2005/unsaid/internal/server/config"
	"github.com/dmitrijs2005/unsaid/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/unsaid/internal/server/services"

	gs "github.com/dmitrijs2005/unsaid/internal/server/grpc"
	hs "github.com/dmitrijs2005/unsaid/internal/server/http"
)

// runner is a listener that serves until its context ends.
type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	closers []io.Closer
	runners map[string]runner
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger, logCloser := logging.New(logging.Options{File: cfg.LogFile})

	db, err := repomanager.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		_ = logCloser.Close()
		return nil, err
	}

	app := &App{config: cfg, logger: logger, closers: []io.Closer{db, logCloser}}
	app.runners = app.buildRunners(db, rm)
	return app, nil
}

func (app *App) buildRunners(db *sql.DB, rm repomanager.RepositoryManager) map[string]runner {
	cfg := app.config

	gen := companion.NewGeminiClient(companion.Config{
		Endpoint:  cfg.CompanionEndpoint,
		Model:     cfg.CompanionModel,
		APIKeyEnv: cfg.CompanionAPIKeyEnv,
		Timeout:   cfg.CompanionTimeout,
	}, nil)
	if !gen.HasAPIKey() {
		app.logger.Warn(context.Background(), "companion API key is not set, replies will fail", "env", cfg.CompanionAPIKeyEnv)
	}

	audio := services.NewAudioService(cfg)
	comp := services.NewCompanionService(db, rm, gen, cfg, app.logger)

	runners := map[string]runner{
		"grpc": gs.NewGRPCServer(cfg.EndpointAddrGRPC, app.logger, gs.Services{
			Users:     services.NewUserService(db, rm, cfg),
			Entries:   services.NewEntryService(db, rm, audio, app.logger),
			Companion: comp,
			Audio:     audio,
		}, cfg.SecretKey),
	}

	if cfg.EndpointAddrHTTP != "" {
		router := hs.NewRouter(hs.RouterConfig{
			SecretKey:          cfg.SecretKey,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		}, comp, app.logger)
		runners["http"] = hs.NewServer(cfg.EndpointAddrHTTP, router, app.logger)
	}
	return runners
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run starts every listener and blocks until all of them have stopped. A
// listener that fails cancels the others.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup
	for name, r := range app.runners {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.Run(ctx); err != nil {
				app.logger.Error(ctx, "listener failed", "listener", name, "err", err)
				cancelFunc()
			}
		}()
	}
	wg.Wait()

	for _, c := range app.closers {
		_ = c.Close()
	}
	app.logger.Info(context.Background(), "App stopped")
}
