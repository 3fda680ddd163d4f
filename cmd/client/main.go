package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/unsaid/internal/buildinfo"
	"github.com/dmitrijs2005/unsaid/internal/client/cli"
	"github.com/dmitrijs2005/unsaid/internal/client/config"
	"github.com/dmitrijs2005/unsaid/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	// The terminal belongs to the REPL: warnings go to stderr unless a log
	// file is configured.
	opts := logging.Options{File: cfg.LogFile, Level: slog.LevelWarn, Console: os.Stderr}
	if cfg.LogFile != "" {
		opts.Level = slog.LevelInfo
		opts.Console = io.Discard
	}
	logger, closer := logging.New(opts)
	defer closer.Close()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
