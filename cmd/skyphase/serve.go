package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/thurmanmarka/skyphase"
	"github.com/thurmanmarka/skyphase/internal/config"
	"github.com/thurmanmarka/skyphase/internal/server"
)

type serveFlags struct {
	EnvFile string `subcmd:"env-file,.env,optional file of environment variables to load"`
}

func serve(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*serveFlags)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	envErr := godotenv.Load(fv.EnvFile)

	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		return envErr
	}
	if envErr != nil {
		logger.Info("no env file found, using the environment", "file", fv.EnvFile)
	}

	placesFile := cfg.PlacesFile
	if globalValues.Places != "" {
		placesFile = globalValues.Places
	}
	var places *config.Places
	if placesFile != "" {
		if places, err = config.LoadPlaces(placesFile); err != nil {
			return err
		}
		logger.Info("loaded places", "file", placesFile, "count", len(places.Places))
	}

	srv := server.New(cfg.HTTPAddr, logger, server.Options{
		Places: places,
		Cache:  skyphase.NewTwilightCache(cfg.CacheSize),
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
