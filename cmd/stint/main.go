package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/mkallio/stint/internal/aggregate"
	"github.com/mkallio/stint/internal/cli"
	"github.com/mkallio/stint/internal/config"
	"github.com/mkallio/stint/internal/location"
	"github.com/mkallio/stint/internal/logging"
	"github.com/mkallio/stint/internal/storage"
	"github.com/mkallio/stint/internal/store"
)

const geocodeUserAgent = "stint/1.0 (+https://github.com/mkallio/stint)"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	log := logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	backend, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer backend.Close()

	ctx := context.Background()
	st, err := store.Open(ctx, backend, log)
	if err != nil {
		return fmt.Errorf("loading state: %w", err)
	}

	weekStart, err := cfg.WeekStartDay()
	if err != nil {
		return err
	}

	app := &cli.App{
		Store:    st,
		Calendar: aggregate.Calendar{WeekStart: weekStart, Now: time.Now},
		Log:      log,
	}

	if cfg.Geocoding.Enabled {
		client := location.NewNominatimClient(cfg.Geocoding.Endpoint, geocodeUserAgent)
		app.Resolver = location.NewCachedResolver(client)
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// Flush state before dying on a signal so an in-progress session
	// survives a suspend or kill.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		if err := st.Flush(context.Background()); err != nil {
			log.Error("flushing state on shutdown", "error", err)
		}
		backend.Close()
		os.Exit(130)
	}()

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
