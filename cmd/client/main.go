package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/kunsthaus/canvasbid/internal/client/api"
	"github.com/kunsthaus/canvasbid/internal/client/auction"
	"github.com/kunsthaus/canvasbid/internal/client/catalog"
	"github.com/kunsthaus/canvasbid/internal/client/cli"
	"github.com/kunsthaus/canvasbid/internal/client/session"
	"github.com/kunsthaus/canvasbid/internal/client/storage/boltdb"
	"github.com/kunsthaus/canvasbid/internal/client/view"
	"github.com/kunsthaus/canvasbid/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "Backend URL (overrides KUNSTHAUS_SERVER)")
	dbPath := flag.String("db", "", "Path to local database (overrides KUNSTHAUS_DB)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))

	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(cfg.ServerURL)
	sess := session.New(ctx, apiClient, boltStorage, logger)
	renderer := view.NewTerminal(os.Stdout)
	auctions := auction.New(apiClient, sess, renderer, boltStorage, logger)
	gallery := catalog.New(apiClient, sess, logger)

	commands := cli.New(sess, auctions, gallery, renderer, boltStorage, cfg)

	if err := commands.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func printVersion() {
	fmt.Printf("Kunsthaus Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
