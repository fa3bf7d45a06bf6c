package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/iudanet/devhub-admin/internal/client/api"
	"github.com/iudanet/devhub-admin/internal/client/auth"
	"github.com/iudanet/devhub-admin/internal/client/cli"
	"github.com/iudanet/devhub-admin/internal/client/iocli"
	"github.com/iudanet/devhub-admin/internal/client/notify"
	"github.com/iudanet/devhub-admin/internal/client/session"
	"github.com/iudanet/devhub-admin/internal/client/storage"
	"github.com/iudanet/devhub-admin/internal/client/storage/boltdb"
	"github.com/iudanet/devhub-admin/internal/client/storage/sqlite"
	"github.com/iudanet/devhub-admin/internal/config"
	"github.com/iudanet/devhub-admin/internal/logger"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Exit codes
const (
	exitOK           = 0
	exitError        = 1
	exitSessionEnded = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	stdio := iocli.NewStdio()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cli.PrintUsage(stdio)
		return exitError
	}

	if cfg.ShowVersion {
		printVersion()
		return exitOK
	}

	if cfg.Command() == "" {
		cli.PrintUsage(stdio)
		return exitError
	}

	log, err := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}
	slog.SetDefault(log)

	// Отмена по Ctrl+C прерывает и незавершенные запросы
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return exitError
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	// История бэкапов в SQLite
	history, err := sqlite.New(ctx, cfg.HistoryDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open history database: %v\n", err)
		return exitError
	}
	defer func() {
		if err := history.Close(); err != nil {
			log.Error("failed to close history database", "error", err)
		}
	}()

	theme, err := boltStorage.GetTheme(ctx)
	if err != nil {
		log.Warn("failed to read theme, using default", "error", err)
		theme = storage.ThemeDark
	}
	color := !cfg.NoColor && term.IsTerminal(int(os.Stdout.Fd()))
	notifier := notify.NewConsole(stdio, theme, color)

	guard := session.NewGuard(boltStorage, notifier, cfg.LoginURL, log)
	apiClient := api.NewClient(cfg.ServerURL, guard, cfg.Timeout, log)
	authService := auth.NewService(apiClient, guard, notifier, log)

	console := cli.New(cli.Deps{
		IO:        stdio,
		API:       apiClient,
		Guard:     guard,
		Auth:      authService,
		Prefs:     boltStorage,
		History:   history,
		Notifier:  notifier,
		Logger:    log,
		BackupDir: cfg.BackupDir,
	})

	err = console.Run(ctx, cfg.Command(), cfg.CommandArgs())
	switch {
	case console.SessionEnded():
		return exitSessionEnded
	case errors.Is(err, context.Canceled):
		return exitOK
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

func printVersion() {
	fmt.Printf("DevHub Admin Console\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
