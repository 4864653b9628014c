// Package main is a developer harness for the MeetCute client core. It wires
// the same stack the app embeds and exposes a few smoke commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/meetcute/client/config"
	"github.com/meetcute/client/internal/application/usecase/auth"
	"github.com/meetcute/client/internal/application/usecase/event"
	domainerror "github.com/meetcute/client/internal/domain/error"
	"github.com/meetcute/client/internal/domain/policy"
	"github.com/meetcute/client/internal/integration/api"
	"github.com/meetcute/client/internal/integration/storage"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	cfg := config.Load()
	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	if err := run(cfg, logger, os.Args[1], os.Args[2:]); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, command string, args []string) error {
	// check-password needs no wiring; handle it before touching storage.
	if command == "check-password" {
		if len(args) != 1 {
			return errors.New("usage: meetcute check-password <candidate>")
		}
		return checkPassword(args[0])
	}

	tokenStore, err := storage.NewFileTokenStore(cfg.Storage.VaultPath(), cfg.Session.DeviceSecret)
	if err != nil {
		return err
	}

	db, err := storage.Open(cfg.Storage.CachePath())
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close cache database", "error", err)
		}
	}()

	client := api.NewClient(api.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
		Logger:    logger,
		Tokens:    tokenStore,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout+5*time.Second)
	defer cancel()

	switch command {
	case "login":
		if len(args) != 2 {
			return errors.New("usage: meetcute login <email> <password>")
		}
		uc := auth.NewLoginUserUseCase(api.NewAuthAPI(client), tokenStore)
		out, err := uc.Execute(ctx, auth.LoginUserInput{Email: args[0], Password: args[1]})
		if err != nil {
			return err
		}
		fmt.Printf("signed in as %s (%s)\n", out.User.DisplayName, out.User.Email)
		return nil

	case "logout":
		uc := auth.NewLogoutUserUseCase(api.NewAuthAPI(client), tokenStore, logger)
		if err := uc.Execute(ctx); err != nil {
			return err
		}
		fmt.Println("signed out")
		return nil

	case "events":
		city := ""
		if len(args) > 0 {
			city = args[0]
		}
		uc := event.NewBrowseEventsUseCase(
			api.NewEventAPI(client),
			storage.NewEventCacheRepository(db.DB()),
			logger,
		)
		out, err := uc.Execute(ctx, event.BrowseEventsInput{City: city})
		if err != nil {
			return err
		}
		if out.FromCache {
			fmt.Println("(offline, showing cached events)")
		}
		for _, e := range out.Events {
			fmt.Printf("%s  %-30s %s, %d/%d going\n",
				e.StartsAt.Local().Format("Jan 02 15:04"), e.Title, e.Venue.Name, e.AttendeeCount, e.Capacity)
		}
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func checkPassword(candidate string) error {
	result := policy.Evaluate(candidate)

	fmt.Printf("strength: %s (%s)\n", policy.StrengthLabel(result.Strength), policy.StrengthColor(result.Strength))
	if result.Valid {
		fmt.Println("password meets all requirements")
		return nil
	}
	for _, msg := range result.Errors {
		fmt.Println("  -", msg)
	}
	return domainerror.ErrWeakPassword
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	level := parseLevel(cfg.Level)

	if cfg.File != "" {
		var sink io.Writer = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		return slog.New(slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))
}

func parseLevel(level string) slog.Level {
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

func usage() {
	fmt.Fprintln(os.Stderr, `usage: meetcute <command>

commands:
  check-password <candidate>   evaluate a password against the policy
  login <email> <password>     sign in and store the session
  logout                       sign out and clear the session
  events [city]                list upcoming events (cached when offline)`)
}
