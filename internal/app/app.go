package app

import (
	"context"
	httpapp "github.com/14kear/movie-voting/internal/app/http"
	"github.com/14kear/movie-voting/internal/config"
	"github.com/14kear/movie-voting/internal/handlers"
	"github.com/14kear/movie-voting/internal/repo/sqlstore"
	"github.com/14kear/movie-voting/internal/services"
	sl "github.com/14kear/sso-prettyslog/slogpretty/errors"
	"log/slog"
)

type App struct {
	HTTPServer *httpapp.App
	Voting     *services.Voting
	log        *slog.Logger
	storage    *sqlstore.Storage
}

func NewApp(log *slog.Logger, cfg *config.Config) *App {
	storage, err := sqlstore.New(cfg.Storage)
	if err != nil {
		panic(err)
	}

	votingService := services.NewVoting(log, storage, storage, cfg.Voting.Options, cfg.Voting.AdminPassword)
	votingHandler := handlers.NewVotingHandler(votingService)

	httpApp := httpapp.NewApp(log, cfg.HTTP, votingHandler)

	if cfg.Voting.AdminPassword == "" {
		log.Warn("admin password is not set, reset is disabled")
	}

	return &App{
		HTTPServer: httpApp,
		Voting:     votingService,
		log:        log,
		storage:    storage,
	}
}

// Init brings the schema up to date and seeds a zero tally per option.
// Failures are logged and returned but the server may still start, so that
// /health and static pages stay available while the database is down.
func (a *App) Init(ctx context.Context) error {
	const op = "app.Init"

	log := a.log.With(slog.String("op", op))

	if err := a.storage.Ping(ctx); err != nil {
		log.Error("database is unreachable", sl.Err(err))
		return err
	}

	if err := a.storage.Migrate(); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		return err
	}

	if err := a.Voting.SeedOptions(ctx); err != nil {
		return err
	}

	log.Info("database initialized")
	return nil
}

func (a *App) Stop(ctx context.Context) error {
	if err := a.HTTPServer.Stop(ctx); err != nil {
		return err
	}
	return a.storage.Close()
}
