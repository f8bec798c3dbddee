package main

import (
	"context"
	"errors"
	"flag"
	"github.com/14kear/movie-voting/internal/app"
	"github.com/14kear/movie-voting/internal/config"
	"github.com/14kear/movie-voting/utils"
	sl "github.com/14kear/sso-prettyslog/slogpretty/errors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

const defaultConfigPath = "config/local.yaml"

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg := config.MustLoad(configPath())

	log := utils.New(cfg.Env)

	if cfg.Env == utils.EnvLocal || cfg.Env == utils.EnvDev {
		log.Info("Starting voting service",
			slog.String("env", cfg.Env),
			slog.String("driver", cfg.Storage.Driver),
			slog.Int("port", cfg.HTTP.Port),
			slog.Any("options", cfg.Voting.Options),
		)
	} else {
		gin.SetMode(gin.ReleaseMode)
		log.Info("Starting voting service")
	}

	application := app.NewApp(log, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Init(ctx); err != nil {
		log.Warn("starting without an initialized database", sl.Err(err))
	}

	go func() {
		if err := application.HTTPServer.Run(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("HTTP server closed gracefully")
			} else {
				log.Error("failed to run HTTP server", sl.Err(err))
				stop()
			}
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := application.Stop(shutdownCtx); err != nil {
		log.Error("failed to stop application", sl.Err(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}

// configPath resolves the config file from -config, then CONFIG_PATH, then the
// default. A missing file means env-only configuration.
func configPath() string {
	var path string
	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = defaultConfigPath
	}

	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
