package http

import (
	"context"
	"fmt"
	"github.com/14kear/movie-voting/internal/config"
	"github.com/14kear/movie-voting/internal/handlers"
	"github.com/14kear/movie-voting/internal/middleware"
	"github.com/14kear/movie-voting/internal/routes"
	sl "github.com/14kear/sso-prettyslog/slogpretty/errors"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"log/slog"
	"net/http"
	"os"
)

type App struct {
	log    *slog.Logger
	engine *gin.Engine
	server *http.Server
	port   int
}

// NewApp builds the gin engine with every route and wraps it in an http.Server.
func NewApp(log *slog.Logger, cfg config.HTTPConfig, handler *handlers.VotingHandler) *App {
	r := gin.New()

	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Error("invalid trusted proxies, ignoring forwarded headers", sl.Err(err))
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))

	api := r.Group("/api")
	{
		routes.RegisterPublicRoutes(api, handler)
		routes.RegisterAdminRoutes(api, handler)
	}

	r.GET("/health", handler.Health)
	r.GET("/", handler.Home)

	if hasDir(cfg.StaticDir) {
		r.NoRoute(staticFiles(cfg.StaticDir))
	} else {
		log.Warn("static directory not found, serving API only", slog.String("dir", cfg.StaticDir))
		r.NoRoute(notFound)
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &App{
		log:    log,
		engine: r,
		server: httpServer,
		port:   cfg.Port,
	}
}

// Run starts the HTTP server and blocks until it stops.
func (a *App) Run() error {
	a.log.Info("HTTP server is running", slog.String("addr", a.server.Addr))
	return a.server.ListenAndServe()
}

// Stop gracefully shuts the server down.
func (a *App) Stop(ctx context.Context) error {
	a.log.Info("HTTP server is stopping")
	return a.server.Shutdown(ctx)
}

func (a *App) Engine() *gin.Engine {
	return a.engine
}

// staticFiles serves the frontend (vote.html, admin.html, img/...) for unmatched GETs.
func staticFiles(dir string) gin.HandlerFunc {
	fileServer := http.FileServer(gin.Dir(dir, false))

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			notFound(c)
			return
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

func hasDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
