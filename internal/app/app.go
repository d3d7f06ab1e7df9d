package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"kurier/internal/api"
	"kurier/internal/relay"
	"kurier/internal/services/accounts"
	"kurier/internal/services/social"
	"kurier/internal/store"
)

// App is the wired server: stores, services, relay, and REST router.
type App struct {
	cfg    Config
	logger zerolog.Logger
	router http.Handler
}

// New builds the dependency graph from cfg.
func New(cfg Config) *App {
	logger := newLogger(cfg.LogLevel)

	users := store.NewUserStore()
	messages := store.NewMessageStore()
	contacts := store.NewContactStore()
	posts := store.NewPostStore()

	accountSvc := accounts.New(users, []byte(cfg.JWTSecret), cfg.TokenTTL)
	socialSvc := social.New(users, contacts, posts)

	registry := relay.NewRegistry()
	handler := relay.NewHandler(registry, messages, logger)
	relaySrv := relay.NewServer(accountSvc, registry, handler, cfg.AuthTimeout, logger)

	router := api.NewServer(accountSvc, socialSvc, messages, relaySrv).Router()

	return &App{
		cfg:    cfg,
		logger: logger,
		router: router,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    a.cfg.ListenAddr,
		Handler: a.router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info().Str("addr", a.cfg.ListenAddr).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.logger.Info().Msg("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
