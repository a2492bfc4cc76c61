package app

import (
	"context"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/mkravets/lingochat-server/internal/config"
	"github.com/mkravets/lingochat-server/internal/core"
	"github.com/mkravets/lingochat-server/internal/translate"
	transporthttp "github.com/mkravets/lingochat-server/internal/transport/http"
)

// App wires together core, translation, and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	hub             *core.Hub
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) *App {
	translator := translate.New(translate.Credentials{
		OpenRouterKey: cfg.Translator.OpenRouterKey,
		OpenAIKey:     cfg.Translator.OpenAIKey,
		Referer:       cfg.Translator.Referer,
		Title:         cfg.Translator.Title,
	}, logger)

	if translator.Configured() {
		logger.Info().Str("provider", translator.Provider()).Msg("translation provider configured")
	} else {
		logger.Warn().Msg("no translation credential set, translate requests will be rejected")
	}

	hub := core.NewHub(logger)
	server := transporthttp.NewServer(hub, translator, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		hub:             hub,
		log:             logger,
	}
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go a.hub.Run(ctx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErr
	}
}
