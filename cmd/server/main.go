package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mkravets/lingochat-server/internal/app"
	"github.com/mkravets/lingochat-server/internal/config"
	"github.com/mkravets/lingochat-server/internal/log"
)

func main() {
	// Optional .env next to the binary, matching the client tooling.
	_ = godotenv.Load()

	var (
		configPath string
		logLevel   string
	)
	flag.StringVar(&configPath, "config", "", "path to config.yaml")
	flag.StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	logger := log.New("info")

	cfg, path, err := config.Load(logger, configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	logger = log.New(cfg.LogLevel)
	logger.Info().Str("config", path).Str("addr", cfg.Addr).Msg("starting lingochat server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg, logger)
	if err := application.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
	logger.Info().Msg("server stopped")
}
