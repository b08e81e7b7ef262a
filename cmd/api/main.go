package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"imageprompt/internal/http/handlers"
	"imageprompt/internal/http/httpapi"
	"imageprompt/internal/infra"
	"imageprompt/internal/providers/prompt"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	gen, err := prompt.NewFromConfig(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build prompt generator")
	}

	app, err := handlers.NewApp(gen, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load templates")
	}

	router := httpapi.NewRouter(app, httpapi.Options{
		DefaultLocale:  cfg.DefaultLocale,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         logger,
	})
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("provider", cfg.PromptProvider).Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
