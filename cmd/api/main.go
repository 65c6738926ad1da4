package main

import (
	"context"
	"errors"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"carpetgen/internal/catalog"
	"carpetgen/internal/generator"
	"carpetgen/internal/http/handlers"
	"carpetgen/internal/http/httpapi"
	"carpetgen/internal/infra"
)

func main() {
	// .env is optional; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	cat := catalog.Default()
	provider := generator.NewPollinations(generator.PollinationsOptions{
		BaseURL: cfg.ProviderBaseURL,
		Timeout: cfg.ProviderTimeout,
	})
	svc := generator.NewService(cat, provider, logger)

	app := handlers.NewApp(cat, svc, logger)
	router := httpapi.NewRouter(app, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Str("provider", cfg.ProviderBaseURL).Msg("API listening")
		if err := server.Start(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
