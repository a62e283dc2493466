package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"wedding-site/internal/config"
	"wedding-site/internal/content"
	"wedding-site/internal/handler"
	"wedding-site/internal/storage"
	"wedding-site/internal/wish"
)

func main() {
	cfg := config.LoadConfig()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	ctx := context.Background()

	store, err := storage.Open(ctx, storage.Options{
		DataDir:         cfg.DataDir,
		CredentialsFile: cfg.FirestoreCredentials,
		ProjectID:       cfg.FirestoreProject,
		Collection:      cfg.FirestoreCollection,
	}, log.With().Str("component", "storage").Logger())
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing guest storage")
	}
	defer store.Close()

	site, err := content.Load(cfg.SiteContentPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading site content")
	}

	wisher := wish.NewGemini(ctx, cfg.GeminiAPIKey, cfg.CoupleNames,
		log.With().Str("component", "wish").Logger())

	router := handler.NewRouter(store, site, wisher, log.With().Str("component", "http").Logger())

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("backend server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
