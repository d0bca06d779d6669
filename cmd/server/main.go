// @title           Brain API
// @version         1.0
// @description     Personal content library with public share links.
// @host            localhost:3000
// @BasePath        /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"brain-api/internal/api"
	"brain-api/internal/config"
	"brain-api/internal/database"
	"brain-api/internal/logger"
	"brain-api/internal/websocket"

	"github.com/jackc/pgx/v5/pgxpool"

	_ "brain-api/docs"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New("info", false)
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbpool, err := pgxpool.New(ctx, cfg.DB.Source)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbpool.Close()

	if err := dbpool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}
	if err := database.ApplySchema(ctx, dbpool); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}
	log.Info().Msg("connected to database")

	wsHub := websocket.NewHub(log)
	go wsHub.Run(ctx)

	store := database.NewStore(dbpool)
	server, err := api.NewServer(cfg, store, wsHub, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create server")
	}

	if !cfg.Content.DeleteByID {
		log.Warn().Msg("content.delete_by_id is off: DELETE /api/v1/content removes nothing")
	}

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           server.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", httpServer.Addr).Msg("starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
