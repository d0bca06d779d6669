package api

import (
	"fmt"
	"net/http"

	"brain-api/internal/account"
	"brain-api/internal/config"
	"brain-api/internal/database"
	"brain-api/internal/share"
	"brain-api/internal/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	config   *config.Config
	store    *database.Store
	accounts *account.Service
	shares   *share.Registry
	wsHub    *websocket.Hub
	log      zerolog.Logger
}

func NewServer(cfg *config.Config, store *database.Store, wsHub *websocket.Hub, log zerolog.Logger) (*Server, error) {
	shares, err := share.NewRegistry(store)
	if err != nil {
		return nil, fmt.Errorf("failed to create share registry: %w", err)
	}

	return &Server{
		config:   cfg,
		store:    store,
		accounts: account.NewService(store, cfg.JWT.Secret, cfg.JWT.TTL),
		shares:   shares,
		wsHub:    wsHub,
		log:      log,
	}, nil
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.LoggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Get("/health", s.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ws", s.ServeWsHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/signup", s.SignupHandler)
		r.Post("/signin", s.SigninHandler)
		r.Get("/brain/{shareLink}", s.GetSharedBrainHandler)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Post("/content", s.CreateContentHandler)
			r.Get("/content", s.ListContentHandler)
			r.Delete("/content", s.DeleteContentHandler)
			r.Post("/brain/share", s.ShareBrainHandler)
		})
	})

	return r
}
