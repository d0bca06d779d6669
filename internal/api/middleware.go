package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"brain-api/internal/apperr"
	"brain-api/internal/auth"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const userContextKey = contextKey("user")

const (
	msgNoToken               = "Unauthorized: No token provided"
	msgInvalidToken          = "Unauthorized: Invalid token"
	msgInvalidTokenStructure = "Unauthorized: Invalid token structure"
)

// AuthMiddleware reads the raw token from the Authorization header and
// stores the caller id in the request context.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.Header.Get("Authorization")
		if tokenString == "" {
			authRejections.WithLabelValues("no_token").Inc()
			s.writeError(w, r, apperr.Unauthorized(msgNoToken, nil))
			return
		}

		userID, err := auth.UserIDFromToken(tokenString, s.config.JWT.Secret)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidTokenStructure) {
				authRejections.WithLabelValues("invalid_structure").Inc()
				s.writeError(w, r, apperr.Unauthorized(msgInvalidTokenStructure, err))
				return
			}
			authRejections.WithLabelValues("invalid_token").Inc()
			s.writeError(w, r, apperr.Unauthorized(msgInvalidToken, err))
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userContextKey).(uuid.UUID)
	return userID, ok
}

func (s *Server) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)

		var event *zerolog.Event
		switch {
		case ww.Status() >= 500:
			event = s.log.Error().Str("error_type", "server_error")
		case ww.Status() >= 400:
			event = s.log.Warn().Str("error_type", "client_error")
		default:
			event = s.log.Info()
		}

		event.
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", duration).
			Str("ip", r.RemoteAddr).
			Msg("request completed")
	})
}
