package api

import (
	"errors"
	"net/http"

	"brain-api/internal/apperr"
	"brain-api/internal/auth"
	"brain-api/internal/websocket"
)

// ServeWsHandler upgrades to a websocket that receives the caller's events.
// The token travels in the query string since browsers cannot set headers
// on websocket requests.
func (s *Server) ServeWsHandler(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		s.writeError(w, r, apperr.Unauthorized(msgNoToken, nil))
		return
	}

	userID, err := auth.UserIDFromToken(tokenString, s.config.JWT.Secret)
	if err != nil {
		msg := msgInvalidToken
		if errors.Is(err, auth.ErrInvalidTokenStructure) {
			msg = msgInvalidTokenStructure
		}
		s.writeError(w, r, apperr.Unauthorized(msg, err))
		return
	}

	conn, err := websocket.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := websocket.NewClient(s.wsHub, conn, userID)
	if !s.wsHub.Attach(client) {
		conn.Close()
		return
	}

	go client.ReadPump()
	go client.WritePump()
}
