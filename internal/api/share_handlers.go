package api

import (
	"encoding/json"
	"net/http"

	"brain-api/internal/apperr"
	"brain-api/internal/websocket"

	"github.com/go-chi/chi/v5"
)

type ShareRequest struct {
	Share truthy `json:"share" swaggertype:"boolean" example:"true"`
}

// truthy accepts any JSON value. false, 0, "" and null are false; anything
// else is true.
type truthy bool

func (t *truthy) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v := v.(type) {
	case nil:
		*t = false
	case bool:
		*t = truthy(v)
	case float64:
		*t = v != 0
	case string:
		*t = v != ""
	default:
		*t = true
	}
	return nil
}

type ShareHashResponse struct {
	Hash string `json:"hash" example:"erdctfbghu"`
}

// @Summary      Enables or disables the public share link
// @Description  A truthy share returns the caller's share hash, creating it on first use. A falsy or missing share removes the link.
// @Tags         share
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        share  body      ShareRequest  true  "Share toggle"
// @Success      200    {object}  ShareHashResponse
// @Success      200    {object}  MessageResponse  "Removed link"
// @Failure      400    {object}  MessageResponse  "Invalid request body"
// @Failure      403    {object}  MessageResponse  "Unauthorized"
// @Failure      500    {object}  MessageResponse
// @Router       /brain/share [post]
func (s *Server) ShareBrainHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		s.writeError(w, r, apperr.Unauthorized(msgInvalidTokenStructure, nil))
		return
	}

	var req ShareRequest
	if err := readJSON(r, &req); err != nil {
		s.writeBadBody(w)
		return
	}

	if !req.Share {
		if err := s.shares.Disable(r.Context(), userID); err != nil {
			s.writeError(w, r, err)
			return
		}
		s.wsHub.Publish(userID, websocket.Event{EventType: websocket.EventShareDisabled, Payload: struct{}{}})
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Removed link"})
		return
	}

	hash, err := s.shares.Enable(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.wsHub.Publish(userID, websocket.Event{EventType: websocket.EventShareEnabled, Payload: ShareHashResponse{Hash: hash}})
	writeJSON(w, http.StatusOK, ShareHashResponse{Hash: hash})
}

// @Summary      Reads a shared brain
// @Description  Public read of a user's username and content through their share hash.
// @Tags         share
// @Produce      json
// @Param        shareLink  path      string  true  "Share hash"
// @Success      200        {object}  share.Snapshot
// @Failure      404        {object}  MessageResponse  "Invalid share link / User not found"
// @Failure      500        {object}  MessageResponse
// @Router       /brain/{shareLink} [get]
func (s *Server) GetSharedBrainHandler(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "shareLink")

	snapshot, err := s.shares.Resolve(r.Context(), hash)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}
