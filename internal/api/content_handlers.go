package api

import (
	"net/http"

	"brain-api/internal/apperr"
	"brain-api/internal/database"
	"brain-api/internal/models"
	"brain-api/internal/websocket"

	"github.com/google/uuid"
)

type CreateContentRequest struct {
	Link  string             `json:"link" example:"https://youtu.be/dQw4w9WgXcQ"`
	Title string             `json:"title" example:"Talk"`
	Type  models.ContentType `json:"type" example:"video" enums:"document,tweet,video,link"`
}

type ContentListResponse struct {
	Content []models.OwnedContent `json:"content"`
}

type DeleteContentRequest struct {
	ContentID string `json:"contentId" example:"6f1c2b9e-7a51-4f5e-9d8a-2c7b1f0e3a44"`
}

// @Summary      Adds a content item
// @Description  Stores a content item for the caller with an empty tag list.
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        content  body      CreateContentRequest  true  "Content"
// @Success      200      {object}  MessageResponse
// @Failure      400      {object}  MessageResponse  "Invalid request body"
// @Failure      403      {object}  MessageResponse  "Unauthorized"
// @Failure      500      {object}  MessageResponse  "Error while adding content"
// @Router       /content [post]
func (s *Server) CreateContentHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		s.writeError(w, r, apperr.Unauthorized(msgInvalidTokenStructure, nil))
		return
	}

	var req CreateContentRequest
	if err := readJSON(r, &req); err != nil {
		s.writeBadBody(w)
		return
	}

	content, err := s.store.CreateContent(r.Context(), database.CreateContentParams{
		Title:  req.Title,
		Link:   req.Link,
		Type:   req.Type,
		UserID: userID,
	})
	if err != nil {
		s.writeError(w, r, apperr.Internal("Error while adding content", err))
		return
	}

	s.wsHub.Publish(userID, websocket.Event{EventType: websocket.EventContentAdded, Payload: content})
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Content added"})
}

// @Summary      Lists the caller's content
// @Description  Returns the caller's items in creation order with userId expanded to {id, username}.
// @Tags         content
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  ContentListResponse
// @Failure      403  {object}  MessageResponse  "Unauthorized"
// @Failure      500  {object}  MessageResponse
// @Router       /content [get]
func (s *Server) ListContentHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		s.writeError(w, r, apperr.Unauthorized(msgInvalidTokenStructure, nil))
		return
	}

	items, err := s.store.ListOwnedContent(r.Context(), userID)
	if err != nil {
		s.writeError(w, r, apperr.Internal("Error while fetching content", err))
		return
	}

	writeJSON(w, http.StatusOK, ContentListResponse{Content: items})
}

// @Summary      Deletes a content item
// @Description  With content.delete_by_id disabled (the default) the request is accepted and nothing is removed. Enabled, it removes the caller's item whose id is contentId.
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        content  body      DeleteContentRequest  true  "Content id"
// @Success      200      {object}  MessageResponse
// @Failure      400      {object}  MessageResponse  "Invalid request body"
// @Failure      403      {object}  MessageResponse  "Unauthorized"
// @Failure      500      {object}  MessageResponse
// @Router       /content [delete]
func (s *Server) DeleteContentHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		s.writeError(w, r, apperr.Unauthorized(msgInvalidTokenStructure, nil))
		return
	}

	var req DeleteContentRequest
	// A non-string contentId cannot match a stored row.
	if err := readJSON(r, &req); err != nil {
		if _, ok := typeMismatch(err); !ok {
			s.writeBadBody(w)
			return
		}
	}

	if !s.config.Content.DeleteByID {
		s.log.Warn().
			Stringer("user_id", userID).
			Str("content_id", req.ContentID).
			Msg("delete matched no content; set content.delete_by_id to delete by id")
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Deleted"})
		return
	}

	// An id that is not a uuid cannot match a stored row.
	contentID, err := uuid.Parse(req.ContentID)
	if err != nil {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Deleted"})
		return
	}

	deleted, err := s.store.DeleteContentByID(r.Context(), userID, contentID)
	if err != nil {
		s.writeError(w, r, apperr.Internal("Error while deleting content", err))
		return
	}
	if deleted > 0 {
		s.wsHub.Publish(userID, websocket.Event{
			EventType: websocket.EventContentDeleted,
			Payload:   map[string]string{"id": contentID.String()},
		})
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Deleted"})
}
