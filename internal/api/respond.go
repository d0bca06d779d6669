package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"brain-api/internal/apperr"
)

const msgInvalidBody = "Invalid request body"

type MessageResponse struct {
	Message string `json:"message" example:"Content added"`
}

// AuthMessageResponse is the body shape of the signup and signin routes.
type AuthMessageResponse struct {
	Msg   string      `json:"msg" example:"you are signed up"`
	Error interface{} `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) logFailure(r *http.Request, appErr *apperr.Error) {
	if appErr.Kind != apperr.KindInternal {
		return
	}
	s.log.Error().
		Err(appErr.Err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg(appErr.Message)
}

// writeError renders err as {message}.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperr.As(err)
	s.logFailure(r, appErr)
	writeJSON(w, appErr.Kind.Status(), MessageResponse{Message: appErr.Message})
}

// writeAuthError renders err as {msg, error}.
func (s *Server) writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperr.As(err)
	s.logFailure(r, appErr)
	writeJSON(w, appErr.Kind.Status(), AuthMessageResponse{Msg: appErr.Message, Error: appErr.Details})
}

func (s *Server) writeBadBody(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, MessageResponse{Message: msgInvalidBody})
}

// readJSON reads a JSON request body into v. An empty body decodes as {}.
func readJSON(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// typeMismatch reports a well-formed body whose field has the wrong JSON
// type. The decoder still fills every other field.
func typeMismatch(err error) (*json.UnmarshalTypeError, bool) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr, true
	}
	return nil, false
}
