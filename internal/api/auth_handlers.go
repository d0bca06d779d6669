package api

import (
	"net/http"

	"brain-api/internal/account"
	"brain-api/internal/apperr"
	"brain-api/internal/auth"
)

type CredentialsRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"Passw0rd!"`
}

type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// @Summary      Registers a user
// @Description  Validates the credential format and creates the user. Format failures, including an empty body or a non-string field, list every failed rule.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      CredentialsRequest   true  "Credentials"
// @Success      200          {object}  AuthMessageResponse
// @Failure      400          {object}  MessageResponse      "Invalid request body"
// @Failure      403          {object}  AuthMessageResponse  "user already exist"
// @Failure      411          {object}  AuthMessageResponse  "incorrect format"
// @Failure      500          {object}  AuthMessageResponse  "error creating user"
// @Router       /signup [post]
func (s *Server) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := readJSON(r, &req); err != nil {
		typeErr, ok := typeMismatch(err)
		if !ok {
			s.writeBadBody(w)
			return
		}
		issue := auth.Issue{Field: typeErr.Field, Rule: "type", Message: typeErr.Field + " must be a string"}
		if typeErr.Field == "" {
			issue = auth.Issue{Field: "body", Rule: "type", Message: "body must be a JSON object"}
		}
		s.writeAuthError(w, r, apperr.Validation("incorrect format", []auth.Issue{issue}))
		return
	}

	user, err := s.accounts.Signup(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeAuthError(w, r, err)
		return
	}

	s.log.Info().Stringer("user_id", user.ID).Msg("user signed up")
	writeJSON(w, http.StatusOK, AuthMessageResponse{Msg: "you are signed up"})
}

// @Summary      Signs a user in
// @Description  Exchanges username and password for a token to send raw in the Authorization header.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      CredentialsRequest   true  "Credentials"
// @Success      200          {object}  TokenResponse
// @Failure      400          {object}  MessageResponse      "Invalid request body"
// @Failure      403          {object}  AuthMessageResponse  "user does not exist"
// @Failure      403          {object}  MessageResponse      "Incorrect credentials"
// @Failure      500          {object}  AuthMessageResponse
// @Router       /signin [post]
func (s *Server) SigninHandler(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	// A mistyped field stays empty and fails the credential lookup.
	if err := readJSON(r, &req); err != nil {
		if _, ok := typeMismatch(err); !ok {
			s.writeBadBody(w)
			return
		}
	}

	token, err := s.accounts.Signin(r.Context(), req.Username, req.Password)
	if err != nil {
		if appErr := apperr.As(err); appErr.Kind == apperr.KindAuth && appErr.Message == account.MsgIncorrectCredentials {
			s.writeError(w, r, appErr)
			return
		}
		s.writeAuthError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{Token: token})
}
