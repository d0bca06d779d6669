package api

import (
	"net/http"
	"testing"
	"time"

	"brain-api/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func signClaims(t *testing.T, claims jwt.Claims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	validToken, err := auth.GenerateJWT(userID, testSecret, 0)
	require.NoError(t, err)
	foreignToken, err := auth.GenerateJWT(userID, "some_other_secret", 0)
	require.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "no token",
			token:       "",
			wantStatus:  http.StatusForbidden,
			wantMessage: msgNoToken,
		},
		{
			name:        "malformed token",
			token:       "not-a-jwt",
			wantStatus:  http.StatusForbidden,
			wantMessage: msgInvalidToken,
		},
		{
			name:        "bearer prefix is not stripped",
			token:       "Bearer " + validToken,
			wantStatus:  http.StatusForbidden,
			wantMessage: msgInvalidToken,
		},
		{
			name:        "foreign signature",
			token:       foreignToken,
			wantStatus:  http.StatusForbidden,
			wantMessage: msgInvalidToken,
		},
		{
			name: "expired token",
			token: signClaims(t, &auth.AppClaims{
				UserID: userID.String(),
				RegisteredClaims: jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				},
			}, testSecret),
			wantStatus:  http.StatusForbidden,
			wantMessage: msgInvalidToken,
		},
		{
			name:        "missing id claim",
			token:       signClaims(t, jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(time.Now())}, testSecret),
			wantStatus:  http.StatusForbidden,
			wantMessage: msgInvalidTokenStructure,
		},
		{
			name:        "id claim is not a user id",
			token:       signClaims(t, &auth.AppClaims{UserID: "42"}, testSecret),
			wantStatus:  http.StatusForbidden,
			wantMessage: msgInvalidTokenStructure,
		},
		{
			name:        "numeric id claim",
			token:       signClaims(t, jwt.MapClaims{"id": 42}, testSecret),
			wantStatus:  http.StatusForbidden,
			wantMessage: msgInvalidTokenStructure,
		},
		{
			name:       "valid token",
			token:      validToken,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID uuid.UUID
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotUserID, _ = GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := doRequest(t, testServer.AuthMiddleware(next), "GET", "/api/v1/content", nil, tt.token)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				require.False(t, called)
				var resp MessageResponse
				decodeBody(t, rr, &resp)
				require.Equal(t, tt.wantMessage, resp.Message)
				return
			}
			require.True(t, called)
			require.Equal(t, userID, gotUserID)
		})
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	req, err := http.NewRequest("GET", "/", nil)
	require.NoError(t, err)

	_, ok := GetUserIDFromContext(req.Context())
	require.False(t, ok)
}
