package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	testCases := []struct {
		kind   Kind
		name   string
		status int
	}{
		{KindValidation, "ValidationError", http.StatusLengthRequired},
		{KindConflict, "ConflictError", http.StatusForbidden},
		{KindAuth, "AuthError", http.StatusForbidden},
		{KindUnauthorized, "Unauthorized", http.StatusForbidden},
		{KindNotFound, "NotFound", http.StatusNotFound},
		{KindInternal, "InternalError", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.name, tc.kind.String())
			require.Equal(t, tc.status, tc.kind.Status())
		})
	}
}

func TestAs(t *testing.T) {
	cause := errors.New("connection reset")

	wrapped := fmt.Errorf("signup: %w", Internal("error creating user", cause))
	appErr := As(wrapped)
	require.Equal(t, KindInternal, appErr.Kind)
	require.Equal(t, "error creating user", appErr.Message)
	require.ErrorIs(t, appErr, cause)

	plain := As(cause)
	require.Equal(t, KindInternal, plain.Kind)
	require.ErrorIs(t, plain, cause)

	require.True(t, IsKind(fmt.Errorf("x: %w", NotFound("gone")), KindNotFound))
	require.False(t, IsKind(cause, KindNotFound))
}
