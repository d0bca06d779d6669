package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	password := "mySecretPassword123"
	hash, err := HashPassword(password)

	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, password, hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, PasswordCost, cost)

	again, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEqual(t, hash, again, "Hashes must be salted")
}

func TestCheckPasswordHash(t *testing.T) {
	password := "mySecretPassword123"
	hash, err := HashPassword(password)
	require.NoError(t, err)

	match := CheckPasswordHash(password, hash)
	require.True(t, match, "Password should match the hash")

	wrongPassword := "wrongPassword"
	match = CheckPasswordHash(wrongPassword, hash)
	require.False(t, match, "Wrong password should not match the hash")

	require.False(t, CheckPasswordHash(password, "not-a-bcrypt-hash"))
}

func TestGenerateAndVerifyJWT(t *testing.T) {
	secret := "my_super_secret_key_for_testing"
	userID := uuid.New()

	tokenString, err := GenerateJWT(userID, secret, 0)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := VerifyJWT(tokenString, secret)
	require.NoError(t, err)
	require.NotNil(t, claims)
	require.Equal(t, userID.String(), claims.UserID)
	require.Nil(t, claims.ExpiresAt, "Tokens without a ttl carry no expiry")
	require.NotNil(t, claims.IssuedAt)

	_, err = VerifyJWT(tokenString, "wrong_secret")
	require.Error(t, err)
	require.ErrorIs(t, err, jwt.ErrSignatureInvalid)
}

func TestGenerateJWTWithTTL(t *testing.T) {
	secret := "ttl_secret"
	userID := uuid.New()

	tokenString, err := GenerateJWT(userID, secret, time.Hour)
	require.NoError(t, err)

	claims, err := VerifyJWT(tokenString, secret)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)

	claimsExpired := &AppClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Minute)),
		},
	}
	tokenExpired := jwt.NewWithClaims(jwt.SigningMethodHS256, claimsExpired)
	tokenStringExpired, err := tokenExpired.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = VerifyJWT(tokenStringExpired, secret)
	require.Error(t, err)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestUserIDFromToken(t *testing.T) {
	secret := "gate_secret"
	alice := uuid.New()
	bob := uuid.New()

	aliceToken, err := GenerateJWT(alice, secret, 0)
	require.NoError(t, err)
	bobToken, err := GenerateJWT(bob, secret, 0)
	require.NoError(t, err)

	got, err := UserIDFromToken(aliceToken, secret)
	require.NoError(t, err)
	require.Equal(t, alice, got)

	got, err = UserIDFromToken(bobToken, secret)
	require.NoError(t, err)
	require.Equal(t, bob, got)
	require.NotEqual(t, alice, got)

	t.Run("malformed", func(t *testing.T) {
		_, err := UserIDFromToken("not.a.jwt", secret)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("foreign signature", func(t *testing.T) {
		foreign, err := GenerateJWT(alice, "someone_elses_secret", 0)
		require.NoError(t, err)

		_, err = UserIDFromToken(foreign, secret)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("none algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &AppClaims{UserID: alice.String()})
		tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = UserIDFromToken(tokenString, secret)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing id", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": alice.String()})
		tokenString, err := token.SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = UserIDFromToken(tokenString, secret)
		require.ErrorIs(t, err, ErrInvalidTokenStructure)
		require.NotErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("id is not a user identifier", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": "12345"})
		tokenString, err := token.SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = UserIDFromToken(tokenString, secret)
		require.ErrorIs(t, err, ErrInvalidTokenStructure)
	})

	t.Run("id is not a string", func(t *testing.T) {
		for _, id := range []interface{}{42, true, map[string]interface{}{"id": alice.String()}} {
			token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": id})
			tokenString, err := token.SignedString([]byte(secret))
			require.NoError(t, err)

			_, err = UserIDFromToken(tokenString, secret)
			require.ErrorIs(t, err, ErrInvalidTokenStructure, "id %v", id)
			require.NotErrorIs(t, err, ErrInvalidToken)
		}
	})
}
