package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken          = errors.New("invalid token")
	ErrInvalidTokenStructure = errors.New("invalid token structure")
)

// AppClaims carries only the user identifier under "id". The claim is
// decoded as any JSON value so a signed token with a non-string id is a
// structure failure rather than a decoding failure.
type AppClaims struct {
	UserID interface{} `json:"id,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT signs an HS256 token for userID. A zero ttl omits the exp
// claim, so the token stays valid until the secret changes.
func GenerateJWT(userID uuid.UUID, secret string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := &AppClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func VerifyJWT(tokenString, secret string) (*AppClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AppClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*AppClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrInvalidKey
}

// UserIDFromToken verifies tokenString and extracts the caller id. Any
// verification failure is ErrInvalidToken; a verified token without a
// usable id is ErrInvalidTokenStructure.
func UserIDFromToken(tokenString, secret string) (uuid.UUID, error) {
	claims, err := VerifyJWT(tokenString, secret)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInvalidToken, err)
	}

	raw, ok := claims.UserID.(string)
	if !ok || raw == "" {
		return uuid.Nil, ErrInvalidTokenStructure
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInvalidTokenStructure, err)
	}

	return userID, nil
}
