package account

import (
	"context"
	"errors"
	"time"

	"brain-api/internal/apperr"
	"brain-api/internal/auth"
	"brain-api/internal/database"
	"brain-api/internal/models"
)

//go:generate mockgen -destination=../mocks/mock_user_store.go -package=mocks brain-api/internal/account UserStore

// MsgIncorrectCredentials is the sign-in failure for a known user with a
// wrong password. Clients read it from the "message" key.
const MsgIncorrectCredentials = "Incorrect credentials"

type UserStore interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error)
}

type Service struct {
	users    UserStore
	secret   string
	tokenTTL time.Duration
}

func NewService(users UserStore, secret string, tokenTTL time.Duration) *Service {
	return &Service{
		users:    users,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Signup validates the credentials before touching storage, then creates
// the user. A taken username is a conflict whether the pre-check or the
// unique index catches it.
func (s *Service) Signup(ctx context.Context, username, password string) (*models.User, error) {
	if issues := auth.ValidateCredentials(username, password); len(issues) > 0 {
		return nil, apperr.Validation("incorrect format", issues)
	}

	existing, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, apperr.Internal("error creating user", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("user already exist")
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal("error creating user", err)
	}

	user, err := s.users.CreateUser(ctx, username, hashedPassword)
	if err != nil {
		if errors.Is(err, database.ErrUsernameTaken) {
			return nil, apperr.Conflict("user already exist")
		}
		return nil, apperr.Internal("error creating user", err)
	}

	return user, nil
}

// Signin returns a signed token whose only identity claim is the user id.
func (s *Service) Signin(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return "", apperr.Internal("error signing in", err)
	}
	if user == nil || user.PasswordHash == "" {
		return "", apperr.Auth("user does not exist")
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return "", apperr.Auth(MsgIncorrectCredentials)
	}

	token, err := auth.GenerateJWT(user.ID, s.secret, s.tokenTTL)
	if err != nil {
		return "", apperr.Internal("error signing in", err)
	}

	return token, nil
}
