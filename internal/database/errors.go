package database

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUsernameTaken   = errors.New("username already exists")
	ErrShareLinkExists = errors.New("share link already exists for this user")
	ErrHashTaken       = errors.New("share hash already in use")
)

const (
	usersUsernameKey = "users_username_key"
	linksUserIDKey   = "links_user_id_key"
	linksHashKey     = "links_hash_key"
)

func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}
