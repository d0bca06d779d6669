package share

import (
	"context"
	"errors"
	"fmt"

	"brain-api/internal/apperr"
	"brain-api/internal/database"
	"brain-api/internal/models"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

//go:generate mockgen -destination=../mocks/mock_share_store.go -package=mocks brain-api/internal/share Store

const (
	// HashAlphabet and HashLength define the public share hash. They are not
	// chosen for unguessability.
	HashAlphabet = "erdctfbghujmnxvy"
	HashLength   = 10

	maxHashAttempts = 5
)

type Store interface {
	GetShareLinkByUserID(ctx context.Context, userID uuid.UUID) (*models.ShareLink, error)
	GetShareLinkByHash(ctx context.Context, hash string) (*models.ShareLink, error)
	CreateShareLink(ctx context.Context, userID uuid.UUID, hash string) (*models.ShareLink, error)
	DeleteShareLinkByUserID(ctx context.Context, userID uuid.UUID) (bool, error)
	ListContentByUser(ctx context.Context, userID uuid.UUID) ([]models.Content, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Snapshot is the public, unauthenticated view of a user's content.
type Snapshot struct {
	Username string           `json:"username"`
	Content  []models.Content `json:"content"`
}

type Registry struct {
	store   Store
	newHash func() string
}

func NewRegistry(store Store) (*Registry, error) {
	generate, err := nanoid.CustomASCII(HashAlphabet, HashLength)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize share hash generator: %w", err)
	}
	return NewRegistryWithGenerator(store, generate), nil
}

func NewRegistryWithGenerator(store Store, newHash func() string) *Registry {
	return &Registry{store: store, newHash: newHash}
}

// Enable returns the caller's share hash, creating one if none exists. A
// repeated call returns the same hash. When two calls race, the unique
// index on user_id picks the winner and the loser returns the winner's hash.
func (r *Registry) Enable(ctx context.Context, userID uuid.UUID) (string, error) {
	existing, err := r.store.GetShareLinkByUserID(ctx, userID)
	if err != nil {
		return "", apperr.Internal("error enabling share link", err)
	}
	if existing != nil {
		return existing.Hash, nil
	}

	for attempt := 0; attempt < maxHashAttempts; attempt++ {
		link, err := r.store.CreateShareLink(ctx, userID, r.newHash())
		switch {
		case err == nil:
			linksCreated.Inc()
			return link.Hash, nil
		case errors.Is(err, database.ErrHashTaken):
			continue
		case errors.Is(err, database.ErrShareLinkExists):
			winner, err := r.store.GetShareLinkByUserID(ctx, userID)
			if err != nil {
				return "", apperr.Internal("error enabling share link", err)
			}
			if winner == nil {
				// Disabled again between the insert and the re-read.
				continue
			}
			return winner.Hash, nil
		default:
			return "", apperr.Internal("error enabling share link", err)
		}
	}

	return "", apperr.Internal("error enabling share link",
		fmt.Errorf("failed to generate a unique share hash after %d attempts", maxHashAttempts))
}

// Disable removes the caller's share link. Having none is not an error.
func (r *Registry) Disable(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.store.DeleteShareLinkByUserID(ctx, userID); err != nil {
		return apperr.Internal("error removing share link", err)
	}
	return nil
}

// Resolve maps a public hash to the owner's username and full content list.
func (r *Registry) Resolve(ctx context.Context, hash string) (*Snapshot, error) {
	link, err := r.store.GetShareLinkByHash(ctx, hash)
	if err != nil {
		return nil, apperr.Internal("error resolving share link", err)
	}
	if link == nil {
		return nil, apperr.NotFound("Invalid share link")
	}

	content, err := r.store.ListContentByUser(ctx, link.UserID)
	if err != nil {
		return nil, apperr.Internal("error resolving share link", err)
	}
	if content == nil {
		content = []models.Content{}
	}

	user, err := r.store.GetUserByID(ctx, link.UserID)
	if err != nil {
		return nil, apperr.Internal("error resolving share link", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	return &Snapshot{Username: user.Username, Content: content}, nil
}
