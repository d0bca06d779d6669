package database

import (
	"context"
	"errors"
	"fmt"

	"brain-api/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateShareLink maps the two unique constraints on links to
// ErrShareLinkExists (user already has a link) and ErrHashTaken.
func (q *Queries) CreateShareLink(ctx context.Context, userID uuid.UUID, hash string) (*models.ShareLink, error) {
	query := `
		INSERT INTO links (user_id, hash)
		VALUES ($1, $2)
		RETURNING id, user_id, hash, created_at
	`
	link, err := q.scanShareLink(q.db.QueryRow(ctx, query, userID, hash))
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			switch constraint {
			case linksUserIDKey:
				return nil, ErrShareLinkExists
			case linksHashKey:
				return nil, ErrHashTaken
			}
		}
		return nil, fmt.Errorf("insert share link: %w", err)
	}

	return link, nil
}

func (q *Queries) GetShareLinkByUserID(ctx context.Context, userID uuid.UUID) (*models.ShareLink, error) {
	query := `
		SELECT id, user_id, hash, created_at
		FROM links
		WHERE user_id = $1
	`
	return q.findShareLink(q.db.QueryRow(ctx, query, userID))
}

func (q *Queries) GetShareLinkByHash(ctx context.Context, hash string) (*models.ShareLink, error) {
	query := `
		SELECT id, user_id, hash, created_at
		FROM links
		WHERE hash = $1
	`
	return q.findShareLink(q.db.QueryRow(ctx, query, hash))
}

func (q *Queries) DeleteShareLinkByUserID(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM links WHERE user_id = $1`
	res, err := q.db.Exec(ctx, query, userID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (q *Queries) findShareLink(row pgx.Row) (*models.ShareLink, error) {
	link, err := q.scanShareLink(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return link, nil
}

func (q *Queries) scanShareLink(row pgx.Row) (*models.ShareLink, error) {
	var link models.ShareLink
	err := row.Scan(
		&link.ID,
		&link.UserID,
		&link.Hash,
		&link.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &link, nil
}
