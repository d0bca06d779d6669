package database

import (
	"context"
	"fmt"

	"brain-api/internal/models"

	"github.com/google/uuid"
)

type CreateContentParams struct {
	Title  string
	Link   string
	Type   models.ContentType
	UserID uuid.UUID
}

// CreateContent always stores an empty tag list. The type column's CHECK
// constraint is the only validation of Type.
func (q *Queries) CreateContent(ctx context.Context, arg CreateContentParams) (*models.Content, error) {
	query := `
		INSERT INTO contents (title, link, tags, type, user_id)
		VALUES ($1, $2, '{}', $3, $4)
		RETURNING id, title, link, tags, type, user_id, created_at
	`
	var content models.Content
	err := q.db.QueryRow(ctx, query, arg.Title, arg.Link, string(arg.Type), arg.UserID).Scan(
		&content.ID,
		&content.Title,
		&content.Link,
		&content.Tags,
		&content.Type,
		&content.UserID,
		&content.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert content: %w", err)
	}
	if content.Tags == nil {
		content.Tags = []string{}
	}

	return &content, nil
}

// ListOwnedContent returns the owner's items with userId expanded to the
// owner's username through an explicit join.
func (q *Queries) ListOwnedContent(ctx context.Context, ownerID uuid.UUID) ([]models.OwnedContent, error) {
	query := `
		SELECT
			c.id, c.title, c.link, c.tags, c.type, c.created_at,
			u.id, u.username
		FROM contents c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.user_id = $1
		ORDER BY c.created_at, c.id
	`
	rows, err := q.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.OwnedContent
	for rows.Next() {
		var item models.OwnedContent
		var ownerRowID *uuid.UUID
		var ownerUsername *string
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Link,
			&item.Tags,
			&item.Type,
			&item.CreatedAt,
			&ownerRowID,
			&ownerUsername,
		)
		if err != nil {
			return nil, err
		}
		if item.Tags == nil {
			item.Tags = []string{}
		}
		if ownerRowID != nil && ownerUsername != nil {
			item.Owner = &models.Owner{ID: *ownerRowID, Username: *ownerUsername}
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if items == nil {
		return []models.OwnedContent{}, nil
	}

	return items, nil
}

func (q *Queries) ListContentByUser(ctx context.Context, userID uuid.UUID) ([]models.Content, error) {
	query := `
		SELECT id, title, link, tags, type, user_id, created_at
		FROM contents
		WHERE user_id = $1
		ORDER BY created_at, id
	`
	rows, err := q.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Content
	for rows.Next() {
		var item models.Content
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Link,
			&item.Tags,
			&item.Type,
			&item.UserID,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if item.Tags == nil {
			item.Tags = []string{}
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if items == nil {
		return []models.Content{}, nil
	}

	return items, nil
}

func (q *Queries) DeleteContentByID(ctx context.Context, ownerID uuid.UUID, contentID uuid.UUID) (int64, error) {
	query := `DELETE FROM contents WHERE id = $1 AND user_id = $2`
	res, err := q.db.Exec(ctx, query, contentID, ownerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}
