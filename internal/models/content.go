package models

import (
	"time"

	"github.com/google/uuid"
)

type ContentType string

const (
	ContentTypeDocument ContentType = "document"
	ContentTypeTweet    ContentType = "tweet"
	ContentTypeVideo    ContentType = "video"
	ContentTypeLink     ContentType = "link"
)

// Content is a stored item as it appears in a public share snapshot, with
// the owner referenced by id only.
type Content struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	Link      string      `json:"link"`
	Tags      []string    `json:"tags"`
	Type      ContentType `json:"type"`
	UserID    uuid.UUID   `json:"userId"`
	CreatedAt time.Time   `json:"createdAt"`
}

type Owner struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// OwnedContent is the owner's own listing: userId is expanded to the owner
// projection, or null when the owning user row no longer exists.
type OwnedContent struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	Link      string      `json:"link"`
	Tags      []string    `json:"tags"`
	Type      ContentType `json:"type"`
	Owner     *Owner      `json:"userId"`
	CreatedAt time.Time   `json:"createdAt"`
}
