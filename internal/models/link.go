package models

import (
	"time"

	"github.com/google/uuid"
)

type ShareLink struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Hash      string    `json:"hash"`
	CreatedAt time.Time `json:"createdAt"`
}
