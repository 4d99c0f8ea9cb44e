package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post statuses. Only Public posts are visible to anyone but the author.
const (
	PostPublic  = "Public"
	PostPrivate = "Private"
)

// Post is owned by the blog subsystem; this service only reads it for
// profile, author and dashboard pages.
type Post struct {
	ID             uuid.UUID `json:"id"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
