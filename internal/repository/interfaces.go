package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/inkwell-blog/inkwell/internal/domain"
)

// Duplicate errors are raised by the store's unique constraints, never by a
// check-then-insert in application code.
var (
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateUsername = errors.New("username already exists")
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// UpdateFields applies the given column/value pairs. Callers are
	// responsible for whitelisting; column names must never come from
	// user input.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]string) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
}

type FollowRepository interface {
	// Follow inserts the edge and bumps both counters in one transaction.
	// Inserting an existing edge is a no-op.
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) error
	// Unfollow removes the edge and decrements both counters in one
	// transaction. Removing a missing edge is a no-op.
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error
	IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	Followers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	Following(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type PostRepository interface {
	ListByAuthor(ctx context.Context, authorID uuid.UUID, publicOnly bool) ([]domain.Post, error)
	ListLikedBy(ctx context.Context, userID uuid.UUID, publicOnly bool) ([]domain.Post, error)
}
