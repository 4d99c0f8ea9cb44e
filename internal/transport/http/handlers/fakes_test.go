package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/inkwell-blog/inkwell/internal/domain"
	"github.com/inkwell-blog/inkwell/internal/repository"
)

type memUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
		if u.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	for col, val := range fields {
		switch col {
		case "first_name":
			u.FirstName = val
		case "last_name":
			u.LastName = val
		case "username":
			u.Username = val
		case "email":
			u.Email = val
		case "password_hash":
			u.PasswordHash = val
		}
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) ListAll(ctx context.Context) ([]domain.User, error) {
	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

type edgeKey struct {
	follower uuid.UUID
	followee uuid.UUID
}

type memFollowRepo struct {
	edges map[edgeKey]bool
}

func newMemFollowRepo() *memFollowRepo {
	return &memFollowRepo{edges: make(map[edgeKey]bool)}
}

func (r *memFollowRepo) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	r.edges[edgeKey{followerID, followeeID}] = true
	return nil
}

func (r *memFollowRepo) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	delete(r.edges, edgeKey{followerID, followeeID})
	return nil
}

func (r *memFollowRepo) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	return r.edges[edgeKey{followerID, followeeID}], nil
}

func (r *memFollowRepo) Followers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for e := range r.edges {
		if e.followee == userID {
			ids = append(ids, e.follower)
		}
	}
	return ids, nil
}

func (r *memFollowRepo) Following(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for e := range r.edges {
		if e.follower == userID {
			ids = append(ids, e.followee)
		}
	}
	return ids, nil
}

type memPostRepo struct{}

func (memPostRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID, publicOnly bool) ([]domain.Post, error) {
	return nil, nil
}

func (memPostRepo) ListLikedBy(ctx context.Context, userID uuid.UUID, publicOnly bool) ([]domain.Post, error) {
	return nil, nil
}
