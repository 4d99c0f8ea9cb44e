package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/inkwell-blog/inkwell/internal/domain"
	"github.com/inkwell-blog/inkwell/internal/repository"
)

// --- in-memory fakes implementing the repository interfaces ---

type memUserRepo struct {
	users       map[uuid.UUID]*domain.User
	updateCalls int
	err         error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	if r.err != nil {
		return r.err
	}
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
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Email == email })
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.find(func(u *domain.User) bool { return u.Username == username })
}

func (r *memUserRepo) find(match func(*domain.User) bool) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if match(u) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.updateCalls++
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	for _, other := range r.users {
		if other.ID == id {
			continue
		}
		if v, ok := fields["email"]; ok && other.Email == v {
			return nil, repository.ErrDuplicateEmail
		}
		if v, ok := fields["username"]; ok && other.Username == v {
			return nil, repository.ErrDuplicateUsername
		}
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
	if r.err != nil {
		return nil, r.err
	}
	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

type edge struct {
	follower uuid.UUID
	followee uuid.UUID
}

type memFollowRepo struct {
	edges map[edge]bool
	err   error
}

func newMemFollowRepo() *memFollowRepo {
	return &memFollowRepo{edges: make(map[edge]bool)}
}

func (r *memFollowRepo) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	r.edges[edge{followerID, followeeID}] = true
	return nil
}

func (r *memFollowRepo) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	delete(r.edges, edge{followerID, followeeID})
	return nil
}

func (r *memFollowRepo) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	return r.edges[edge{followerID, followeeID}], r.err
}

func (r *memFollowRepo) Followers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if r.err != nil {
		return nil, r.err
	}
	var ids []uuid.UUID
	for e := range r.edges {
		if e.followee == userID {
			ids = append(ids, e.follower)
		}
	}
	return ids, nil
}

func (r *memFollowRepo) Following(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if r.err != nil {
		return nil, r.err
	}
	var ids []uuid.UUID
	for e := range r.edges {
		if e.follower == userID {
			ids = append(ids, e.followee)
		}
	}
	return ids, nil
}

type memPostRepo struct {
	posts []domain.Post
	likes map[uuid.UUID][]uuid.UUID // user -> liked post ids
	err   error
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{likes: make(map[uuid.UUID][]uuid.UUID)}
}

func (r *memPostRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID, publicOnly bool) ([]domain.Post, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.Post
	for _, p := range r.posts {
		if p.AuthorID != authorID {
			continue
		}
		if publicOnly && p.Status != domain.PostPublic {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memPostRepo) ListLikedBy(ctx context.Context, userID uuid.UUID, publicOnly bool) ([]domain.Post, error) {
	if r.err != nil {
		return nil, r.err
	}
	liked := make(map[uuid.UUID]bool)
	for _, id := range r.likes[userID] {
		liked[id] = true
	}
	var out []domain.Post
	for _, p := range r.posts {
		if !liked[p.ID] {
			continue
		}
		if publicOnly && p.Status != domain.PostPublic {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}
