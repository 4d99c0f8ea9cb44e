package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/inkwell-blog/inkwell/internal/domain"
	"github.com/inkwell-blog/inkwell/internal/repository"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow adds the edge between follower and target. Following twice is a
// no-op; following yourself is rejected.
func (s *FollowService) Follow(ctx context.Context, followerID, targetID uuid.UUID) (*domain.User, error) {
	if followerID == targetID {
		return nil, ErrSelfFollow
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	if err := s.followRepo.Follow(ctx, followerID, targetID); err != nil {
		return nil, fmt.Errorf("adding follow edge: %w", err)
	}

	return s.userRepo.GetByID(ctx, targetID)
}

// Unfollow removes the edge. Unfollowing someone you don't follow is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID uuid.UUID) (*domain.User, error) {
	if followerID == targetID {
		return nil, ErrSelfFollow
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	if err := s.followRepo.Unfollow(ctx, followerID, targetID); err != nil {
		return nil, fmt.Errorf("removing follow edge: %w", err)
	}

	return s.userRepo.GetByID(ctx, targetID)
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, targetID uuid.UUID) (bool, error) {
	return s.followRepo.IsFollowing(ctx, followerID, targetID)
}

func (s *FollowService) Followers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return s.followRepo.Followers(ctx, userID)
}

func (s *FollowService) Following(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return s.followRepo.Following(ctx, userID)
}
