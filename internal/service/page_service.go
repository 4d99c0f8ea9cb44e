package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/inkwell-blog/inkwell/internal/domain"
	"github.com/inkwell-blog/inkwell/internal/repository"
)

// PageService assembles the read-only page models: a user plus their posts
// and liked posts. Non-owners only ever see Public posts.
type PageService struct {
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

func NewPageService(userRepo repository.UserRepository, postRepo repository.PostRepository, followRepo repository.FollowRepository) *PageService {
	return &PageService{
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
	}
}

type ProfilePage struct {
	User  *domain.User
	Posts []domain.Post
	Liked []domain.Post
}

type AuthorPage struct {
	Author    *domain.User
	Posts     []domain.Post
	Liked     []domain.Post
	Following bool
}

type DashboardPage struct {
	User  *domain.User
	Posts []domain.Post
	Liked []domain.Post
	Users []domain.User
}

func (s *PageService) OwnProfile(ctx context.Context, userID uuid.UUID) (*ProfilePage, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	posts, err := s.postRepo.ListByAuthor(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	liked, err := s.postRepo.ListLikedBy(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("listing liked posts: %w", err)
	}

	return &ProfilePage{User: user, Posts: posts, Liked: liked}, nil
}

// AuthorPage builds another user's page as seen by viewerID. Only Public
// posts are included; likewise for the author's liked posts.
func (s *PageService) AuthorPage(ctx context.Context, viewerID, authorID uuid.UUID) (*AuthorPage, error) {
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	posts, err := s.postRepo.ListByAuthor(ctx, authorID, true)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	liked, err := s.postRepo.ListLikedBy(ctx, authorID, true)
	if err != nil {
		return nil, fmt.Errorf("listing liked posts: %w", err)
	}
	following, err := s.followRepo.IsFollowing(ctx, viewerID, authorID)
	if err != nil {
		return nil, fmt.Errorf("checking follow edge: %w", err)
	}

	return &AuthorPage{Author: author, Posts: posts, Liked: liked, Following: following}, nil
}

func (s *PageService) Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardPage, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	posts, err := s.postRepo.ListByAuthor(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	liked, err := s.postRepo.ListLikedBy(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("listing liked posts: %w", err)
	}
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return &DashboardPage{User: user, Posts: posts, Liked: liked, Users: users}, nil
}
