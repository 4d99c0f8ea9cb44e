package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/inkwell-blog/inkwell/internal/domain"
	"github.com/inkwell-blog/inkwell/internal/repository"
)

var ErrUnknownField = errors.New("invalid update property")

// allowedProfileFields maps form field names to their user columns. Anything
// outside this set is rejected, not silently dropped.
var allowedProfileFields = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"userName":  "username",
	"email":     "email",
	"password":  "password_hash",
}

type ProfileService struct {
	userRepo repository.UserRepository
}

func NewProfileService(userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// Update applies whitelisted field updates to the user's own record. The
// password field is re-hashed before it touches the store.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, fields map[string]string) (*domain.User, error) {
	columns := make(map[string]string, len(fields))
	for name, value := range fields {
		col, ok := allowedProfileFields[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}

		if name == "password" {
			hash, err := hashPassword(value)
			if err != nil {
				return nil, fmt.Errorf("hashing password: %w", err)
			}
			value = hash
		}
		columns[col] = value
	}

	if len(columns) == 0 {
		return s.userRepo.GetByID(ctx, userID)
	}

	user, err := s.userRepo.UpdateFields(ctx, userID, columns)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		case errors.Is(err, repository.ErrDuplicateUsername):
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}
