package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(repo *memUserRepo) *AuthService {
	return NewAuthService(repo, "test-secret", time.Hour)
}

func registerAlice(t *testing.T, s *AuthService) *AuthResponse {
	t.Helper()
	resp, err := s.Register(context.Background(), RegisterInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Username:  "alice01",
		Email:     "a@x.com",
		Password:  "Abcd123!",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	return resp
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newMemUserRepo()
	s := newAuthService(repo)

	resp := registerAlice(t, s)
	require.NotEmpty(t, resp.AccessToken)

	got, err := s.Login(context.Background(), LoginInput{Email: "a@x.com", Password: "Abcd123!"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, got.User.ID)

	userID, ok := s.ResolveToken(got.AccessToken)
	require.True(t, ok)
	assert.Equal(t, resp.User.ID, userID)
}

func TestLoginFailsUniformly(t *testing.T) {
	repo := newMemUserRepo()
	s := newAuthService(repo)
	registerAlice(t, s)

	_, unknownErr := s.Login(context.Background(), LoginInput{Email: "nobody@x.com", Password: "Abcd123!"})
	_, wrongErr := s.Login(context.Background(), LoginInput{Email: "a@x.com", Password: "wrong"})

	// Unknown email and wrong password are indistinguishable.
	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestRegisterDuplicates(t *testing.T) {
	repo := newMemUserRepo()
	s := newAuthService(repo)
	registerAlice(t, s)

	_, err := s.Register(context.Background(), RegisterInput{
		FirstName: "Bob", LastName: "Jones",
		Username: "alice01", Email: "b@x.com", Password: "Abcd123!",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = s.Register(context.Background(), RegisterInput{
		FirstName: "Bob", LastName: "Jones",
		Username: "bobby01", Email: "a@x.com", Password: "Abcd123!",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestPasswordNeverStoredPlaintext(t *testing.T) {
	repo := newMemUserRepo()
	s := newAuthService(repo)
	resp := registerAlice(t, s)

	stored, err := repo.GetByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotContains(t, stored.PasswordHash, "Abcd123!")
	assert.True(t, verifyPassword("Abcd123!", stored.PasswordHash))

	byEmail, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	byUsername, err := repo.GetByUsername(context.Background(), "alice01")
	require.NoError(t, err)
	assert.Equal(t, byEmail.ID, byUsername.ID)
}

func TestResolveTokenGarbage(t *testing.T) {
	s := newAuthService(newMemUserRepo())

	_, ok := s.ResolveToken("not-a-token")
	assert.False(t, ok)

	_, ok = s.ResolveToken("")
	assert.False(t, ok)
}

func TestResolveTokenExpired(t *testing.T) {
	repo := newMemUserRepo()
	expired := NewAuthService(repo, "test-secret", -time.Minute)
	resp, err := expired.Register(context.Background(), RegisterInput{
		FirstName: "Alice", LastName: "Smith",
		Username: "alice01", Email: "a@x.com", Password: "Abcd123!",
	})
	require.NoError(t, err)

	_, ok := expired.ResolveToken(resp.AccessToken)
	assert.False(t, ok)
}

func TestResolveTokenWrongSecret(t *testing.T) {
	repo := newMemUserRepo()
	s := newAuthService(repo)
	resp := registerAlice(t, s)

	other := NewAuthService(repo, "other-secret", time.Hour)
	id, ok := other.ResolveToken(resp.AccessToken)
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, id)
}
