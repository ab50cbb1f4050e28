package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivsegv/campussetu/internal/common"
	"github.com/shivsegv/campussetu/internal/domain/model"
	"github.com/shivsegv/campussetu/internal/domain/repository"
	"github.com/shivsegv/campussetu/internal/platform/store"
)

func newAuthService() *AuthService {
	return NewAuthService(repository.NewStoreUserRepository(store.NewMemory()))
}

func TestSignupAutoLogsIn(t *testing.T) {
	ctx := context.Background()
	s := newAuthService()

	resp, err := s.Signup(ctx, SignupRequest{
		Name:     "Neha Gupta",
		Email:    "neha@campus.edu",
		Password: "s3cret",
		Role:     model.RoleStudent,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token, "signup must return a usable session token")
	assert.NotZero(t, resp.User.ID)
	assert.Empty(t, resp.User.HashedPassword)
	assert.Equal(t, model.RoleStudent, resp.User.Role)
}

func TestSignupDuplicateEmailIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := newAuthService()

	_, err := s.Signup(ctx, SignupRequest{Name: "A", Email: "A@B.com", Password: "pw", Role: model.RoleStudent})
	require.NoError(t, err)

	_, err = s.Signup(ctx, SignupRequest{Name: "B", Email: "a@b.com", Password: "pw", Role: model.RoleStudent})
	assert.True(t, errors.Is(err, common.ErrDuplicateEmail))
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	s := newAuthService()
	_, err := s.Signup(context.Background(), SignupRequest{Name: "X", Email: "x@y.com", Password: "pw", Role: "superuser"})
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestLoginRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newAuthService()

	_, err := s.Signup(ctx, SignupRequest{Name: "Neha", Email: "neha@campus.edu", Password: "s3cret", Role: model.RoleStudent})
	require.NoError(t, err)

	// Email matching is case-insensitive; the password is exact.
	resp, err := s.Login(ctx, LoginRequest{Email: "NEHA@Campus.EDU", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "Neha", resp.User.Name)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	s := newAuthService()

	_, err := s.Signup(ctx, SignupRequest{Name: "Neha", Email: "neha@campus.edu", Password: "s3cret", Role: model.RoleStudent})
	require.NoError(t, err)

	_, err = s.Login(ctx, LoginRequest{Email: "nobody@x.com", Password: "whatever"})
	assert.True(t, errors.Is(err, common.ErrInvalidCredentials))

	_, err = s.Login(ctx, LoginRequest{Email: "neha@campus.edu", Password: "wrong"})
	assert.True(t, errors.Is(err, common.ErrInvalidCredentials))
}

func TestUpdateProfilePreservesUnspecifiedFields(t *testing.T) {
	ctx := context.Background()
	s := newAuthService()

	resp, err := s.Signup(ctx, SignupRequest{Name: "Neha", Email: "neha@campus.edu", Password: "pw", Role: model.RoleStudent})
	require.NoError(t, err)

	cgpa := 8.5
	skills := []string{"X"}
	_, err = s.UpdateProfile(ctx, resp.User.ID, UpdateProfileRequest{
		Profile: model.UserProfilePatch{CGPA: &cgpa, Skills: &skills},
	})
	require.NoError(t, err)

	// Patch only the skills; cgpa must survive the merge.
	newSkills := []string{"Y"}
	user, err := s.UpdateProfile(ctx, resp.User.ID, UpdateProfileRequest{
		Profile: model.UserProfilePatch{Skills: &newSkills},
	})
	require.NoError(t, err)
	require.NotNil(t, user.Profile.CGPA)
	assert.Equal(t, 8.5, *user.Profile.CGPA)
	assert.Equal(t, []string{"Y"}, user.Profile.Skills)
}

func TestUpdateProfileReplacesName(t *testing.T) {
	ctx := context.Background()
	s := newAuthService()

	resp, err := s.Signup(ctx, SignupRequest{Name: "Neha", Email: "neha@campus.edu", Password: "pw", Role: model.RoleStudent})
	require.NoError(t, err)

	user, err := s.UpdateProfile(ctx, resp.User.ID, UpdateProfileRequest{Name: "Neha G."})
	require.NoError(t, err)
	assert.Equal(t, "Neha G.", user.Name)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	s := newAuthService()
	_, err := s.UpdateProfile(context.Background(), 99999, UpdateProfileRequest{Name: "x"})
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
