package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser_HashesPasswordAndStripsHashFromResult(t *testing.T) {
	repo := &stubUserRepository{}
	svc := NewUserService(repo, nil)

	created, err := svc.CreateUser(CreateUserRequest{
		Name:     "Reception One",
		Email:    "reception@lab.test",
		Password: "plain-password",
		RoleID:   2,
	})

	require.NoError(t, err)
	assert.Empty(t, created.PasswordHash)
	assert.True(t, created.IsActive)

	// The stored value is a bcrypt hash of the plaintext, never the plaintext.
	assert.NotEqual(t, "plain-password", repo.hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.hash), []byte("plain-password")))

	body, err := json.Marshal(created)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), repo.hash)
}

func TestCreateUser_RejectsMissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  CreateUserRequest
	}{
		{
			name: "blank name",
			req:  CreateUserRequest{Name: " ", Email: "reception@lab.test", Password: "pw", RoleID: 2},
		},
		{
			name: "malformed email",
			req:  CreateUserRequest{Name: "Reception One", Email: "not-an-email", Password: "pw", RoleID: 2},
		},
		{
			name: "missing password",
			req:  CreateUserRequest{Name: "Reception One", Email: "reception@lab.test", RoleID: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewUserService(&stubUserRepository{}, nil)

			_, err := svc.CreateUser(tt.req)

			assert.ErrorIs(t, err, ErrUserValidation)
		})
	}
}

func TestUpdateUser_OmittedPasswordKeepsStoredHash(t *testing.T) {
	repo := newStubRepoWithAccount(t, "original", true)
	originalHash := repo.hash
	svc := NewUserService(repo, nil)

	updated, err := svc.UpdateUser(1, UpdateUserRequest{
		Name:   "Admin Renamed",
		Email:  "admin@lab.test",
		RoleID: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, "Admin Renamed", updated.Name)
	assert.Empty(t, updated.PasswordHash)
	assert.Equal(t, originalHash, repo.hash)
}

func TestUpdateUser_SuppliedPasswordIsRehashed(t *testing.T) {
	repo := newStubRepoWithAccount(t, "original", true)
	originalHash := repo.hash
	svc := NewUserService(repo, nil)

	newPassword := "rotated"
	_, err := svc.UpdateUser(1, UpdateUserRequest{
		Name:     "Admin One",
		Email:    "admin@lab.test",
		Password: &newPassword,
		RoleID:   1,
	})

	require.NoError(t, err)
	assert.NotEqual(t, originalHash, repo.hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.hash), []byte("rotated")))
}

func TestUpdateUser_EmptySuppliedPasswordRejected(t *testing.T) {
	repo := newStubRepoWithAccount(t, "original", true)
	svc := NewUserService(repo, nil)

	empty := ""
	_, err := svc.UpdateUser(1, UpdateUserRequest{
		Name:     "Admin One",
		Email:    "admin@lab.test",
		Password: &empty,
		RoleID:   1,
	})

	assert.ErrorIs(t, err, ErrUserValidation)
}

func TestUpdateUser_UnknownUser(t *testing.T) {
	svc := NewUserService(&stubUserRepository{}, nil)

	_, err := svc.UpdateUser(5, UpdateUserRequest{
		Name:   "Ghost",
		Email:  "ghost@lab.test",
		RoleID: 1,
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}
