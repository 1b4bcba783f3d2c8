package admin

import (
	"testing"

	"agrimart/internal/models"
	"agrimart/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestEnsureAdmin(t *testing.T) {
	t.Run("creates admin when no account exists", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByEmail", "ops@example.com").Return(nil, repositories.ErrUserNotFound)
		users.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

		u, err := EnsureAdmin(users, "ops@example.com", "s3cret!pass", "Ops")

		assert.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, u.Role)
		assert.Equal(t, models.StatusApproved, u.AccountStatus)
		assert.True(t, u.IsActive)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3cret!pass")))
		users.AssertExpectations(t)
	})

	t.Run("second run leaves the existing admin untouched", func(t *testing.T) {
		existing := &models.User{Email: "ops@example.com", Role: models.RoleAdmin}

		users := new(MockUserRepo)
		users.On("GetByEmail", "ops@example.com").Return(existing, nil)

		u, err := EnsureAdmin(users, "ops@example.com", "s3cret!pass", "Ops")

		assert.NoError(t, err)
		assert.Same(t, existing, u)
		users.AssertNotCalled(t, "Create", mock.Anything)
		users.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("promotes an existing non-admin account", func(t *testing.T) {
		existing := &models.User{Email: "ops@example.com", Role: models.RoleBuyer, AccountStatus: models.StatusSuspended}

		users := new(MockUserRepo)
		users.On("GetByEmail", "ops@example.com").Return(existing, nil)
		users.On("Update", existing).Return(nil)

		u, err := EnsureAdmin(users, "ops@example.com", "s3cret!pass", "Ops")

		assert.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, u.Role)
		assert.Equal(t, models.StatusApproved, u.AccountStatus)
		assert.True(t, u.IsActive)
		users.AssertExpectations(t)
	})

	t.Run("missing credentials are rejected", func(t *testing.T) {
		_, err := EnsureAdmin(new(MockUserRepo), "", "pass", "Ops")
		assert.Error(t, err)

		_, err = EnsureAdmin(new(MockUserRepo), "ops@example.com", "", "Ops")
		assert.Error(t, err)
	})
}
