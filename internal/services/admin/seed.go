package admin

import (
	"errors"

	"agrimart/internal/models"
	"agrimart/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin creates the first administrator account, or promotes an
// existing account with the given email to admin. It is idempotent:
// running it twice leaves one admin with the same role. This replaces
// any runtime hard-coded admin email check; the database role is the
// only authority at request time.
func EnsureAdmin(userRepo repositories.UserRepository, email, password, firstName string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, errors.New("admin email and password are required")
	}

	existing, err := userRepo.GetByEmail(email)
	if err == nil {
		if existing.Role == models.RoleAdmin {
			return existing, nil
		}
		existing.Role = models.RoleAdmin
		existing.AccountStatus = models.StatusApproved
		existing.IsActive = true
		if err := userRepo.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:         email,
		Password:      string(hashed),
		FirstName:     firstName,
		Role:          models.RoleAdmin,
		AccountStatus: models.StatusApproved,
		IsActive:      true,
	}
	if err := userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
