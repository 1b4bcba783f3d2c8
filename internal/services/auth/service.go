// Package auth implements registration, login and token lifecycle.
package auth

import (
	"errors"
	"log"
	"time"

	apperrors "agrimart/internal/errors"
	"agrimart/internal/models"
	"agrimart/internal/repositories"
	"agrimart/internal/utils"
	"agrimart/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password must be at least 8 characters and contain a special character")
)

type Service interface {
	Register(input *models.RegisterUserInput) (*models.User, error)
	Login(email, password string) (*models.User, string, string, error)
	RefreshTokens(refreshToken string) (string, string, error)
	Logout(userID uint) error
	ChangePassword(userID uint, oldPassword, newPassword string) error
}

type service struct {
	userRepo repositories.UserRepository
}

func NewService(userRepo repositories.UserRepository) Service {
	return &service{userRepo: userRepo}
}

func (s *service) Register(input *models.RegisterUserInput) (*models.User, error) {
	v := validation.New()
	v.Check(validation.ValidEmail(input.Email), "email", "invalid email address")
	v.Check(input.FirstName != "", "first_name", "first name is required")
	v.Check(validation.ValidPhone(input.Phone), "phone", "invalid phone number")
	v.Check(validation.ValidPassword(input.Password), "password", ErrWeakPassword.Error())
	if !v.Valid() {
		return nil, v.Errors[0]
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &models.User{
		Email:         input.Email,
		Password:      string(hashed),
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Phone:         input.Phone,
		Role:          models.RoleBuyer,
		AccountStatus: models.StatusApproved,
		IsActive:      true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) Login(email, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("login failed: bad password for user %d", user.ID)
		return nil, "", "", ErrInvalidCredentials
	}

	// Status gate: blocked and suspended accounts are refused before any
	// token is issued.
	switch {
	case user.AccountStatus == models.StatusBlocked:
		return nil, "", "", apperrors.ErrAccountBlocked
	case user.AccountStatus == models.StatusSuspended:
		return nil, "", "", apperrors.ErrAccountSuspended
	case !user.IsActive:
		return nil, "", "", apperrors.ErrAccountSuspended
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&models.UserClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
		Permissions:  models.GetDefaultPermissions(user.Role),
	})
	if err != nil {
		log.Printf("error generating tokens: %v", err)
		return nil, "", "", errors.New("error generating tokens")
	}

	user.LastLoginAt = time.Now()
	if err := s.userRepo.Update(user); err != nil {
		log.Printf("failed to record last login for user %d: %v", user.ID, err)
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) RefreshTokens(refreshToken string) (string, string, error) {
	_, claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", "", errors.New("invalid refresh token")
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return "", "", errors.New("user not found")
	}

	if user.TokenVersion != claims.TokenVersion {
		return "", "", errors.New("token version mismatch")
	}
	if !user.CanLogin() {
		return "", "", apperrors.ErrAccountBlocked
	}

	return utils.GenerateTokens(&models.UserClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
		Permissions:  models.GetDefaultPermissions(user.Role),
	})
}

func (s *service) Logout(userID uint) error {
	return s.userRepo.IncrementTokenVersion(userID)
}

func (s *service) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return errors.New("failed to get user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return errors.New("invalid old password")
	}

	if !validation.ValidPassword(newPassword) {
		return ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}

	user.Password = string(hashed)
	user.TokenVersion++ // invalidate existing tokens

	if err := s.userRepo.Update(user); err != nil {
		return errors.New("failed to update password")
	}
	return nil
}
