// Package admin implements the back-office mutation operations: vendor
// approval decisions and user account status management. Every caller
// is already behind the AdminRequired gate; this layer enforces the
// status transition rules themselves.
package admin

import (
	"context"
	"time"

	apperrors "agrimart/internal/errors"
	"agrimart/internal/models"
	"agrimart/internal/repositories"
)

type Service interface {
	ApproveVendor(ctx context.Context, vendorID uint) (*models.Vendor, error)
	RejectVendor(ctx context.Context, vendorID uint, reason string) (*models.Vendor, error)
	SetVendorStatus(ctx context.Context, vendorID uint, status models.AccountStatus) (*models.Vendor, error)
	DeleteVendor(ctx context.Context, vendorID uint) error
	ListVendors(ctx context.Context, status models.AccountStatus, offset, limit int) ([]models.Vendor, int64, error)

	UpdateUserStatus(ctx context.Context, input *models.UpdateUserStatusInput) (*models.User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]models.User, int64, error)
	DeleteUser(ctx context.Context, userID uint) error
}

type service struct {
	userRepo   repositories.UserRepository
	vendorRepo repositories.VendorRepository
	now        func() time.Time
}

func NewService(userRepo repositories.UserRepository, vendorRepo repositories.VendorRepository) Service {
	return &service{
		userRepo:   userRepo,
		vendorRepo: vendorRepo,
		now:        time.Now,
	}
}

// ApproveVendor moves the vendor to APPROVED and clears any earlier
// rejection reason.
func (s *service) ApproveVendor(ctx context.Context, vendorID uint) (*models.Vendor, error) {
	return s.transitionVendor(vendorID, models.StatusApproved, nil)
}

// RejectVendor returns the application to PENDING with the reason
// persisted. The closed status set has no terminal rejected state; a
// rejected vendor may reapply and be approved later.
func (s *service) RejectVendor(ctx context.Context, vendorID uint, reason string) (*models.Vendor, error) {
	var reasonPtr *string
	if reason != "" {
		reasonPtr = &reason
	}
	vendor, err := s.vendorRepo.GetByID(vendorID)
	if err != nil {
		return nil, err
	}
	if err := s.vendorRepo.SetStatus(vendorID, models.StatusPending, reasonPtr); err != nil {
		return nil, err
	}
	vendor.Status = models.StatusPending
	vendor.RejectionReason = reasonPtr
	return vendor, nil
}

// SetVendorStatus is the general transition operation behind the
// suspend/unsuspend and block/unblock admin actions.
func (s *service) SetVendorStatus(ctx context.Context, vendorID uint, status models.AccountStatus) (*models.Vendor, error) {
	if !models.ValidStatus(status) {
		return nil, apperrors.ErrInvalidTransition
	}
	return s.transitionVendor(vendorID, status, nil)
}

func (s *service) transitionVendor(vendorID uint, to models.AccountStatus, reason *string) (*models.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(vendorID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(vendor.Status, to) {
		return nil, apperrors.ErrInvalidTransition
	}
	if err := s.vendorRepo.SetStatus(vendorID, to, reason); err != nil {
		return nil, err
	}
	vendor.Status = to
	vendor.RejectionReason = reason
	return vendor, nil
}

// DeleteVendor hard-deletes the vendor; its products are archived in the
// same transaction by the repository.
func (s *service) DeleteVendor(ctx context.Context, vendorID uint) error {
	return s.vendorRepo.DeleteWithProducts(vendorID)
}

func (s *service) ListVendors(ctx context.Context, status models.AccountStatus, offset, limit int) ([]models.Vendor, int64, error) {
	return s.vendorRepo.List(status, offset, limit)
}

// UpdateUserStatus writes the status, active flag and blocked metadata
// in one repository call. Moving to BLOCKED stamps BlockedAt and keeps
// the reason; moving anywhere else clears both so no stale blocked
// metadata survives on an approved account.
func (s *service) UpdateUserStatus(ctx context.Context, input *models.UpdateUserStatusInput) (*models.User, error) {
	if !models.ValidStatus(input.AccountStatus) {
		return nil, apperrors.ErrInvalidTransition
	}

	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(user.AccountStatus, input.AccountStatus) {
		return nil, apperrors.ErrInvalidTransition
	}

	isActive := user.IsActive
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	var blockedAt *time.Time
	var blockedReason *string
	if input.AccountStatus == models.StatusBlocked {
		now := s.now()
		blockedAt = &now
		if input.BlockedReason != "" {
			blockedReason = &input.BlockedReason
		}
		isActive = false
	}

	err = s.userRepo.UpdateStatus(input.UserID, input.AccountStatus, isActive, blockedAt, blockedReason)
	if err != nil {
		return nil, err
	}

	user.AccountStatus = input.AccountStatus
	user.IsActive = isActive
	user.BlockedAt = blockedAt
	user.BlockedReason = blockedReason
	return user, nil
}

func (s *service) ListUsers(ctx context.Context, offset, limit int) ([]models.User, int64, error) {
	return s.userRepo.List(offset, limit)
}

func (s *service) DeleteUser(ctx context.Context, userID uint) error {
	return s.userRepo.Delete(userID)
}
