package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email         string        `gorm:"uniqueIndex;not null" json:"email"`
	Password      string        `gorm:"not null" json:"-"`
	FirstName     string        `gorm:"not null" json:"first_name"`
	LastName      string        `json:"last_name"`
	Phone         string        `json:"phone"`
	Role          string        `gorm:"default:'buyer'" json:"role"`
	AccountStatus AccountStatus `gorm:"default:'approved'" json:"account_status"`
	IsActive      bool          `gorm:"default:true" json:"is_active"`
	BlockedAt     *time.Time    `json:"blocked_at,omitempty"`
	BlockedReason *string       `json:"blocked_reason,omitempty"`
	TokenVersion  int           `gorm:"default:1" json:"-"`
	LastLoginAt   time.Time     `json:"last_login_at"`
}

// CanLogin reports whether the account may start a session. Blocked and
// suspended accounts are refused at login rather than at every route.
func (u *User) CanLogin() bool {
	return u.IsActive && u.AccountStatus != StatusBlocked && u.AccountStatus != StatusSuspended
}

type RegisterUserInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// UpdateUserStatusInput is the body of PUT /api/admin/users.
type UpdateUserStatusInput struct {
	UserID        uint          `json:"userId"`
	AccountStatus AccountStatus `json:"accountStatus"`
	IsActive      *bool         `json:"isActive"`
	BlockedReason string        `json:"blockedReason"`
}
