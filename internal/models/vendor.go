package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Vendor is a seller profile owned by a User. A vendor starts PENDING
// and gains marketplace write access only once an admin approves it.
// The status enum is the single source of truth; there is no separate
// stored "approved" boolean.
type Vendor struct {
	gorm.Model
	UserID          uint           `gorm:"uniqueIndex;not null" json:"user_id"`
	Name            string         `gorm:"not null" json:"name"`
	BusinessType    string         `gorm:"not null" json:"business_type"`
	Description     string         `json:"description"`
	Phone           string         `json:"phone"`
	Address         string         `json:"address"`
	City            string         `json:"city"`
	Region          string         `json:"region"`
	Specialties     pq.StringArray `gorm:"type:text[]" json:"specialties"`
	Certifications  pq.StringArray `gorm:"type:text[]" json:"certifications"`
	Status          AccountStatus  `gorm:"default:'pending'" json:"status"`
	RejectionReason *string        `json:"rejection_reason,omitempty"`
	Metadata        JSON           `gorm:"type:jsonb" json:"metadata,omitempty"`
}

// Approved is derived from the status enum, never stored independently.
func (v *Vendor) Approved() bool {
	return v.Status == StatusApproved
}

type RegisterVendorInput struct {
	Name           string   `json:"name"`
	BusinessType   string   `json:"business_type"`
	Description    string   `json:"description"`
	Phone          string   `json:"phone"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	Region         string   `json:"region"`
	Specialties    []string `json:"specialties"`
	Certifications []string `json:"certifications"`
	Metadata       JSON     `json:"metadata"`
}

type UpdateVendorInput struct {
	Name           *string  `json:"name"`
	BusinessType   *string  `json:"business_type"`
	Description    *string  `json:"description"`
	Phone          *string  `json:"phone"`
	Address        *string  `json:"address"`
	City           *string  `json:"city"`
	Region         *string  `json:"region"`
	Specialties    []string `json:"specialties"`
	Certifications []string `json:"certifications"`
	Metadata       JSON     `json:"metadata"`
}
