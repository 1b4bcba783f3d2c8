package models

import "gorm.io/gorm"

// Address is a buyer delivery address. At most one address per user may
// have IsDefault set; the repository enforces this inside a transaction.
type Address struct {
	gorm.Model
	UserID     uint   `gorm:"index;not null" json:"user_id"`
	Label      string `json:"label"`
	Street     string `gorm:"not null" json:"street"`
	City       string `gorm:"not null" json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	IsDefault  bool   `gorm:"default:false" json:"is_default"`
}

type AddressInput struct {
	Label      string `json:"label"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	IsDefault  bool   `json:"is_default"`
}
