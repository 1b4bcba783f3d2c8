package models

import "gorm.io/gorm"

const (
	ProductActive   = "active"
	ProductArchived = "archived"
)

type Product struct {
	gorm.Model
	VendorID    uint    `gorm:"index;not null" json:"vendor_id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Category    string  `gorm:"index" json:"category"`
	Unit        string  `json:"unit"` // kg, crate, bunch, litre
	Price       float64 `gorm:"not null" json:"price"`
	Stock       int     `gorm:"default:0" json:"stock"`
	ImageURL    string  `json:"image_url"`
	IsOrganic   bool    `gorm:"default:false" json:"is_organic"`
	Status      string  `gorm:"default:'active'" json:"status"`

	Vendor Vendor `gorm:"foreignKey:VendorID" json:"vendor"`
}

// CreateProductInput is schema-validated on the product creation route.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required,min=2,max=120"`
	Description string  `json:"description" validate:"max=5000"`
	Category    string  `json:"category" validate:"required"`
	Unit        string  `json:"unit" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	IsOrganic   bool    `json:"is_organic"`
}

type UpdateProductInput struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=120"`
	Description *string  `json:"description" validate:"omitempty,max=5000"`
	Category    *string  `json:"category"`
	Unit        *string  `json:"unit"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,url"`
	IsOrganic   *bool    `json:"is_organic"`
}

// ProductFilter carries storefront listing filters.
type ProductFilter struct {
	Category string
	Search   string
	VendorID uint
	Organic  *bool
	MinPrice float64
	MaxPrice float64
}
