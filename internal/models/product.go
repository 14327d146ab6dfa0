package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies a product on the menu.
type Category string

const (
	CategoryDrink   Category = "drink"
	CategoryDessert Category = "dessert"
	CategoryFood    Category = "food"
)

// Valid reports whether the category is one of the known menu categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryDrink, CategoryDessert, CategoryFood:
		return true
	}
	return false
}

// ProductStatus distinguishes a sellable product from one that is
// temporarily out of stock or retired from the catalog. Retired products
// are never physically removed.
type ProductStatus string

const (
	ProductActive     ProductStatus = "active"
	ProductOutOfStock ProductStatus = "out_of_stock"
	ProductRetired    ProductStatus = "retired"
)

// Valid reports whether the status is a known product status.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductActive, ProductOutOfStock, ProductRetired:
		return true
	}
	return false
}

// Product represents a purchasable item in the café catalog.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string          `json:"name" validate:"required,min=2,max=100"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Stock       int             `json:"stock" validate:"gte=0"`
	ImageURL    string          `json:"image_url,omitempty"`
	ImageKey    string          `json:"-"` // blob store key, internal only
	Status      ProductStatus   `json:"status" gorm:"type:varchar(16);default:active"`
	Category    Category        `json:"category" gorm:"type:varchar(16)" validate:"required"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Available reports whether the product should appear on the storefront menu.
func (p *Product) Available() bool {
	return p.Status == ProductActive
}

// ProductUpdate is an explicit partial update: nil fields are left
// untouched.
type ProductUpdate struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=500"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Stock       *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Status      *ProductStatus   `json:"status,omitempty"`
	Category    *Category        `json:"category,omitempty"`
}
