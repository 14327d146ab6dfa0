package models

import "time"

// InventoryItem is a raw supply tracked by the café (coffee beans, milk).
// Inventory is managed independently of orders: placing an order never
// depletes inventory quantities.
type InventoryItem struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name            string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Quantity        int       `json:"quantity" validate:"gte=0"`
	Unit            string    `json:"unit" validate:"required,max=16"`
	MinStock        int       `json:"min_stock" validate:"gte=0"`
	Supplier        string    `json:"supplier" validate:"omitempty,max=100"`
	LastRestockedAt time.Time `json:"last_restocked_at"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BelowMinimum reports whether the item needs restocking.
func (i *InventoryItem) BelowMinimum() bool {
	return i.Quantity < i.MinStock
}

// InventoryUpdate is an explicit partial update for an inventory item.
type InventoryUpdate struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Unit     *string `json:"unit,omitempty" validate:"omitempty,max=16"`
	MinStock *int    `json:"min_stock,omitempty" validate:"omitempty,gte=0"`
	Supplier *string `json:"supplier,omitempty" validate:"omitempty,max=100"`
}
