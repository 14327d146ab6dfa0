package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// CanTransitionTo enforces the order lifecycle: pending -> processing ->
// completed, with cancellation allowed from any non-terminal state.
// Completed and cancelled orders are immutable.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderPending:
		return next == OrderProcessing || next == OrderCancelled
	case OrderProcessing:
		return next == OrderCompleted || next == OrderCancelled
	}
	return false
}

// CustomerInfo is the pickup contact captured at checkout. Everything but
// the notes is required.
type CustomerInfo struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Phone      string `json:"phone" validate:"required,min=7,max=20"`
	Email      string `json:"email" validate:"required,email"`
	PickupTime string `json:"pickup_time" validate:"required"`
	Notes      string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// OrderLine is a snapshot of a cart line at submission time. It is
// intentionally decoupled from the live Product record so historical
// orders stay accurate when the catalog changes.
type OrderLine struct {
	ID        uint            `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID   string          `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string          `json:"product_id" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
}

// Subtotal is the line price times quantity.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order represents a submitted customer order. Orders are never deleted;
// the total is fixed at creation and never recomputed afterwards.
type Order struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Customer  CustomerInfo    `json:"customer" gorm:"embedded;embeddedPrefix:customer_"`
	Lines     []OrderLine     `json:"lines" gorm:"foreignKey:OrderID"`
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
	Status    OrderStatus     `json:"status" gorm:"type:varchar(16);index"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
