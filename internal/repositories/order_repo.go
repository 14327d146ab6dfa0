package repositories

import (
	"github.com/XenomaCode/milla13-api/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// never deleted.
type OrderRepository interface {
	// GetAll returns orders newest first. An empty status returns all
	// orders; otherwise the filter is an exact match.
	GetAll(status models.OrderStatus) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status models.OrderStatus) error
}
