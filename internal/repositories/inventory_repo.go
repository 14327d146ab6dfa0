package repositories

import "github.com/XenomaCode/milla13-api/internal/models"

// InventoryRepository defines the interface for inventory data access.
type InventoryRepository interface {
	// GetAll returns every inventory item ordered by name ascending.
	GetAll() ([]models.InventoryItem, error)
	GetByID(id string) (*models.InventoryItem, error)
	Create(item *models.InventoryItem) error
	Save(item *models.InventoryItem) error
}
