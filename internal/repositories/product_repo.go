package repositories

import (
	"github.com/XenomaCode/milla13-api/internal/models"
)

// ProductRepository defines the interface for catalog data access.
//
// ListStorefront and ListAdmin encode the two listing contexts: the
// storefront sees only active products ordered by name, the admin panel
// sees everything ordered by creation time descending.
type ProductRepository interface {
	ListStorefront(category models.Category) ([]models.Product, error)
	ListAdmin() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Save(product *models.Product) error
}
