package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/XenomaCode/milla13-api/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// ListStorefront retrieves active products ordered by name ascending,
// optionally filtered to one category.
func (r *GORMProductRepository) ListStorefront(category models.Category) ([]models.Product, error) {
	var products []models.Product
	q := r.db.Where("status = ?", models.ProductActive).Order("name asc")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list storefront products: %w", err)
	}
	return products, nil
}

// ListAdmin retrieves every product, including retired ones, ordered by
// creation time descending.
func (r *GORMProductRepository) ListAdmin() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("created_at desc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product %s: %w", id, err)
	}
	return &product, nil
}

// Create inserts a new product, assigning an ID when none is set.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Save writes all fields of an existing product.
func (r *GORMProductRepository) Save(product *models.Product) error {
	res := r.db.Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to save product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", product.ID, ErrNotFound)
	}
	return nil
}
