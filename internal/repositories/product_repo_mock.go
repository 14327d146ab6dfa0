package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/XenomaCode/milla13-api/internal/models"
)

// MockProductRepository is an in-memory implementation of
// ProductRepository, used in tests and local development.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// ListStorefront returns active products ordered by name ascending.
func (r *MockProductRepository) ListStorefront(category models.Category) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.Status != models.ProductActive {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// ListAdmin returns all products ordered by creation time descending.
func (r *MockProductRepository) ListAdmin() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.CreatedAt.IsZero() {
		product.CreatedAt = time.Now()
	}
	product.UpdatedAt = time.Now()
	r.products[product.ID] = *product
	return nil
}

// Save replaces an existing product.
func (r *MockProductRepository) Save(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product %s: %w", product.ID, ErrNotFound)
	}
	product.UpdatedAt = time.Now()
	r.products[product.ID] = *product
	return nil
}
