package services

import (
	"fmt"
	"time"

	"github.com/XenomaCode/milla13-api/internal/models"
	"github.com/XenomaCode/milla13-api/internal/repositories"
)

// InventoryService handles business logic for café supplies. Inventory is
// fully disjoint from orders: nothing here is touched when an order is
// placed.
type InventoryService struct {
	repo repositories.InventoryRepository
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(repo repositories.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

// List returns all inventory items ordered by name.
func (s *InventoryService) List() ([]models.InventoryItem, error) {
	return s.repo.GetAll()
}

// Get retrieves a single inventory item by ID.
func (s *InventoryService) Get(id string) (*models.InventoryItem, error) {
	return s.repo.GetByID(id)
}

// Create validates and persists a new inventory item.
func (s *InventoryService) Create(item *models.InventoryItem) error {
	if item.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if item.Unit == "" {
		return fmt.Errorf("%w: unit is required", ErrValidation)
	}
	if item.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be non-negative", ErrValidation)
	}
	if item.MinStock < 0 {
		return fmt.Errorf("%w: minimum stock must be non-negative", ErrValidation)
	}
	item.LastRestockedAt = time.Now()
	return s.repo.Create(item)
}

// Update applies a partial update to an existing inventory item.
func (s *InventoryService) Update(id string, upd models.InventoryUpdate) (*models.InventoryItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		item.Name = *upd.Name
	}
	if upd.Unit != nil {
		if *upd.Unit == "" {
			return nil, fmt.Errorf("%w: unit must not be empty", ErrValidation)
		}
		item.Unit = *upd.Unit
	}
	if upd.MinStock != nil {
		if *upd.MinStock < 0 {
			return nil, fmt.Errorf("%w: minimum stock must be non-negative", ErrValidation)
		}
		item.MinStock = *upd.MinStock
	}
	if upd.Supplier != nil {
		item.Supplier = *upd.Supplier
	}

	if err := s.repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetQuantity replaces the current quantity and records the restock time.
func (s *InventoryService) SetQuantity(id string, quantity int) (*models.InventoryItem, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must be non-negative", ErrValidation)
	}

	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	item.Quantity = quantity
	item.LastRestockedAt = time.Now()

	if err := s.repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}
