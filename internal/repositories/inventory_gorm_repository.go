package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/XenomaCode/milla13-api/internal/models"
)

// GORMInventoryRepository is a GORM implementation of InventoryRepository.
type GORMInventoryRepository struct {
	db *gorm.DB
}

// NewGORMInventoryRepository creates a new instance of GORMInventoryRepository.
func NewGORMInventoryRepository(db *gorm.DB) *GORMInventoryRepository {
	return &GORMInventoryRepository{db: db}
}

// GetAll retrieves all inventory items ordered by name ascending.
func (r *GORMInventoryRepository) GetAll() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.db.Order("name asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

// GetByID retrieves a single inventory item by ID.
func (r *GORMInventoryRepository) GetByID(id string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("inventory item %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get inventory item %s: %w", id, err)
	}
	return &item, nil
}

// Create inserts a new inventory item, assigning an ID when none is set.
func (r *GORMInventoryRepository) Create(item *models.InventoryItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create inventory item: %w", err)
	}
	return nil
}

// Save writes all fields of an existing inventory item.
func (r *GORMInventoryRepository) Save(item *models.InventoryItem) error {
	res := r.db.Save(item)
	if res.Error != nil {
		return fmt.Errorf("failed to save inventory item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("inventory item %s: %w", item.ID, ErrNotFound)
	}
	return nil
}
