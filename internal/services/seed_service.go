package services

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/XenomaCode/milla13-api/internal/models"
	"github.com/XenomaCode/milla13-api/internal/repositories"
)

// SeedService performs the one-time "initialize database" action exposed
// to admins. It has no parameters and no idempotence guarantee: running
// it twice inserts the seed records twice.
type SeedService struct {
	products  repositories.ProductRepository
	employees repositories.EmployeeRepository
	inventory repositories.InventoryRepository
}

// NewSeedService creates a new SeedService.
func NewSeedService(products repositories.ProductRepository, employees repositories.EmployeeRepository, inventory repositories.InventoryRepository) *SeedService {
	return &SeedService{
		products:  products,
		employees: employees,
		inventory: inventory,
	}
}

// Initialize inserts the starter catalog, staff roster and inventory.
func (s *SeedService) Initialize() error {
	products := []models.Product{
		{
			Name:        "Café Americano",
			Description: "Traditional black coffee",
			Price:       decimal.NewFromFloat(50.0),
			Stock:       100,
			Status:      models.ProductActive,
			Category:    models.CategoryDrink,
		},
		{
			Name:        "Cappuccino",
			Description: "Espresso with steamed milk foam",
			Price:       decimal.NewFromFloat(65.0),
			Stock:       100,
			Status:      models.ProductActive,
			Category:    models.CategoryDrink,
		},
		{
			Name:        "Brownie",
			Description: "Chocolate brownie",
			Price:       decimal.NewFromFloat(30.0),
			Stock:       20,
			Status:      models.ProductActive,
			Category:    models.CategoryDessert,
		},
	}
	for i := range products {
		if err := s.products.Create(&products[i]); err != nil {
			return fmt.Errorf("failed to seed product %s: %w", products[i].Name, err)
		}
		log.Printf("Seeded product: %s (ID: %s)", products[i].Name, products[i].ID)
	}

	employees := []models.Employee{
		{
			Name:   "Donovan Lara",
			Email:  "donovanvincelara@gmail.com",
			Role:   models.EmployeeAdmin,
			Salary: decimal.NewFromInt(8000),
			Active: true,
		},
	}
	for i := range employees {
		if err := s.employees.Create(&employees[i]); err != nil {
			return fmt.Errorf("failed to seed employee %s: %w", employees[i].Name, err)
		}
		log.Printf("Seeded employee: %s (ID: %s)", employees[i].Name, employees[i].ID)
	}

	items := []models.InventoryItem{
		{
			Name:     "Coffee beans",
			Quantity: 1,
			Unit:     "kg",
			MinStock: 2,
			Supplier: "blue flame",
		},
		{
			Name:     "Milk",
			Quantity: 12,
			Unit:     "L",
			MinStock: 5,
			Supplier: "Bove",
		},
	}
	for i := range items {
		if err := s.inventory.Create(&items[i]); err != nil {
			return fmt.Errorf("failed to seed inventory item %s: %w", items[i].Name, err)
		}
		log.Printf("Seeded inventory item: %s (ID: %s)", items[i].Name, items[i].ID)
	}

	return nil
}
