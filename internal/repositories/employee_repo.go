package repositories

import "github.com/XenomaCode/milla13-api/internal/models"

// EmployeeRepository defines the interface for employee data access.
type EmployeeRepository interface {
	// ListActive returns active employees ordered by name ascending,
	// optionally filtered by role.
	ListActive(role models.EmployeeRole) ([]models.Employee, error)
	GetByID(id string) (*models.Employee, error)
	Create(employee *models.Employee) error
	Save(employee *models.Employee) error
}
