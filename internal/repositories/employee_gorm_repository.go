package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/XenomaCode/milla13-api/internal/models"
)

// GORMEmployeeRepository is a GORM implementation of EmployeeRepository.
type GORMEmployeeRepository struct {
	db *gorm.DB
}

// NewGORMEmployeeRepository creates a new instance of GORMEmployeeRepository.
func NewGORMEmployeeRepository(db *gorm.DB) *GORMEmployeeRepository {
	return &GORMEmployeeRepository{db: db}
}

// ListActive retrieves active employees ordered by name, optionally
// filtered by role.
func (r *GORMEmployeeRepository) ListActive(role models.EmployeeRole) ([]models.Employee, error) {
	var employees []models.Employee
	q := r.db.Where("active = ?", true).Order("name asc")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// GetByID retrieves a single employee by ID.
func (r *GORMEmployeeRepository) GetByID(id string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("employee %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get employee %s: %w", id, err)
	}
	return &employee, nil
}

// Create inserts a new employee, assigning an ID when none is set.
func (r *GORMEmployeeRepository) Create(employee *models.Employee) error {
	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	if err := r.db.Create(employee).Error; err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// Save writes all fields of an existing employee.
func (r *GORMEmployeeRepository) Save(employee *models.Employee) error {
	res := r.db.Save(employee)
	if res.Error != nil {
		return fmt.Errorf("failed to save employee: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("employee %s: %w", employee.ID, ErrNotFound)
	}
	return nil
}
