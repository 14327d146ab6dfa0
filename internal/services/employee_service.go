package services

import (
	"fmt"

	"github.com/XenomaCode/milla13-api/internal/models"
	"github.com/XenomaCode/milla13-api/internal/repositories"
)

// EmployeeService handles business logic for the staff roster.
type EmployeeService struct {
	repo repositories.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(repo repositories.EmployeeRepository) *EmployeeService {
	return &EmployeeService{repo: repo}
}

// List returns active employees ordered by name, optionally filtered by
// role.
func (s *EmployeeService) List(role models.EmployeeRole) ([]models.Employee, error) {
	if role != "" && !role.Valid() {
		return nil, fmt.Errorf("%w: unknown employee role %q", ErrValidation, role)
	}
	return s.repo.ListActive(role)
}

// Get retrieves a single employee by ID.
func (s *EmployeeService) Get(id string) (*models.Employee, error) {
	return s.repo.GetByID(id)
}

// Create validates and persists a new employee. New employees are always
// active.
func (s *EmployeeService) Create(employee *models.Employee) error {
	if employee.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if employee.Email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !employee.Role.Valid() {
		return fmt.Errorf("%w: unknown employee role %q", ErrValidation, employee.Role)
	}
	if employee.Salary.IsNegative() {
		return fmt.Errorf("%w: salary must be non-negative", ErrValidation)
	}
	employee.Active = true
	return s.repo.Create(employee)
}

// Update applies a partial update to an existing employee.
func (s *EmployeeService) Update(id string, upd models.EmployeeUpdate) (*models.Employee, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		employee.Name = *upd.Name
	}
	if upd.Email != nil {
		if *upd.Email == "" {
			return nil, fmt.Errorf("%w: email must not be empty", ErrValidation)
		}
		employee.Email = *upd.Email
	}
	if upd.Role != nil {
		if !upd.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown employee role %q", ErrValidation, *upd.Role)
		}
		employee.Role = *upd.Role
	}
	if upd.Salary != nil {
		if upd.Salary.IsNegative() {
			return nil, fmt.Errorf("%w: salary must be non-negative", ErrValidation)
		}
		employee.Salary = *upd.Salary
	}

	if err := s.repo.Save(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Deactivate flips the active flag off. The record is kept.
func (s *EmployeeService) Deactivate(id string) error {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	employee.Active = false
	return s.repo.Save(employee)
}
