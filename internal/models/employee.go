package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeRole is the position an employee holds at the café.
type EmployeeRole string

const (
	EmployeeAdmin   EmployeeRole = "admin"
	EmployeeBarista EmployeeRole = "barista"
	EmployeeCashier EmployeeRole = "cashier"
	EmployeeWaiter  EmployeeRole = "waiter"
)

// Valid reports whether the role is a known employee role.
func (r EmployeeRole) Valid() bool {
	switch r {
	case EmployeeAdmin, EmployeeBarista, EmployeeCashier, EmployeeWaiter:
		return true
	}
	return false
}

// Employee is a staff record managed from the admin panel. Employees are
// deactivated, never deleted.
type Employee struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string          `json:"name" validate:"required,min=2,max=100"`
	Email     string          `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Role      EmployeeRole    `json:"role" gorm:"type:varchar(16)" validate:"required"`
	Salary    decimal.Decimal `json:"salary" gorm:"type:decimal(10,2)"`
	Active    bool            `json:"active" gorm:"default:true"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// EmployeeUpdate is an explicit partial update for an employee record.
type EmployeeUpdate struct {
	Name   *string          `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email  *string          `json:"email,omitempty" validate:"omitempty,email"`
	Role   *EmployeeRole    `json:"role,omitempty"`
	Salary *decimal.Decimal `json:"salary,omitempty"`
}
