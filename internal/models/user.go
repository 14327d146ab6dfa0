package models

import "time"

// Role controls access to the admin surface.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered customer or administrator. New
// registrations always get RoleUser; promotion to admin happens
// out-of-band, not through the API.
type User struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email       string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password    string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	DisplayName string    `json:"display_name" validate:"required,min=2,max=100"`
	Role        Role      `json:"role" gorm:"type:varchar(16);default:user"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
