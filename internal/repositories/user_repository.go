package repositories

import "github.com/XenomaCode/milla13-api/internal/models"

// UserRepository defines the interface for user profile data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}
