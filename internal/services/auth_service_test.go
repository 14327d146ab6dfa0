package services_test

import (
	"fmt"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/XenomaCode/milla13-api/internal/models"
	"github.com/XenomaCode/milla13-api/internal/repositories"
	"github.com/XenomaCode/milla13-api/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func notFoundErr(email string) error {
	return fmt.Errorf("user %s: %w", email, repositories.ErrNotFound)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	mockRepo.On("GetByEmail", "a@b.com").Return(nil, notFoundErr("a@b.com")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, token, err := authService.Register("a@b.com", "password123", "Name")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleUser, user.Role, "new registrations always get the user role")
	// the stored password is a bcrypt hash, never the plaintext
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterDuplicateEmailConflicts(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	existing := &models.User{ID: "user-1", Email: "a@b.com"}
	mockRepo.On("GetByEmail", "a@b.com").Return(existing, nil).Once()

	_, _, err := authService.Register("a@b.com", "password123", "Name")
	assert.ErrorIs(t, err, services.ErrConflict)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterLostRaceConflicts(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	// the precheck sees no user, but a concurrent registration wins the
	// insert and the unique index rejects ours
	mockRepo.On("GetByEmail", "a@b.com").Return(nil, notFoundErr("a@b.com")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).
		Return(fmt.Errorf("user a@b.com: %w", repositories.ErrDuplicate)).Once()

	_, _, err := authService.Register("a@b.com", "password123", "Name")
	assert.ErrorIs(t, err, services.ErrConflict)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Email:    "a@b.com",
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}

	mockRepo.On("GetByEmail", "a@b.com").Return(user, nil).Once()
	got, token, err := authService.Login("a@b.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "user-123", got.ID)
	assert.NotEmpty(t, token)

	// the token carries the identity and role claims
	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte("test_jwt_secret"), nil
	})
	assert.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "admin", claims["role"])
	mockRepo.AssertExpectations(t)

	// wrong password
	mockRepo.On("GetByEmail", "a@b.com").Return(user, nil).Once()
	_, _, err = authService.Login("a@b.com", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// unknown email yields the same generic error
	mockRepo.On("GetByEmail", "missing@b.com").Return(nil, notFoundErr("missing@b.com")).Once()
	_, _, err = authService.Login("missing@b.com", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-123", Email: "a@b.com", Password: string(hashed), Role: models.RoleUser}

	mockRepo.On("GetByEmail", "a@b.com").Return(user, nil).Once()
	_, token, err := authService.Login("a@b.com", "password123")
	assert.NoError(t, err)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "user", claims["role"])

	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)

	// token signed with a different secret is rejected
	other := services.NewAuthService(mockRepo, "other_secret")
	mockRepo.On("GetByEmail", "a@b.com").Return(user, nil).Once()
	_, foreignToken, err := other.Login("a@b.com", "password123")
	assert.NoError(t, err)
	_, err = authService.ValidateToken(foreignToken)
	assert.Error(t, err)
}
