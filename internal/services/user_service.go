package services

import (
	"errors"
	"time"

	"contentflow_go_backend/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserExists         = errors.New("username ou email já existe")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
)

// UserService owns the account records the quota ledger reads from.
type UserService interface {
	Register(username, email, password, fullName string) (*models.User, error)
	Authenticate(usernameOrEmail, password string) (*models.User, error)
	GetUserByID(id uuid.UUID) (*models.User, error)
}

// DefaultUserService implements UserService
type DefaultUserService struct {
	db *gorm.DB
}

// NewUserService creates a new DefaultUserService
func NewUserService(db *gorm.DB) UserService {
	return &DefaultUserService{db: db}
}

// Register creates an account on the free plan (10 generations per month).
func (s *DefaultUserService) Register(username, email, password, fullName string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("username = ? OR email = ?", username, email).First(&existing).Error
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies credentials against username or email and stamps the
// last login on success.
func (s *DefaultUserService) Authenticate(usernameOrEmail, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ? OR email = ?", usernameOrEmail, usernameOrEmail).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.db.Model(&user).UpdateColumn("last_login", now).Error; err != nil {
		return nil, err
	}
	user.LastLogin = &now

	return &user, nil
}

func (s *DefaultUserService) GetUserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
