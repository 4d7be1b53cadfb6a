package services

import (
	"database/sql"
	"errors"
	"fmt"

	"arlab_backend/internal/models"
	"arlab_backend/internal/repositories"
	"arlab_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors for User ---
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUserValidation = errors.New("user data validation error")
	ErrEmailExists    = errors.New("email already exists")
)

// --- User DTOs ---

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	RoleID   int64  `json:"role_id" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

// UpdateUserRequest omits Password to mean "leave the password unchanged".
type UpdateUserRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required"`
	Password *string `json:"password"`
	RoleID   int64   `json:"role_id" binding:"required"`
	IsActive *bool   `json:"is_active"`
}

// --- UserService Interface ---
type UserService interface {
	CreateUser(req CreateUserRequest) (*models.User, error)
	GetUserByID(userID int64) (*models.User, error)
	GetUsers() ([]models.User, error)
	UpdateUser(userID int64, req UpdateUserRequest) (*models.User, error)
}

// --- userService Implementation ---
type userService struct {
	userRepo repositories.UserRepository
	db       *sql.DB
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo repositories.UserRepository, db *sql.DB) UserService {
	return &userService{userRepo: repo, db: db}
}

func validateUserFields(name, email string) error {
	if utils.IsEmpty(name) {
		return fmt.Errorf("%w: name cannot be empty", ErrUserValidation)
	}
	if !utils.IsValidEmail(email) {
		return fmt.Errorf("%w: email format is invalid", ErrUserValidation)
	}
	return nil
}

func (s *userService) CreateUser(req CreateUserRequest) (*models.User, error) {
	if err := validateUserFields(req.Name, req.Email); err != nil {
		return nil, err
	}
	if utils.IsEmpty(req.Password) {
		return nil, fmt.Errorf("%w: password is required", ErrUserValidation)
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPasswordBytes),
		RoleID:       &req.RoleID,
		IsActive:     isActive,
	}

	id, err := s.userRepo.CreateUser(s.db, user)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return nil, fmt.Errorf("%w: unknown role", ErrUserValidation)
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	created, err := s.userRepo.GetUserByID(id)
	if err != nil {
		return nil, fmt.Errorf("user created but failed to retrieve details: %w", err)
	}
	created.PasswordHash = ""
	return created, nil
}

func (s *userService) GetUserByID(userID int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *userService) GetUsers() ([]models.User, error) {
	users, err := s.userRepo.GetUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

func (s *userService) UpdateUser(userID int64, req UpdateUserRequest) (*models.User, error) {
	if err := validateUserFields(req.Name, req.Email); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user for update: %w", err)
	}

	user.Name = req.Name
	user.Email = req.Email
	user.RoleID = &req.RoleID
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	// A supplied password is re-hashed; an omitted one keeps the stored hash.
	if req.Password != nil {
		if utils.IsEmpty(*req.Password) {
			return nil, fmt.Errorf("%w: password cannot be empty if provided", ErrUserValidation)
		}
		hashedPasswordBytes, hashErr := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, fmt.Errorf("failed to hash password: %w", hashErr)
		}
		user.PasswordHash = string(hashedPasswordBytes)
	}

	if err := s.userRepo.UpdateUser(s.db, user); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to update user in repository: %w", err)
	}

	updated, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user updated but failed to retrieve details: %w", err)
	}
	updated.PasswordHash = ""
	return updated, nil
}
