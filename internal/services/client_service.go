package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"arlab_backend/internal/models"
	"arlab_backend/internal/repositories"
)

// --- Custom Service Errors for Client ---
var (
	ErrClientNotFound   = errors.New("client not found")
	ErrClientValidation = errors.New("client data validation error")
	ErrClientInUse      = errors.New("client cannot be deleted because they have associated sales")
)

// --- Client DTOs ---

type CreateClientRequest struct {
	DNI         *string `json:"dni"`
	Name        string  `json:"name" binding:"required"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	BillingName *string `json:"billing_name"`
}

type UpdateClientRequest struct {
	DNI         *string `json:"dni"`
	Name        string  `json:"name" binding:"required"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	BillingName *string `json:"billing_name"`
}

// --- ClientService Interface ---
type ClientService interface {
	CreateClient(req CreateClientRequest) (*models.Client, error)
	GetClientByID(clientID int64) (*models.Client, error)
	GetClients(searchTerm *string) ([]models.Client, error)
	UpdateClient(clientID int64, req UpdateClientRequest) (*models.Client, error)
	DeleteClient(clientID int64) error
}

// --- clientService Implementation ---
type clientService struct {
	clientRepo repositories.ClientRepository
	db         *sql.DB
}

// NewClientService creates a new instance of ClientService.
func NewClientService(repo repositories.ClientRepository, db *sql.DB) ClientService {
	return &clientService{clientRepo: repo, db: db}
}

func (s *clientService) CreateClient(req CreateClientRequest) (*models.Client, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrClientValidation)
	}

	client := &models.Client{
		DNI:         req.DNI,
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		BillingName: req.BillingName,
	}

	id, err := s.clientRepo.CreateClient(s.db, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create client in repository: %w", err)
	}
	return s.clientRepo.GetClientByID(id)
}

func (s *clientService) GetClientByID(clientID int64) (*models.Client, error) {
	client, err := s.clientRepo.GetClientByID(clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client by ID: %w", err)
	}
	return client, nil
}

func (s *clientService) GetClients(searchTerm *string) ([]models.Client, error) {
	clients, err := s.clientRepo.GetClients(searchTerm)
	if err != nil {
		return nil, fmt.Errorf("failed to get clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) UpdateClient(clientID int64, req UpdateClientRequest) (*models.Client, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrClientValidation)
	}

	client, err := s.clientRepo.GetClientByID(clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client for update: %w", err)
	}

	client.DNI = req.DNI
	client.Name = req.Name
	client.Phone = req.Phone
	client.Address = req.Address
	client.BillingName = req.BillingName

	if err := s.clientRepo.UpdateClient(s.db, client); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to update client in repository: %w", err)
	}
	return s.clientRepo.GetClientByID(clientID)
}

func (s *clientService) DeleteClient(clientID int64) error {
	err := s.clientRepo.DeleteClient(s.db, clientID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrClientNotFound
		}
		if errors.Is(err, repositories.ErrForeignKeyViolation) {
			return ErrClientInUse
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}
