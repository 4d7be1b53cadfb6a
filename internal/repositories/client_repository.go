package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"arlab_backend/internal/models"
)

// ClientRepository defines the interface for client-related database operations.
type ClientRepository interface {
	CreateClient(executor SQLExecutor, client *models.Client) (int64, error)
	GetClientByID(id int64) (*models.Client, error)
	GetClients(searchTerm *string) ([]models.Client, error)
	UpdateClient(executor SQLExecutor, client *models.Client) error
	DeleteClient(executor SQLExecutor, id int64) error
}

type clientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new instance of ClientRepository.
func NewClientRepository(db *sql.DB) ClientRepository {
	return &clientRepository{db: db}
}

const clientColumns = `id, dni, name, phone, address, billing_name`

func scanClient(row *sql.Row, client *models.Client) error {
	return row.Scan(&client.ID, &client.DNI, &client.Name, &client.Phone, &client.Address, &client.BillingName)
}

// CreateClient inserts a new client into the database.
func (r *clientRepository) CreateClient(executor SQLExecutor, client *models.Client) (int64, error) {
	query := `INSERT INTO clients (dni, name, phone, address, billing_name)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	err := executor.QueryRow(query,
		client.DNI, client.Name, client.Phone, client.Address, client.BillingName,
	).Scan(&client.ID)

	if err != nil {
		return 0, fmt.Errorf("%w: creating client: %v", ErrDatabaseError, err)
	}
	return client.ID, nil
}

// GetClientByID retrieves a client by their ID.
func (r *clientRepository) GetClientByID(id int64) (*models.Client, error) {
	client := &models.Client{}
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	err := scanClient(r.db.QueryRow(query, id), client)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting client by ID %d: %v", ErrDatabaseError, id, err)
	}
	return client, nil
}

// GetClients retrieves all clients, optionally filtered by a case-insensitive
// substring match over name, DNI and phone.
func (r *clientRepository) GetClients(searchTerm *string) ([]models.Client, error) {
	clients := []models.Client{}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + clientColumns + ` FROM clients`)

	var args []interface{}
	if searchTerm != nil && *searchTerm != "" {
		queryBuilder.WriteString(` WHERE name ILIKE $1 OR dni ILIKE $1 OR phone ILIKE $1`)
		args = append(args, "%"+*searchTerm+"%")
	}
	queryBuilder.WriteString(` ORDER BY name ASC`)

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying clients: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var client models.Client
		if err := rows.Scan(&client.ID, &client.DNI, &client.Name, &client.Phone, &client.Address, &client.BillingName); err != nil {
			return nil, fmt.Errorf("%w: scanning client: %v", ErrDatabaseError, err)
		}
		clients = append(clients, client)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating client rows: %v", ErrDatabaseError, err)
	}
	return clients, nil
}

// UpdateClient updates an existing client in the database.
func (r *clientRepository) UpdateClient(executor SQLExecutor, client *models.Client) error {
	query := `UPDATE clients SET dni = $1, name = $2, phone = $3, address = $4, billing_name = $5
	          WHERE id = $6`

	result, err := executor.Exec(query,
		client.DNI, client.Name, client.Phone, client.Address, client.BillingName, client.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating client ID %d: %v", ErrDatabaseError, client.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating client ID %d: %v", ErrDatabaseError, client.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteClient removes a client. Clients referenced by sales cannot be
// deleted; that surfaces as ErrForeignKeyViolation.
func (r *clientRepository) DeleteClient(executor SQLExecutor, id int64) error {
	query := `DELETE FROM clients WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: client ID %d is referenced by sales", ErrForeignKeyViolation, id)
		}
		return fmt.Errorf("%w: deleting client ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting client ID %d: %v", ErrDatabaseError, id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
