package repositories

import (
	"database/sql"
	"fmt"

	"arlab_backend/internal/models"
)

// RoleRepository defines read access to the seeded role table.
type RoleRepository interface {
	GetRoles() ([]models.Role, error)
}

type roleRepository struct {
	db *sql.DB
}

// NewRoleRepository creates a new instance of RoleRepository.
func NewRoleRepository(db *sql.DB) RoleRepository {
	return &roleRepository{db: db}
}

// GetRoles retrieves all roles ordered by id, so admin and reception keep
// their seeded positions.
func (r *roleRepository) GetRoles() ([]models.Role, error) {
	roles := []models.Role{}
	query := `SELECT id, name FROM roles ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying roles: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, fmt.Errorf("%w: scanning role: %v", ErrDatabaseError, err)
		}
		roles = append(roles, role)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating role rows: %v", ErrDatabaseError, err)
	}
	return roles, nil
}
