package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"arlab_backend/internal/models"
)

// UserRepository defines the interface for staff-account database operations.
type UserRepository interface {
	CreateUser(executor SQLExecutor, user *models.User) (int64, error)
	GetUserByID(id int64) (*models.User, error)
	// FindUserByEmail returns the user together with the stored password hash.
	FindUserByEmail(email string) (*models.User, string, error)
	GetUsers() ([]models.User, error)
	UpdateUser(executor SQLExecutor, user *models.User) error
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser inserts a new staff account. The user must carry a bcrypt hash
// in PasswordHash.
func (r *userRepository) CreateUser(executor SQLExecutor, user *models.User) (int64, error) {
	query := `INSERT INTO users (name, email, password_hash, role_id, is_active)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	var roleID sql.NullInt64
	if user.RoleID != nil {
		roleID = sql.NullInt64{Int64: *user.RoleID, Valid: true}
	}

	err := executor.QueryRow(query,
		user.Name, user.Email, user.PasswordHash, roleID, user.IsActive,
	).Scan(&user.ID)

	if err != nil {
		if IsUniqueViolation(err) {
			return 0, fmt.Errorf("%w: email %s: %v", ErrDuplicateKey, user.Email, err)
		}
		if IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: creating user with unknown role: %v", ErrForeignKeyViolation, err)
		}
		return 0, fmt.Errorf("%w: creating user: %v", ErrDatabaseError, err)
	}
	return user.ID, nil
}

// GetUserByID retrieves a user with their role name.
func (r *userRepository) GetUserByID(id int64) (*models.User, error) {
	user := &models.User{}
	query := `SELECT u.id, u.name, u.email, u.password_hash, u.role_id, r.name, u.is_active
	          FROM users u
	          LEFT JOIN roles r ON u.role_id = r.id
	          WHERE u.id = $1`

	err := r.db.QueryRow(query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.RoleID, &user.RoleName, &user.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting user by ID %d: %v", ErrDatabaseError, id, err)
	}
	return user, nil
}

// FindUserByEmail retrieves a user by their login email.
func (r *userRepository) FindUserByEmail(email string) (*models.User, string, error) {
	user := &models.User{}
	var hashedPassword string
	query := `SELECT u.id, u.name, u.email, u.password_hash, u.role_id, r.name, u.is_active
	          FROM users u
	          LEFT JOIN roles r ON u.role_id = r.id
	          WHERE u.email = $1`

	err := r.db.QueryRow(query, email).Scan(
		&user.ID, &user.Name, &user.Email, &hashedPassword,
		&user.RoleID, &user.RoleName, &user.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("%w: finding user by email %s: %v", ErrDatabaseError, email, err)
	}
	return user, hashedPassword, nil
}

// GetUsers retrieves all staff accounts with role names, ordered by name.
func (r *userRepository) GetUsers() ([]models.User, error) {
	users := []models.User{}
	query := `SELECT u.id, u.name, u.email, u.role_id, r.name, u.is_active
	          FROM users u
	          LEFT JOIN roles r ON u.role_id = r.id
	          ORDER BY u.name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying users: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.RoleID, &user.RoleName, &user.IsActive,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning user: %v", ErrDatabaseError, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating user rows: %v", ErrDatabaseError, err)
	}
	return users, nil
}

// UpdateUser updates a staff account, including its password hash. Callers
// that keep the password unchanged must carry the existing hash through.
func (r *userRepository) UpdateUser(executor SQLExecutor, user *models.User) error {
	query := `UPDATE users SET name = $1, email = $2, password_hash = $3, role_id = $4, is_active = $5
	          WHERE id = $6`

	var roleID sql.NullInt64
	if user.RoleID != nil {
		roleID = sql.NullInt64{Int64: *user.RoleID, Valid: true}
	}

	result, err := executor.Exec(query,
		user.Name, user.Email, user.PasswordHash, roleID, user.IsActive, user.ID,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return fmt.Errorf("%w: email %s: %v", ErrDuplicateKey, user.Email, err)
		}
		return fmt.Errorf("%w: updating user ID %d: %v", ErrDatabaseError, user.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for updating user ID %d: %v", ErrDatabaseError, user.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
