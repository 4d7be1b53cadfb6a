package models

// User represents a staff account that can log into the system.
type User struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Email        string  `json:"email" db:"email"`
	PasswordHash string  `json:"-" db:"password_hash"` // '-' means never sent in JSON responses
	RoleID       *int64  `json:"role_id,omitempty" db:"role_id"`
	RoleName     *string `json:"role_name,omitempty"` // From joining with roles
	IsActive     bool    `json:"is_active" db:"is_active"`
}

// Role represents a privilege tier. Two rows are seeded: admin and reception.
type Role struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
