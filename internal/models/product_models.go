package models

// Product represents a lab test offered in the catalog.
type Product struct {
	ID           int64   `json:"id" db:"id"`
	Code         *string `json:"code,omitempty" db:"code"`
	Description  string  `json:"description" db:"description"`
	Price        float64 `json:"price" db:"price"`
	Stock        int     `json:"stock" db:"stock"`
	CategoryID   *int64  `json:"category_id,omitempty" db:"category_id"`
	CategoryName *string `json:"category_name,omitempty"` // From joining with categories
}

// Category is a read-only lookup used to group products for display.
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
