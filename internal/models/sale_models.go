package models

import "time"

// Sale is the header row of a completed transaction. Once committed it is
// never mutated.
type Sale struct {
	ID         int64      `json:"id" db:"id"`
	SoldAt     time.Time  `json:"sold_at" db:"sold_at"`
	ClientID   int64      `json:"client_id" db:"client_id"`
	UserID     int64      `json:"user_id" db:"user_id"`
	Total      float64    `json:"total" db:"total"`
	Discount   float64    `json:"discount" db:"discount"`
	ClientName string     `json:"client_name,omitempty"` // From joining with clients
	UserName   string     `json:"user_name,omitempty"`   // From joining with users
	Items      []SaleItem `json:"items"`
}

// SaleItem is one product line within a sale. The unit price is copied at
// sale time so later catalog price changes do not affect history.
type SaleItem struct {
	ID                 int64   `json:"id" db:"id"`
	SaleID             int64   `json:"sale_id" db:"sale_id"`
	ProductID          int64   `json:"product_id" db:"product_id"`
	Quantity           int     `json:"quantity" db:"quantity"`
	UnitPrice          float64 `json:"unit_price" db:"unit_price"`
	ProductDescription string  `json:"product_description,omitempty"` // From joining with products
}

// SaleFilters narrows the sales listing. Dates are calendar dates in
// YYYY-MM-DD form; DateTo is inclusive through the end of that day.
type SaleFilters struct {
	ClientSearch *string
	DateFrom     *string
	DateTo       *string
}
