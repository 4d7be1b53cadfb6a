package models

// Client represents a patient of the laboratory.
type Client struct {
	ID          int64   `json:"id" db:"id"`
	DNI         *string `json:"dni,omitempty" db:"dni"`
	Name        string  `json:"name" db:"name"`
	Phone       *string `json:"phone,omitempty" db:"phone"`
	Address     *string `json:"address,omitempty" db:"address"`
	BillingName *string `json:"billing_name,omitempty" db:"billing_name"`
}
