package services

import (
	"database/sql"
	"errors"
	"fmt"

	"arlab_backend/internal/models"
	"arlab_backend/internal/repositories"
)

// --- Custom Service Errors for Sale ---
var (
	// ErrSaleValidation rejects a submission before any transaction is opened.
	ErrSaleValidation = errors.New("sale data validation error")
	// ErrSaleProcessing is the generic signal for a failed transaction; the
	// underlying cause is wrapped for the server log, never for the caller.
	ErrSaleProcessing = errors.New("could not process the sale")
)

// --- Sale DTOs ---

type CreateSaleItemRequest struct {
	ProductID int64   `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price"`
}

type CreateSaleRequest struct {
	ClientID int64                   `json:"client_id" binding:"required"`
	UserID   int64                   `json:"user_id" binding:"required"`
	Items    []CreateSaleItemRequest `json:"items" binding:"required,dive"`
	Total    float64                 `json:"total"`
	Discount *float64                `json:"discount"`
}

// --- SaleService Interface ---
type SaleService interface {
	// CreateSale persists the header and every line item as one atomic unit
	// and returns the generated sale identifier.
	CreateSale(req CreateSaleRequest) (int64, error)
	GetSales(filters models.SaleFilters) ([]models.Sale, error)
}

// --- saleService Implementation ---
type saleService struct {
	saleRepo repositories.SaleRepository
	db       *sql.DB // For managing transactions
}

// NewSaleService creates a new instance of SaleService.
func NewSaleService(repo repositories.SaleRepository, db *sql.DB) SaleService {
	return &saleService{saleRepo: repo, db: db}
}

// CreateSale writes one sale row and N sale_items rows, or nothing.
// All statements run on the single connection pinned by the transaction;
// the deferred rollback is a no-op after a successful commit and unwinds
// everything otherwise, so the connection always returns to the pool.
func (s *saleService) CreateSale(req CreateSaleRequest) (int64, error) {
	if req.ClientID == 0 || req.UserID == 0 {
		return 0, fmt.Errorf("%w: client and user are required", ErrSaleValidation)
	}
	if len(req.Items) == 0 {
		return 0, fmt.Errorf("%w: a sale needs at least one item", ErrSaleValidation)
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return 0, fmt.Errorf("%w: quantity for product %d must be positive", ErrSaleValidation, item.ProductID)
		}
	}

	discount := 0.0
	if req.Discount != nil {
		discount = *req.Discount
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("%w: starting transaction: %v", ErrSaleProcessing, err)
	}
	defer tx.Rollback()

	sale := models.Sale{
		ClientID: req.ClientID,
		UserID:   req.UserID,
		Total:    req.Total,
		Discount: discount,
	}

	saleID, err := s.saleRepo.CreateSale(tx, &sale)
	if err != nil {
		return 0, fmt.Errorf("%w: inserting sale header: %v", ErrSaleProcessing, err)
	}

	for _, itemReq := range req.Items {
		item := models.SaleItem{
			SaleID:    saleID,
			ProductID: itemReq.ProductID,
			Quantity:  itemReq.Quantity,
			UnitPrice: itemReq.UnitPrice,
		}
		if _, err := s.saleRepo.CreateSaleItem(tx, &item); err != nil {
			return 0, fmt.Errorf("%w: inserting sale item for product %d: %v", ErrSaleProcessing, itemReq.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: committing transaction: %v", ErrSaleProcessing, err)
	}
	return saleID, nil
}

// GetSales returns the filtered sale listing with nested line items.
func (s *saleService) GetSales(filters models.SaleFilters) ([]models.Sale, error) {
	sales, err := s.saleRepo.GetSales(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to get sales: %w", err)
	}
	if len(sales) == 0 {
		return sales, nil
	}

	saleIDs := make([]int64, 0, len(sales))
	for _, sale := range sales {
		saleIDs = append(saleIDs, sale.ID)
	}

	itemsBySale, err := s.saleRepo.GetSaleItemsBySaleIDs(saleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale items: %w", err)
	}
	for i := range sales {
		if items, ok := itemsBySale[sales[i].ID]; ok {
			sales[i].Items = items
		}
	}
	return sales, nil
}
