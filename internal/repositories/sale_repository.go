package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"arlab_backend/internal/models"

	"github.com/lib/pq"
)

// SaleRepository defines the interface for sale-related database operations.
// CreateSale and CreateSaleItem take an SQLExecutor so the service layer can
// run both inside one transaction.
type SaleRepository interface {
	CreateSale(executor SQLExecutor, sale *models.Sale) (int64, error)
	CreateSaleItem(executor SQLExecutor, item *models.SaleItem) (int64, error)
	GetSales(filters models.SaleFilters) ([]models.Sale, error)
	GetSaleItemsBySaleIDs(saleIDs []int64) (map[int64][]models.SaleItem, error)
}

type saleRepository struct {
	db *sql.DB
}

// NewSaleRepository creates a new instance of SaleRepository.
func NewSaleRepository(db *sql.DB) SaleRepository {
	return &saleRepository{db: db}
}

// CreateSale inserts the sale header and returns the generated identifier.
// The sold_at timestamp is assigned by the database.
func (r *saleRepository) CreateSale(executor SQLExecutor, sale *models.Sale) (int64, error) {
	query := `INSERT INTO sales (client_id, user_id, total, discount)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`

	err := executor.QueryRow(query,
		sale.ClientID, sale.UserID, sale.Total, sale.Discount,
	).Scan(&sale.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: sale references unknown client or user: %v", ErrForeignKeyViolation, err)
		}
		return 0, fmt.Errorf("%w: creating sale: %v", ErrDatabaseError, err)
	}
	return sale.ID, nil
}

// CreateSaleItem inserts one line item referencing an existing sale header.
func (r *saleRepository) CreateSaleItem(executor SQLExecutor, item *models.SaleItem) (int64, error) {
	query := `INSERT INTO sale_items (sale_id, product_id, quantity, unit_price)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`

	err := executor.QueryRow(query,
		item.SaleID, item.ProductID, item.Quantity, item.UnitPrice,
	).Scan(&item.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return 0, fmt.Errorf("%w: sale item references unknown product: %v", ErrForeignKeyViolation, err)
		}
		return 0, fmt.Errorf("%w: creating sale item: %v", ErrDatabaseError, err)
	}
	return item.ID, nil
}

// GetSales retrieves sale headers joined with client and staff names,
// newest first. The date filters compare calendar dates only; the end date
// is inclusive through the end of that day.
func (r *saleRepository) GetSales(filters models.SaleFilters) ([]models.Sale, error) {
	sales := []models.Sale{}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT s.id, s.sold_at, s.client_id, s.user_id, s.total, s.discount,
		       c.name AS client_name, u.name AS user_name
		FROM sales s
		JOIN clients c ON s.client_id = c.id
		JOIN users u ON s.user_id = u.id`)

	var conditions []string
	var args []interface{}
	argCounter := 1

	if filters.ClientSearch != nil && *filters.ClientSearch != "" {
		conditions = append(conditions, fmt.Sprintf("c.name ILIKE $%d", argCounter))
		args = append(args, "%"+*filters.ClientSearch+"%")
		argCounter++
	}
	if filters.DateFrom != nil && *filters.DateFrom != "" {
		conditions = append(conditions, fmt.Sprintf("s.sold_at >= $%d::date", argCounter))
		args = append(args, *filters.DateFrom)
		argCounter++
	}
	if filters.DateTo != nil && *filters.DateTo != "" {
		// End date is inclusive through 23:59:59 of that calendar day.
		conditions = append(conditions, fmt.Sprintf("s.sold_at < $%d::date + interval '1 day'", argCounter))
		args = append(args, *filters.DateTo)
		argCounter++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY s.sold_at DESC")

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying sales: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var sale models.Sale
		if err := rows.Scan(
			&sale.ID, &sale.SoldAt, &sale.ClientID, &sale.UserID,
			&sale.Total, &sale.Discount, &sale.ClientName, &sale.UserName,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning sale: %v", ErrDatabaseError, err)
		}
		sale.Items = []models.SaleItem{}
		sales = append(sales, sale)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating sale rows: %v", ErrDatabaseError, err)
	}
	return sales, nil
}

// GetSaleItemsBySaleIDs fetches the line items for a batch of sales in one
// query, keyed by sale id, with product descriptions joined in.
func (r *saleRepository) GetSaleItemsBySaleIDs(saleIDs []int64) (map[int64][]models.SaleItem, error) {
	itemsBySale := make(map[int64][]models.SaleItem, len(saleIDs))
	if len(saleIDs) == 0 {
		return itemsBySale, nil
	}

	query := `
		SELECT si.id, si.sale_id, si.product_id, si.quantity, si.unit_price,
		       p.description AS product_description
		FROM sale_items si
		JOIN products p ON si.product_id = p.id
		WHERE si.sale_id = ANY($1)
		ORDER BY si.id`

	rows, err := r.db.Query(query, pq.Array(saleIDs))
	if err != nil {
		return nil, fmt.Errorf("%w: querying sale items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.SaleItem
		if err := rows.Scan(
			&item.ID, &item.SaleID, &item.ProductID, &item.Quantity,
			&item.UnitPrice, &item.ProductDescription,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning sale item: %v", ErrDatabaseError, err)
		}
		itemsBySale[item.SaleID] = append(itemsBySale[item.SaleID], item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating sale item rows: %v", ErrDatabaseError, err)
	}
	return itemsBySale, nil
}
