package repositories

import (
	"database/sql"
	"fmt"

	"arlab_backend/internal/models"
)

// ReportRepository runs the read-only aggregation queries behind the
// dashboard. Every method is independent and idempotent.
type ReportRepository interface {
	GetSummary() (*models.SummaryReport, error)
	GetTopProducts(limit int) ([]models.TopProduct, error)
	GetWeeklySales() ([]models.DailySales, error)
}

type reportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new instance of ReportRepository.
func NewReportRepository(db *sql.DB) ReportRepository {
	return &reportRepository{db: db}
}

// GetSummary computes the global KPIs: sale count, revenue, client count.
func (r *reportRepository) GetSummary() (*models.SummaryReport, error) {
	summary := &models.SummaryReport{}
	query := `
		SELECT
			(SELECT COUNT(*) FROM sales) AS total_sales,
			(SELECT COALESCE(SUM(total), 0) FROM sales) AS total_revenue,
			(SELECT COUNT(*) FROM clients) AS total_clients`

	err := r.db.QueryRow(query).Scan(&summary.TotalSales, &summary.TotalRevenue, &summary.TotalClients)
	if err != nil {
		return nil, fmt.Errorf("%w: querying summary report: %v", ErrDatabaseError, err)
	}
	return summary, nil
}

// GetTopProducts groups line items by product and returns the best sellers
// by quantity descending.
func (r *reportRepository) GetTopProducts(limit int) ([]models.TopProduct, error) {
	top := []models.TopProduct{}
	query := `
		SELECT p.id, p.description,
		       SUM(si.quantity) AS quantity_sold,
		       SUM(si.quantity * si.unit_price) AS revenue
		FROM sale_items si
		JOIN products p ON si.product_id = p.id
		GROUP BY p.id, p.description
		ORDER BY quantity_sold DESC
		LIMIT $1`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: querying top products: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var product models.TopProduct
		if err := rows.Scan(&product.ProductID, &product.Description, &product.QuantitySold, &product.Revenue); err != nil {
			return nil, fmt.Errorf("%w: scanning top product: %v", ErrDatabaseError, err)
		}
		top = append(top, product)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating top product rows: %v", ErrDatabaseError, err)
	}
	return top, nil
}

// GetWeeklySales buckets the trailing seven calendar days of sales by day,
// ascending by date. Days without sales produce no bucket.
func (r *reportRepository) GetWeeklySales() ([]models.DailySales, error) {
	daily := []models.DailySales{}
	query := `
		SELECT TO_CHAR(sold_at::date, 'YYYY-MM-DD') AS day,
		       COUNT(*) AS sale_count,
		       COALESCE(SUM(total), 0) AS total
		FROM sales
		WHERE sold_at >= CURRENT_DATE - INTERVAL '6 days'
		GROUP BY sold_at::date
		ORDER BY sold_at::date ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying weekly sales: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var bucket models.DailySales
		if err := rows.Scan(&bucket.Date, &bucket.SaleCount, &bucket.Total); err != nil {
			return nil, fmt.Errorf("%w: scanning daily sales: %v", ErrDatabaseError, err)
		}
		daily = append(daily, bucket)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating daily sales rows: %v", ErrDatabaseError, err)
	}
	return daily, nil
}
