package models

// SummaryReport holds the global KPIs shown on the admin dashboard.
type SummaryReport struct {
	TotalSales   int64   `json:"total_sales"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalClients int64   `json:"total_clients"`
}

// TopProduct aggregates line items for one product across all sales.
type TopProduct struct {
	ProductID    int64   `json:"product_id"`
	Description  string  `json:"description"`
	QuantitySold int64   `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// DailySales is one calendar-day bucket of the trailing-week report.
type DailySales struct {
	Date      string  `json:"date"`
	SaleCount int64   `json:"sale_count"`
	Total     float64 `json:"total"`
}
