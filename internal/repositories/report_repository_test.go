package repositories

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportRepoWithMock(t *testing.T) (ReportRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewReportRepository(db), mock
}

func TestGetSummary(t *testing.T) {
	repo, mock := newReportRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM sales`)).
		WillReturnRows(sqlmock.NewRows([]string{"total_sales", "total_revenue", "total_clients"}).
			AddRow(int64(12), 3450.50, int64(8)))

	summary, err := repo.GetSummary()

	require.NoError(t, err)
	assert.Equal(t, int64(12), summary.TotalSales)
	assert.Equal(t, 3450.50, summary.TotalRevenue)
	assert.Equal(t, int64(8), summary.TotalClients)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTopProducts_OrderedByQuantity(t *testing.T) {
	repo, mock := newReportRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM sale_items si`)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description", "quantity_sold", "revenue"}).
			AddRow(int64(3), "Blood panel", int64(40), 4000.0).
			AddRow(int64(5), "Urinalysis", int64(25), 1250.0))

	top, err := repo.GetTopProducts(5)

	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Blood panel", top[0].Description)
	assert.Equal(t, int64(40), top[0].QuantitySold)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWeeklySales_NoSalesYieldsEmptySlice(t *testing.T) {
	repo, mock := newReportRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM sales`)).
		WillReturnRows(sqlmock.NewRows([]string{"day", "sale_count", "total"}))

	daily, err := repo.GetWeeklySales()

	require.NoError(t, err)
	assert.NotNil(t, daily)
	assert.Empty(t, daily)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWeeklySales_BucketsPerDay(t *testing.T) {
	repo, mock := newReportRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM sales`)).
		WillReturnRows(sqlmock.NewRows([]string{"day", "sale_count", "total"}).
			AddRow("2026-08-29", int64(3), 450.0).
			AddRow("2026-08-30", int64(1), 120.0))

	daily, err := repo.GetWeeklySales()

	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.Equal(t, "2026-08-29", daily[0].Date)
	assert.Equal(t, int64(3), daily[0].SaleCount)
	assert.Equal(t, 120.0, daily[1].Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
