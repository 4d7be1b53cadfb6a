package services

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"arlab_backend/internal/models"
	"arlab_backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSaleServiceWithMock(t *testing.T) (SaleService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSaleService(repositories.NewSaleRepository(db), db), mock
}

func TestCreateSale_CommitsHeaderAndAllItems(t *testing.T) {
	svc, mock := newSaleServiceWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sales`)).
		WithArgs(int64(7), int64(2), 250.0, 0.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(41)))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sale_items`)).
		WithArgs(int64(41), int64(3), 2, 100.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sale_items`)).
		WithArgs(int64(41), int64(5), 1, 50.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))
	mock.ExpectCommit()

	saleID, err := svc.CreateSale(CreateSaleRequest{
		ClientID: 7,
		UserID:   2,
		Items: []CreateSaleItemRequest{
			{ProductID: 3, Quantity: 2, UnitPrice: 100},
			{ProductID: 5, Quantity: 1, UnitPrice: 50},
		},
		Total: 250,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(41), saleID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSale_RollsBackWhenLastItemInsertFails(t *testing.T) {
	svc, mock := newSaleServiceWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sales`)).
		WithArgs(int64(7), int64(2), 250.0, 0.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(41)))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sale_items`)).
		WithArgs(int64(41), int64(3), 2, 100.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sale_items`)).
		WithArgs(int64(41), int64(5), 1, 50.0).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	saleID, err := svc.CreateSale(CreateSaleRequest{
		ClientID: 7,
		UserID:   2,
		Items: []CreateSaleItemRequest{
			{ProductID: 3, Quantity: 2, UnitPrice: 100},
			{ProductID: 5, Quantity: 1, UnitPrice: 50},
		},
		Total: 250,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSaleProcessing)
	assert.Zero(t, saleID)
	// The rollback expectation proves no header row survives the failure.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSale_RollsBackWhenHeaderInsertFails(t *testing.T) {
	svc, mock := newSaleServiceWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sales`)).
		WillReturnError(errors.New("header insert failed"))
	mock.ExpectRollback()

	_, err := svc.CreateSale(CreateSaleRequest{
		ClientID: 7,
		UserID:   2,
		Items:    []CreateSaleItemRequest{{ProductID: 3, Quantity: 1, UnitPrice: 10}},
		Total:    10,
	})

	assert.ErrorIs(t, err, ErrSaleProcessing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSale_ValidationRunsBeforeAnyTransaction(t *testing.T) {
	tests := []struct {
		name string
		req  CreateSaleRequest
	}{
		{
			name: "missing client",
			req: CreateSaleRequest{
				UserID: 2,
				Items:  []CreateSaleItemRequest{{ProductID: 3, Quantity: 1, UnitPrice: 10}},
				Total:  10,
			},
		},
		{
			name: "missing staff",
			req: CreateSaleRequest{
				ClientID: 7,
				Items:    []CreateSaleItemRequest{{ProductID: 3, Quantity: 1, UnitPrice: 10}},
				Total:    10,
			},
		},
		{
			name: "empty item list",
			req:  CreateSaleRequest{ClientID: 7, UserID: 2, Total: 0},
		},
		{
			name: "non-positive quantity",
			req: CreateSaleRequest{
				ClientID: 7,
				UserID:   2,
				Items:    []CreateSaleItemRequest{{ProductID: 3, Quantity: 0, UnitPrice: 10}},
				Total:    0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mock := newSaleServiceWithMock(t)

			_, err := svc.CreateSale(tt.req)

			assert.ErrorIs(t, err, ErrSaleValidation)
			// No Begin was ever expected: a validation failure must not
			// touch the database.
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateSale_DefaultsDiscountToZero(t *testing.T) {
	svc, mock := newSaleServiceWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sales`)).
		WithArgs(int64(1), int64(1), 100.0, 0.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sale_items`)).
		WithArgs(int64(9), int64(4), 1, 100.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	saleID, err := svc.CreateSale(CreateSaleRequest{
		ClientID: 1,
		UserID:   1,
		Items:    []CreateSaleItemRequest{{ProductID: 4, Quantity: 1, UnitPrice: 100}},
		Total:    100,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(9), saleID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSales_AttachesItemsToTheirSales(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	svc := NewSaleService(repositories.NewSaleRepository(db), db)

	soldAt := time.Date(2026, 8, 30, 10, 15, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM sales s`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sold_at", "client_id", "user_id", "total", "discount", "client_name", "user_name"}).
			AddRow(int64(2), soldAt, int64(7), int64(2), 250.0, 0.0, "Ana Perez", "Recepcion Uno").
			AddRow(int64(1), soldAt, int64(8), int64(2), 50.0, 0.0, "Juan Lopez", "Recepcion Uno"))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM sale_items si`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "sale_id", "product_id", "quantity", "unit_price", "product_description"}).
			AddRow(int64(10), int64(2), int64(3), 2, 100.0, "Blood panel").
			AddRow(int64(11), int64(2), int64(5), 1, 50.0, "Urinalysis").
			AddRow(int64(12), int64(1), int64(5), 1, 50.0, "Urinalysis"))

	sales, err := svc.GetSales(models.SaleFilters{})
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Len(t, sales[0].Items, 2)
	assert.Len(t, sales[1].Items, 1)
	assert.Equal(t, "Blood panel", sales[0].Items[0].ProductDescription)
	assert.NoError(t, mock.ExpectationsWereMet())
}
