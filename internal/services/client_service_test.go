package services

import (
	"regexp"
	"testing"

	"arlab_backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientServiceWithMock(t *testing.T) (ClientService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewClientService(repositories.NewClientRepository(db), db), mock
}

func TestDeleteClient_ReferencedBySalesReportsInUse(t *testing.T) {
	svc, mock := newClientServiceWithMock(t)

	// The driver surfaces a typed FK violation, not a bare string.
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM clients`)).
		WithArgs(int64(7)).
		WillReturnError(&pq.Error{Code: "23503"})

	err := svc.DeleteClient(7)

	assert.ErrorIs(t, err, ErrClientInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteClient_Success(t *testing.T) {
	svc, mock := newClientServiceWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM clients`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, svc.DeleteClient(7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteClient_UnknownIDReportsNotFound(t *testing.T) {
	svc, mock := newClientServiceWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM clients`)).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.DeleteClient(99)

	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateClient_BlankNameRejected(t *testing.T) {
	svc, mock := newClientServiceWithMock(t)

	_, err := svc.CreateClient(CreateClientRequest{Name: "   "})

	assert.ErrorIs(t, err, ErrClientValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetClients_NoMatchesReturnsEmptySlice(t *testing.T) {
	svc, mock := newClientServiceWithMock(t)

	search := "nobody"
	mock.ExpectQuery(regexp.QuoteMeta(`FROM clients`)).
		WithArgs("%nobody%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "dni", "name", "phone", "address", "billing_name"}))

	clients, err := svc.GetClients(&search)

	require.NoError(t, err)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetClientByID_NotFound(t *testing.T) {
	svc, mock := newClientServiceWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM clients WHERE id = $1`)).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "dni", "name", "phone", "address", "billing_name"}))

	_, err := svc.GetClientByID(404)

	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
