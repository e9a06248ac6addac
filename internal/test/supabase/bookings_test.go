package supabase_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicehub-backend/internal/models"
	"servicehub-backend/internal/supabase"
)

// The DISTINCT provider sample must run in a subquery: Postgres rejects
// SELECT DISTINCT paired with ORDER BY random() outright, which would make
// every quote-request approval fail before creating any bookings.
var providerSamplePattern = regexp.QuoteMeta("SELECT provider_id FROM (")

func expectQuoteRequestLock(mock sqlmock.Sqlmock, qr models.QuoteRequest) {
	mock.ExpectQuery("SELECT id, requester_id, category, description, status, created_at").
		WithArgs(qr.ID).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "requester_id", "category", "description", "status", "created_at"}).
			AddRow(qr.ID, qr.RequesterID, qr.Category, qr.Description, qr.Status, qr.CreatedAt))
}

func TestApproveQuoteRequest_FanOut(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	client := supabase.NewDatabaseClientWithDB(db)

	qr := models.QuoteRequest{
		ID:          uuid.New(),
		RequesterID: uuid.New(),
		Category:    "plumbing",
		Description: "Leaking kitchen tap",
		Status:      models.QuoteRequestStatusPending,
		CreatedAt:   time.Now(),
	}
	providerA := uuid.New()
	providerB := uuid.New()
	bookingA := uuid.New()
	bookingB := uuid.New()

	mock.ExpectBegin()
	expectQuoteRequestLock(mock, qr)
	mock.ExpectQuery(providerSamplePattern).
		WithArgs(models.ServiceStatusApproved, qr.Category).
		WillReturnRows(sqlmock.NewRows([]string{"provider_id"}).
			AddRow(providerA).AddRow(providerB))
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(qr.RequesterID, providerA, models.BookingStatusPending, qr.Description).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(bookingA))
	mock.ExpectExec("INSERT INTO notifications").
		WithArgs(providerA, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(qr.RequesterID, providerB, models.BookingStatusPending, qr.Description).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(bookingB))
	mock.ExpectExec("INSERT INTO notifications").
		WithArgs(providerB, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE quote_requests SET status").
		WithArgs(models.QuoteRequestStatusApproved, qr.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO notifications").
		WithArgs(qr.RequesterID, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := client.ApproveQuoteRequest(qr.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, models.QuoteRequestStatusApproved, result.Request.Status)
	assert.Equal(t, []uuid.UUID{bookingA, bookingB}, result.BookingIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveQuoteRequest_CapsAtFanoutSize(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	client := supabase.NewDatabaseClientWithDB(db)

	qr := models.QuoteRequest{
		ID:          uuid.New(),
		RequesterID: uuid.New(),
		Category:    "electrical",
		Description: "Replace the fuse board",
		Status:      models.QuoteRequestStatusPending,
		CreatedAt:   time.Now(),
	}
	sampled := uuid.New()
	booking := uuid.New()

	mock.ExpectBegin()
	expectQuoteRequestLock(mock, qr)
	mock.ExpectQuery(providerSamplePattern).
		WithArgs(models.ServiceStatusApproved, qr.Category).
		WillReturnRows(sqlmock.NewRows([]string{"provider_id"}).
			AddRow(sampled).AddRow(uuid.New()).AddRow(uuid.New()))
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(qr.RequesterID, sampled, models.BookingStatusPending, qr.Description).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(booking))
	mock.ExpectExec("INSERT INTO notifications").
		WithArgs(sampled, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE quote_requests SET status").
		WithArgs(models.QuoteRequestStatusApproved, qr.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO notifications").
		WithArgs(qr.RequesterID, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := client.ApproveQuoteRequest(qr.ID, 1)
	require.NoError(t, err)
	assert.Len(t, result.BookingIDs, 1)
	assert.Equal(t, []uuid.UUID{booking}, result.BookingIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveQuoteRequest_AlreadyApproved(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	client := supabase.NewDatabaseClientWithDB(db)

	qr := models.QuoteRequest{
		ID:          uuid.New(),
		RequesterID: uuid.New(),
		Category:    "plumbing",
		Description: "Leaking kitchen tap",
		Status:      models.QuoteRequestStatusApproved,
		CreatedAt:   time.Now(),
	}

	mock.ExpectBegin()
	expectQuoteRequestLock(mock, qr)
	mock.ExpectRollback()

	_, err = client.ApproveQuoteRequest(qr.ID, 5)
	assert.ErrorIs(t, err, models.ErrBookingState)
	assert.NoError(t, mock.ExpectationsWereMet())
}
