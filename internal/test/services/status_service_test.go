package services_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicehub-backend/internal/models"
	"servicehub-backend/internal/services"
	"servicehub-backend/internal/supabase"
)

// newStatusService backs a StatusService with a mock database and an
// httptest storage endpoint that answers every request with storageStatus.
// It returns the service, the database mock, and the storage base URL for
// building public image URLs that resolve into the test bucket.
func newStatusService(t *testing.T, storageStatus int) (*services.StatusService, sqlmock.Sqlmock, string) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(storageStatus)
		if storageStatus == http.StatusOK {
			fmt.Fprint(w, "[]")
		} else {
			fmt.Fprint(w, `{"statusCode":"500","error":"Internal","message":"storage unavailable"}`)
		}
	}))
	t.Cleanup(server.Close)

	storageClient, err := supabase.NewStorageClient(server.URL, "service-key", "attachments")
	require.NoError(t, err)

	svc := services.NewStatusService(supabase.NewDatabaseClientWithDB(db), storageClient)
	return svc, mock, server.URL
}

func publicImageURL(baseURL string, providerID uuid.UUID) string {
	return fmt.Sprintf("%s/storage/v1/object/public/attachments/providers/%s/statuses/%s/before.jpg",
		baseURL, providerID, uuid.New())
}

func expectGetStatus(mock sqlmock.Sqlmock, statusID, providerID uuid.UUID, imageURLs string) {
	mock.ExpectQuery("SELECT id, provider_id, caption, image_urls, like_count, created_at").
		WithArgs(statusID).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "provider_id", "caption", "image_urls", "like_count", "created_at"}).
			AddRow(statusID, providerID, "Before and after", []byte(imageURLs), 0, time.Now()))
}

func TestStatusService_Delete(t *testing.T) {
	svc, mock, baseURL := newStatusService(t, http.StatusOK)

	statusID := uuid.New()
	providerID := uuid.New()

	expectGetStatus(mock, statusID, providerID,
		fmt.Sprintf(`[%q]`, publicImageURL(baseURL, providerID)))
	mock.ExpectExec("DELETE FROM status_updates").
		WithArgs(statusID, providerID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.Delete(statusID, providerID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusService_Delete_StorageFailureKeepsRow(t *testing.T) {
	svc, mock, baseURL := newStatusService(t, http.StatusInternalServerError)

	statusID := uuid.New()
	providerID := uuid.New()

	expectGetStatus(mock, statusID, providerID,
		fmt.Sprintf(`[%q]`, publicImageURL(baseURL, providerID)))

	err := svc.Delete(statusID, providerID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete status images")
	// No row DELETE was expected: the storage error must stop the delete
	// before it reaches the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatusService_Delete_NotOwner(t *testing.T) {
	svc, mock, baseURL := newStatusService(t, http.StatusOK)

	statusID := uuid.New()
	ownerID := uuid.New()

	expectGetStatus(mock, statusID, ownerID,
		fmt.Sprintf(`[%q]`, publicImageURL(baseURL, ownerID)))

	err := svc.Delete(statusID, uuid.New())
	assert.ErrorIs(t, err, models.ErrNotOwner)
	assert.NoError(t, mock.ExpectationsWereMet())
}
