package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicehub-backend/internal/handlers"
	"servicehub-backend/internal/models"
	"servicehub-backend/internal/supabase"
)

func TestListStatuses_CorruptImageColumnDoesNotFailFeed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	handler := handlers.NewStatusesHandler(supabase.NewDatabaseClientWithDB(db), nil)
	router := gin.New()
	router.GET("/statuses", handler.ListStatuses)

	goodID := uuid.New()
	corruptID := uuid.New()
	mock.ExpectQuery("SELECT id, provider_id, caption, image_urls, like_count, created_at").
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "provider_id", "caption", "image_urls", "like_count", "created_at"}).
			AddRow(goodID, uuid.New(), "New kitchen", []byte(`["https://cdn.test/a.jpg"]`), 3, time.Now()).
			AddRow(corruptID, uuid.New(), "Bad row", []byte(`{"not":"an array"`), 0, time.Now()))

	req, _ := http.NewRequest("GET", "/statuses", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.StatusFeedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Statuses, 2)
	assert.Equal(t, goodID.String(), resp.Statuses[0].ID)
	assert.Equal(t, []string{"https://cdn.test/a.jpg"}, resp.Statuses[0].ImageURLs)
	// The corrupt jsonb row still appears, just without its images.
	assert.Equal(t, corruptID.String(), resp.Statuses[1].ID)
	assert.Empty(t, resp.Statuses[1].ImageURLs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
