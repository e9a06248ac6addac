package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"servicehub-backend/internal/config"
	"servicehub-backend/internal/middleware"
	"servicehub-backend/internal/models"
	"servicehub-backend/internal/supabase"
)

type QuoteRequestsHandler struct {
	cfg            *config.Config
	dbClient       *supabase.DatabaseClient
	realtimeClient *supabase.RealtimeClient
}

func NewQuoteRequestsHandler(cfg *config.Config, dbClient *supabase.DatabaseClient, realtimeClient *supabase.RealtimeClient) *QuoteRequestsHandler {
	return &QuoteRequestsHandler{
		cfg:            cfg,
		dbClient:       dbClient,
		realtimeClient: realtimeClient,
	}
}

// CreateQuoteRequest godoc
// @Summary     Request quotes in a category
// @Description Files a quote request. Once an admin approves it, pending bookings are created for a random sample of providers in the category.
// @Tags        quote-requests
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateQuoteRequestRequest true "Quote request"
// @Success     200 {object} models.QuoteRequestResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /quote-requests [post]
func (h *QuoteRequestsHandler) CreateQuoteRequest(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	var req models.CreateQuoteRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	qr, err := h.dbClient.CreateQuoteRequest(userID, req.Category, req.Description)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, quoteRequestResponse(qr))
}

// ListQuoteRequests godoc
// @Summary     List quote requests awaiting review
// @Description Admin queue of quote requests, oldest first. Filter by status with ?status=.
// @Tags        quote-requests
// @Produce     json
// @Security    Bearer
// @Param       status query string false "Filter by status (pending, approved)"
// @Success     200 {object} models.QuoteRequestListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/quote-requests [get]
func (h *QuoteRequestsHandler) ListQuoteRequests(c *gin.Context) {
	requests, err := h.dbClient.ListQuoteRequests(c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}

	resp := models.QuoteRequestListResponse{Requests: make([]models.QuoteRequestResponse, len(requests))}
	for i := range requests {
		resp.Requests[i] = quoteRequestResponse(&requests[i])
	}

	c.JSON(http.StatusOK, resp)
}

// ApproveQuoteRequest godoc
// @Summary     Approve a quote request
// @Description Fans the request out into pending bookings for a random sample of providers offering an approved service in the category.
// @Tags        quote-requests
// @Produce     json
// @Security    Bearer
// @Param       request_id path string true "Quote request ID (UUID)"
// @Success     200 {object} models.FanoutResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /admin/quote-requests/{request_id}/approve [post]
func (h *QuoteRequestsHandler) ApproveQuoteRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request id"})
		return
	}

	result, err := h.dbClient.ApproveQuoteRequest(requestID, h.cfg.QuoteFanoutSize)
	if err != nil {
		writeError(c, err)
		return
	}

	_ = h.realtimeClient.PublishUserEvent(result.Request.RequesterID, "quote_request_approved",
		map[string]interface{}{
			"request_id":    result.Request.ID.String(),
			"booking_count": len(result.BookingIDs),
		})

	resp := models.FanoutResponse{
		RequestID:       result.Request.ID.String(),
		ProvidersPicked: len(result.BookingIDs),
		BookingIDs:      make([]string, len(result.BookingIDs)),
	}
	for i, id := range result.BookingIDs {
		resp.BookingIDs[i] = id.String()
	}

	c.JSON(http.StatusOK, resp)
}
