package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"servicehub-backend/internal/middleware"
	"servicehub-backend/internal/models"
	"servicehub-backend/internal/supabase"
)

type ReviewsHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewReviewsHandler(dbClient *supabase.DatabaseClient) *ReviewsHandler {
	return &ReviewsHandler{dbClient: dbClient}
}

// CreateReview godoc
// @Summary     Review a completed booking
// @Description Client rates the provider once per booking, only after completion.
// @Tags        reviews
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       booking_id path string true "Booking ID (UUID)"
// @Param       request body models.CreateReviewRequest true "Review"
// @Success     200 {object} models.ReviewResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /bookings/{booking_id}/review [post]
func (h *ReviewsHandler) CreateReview(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("booking_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	review, err := h.dbClient.CreateReview(bookingID, userID, req.Rating, req.Comment)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviewResponse(review))
}

// ListProviderReviews godoc
// @Summary     List a provider's reviews
// @Tags        reviews
// @Produce     json
// @Param       provider_id path string true "Provider ID (UUID)"
// @Success     200 {object} models.ReviewListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /providers/{provider_id}/reviews [get]
func (h *ReviewsHandler) ListProviderReviews(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("provider_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid provider id"})
		return
	}

	reviews, err := h.dbClient.ListProviderReviews(providerID)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := models.ReviewListResponse{Reviews: make([]models.ReviewResponse, len(reviews))}
	for i := range reviews {
		resp.Reviews[i] = reviewResponse(&reviews[i])
	}

	c.JSON(http.StatusOK, resp)
}
