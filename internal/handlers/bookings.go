package handlers

import (
	"database/sql"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"servicehub-backend/internal/middleware"
	"servicehub-backend/internal/models"
	"servicehub-backend/internal/supabase"
)

type BookingsHandler struct {
	dbClient       *supabase.DatabaseClient
	storageClient  *supabase.StorageClient
	realtimeClient *supabase.RealtimeClient
}

func NewBookingsHandler(dbClient *supabase.DatabaseClient, storageClient *supabase.StorageClient, realtimeClient *supabase.RealtimeClient) *BookingsHandler {
	return &BookingsHandler{
		dbClient:       dbClient,
		storageClient:  storageClient,
		realtimeClient: realtimeClient,
	}
}

// CreateBooking godoc
// @Summary     Create a booking
// @Description Client books a provider, optionally against a specific service.
// @Tags        bookings
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateBookingRequest true "Booking"
// @Success     200 {object} models.BookingResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /bookings [post]
func (h *BookingsHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	providerID, err := uuid.Parse(req.ProviderID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid provider id"})
		return
	}

	var serviceID uuid.NullUUID
	if req.ServiceID != "" {
		id, err := uuid.Parse(req.ServiceID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid service id"})
			return
		}
		serviceID = uuid.NullUUID{UUID: id, Valid: true}
	}

	var scheduledFor sql.NullTime
	if req.ScheduledFor != "" {
		parsed, err := time.Parse(time.RFC3339, req.ScheduledFor)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid scheduled_for", Message: err.Error()})
			return
		}
		scheduledFor = sql.NullTime{Time: parsed, Valid: true}
	}

	booking, err := h.dbClient.CreateBooking(userID, providerID, serviceID, scheduledFor, req.QuoteDescription)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookingResponse(booking))
}

// ListBookings godoc
// @Summary     List bookings
// @Description Lists bookings where the caller is client or provider.
// @Tags        bookings
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.BookingListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /bookings [get]
func (h *BookingsHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	bookings, err := h.dbClient.ListBookings(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := models.BookingListResponse{Bookings: make([]models.BookingResponse, len(bookings))}
	for i := range bookings {
		resp.Bookings[i] = bookingResponse(&bookings[i])
	}

	c.JSON(http.StatusOK, resp)
}

// GetBooking godoc
// @Summary     Get a booking
// @Tags        bookings
// @Produce     json
// @Security    Bearer
// @Param       booking_id path string true "Booking ID (UUID)"
// @Success     200 {object} models.BookingResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /bookings/{booking_id} [get]
func (h *BookingsHandler) GetBooking(c *gin.Context) {
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

	booking, err := h.dbClient.GetBooking(bookingID)
	if err != nil {
		writeError(c, err)
		return
	}
	if booking.ClientID != userID && booking.ProviderID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "forbidden"})
		return
	}

	c.JSON(http.StatusOK, bookingResponse(booking))
}

// ConfirmBooking godoc
// @Summary     Confirm a booking
// @Description Provider accepts a pending booking.
// @Tags        bookings
// @Produce     json
// @Security    Bearer
// @Param       booking_id path string true "Booking ID (UUID)"
// @Success     200 {object} models.BookingResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /bookings/{booking_id}/confirm [post]
func (h *BookingsHandler) ConfirmBooking(c *gin.Context) {
	h.transition(c, h.dbClient.ConfirmBooking)
}

// CancelBooking godoc
// @Summary     Cancel a booking
// @Description Either party cancels a booking that is not yet completed.
// @Tags        bookings
// @Produce     json
// @Security    Bearer
// @Param       booking_id path string true "Booking ID (UUID)"
// @Success     200 {object} models.BookingResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /bookings/{booking_id}/cancel [post]
func (h *BookingsHandler) CancelBooking(c *gin.Context) {
	h.transition(c, h.dbClient.CancelBooking)
}

// CompleteBooking godoc
// @Summary     Complete a booking
// @Description Provider marks the work done. Refused unless the booking's quotation has been approved by the client.
// @Tags        bookings
// @Produce     json
// @Security    Bearer
// @Param       booking_id path string true "Booking ID (UUID)"
// @Success     200 {object} models.BookingResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /bookings/{booking_id}/complete [post]
func (h *BookingsHandler) CompleteBooking(c *gin.Context) {
	h.transition(c, h.dbClient.CompleteBooking)
}

func (h *BookingsHandler) transition(c *gin.Context, fn func(bookingID, userID uuid.UUID) (*models.Booking, error)) {
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

	booking, err := fn(bookingID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	_ = h.realtimeClient.PublishUserEvent(booking.ClientID, "booking_updated",
		supabase.BookingStatusPayload(booking.ID, booking.Status))
	_ = h.realtimeClient.PublishUserEvent(booking.ProviderID, "booking_updated",
		supabase.BookingStatusPayload(booking.ID, booking.Status))

	c.JSON(http.StatusOK, bookingResponse(booking))
}

// CreateQuotation godoc
// @Summary     Provide a quotation
// @Description Provider attaches a priced quotation to a confirmed booking, advancing it to quote-provided. Accepts multipart with an "amount" field and an optional "attachment" file.
// @Tags        quotations
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       booking_id path string true "Booking ID (UUID)"
// @Param       amount formData number true "Quoted amount"
// @Param       attachment formData file false "Quotation attachment"
// @Success     200 {object} models.QuotationResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /bookings/{booking_id}/quotation [post]
func (h *BookingsHandler) CreateQuotation(c *gin.Context) {
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

	var form struct {
		Amount float64 `form:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	var attachmentURL string
	if fileHeader, err := c.FormFile("attachment"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to open attachment", Message: err.Error()})
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read attachment", Message: err.Error()})
			return
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		attachmentURL, err = h.storageClient.UploadFile(
			supabase.QuotationAttachmentPath(userID, bookingID, fileHeader.Filename), contentType, data)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to upload attachment",
				Message: err.Error(),
			})
			return
		}
	}

	quotation, err := h.dbClient.CreateQuotation(bookingID, userID, form.Amount, attachmentURL)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, quotationResponse(quotation))
}

// GetQuotation godoc
// @Summary     Get a booking's quotation
// @Tags        quotations
// @Produce     json
// @Security    Bearer
// @Param       booking_id path string true "Booking ID (UUID)"
// @Success     200 {object} models.QuotationResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /bookings/{booking_id}/quotation [get]
func (h *BookingsHandler) GetQuotation(c *gin.Context) {
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

	booking, err := h.dbClient.GetBooking(bookingID)
	if err != nil {
		writeError(c, err)
		return
	}
	if booking.ClientID != userID && booking.ProviderID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "forbidden"})
		return
	}

	quotation, err := h.dbClient.GetQuotationByBooking(bookingID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, quotationResponse(quotation))
}

// ApproveQuotation godoc
// @Summary     Approve a quotation
// @Description Client approves the provider's quotation, unlocking completion.
// @Tags        quotations
// @Produce     json
// @Security    Bearer
// @Param       quotation_id path string true "Quotation ID (UUID)"
// @Success     200 {object} models.QuotationResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /quotations/{quotation_id}/approve [post]
func (h *BookingsHandler) ApproveQuotation(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	quotationID, err := uuid.Parse(c.Param("quotation_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid quotation id"})
		return
	}

	quotation, err := h.dbClient.ApproveQuotation(quotationID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	_ = h.realtimeClient.PublishUserEvent(quotation.ProviderID, "booking_updated",
		supabase.BookingStatusPayload(quotation.BookingID, models.BookingStatusQuoteProvided))

	c.JSON(http.StatusOK, quotationResponse(quotation))
}
