package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"servicehub-backend/internal/models"
	"servicehub-backend/internal/supabase"
)

// writeError maps workflow rule violations to status codes: missing rows to
// 404, ownership/participation failures to 403, state conflicts to 409,
// everything else to 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, supabase.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
	case errors.Is(err, models.ErrNotOwner), errors.Is(err, models.ErrNotParticipant):
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "forbidden"})
	case errors.Is(err, models.ErrPostClosed),
		errors.Is(err, models.ErrPostExpired),
		errors.Is(err, models.ErrPostFull),
		errors.Is(err, models.ErrDuplicateProposal),
		errors.Is(err, models.ErrProposalDecided),
		errors.Is(err, models.ErrBookingState),
		errors.Is(err, models.ErrQuotationExists),
		errors.Is(err, models.ErrQuotationRequired),
		errors.Is(err, models.ErrAlreadyReviewed):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "conflict", Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error", Message: err.Error()})
	}
}
