package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"servicehub-backend/internal/middleware"
	"servicehub-backend/internal/models"
	"servicehub-backend/internal/supabase"
)

type ProfilesHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewProfilesHandler(dbClient *supabase.DatabaseClient) *ProfilesHandler {
	return &ProfilesHandler{dbClient: dbClient}
}

// GetMyProfile godoc
// @Summary     Get the caller's profile
// @Tags        profiles
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ProfileResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /profile [get]
func (h *ProfilesHandler) GetMyProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	profile, err := h.dbClient.GetProfile(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse(profile))
}

// UpdateMyProfile godoc
// @Summary     Update the caller's profile
// @Description Only the provided fields change; empty fields are left as they are.
// @Tags        profiles
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.UpdateProfileRequest true "Profile fields"
// @Success     200 {object} models.ProfileResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /profile [put]
func (h *ProfilesHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	profile, err := h.dbClient.UpdateProfile(userID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse(profile))
}

// GetProfile godoc
// @Summary     Get a user's public profile
// @Tags        profiles
// @Produce     json
// @Param       user_id path string true "User ID (UUID)"
// @Success     200 {object} models.ProfileResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /profiles/{user_id} [get]
func (h *ProfilesHandler) GetProfile(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid user id"})
		return
	}

	profile, err := h.dbClient.GetProfile(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse(profile))
}
