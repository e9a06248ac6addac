package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"servicehub-backend/internal/models"
	"servicehub-backend/internal/supabase"
)

// AdminHandler groups the moderation surface. Every route it serves sits
// behind RequireAdmin, which checks the role stored in the database rather
// than anything the token claims.
type AdminHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewAdminHandler(dbClient *supabase.DatabaseClient) *AdminHandler {
	return &AdminHandler{dbClient: dbClient}
}

// ListUsers godoc
// @Summary     List users
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.UserListResponse
// @Failure     403 {object} models.ErrorResponse
// @Router      /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	profiles, err := h.dbClient.ListProfiles()
	if err != nil {
		writeError(c, err)
		return
	}

	resp := models.UserListResponse{Users: make([]models.UserSummary, len(profiles))}
	for i, p := range profiles {
		resp.Users[i] = models.UserSummary{
			ID:        p.ID.String(),
			Role:      string(p.Role),
			FullName:  p.FullName,
			CreatedAt: p.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, resp)
}

// ChangeRole godoc
// @Summary     Change a user's role
// @Description Assigns one of the known roles. Unknown role names are rejected.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       user_id path string true "User ID (UUID)"
// @Param       request body models.ChangeRoleRequest true "New role"
// @Success     200 {object} models.SuccessResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/users/{user_id}/role [put]
func (h *AdminHandler) ChangeRole(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid user id"})
		return
	}

	var req models.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown role", Message: err.Error()})
		return
	}

	if err := h.dbClient.UpdateRole(userID, role); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "role updated"})
}

// ListPendingServices godoc
// @Summary     List services awaiting moderation
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ServiceListResponse
// @Failure     403 {object} models.ErrorResponse
// @Router      /admin/services [get]
func (h *AdminHandler) ListPendingServices(c *gin.Context) {
	status := c.DefaultQuery("status", models.ServiceStatusPending)

	services, err := h.dbClient.ListServicesByStatus(status)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := models.ServiceListResponse{
		Services: make([]models.ServiceResponse, len(services)),
		Total:    len(services),
	}
	for i := range services {
		resp.Services[i] = serviceResponse(&services[i])
	}

	c.JSON(http.StatusOK, resp)
}

// ApproveService godoc
// @Summary     Approve a service listing
// @Description Makes the listing visible in public search and notifies the provider.
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Param       service_id path string true "Service ID (UUID)"
// @Success     200 {object} models.ServiceResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/services/{service_id}/approve [post]
func (h *AdminHandler) ApproveService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid service id"})
		return
	}

	service, err := h.dbClient.ApproveService(serviceID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, serviceResponse(service))
}

// RejectService godoc
// @Summary     Reject a service listing
// @Description Marks the listing rejected with an optional reason and notifies the provider.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       service_id path string true "Service ID (UUID)"
// @Param       request body models.RejectServiceRequest false "Rejection reason"
// @Success     200 {object} models.ServiceResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/services/{service_id}/reject [post]
func (h *AdminHandler) RejectService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid service id"})
		return
	}

	var req models.RejectServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	service, err := h.dbClient.RejectService(serviceID, req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, serviceResponse(service))
}
