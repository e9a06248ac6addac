package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"servicehub-backend/internal/middleware"
	"servicehub-backend/internal/models"
	"servicehub-backend/internal/supabase"
)

type ServicesHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewServicesHandler(dbClient *supabase.DatabaseClient) *ServicesHandler {
	return &ServicesHandler{dbClient: dbClient}
}

// CreateService godoc
// @Summary     Create a service listing
// @Description Creates a pending listing. It does not appear in search until an admin approves it.
// @Tags        services
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.CreateServiceRequest true "Service"
// @Success     200 {object} models.ServiceResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /services [post]
func (h *ServicesHandler) CreateService(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	var req models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	service, err := h.dbClient.CreateService(userID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, serviceResponse(service))
}

// SearchServices godoc
// @Summary     Search approved services
// @Description Filtered, paginated search over approved listings. All filters are optional and combine with AND.
// @Tags        services
// @Produce     json
// @Param       q        query string false "Free-text match against title and description"
// @Param       category query string false "Exact category"
// @Param       province query string false "Province served"
// @Param       city     query string false "City served"
// @Param       limit    query int    false "Page size (default 20, max 100)"
// @Param       offset   query int    false "Page offset"
// @Success     200 {object} models.ServiceListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /services [get]
func (h *ServicesHandler) SearchServices(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	services, total, err := h.dbClient.SearchServices(supabase.ServiceSearchParams{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Province: c.Query("province"),
		City:     c.Query("city"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	resp := models.ServiceListResponse{
		Services: make([]models.ServiceResponse, len(services)),
		Total:    total,
	}
	for i := range services {
		resp.Services[i] = serviceResponse(&services[i])
	}

	c.JSON(http.StatusOK, resp)
}

// GetService godoc
// @Summary     Get a service listing
// @Description Only approved listings are visible here; providers see their own via /services/mine.
// @Tags        services
// @Produce     json
// @Param       service_id path string true "Service ID (UUID)"
// @Success     200 {object} models.ServiceResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /services/{service_id} [get]
func (h *ServicesHandler) GetService(c *gin.Context) {
	serviceID, err := uuid.Parse(c.Param("service_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid service id"})
		return
	}

	service, err := h.dbClient.GetService(serviceID)
	if err != nil {
		writeError(c, err)
		return
	}
	if service.Status != models.ServiceStatusApproved {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "service not found"})
		return
	}

	c.JSON(http.StatusOK, serviceResponse(service))
}

// ListMyServices godoc
// @Summary     List the caller's service listings
// @Description All of the provider's own listings, including pending and rejected ones.
// @Tags        services
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ServiceListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /services/mine [get]
func (h *ServicesHandler) ListMyServices(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	services, err := h.dbClient.ListProviderServices(userID)
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
