package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"servicehub-backend/internal/middleware"
	"servicehub-backend/internal/models"
	"servicehub-backend/internal/services"
	"servicehub-backend/internal/supabase"
)

const maxStatusImages = 6

type StatusesHandler struct {
	dbClient      *supabase.DatabaseClient
	statusService *services.StatusService
}

func NewStatusesHandler(dbClient *supabase.DatabaseClient, statusService *services.StatusService) *StatusesHandler {
	return &StatusesHandler{
		dbClient:      dbClient,
		statusService: statusService,
	}
}

// PostStatus godoc
// @Summary     Post a status update
// @Description Provider publishes a caption with up to six images to the public feed. Multipart with a "caption" field and repeated "images" files.
// @Tags        statuses
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       caption formData string true "Caption"
// @Param       images  formData file   false "Images (repeatable)"
// @Success     200 {object} models.StatusUpdateResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /statuses [post]
func (h *StatusesHandler) PostStatus(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	caption := c.PostForm("caption")
	if caption == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "caption is required"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid multipart form", Message: err.Error()})
		return
	}

	fileHeaders := form.File["images"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "at least one image is required"})
		return
	}
	if len(fileHeaders) > maxStatusImages {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "too many images"})
		return
	}

	images := make([]services.ImageUpload, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		file, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to open image", Message: err.Error()})
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read image", Message: err.Error()})
			return
		}

		contentType := fh.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		images = append(images, services.ImageUpload{
			Filename:    fh.Filename,
			ContentType: contentType,
			Data:        data,
		})
	}

	status, err := h.statusService.Post(userID, caption, images)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, statusUpdateResponse(status))
}

// ListStatuses godoc
// @Summary     Status feed
// @Description Public reverse-chronological feed of provider status updates.
// @Tags        statuses
// @Produce     json
// @Param       limit  query int false "Page size (default 20, max 100)"
// @Param       offset query int false "Page offset"
// @Success     200 {object} models.StatusFeedResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /statuses [get]
func (h *StatusesHandler) ListStatuses(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	statuses, err := h.dbClient.ListStatusUpdates(limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := models.StatusFeedResponse{Statuses: make([]models.StatusUpdateResponse, len(statuses))}
	for i := range statuses {
		resp.Statuses[i] = statusUpdateResponse(&statuses[i])
	}

	c.JSON(http.StatusOK, resp)
}

// LikeStatus godoc
// @Summary     Like a status update
// @Description Increments the like counter and returns the new count.
// @Tags        statuses
// @Produce     json
// @Security    Bearer
// @Param       status_id path string true "Status ID (UUID)"
// @Success     200 {object} models.LikeResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /statuses/{status_id}/like [post]
func (h *StatusesHandler) LikeStatus(c *gin.Context) {
	statusID, err := uuid.Parse(c.Param("status_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid status id"})
		return
	}

	likes, err := h.dbClient.LikeStatusUpdate(statusID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LikeResponse{StatusID: statusID.String(), Likes: likes})
}

// DeleteStatus godoc
// @Summary     Delete a status update
// @Description Removes the stored images first, then the row. If image removal fails the status stays visible.
// @Tags        statuses
// @Produce     json
// @Security    Bearer
// @Param       status_id path string true "Status ID (UUID)"
// @Success     200 {object} models.SuccessResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /statuses/{status_id} [delete]
func (h *StatusesHandler) DeleteStatus(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	statusID, err := uuid.Parse(c.Param("status_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid status id"})
		return
	}

	if err := h.statusService.Delete(statusID, userID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "status deleted"})
}
