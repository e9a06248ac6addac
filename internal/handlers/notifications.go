package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"servicehub-backend/internal/middleware"
	"servicehub-backend/internal/models"
	"servicehub-backend/internal/supabase"
)

type NotificationsHandler struct {
	dbClient *supabase.DatabaseClient
}

func NewNotificationsHandler(dbClient *supabase.DatabaseClient) *NotificationsHandler {
	return &NotificationsHandler{dbClient: dbClient}
}

// ListNotifications godoc
// @Summary     List notifications
// @Description The caller's notifications, newest first.
// @Tags        notifications
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.NotificationListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /notifications [get]
func (h *NotificationsHandler) ListNotifications(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	notifications, err := h.dbClient.ListNotifications(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := models.NotificationListResponse{Notifications: make([]models.NotificationResponse, len(notifications))}
	for i := range notifications {
		resp.Notifications[i] = notificationResponse(&notifications[i])
	}

	c.JSON(http.StatusOK, resp)
}

// MarkNotificationRead godoc
// @Summary     Mark a notification read
// @Tags        notifications
// @Produce     json
// @Security    Bearer
// @Param       notification_id path string true "Notification ID (UUID)"
// @Success     200 {object} models.SuccessResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /notifications/{notification_id}/read [post]
func (h *NotificationsHandler) MarkNotificationRead(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	notificationID, err := uuid.Parse(c.Param("notification_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid notification id"})
		return
	}

	if err := h.dbClient.MarkNotificationRead(notificationID, userID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "notification marked read"})
}
