package handlers

import (
	"errors"
	"log"
	"net/http"

	response "novamart/internal/adapter/http/dto/response"
	"novamart/internal/usecase"
	"novamart/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for user notifications.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

// ListNotifications returns all notifications addressed to a user.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID := c.Query("user_id")

	notifications, err := h.usecase.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotifications(notifications))
}

// MarkNotificationRead flags a notification as read.
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	id := c.Param("id")

	n, err := h.usecase.MarkRead(c.Request.Context(), id)
	if err != nil {
		log.Printf("[notification][handler] mark read failed id=%s err=%v", id, err)
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotification(n))
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotificationID), errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
