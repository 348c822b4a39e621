package handler

import (
	"errors"
	"net/http"

	"github.com/NikhilBollineni/newsproject/repository"
	"github.com/NikhilBollineni/newsproject/service"
	"github.com/NikhilBollineni/newsproject/types"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifications *service.NotificationService
}

func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) HandleListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   h.notifications.List(),
	})
}

func (h *NotificationHandler) HandleCreateNotification(c *gin.Context) {
	var req types.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}
	if req.Title == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "title and message are required",
		})
		return
	}
	priority := req.Priority
	if priority == "" {
		priority = types.PriorityLow
	}
	n := h.notifications.Create(types.Notification{
		Type:     req.Type,
		Title:    req.Title,
		Message:  req.Message,
		Priority: priority,
		Payload:  req.Payload,
	})
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   n,
	})
}

func (h *NotificationHandler) HandleMarkRead(c *gin.Context) {
	if err := h.notifications.MarkRead(c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, types.DataResponse{
				Status:  false,
				Message: "notification not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: "operation failed",
		})
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{Status: true})
}

func (h *NotificationHandler) HandleUnreadCount(c *gin.Context) {
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   types.UnreadCountPayload{Count: h.notifications.UnreadCount()},
	})
}
