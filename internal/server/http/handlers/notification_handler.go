package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/giftpad/cardmarket/internal/domain/model"
	"github.com/giftpad/cardmarket/internal/server/http/dto"
)

// NotificationHandler manages in-app notification endpoints.
type NotificationHandler struct {
	facade NotificationFacade
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade}
}

// List handles GET /api/user/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	notifications, err := h.facade.Notifications(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, toNotificationResponse(n))
	}
	c.JSON(http.StatusOK, resp)
}

// Read handles POST /api/user/notifications/:id/read.
func (h *NotificationHandler) Read(c *gin.Context) {
	userID := CurrentUserID(c)
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	n, err := h.facade.ReadNotification(c.Request.Context(), id, userID)
	if err != nil {
		c.Status(statusForError(err))
		return
	}
	c.JSON(http.StatusOK, toNotificationResponse(*n))
}

// Broadcast handles POST /api/admin/notifications.
func (h *NotificationHandler) Broadcast(c *gin.Context) {
	var req dto.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	n, err := h.facade.BroadcastNotification(c.Request.Context(), req.Title, req.Message, model.NotificationKind(req.Kind), req.Link)
	if err != nil {
		c.Status(statusForError(err))
		return
	}
	c.JSON(http.StatusCreated, toNotificationResponse(*n))
}

func toNotificationResponse(n model.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Kind:      string(n.Kind),
		Link:      n.Link,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
