package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) ListNotifications(c *gin.Context) {
	notifications, err := a.notifications.List(c.Request.Context())
	if err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (a *API) MarkNotificationRead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := a.notifications.MarkRead(c.Request.Context(), id); err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

func (a *API) MarkAllNotificationsRead(c *gin.Context) {
	if err := a.notifications.MarkAllRead(c.Request.Context()); err != nil {
		a.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All marked as read"})
}
