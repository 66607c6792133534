package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/inventory-project/inventory-server/internal/api/middleware"
	"github.com/inventory-project/inventory-server/internal/models"
)

// ReminderSource computes the password reminder feed for a user.
type ReminderSource interface {
	PasswordReminders(owner uuid.UUID) ([]models.Reminder, error)
}

type NotificationHandler struct {
	reminders ReminderSource
}

func NewNotificationHandler(reminders ReminderSource) *NotificationHandler {
	return &NotificationHandler{reminders: reminders}
}

// GetReminders returns the freshly computed password reminders for the
// authenticated user
func (h *NotificationHandler) GetReminders(c *gin.Context) {
	user := middleware.CurrentUser(c)

	reminders, err := h.reminders.PasswordReminders(user.ID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("Failed to compute reminders")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, reminders)
}
