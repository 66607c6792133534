package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventory-project/inventory-server/internal/api/middleware"
	"github.com/inventory-project/inventory-server/internal/models"
)

type fakeReminderSource struct {
	reminders []models.Reminder
	err       error
	lastOwner uuid.UUID
}

func (f *fakeReminderSource) PasswordReminders(owner uuid.UUID) ([]models.Reminder, error) {
	f.lastOwner = owner
	return f.reminders, f.err
}

func notificationTestRouter(src *fakeReminderSource, user *models.User) (*gin.Engine, string) {
	gin.SetMode(gin.TestMode)
	handler := NewNotificationHandler(src)

	router := gin.New()
	notifications := router.Group("/api/notifications")
	notifications.Use(middleware.AuthMiddleware("test-secret", &fakeUserResolver{user: user}))
	notifications.GET("/get_reminders", handler.GetReminders)

	token, err := middleware.GenerateUserToken("test-secret", user, time.Hour)
	if err != nil {
		panic(err)
	}
	return router, token
}

func TestGetReminders(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "alice"}
	src := &fakeReminderSource{reminders: []models.Reminder{{
		ItemID:     uuid.New(),
		ServerName: "web-01",
		Kind:       models.ReminderExpired,
		Message:    "DB password for server 'web-01' has EXPIRED! Please change immediately.",
		Date:       models.Today(),
	}}}
	router, token := notificationTestRouter(src, user)

	w := doJSON(router, http.MethodGet, "/api/notifications/get_reminders", token, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var reminders []models.Reminder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reminders))
	require.Len(t, reminders, 1)
	assert.Equal(t, models.ReminderExpired, reminders[0].Kind)
	assert.Equal(t, user.ID, src.lastOwner)
}

func TestGetRemindersEmpty(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "alice"}
	router, token := notificationTestRouter(&fakeReminderSource{reminders: []models.Reminder{}}, user)

	w := doJSON(router, http.MethodGet, "/api/notifications/get_reminders", token, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetRemindersStorageError(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "alice"}
	router, token := notificationTestRouter(&fakeReminderSource{err: errors.New("connection reset")}, user)

	w := doJSON(router, http.MethodGet, "/api/notifications/get_reminders", token, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestGetRemindersRequireAuthentication(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "alice"}
	router, _ := notificationTestRouter(&fakeReminderSource{}, user)

	w := doJSON(router, http.MethodGet, "/api/notifications/get_reminders", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
