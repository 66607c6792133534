package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/inventory-project/inventory-server/internal/api/middleware"
	"github.com/inventory-project/inventory-server/internal/database/queries"
	"github.com/inventory-project/inventory-server/internal/models"
)

// UserStore is the slice of the account store the auth endpoints use.
type UserStore interface {
	CreateUser(username, email, password string) (*models.User, error)
	VerifyCredentials(username, password, loginIP string) (*models.User, error)
}

// AuthHandler handles signup and signin
type AuthHandler struct {
	users       UserStore
	jwtSecret   string
	tokenExpiry time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users UserStore, jwtSecret string, tokenExpiry time.Duration) *AuthHandler {
	return &AuthHandler{
		users:       users,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
	}
}

// Signup registers a new user
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
		return
	}

	logCtx := logrus.WithField("username", req.Username)
	user, err := h.users.CreateUser(req.Username, req.Email, req.Password)
	if err != nil {
		writeStoreError(c, err, logCtx)
		return
	}

	logCtx.WithField("user_id", user.ID).Info("User registered")
	c.JSON(http.StatusCreated, gin.H{"message": "user registered successfully"})
}

// Signin verifies credentials and issues a bearer token
func (h *AuthHandler) Signin(c *gin.Context) {
	var req models.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	user, err := h.users.VerifyCredentials(req.Username, req.Password, c.ClientIP())
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		logrus.WithError(err).WithField("username", req.Username).Error("Credential check failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	token, err := middleware.GenerateUserToken(h.jwtSecret, user, h.tokenExpiry)
	if err != nil {
		logrus.WithError(err).Error("Failed to sign token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create token"})
		return
	}

	logrus.WithField("user_id", user.ID).Info("User signed in")
	c.JSON(http.StatusOK, models.SigninResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	})
}
