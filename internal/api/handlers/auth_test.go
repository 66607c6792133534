package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventory-project/inventory-server/internal/database/queries"
	"github.com/inventory-project/inventory-server/internal/models"
)

type fakeUserStore struct {
	createdUser   *models.User
	createErr     error
	verifiedUser  *models.User
	verifyErr     error
	lastLoginIP   string
	createCalls   int
	verifyCalls   int
	lastSignupReq [3]string
}

func (f *fakeUserStore) CreateUser(username, email, password string) (*models.User, error) {
	f.createCalls++
	f.lastSignupReq = [3]string{username, email, password}
	return f.createdUser, f.createErr
}

func (f *fakeUserStore) VerifyCredentials(username, password, loginIP string) (*models.User, error) {
	f.verifyCalls++
	f.lastLoginIP = loginIP
	return f.verifiedUser, f.verifyErr
}

func authTestRouter(store *fakeUserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(store, "test-secret", time.Hour)
	router := gin.New()
	router.POST("/api/auth/signup", handler.Signup)
	router.POST("/api/auth/signin", handler.Signin)
	return router
}

func postJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSignupSuccess(t *testing.T) {
	store := &fakeUserStore{createdUser: &models.User{ID: uuid.New(), Username: "alice"}}
	router := authTestRouter(store)

	w := postJSON(router, "/api/auth/signup", gin.H{
		"username": "alice", "email": "alice@example.com", "password": "pw",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, store.createCalls)
	assert.Equal(t, [3]string{"alice", "alice@example.com", "pw"}, store.lastSignupReq)
}

func TestSignupMissingField(t *testing.T) {
	store := &fakeUserStore{}
	router := authTestRouter(store)

	w := postJSON(router, "/api/auth/signup", gin.H{"username": "alice", "password": "pw"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, store.createCalls)
}

func TestSignupDuplicate(t *testing.T) {
	store := &fakeUserStore{createErr: queries.ErrDuplicateEntry}
	router := authTestRouter(store)

	w := postJSON(router, "/api/auth/signup", gin.H{
		"username": "alice", "email": "alice@example.com", "password": "pw",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSigninSuccessIssuesToken(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "alice"}
	store := &fakeUserStore{verifiedUser: user}
	router := authTestRouter(store)

	w := postJSON(router, "/api/auth/signin", gin.H{"username": "alice", "password": "pw"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SigninResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, "alice", resp.Username)
	assert.NotEmpty(t, store.lastLoginIP)
}

func TestSigninBadCredentials(t *testing.T) {
	store := &fakeUserStore{verifyErr: queries.ErrInvalidCredentials}
	router := authTestRouter(store)

	w := postJSON(router, "/api/auth/signin", gin.H{"username": "nobody", "password": "pw"})

	// Unknown users and wrong passwords share one response.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid username or password")
}

func TestSigninMissingField(t *testing.T) {
	store := &fakeUserStore{}
	router := authTestRouter(store)

	w := postJSON(router, "/api/auth/signin", gin.H{"username": "alice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, store.verifyCalls)
}
