package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"daily-diet-be/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthService struct {
	registerErr error
	loginResp   *models.LoginResponse
	loginErr    error
}

func (s *stubAuthService) Register(req *models.RegisterRequest) error {
	return s.registerErr
}

func (s *stubAuthService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func authRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewAuthController(svc)
	router.POST("/users", controller.Register)
	router.POST("/users/login", controller.Login)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRegister_Created(t *testing.T) {
	router := authRouter(&stubAuthService{})

	w := postJSON(router, "/users", `{"name":"Alice","email":"alice@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRegister_InvalidEmail(t *testing.T) {
	router := authRouter(&stubAuthService{})

	w := postJSON(router, "/users", `{"name":"Alice","email":"not-an-email","password":"pw"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestRegister_MissingField(t *testing.T) {
	router := authRouter(&stubAuthService{})

	w := postJSON(router, "/users", `{"email":"alice@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_DuplicateEmailIsConflict(t *testing.T) {
	router := authRouter(&stubAuthService{
		registerErr: errors.New("user with this email already exists"),
	})

	w := postJSON(router, "/users", `{"name":"Alice","email":"alice@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_OK(t *testing.T) {
	router := authRouter(&stubAuthService{
		loginResp: &models.LoginResponse{
			Auth:  true,
			Token: "signed-token",
			User:  models.UserPayload{Name: "Alice", Email: "alice@example.com"},
		},
	})

	w := postJSON(router, "/users/login", `{"email":"alice@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"auth": true,
		"token": "signed-token",
		"user": {"name": "Alice", "email": "alice@example.com"}
	}`, w.Body.String())
}

func TestLogin_InternalFailureIsNotBadRequest(t *testing.T) {
	router := authRouter(&stubAuthService{
		loginErr: errors.New("failed to generate token: key is of invalid type"),
	})

	w := postJSON(router, "/users/login", `{"email":"alice@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router := authRouter(&stubAuthService{
		loginErr: errors.New("email or password is incorrect"),
	})

	w := postJSON(router, "/users/login", `{"email":"alice@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"email or password is incorrect"}`, w.Body.String())
}
