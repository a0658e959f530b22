package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/SscSPs/pos_backend/internal/dto"
	"github.com/SscSPs/pos_backend/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(authService *MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterAuthRoutes(r, authService)
	return r
}

func TestLogin_Success(t *testing.T) {
	authService := new(MockAuthService)
	router := setupAuthRouter(authService)

	expected := &dto.AuthResponse{
		AccessToken: "signed.jwt.token",
		TokenType:   "Bearer",
		ExpiresAt:   time.Now().Add(time.Hour).UTC().Truncate(time.Second),
		Employee:    dto.EmployeeResponse{ID: "emp_1", Name: "Dilnoza", Phone: "+998901112233", Role: domain.RoleCashier},
	}
	authService.On("Login", mock.Anything, dto.LoginRequest{Phone: "+998901112233", Pin: "1234"}).
		Return(expected, nil).Once()

	req := newJSONRequest(t, http.MethodPost, "/auth/login", map[string]string{"phone": "+998901112233", "pin": "1234"}, "")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, expected.AccessToken, body.AccessToken)
	assert.Equal(t, "emp_1", body.Employee.ID)
	authService.AssertExpectations(t)
}

func TestLogin_WrongPin(t *testing.T) {
	authService := new(MockAuthService)
	router := setupAuthRouter(authService)

	authService.On("Login", mock.Anything, mock.Anything).Return(nil, apperrors.ErrUnauthorized).Once()

	req := newJSONRequest(t, http.MethodPost, "/auth/login", map[string]string{"phone": "+998901112233", "pin": "9999"}, "")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid phone or PIN", body.Error)
}

func TestLogin_MalformedPin(t *testing.T) {
	authService := new(MockAuthService)
	router := setupAuthRouter(authService)

	req := newJSONRequest(t, http.MethodPost, "/auth/login", map[string]string{"phone": "+998901112233", "pin": "12a"}, "")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	authService.AssertNotCalled(t, "Login")
}

func TestLogin_RateLimitedPerIP(t *testing.T) {
	authService := new(MockAuthService)
	router := setupAuthRouter(authService)
	authService.On("Login", mock.Anything, mock.Anything).Return(nil, apperrors.ErrUnauthorized)

	codes := make([]int, 0, 6)
	for i := 0; i < 6; i++ {
		req := newJSONRequest(t, http.MethodPost, "/auth/login", map[string]string{"phone": "+998901112233", "pin": "0000"}, "")
		req.RemoteAddr = "192.0.2.10:40000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{401, 401, 401, 401, 401, http.StatusTooManyRequests}, codes)
	authService.AssertNumberOfCalls(t, "Login", 5)
}
