package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/SscSPs/pos_backend/internal/core/domain"
	"github.com/SscSPs/pos_backend/internal/dto"
	"github.com/SscSPs/pos_backend/internal/handlers"
	"github.com/SscSPs/pos_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CustomerHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCustomerService *MockCustomerService
	token               string
}

func (suite *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))

	suite.mockCustomerService = new(MockCustomerService)
	suite.token = generateTestToken(suite.T(), "emp_cashier")

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterCustomerRoutes(v1, suite.mockCustomerService)
}

func (suite *CustomerHandlerTestSuite) TestCreateDebtPayment_Success() {
	payment := &domain.DebtPayment{
		DebtPaymentID: "dpay_1",
		CustomerID:    "cust_1",
		Amount:        decimal.NewFromInt(30),
		PaymentType:   domain.PaymentCash,
		Date:          time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC),
		ReceivedBy:    "emp_cashier",
	}
	customer := &domain.Customer{CustomerID: "cust_1", Name: "Aziz", Debt: decimal.NewFromInt(70)}

	suite.mockCustomerService.On("RecordDebtPayment",
		mock.Anything,
		"emp_cashier",
		"cust_1",
		mock.MatchedBy(func(r dto.CreateDebtPaymentRequest) bool {
			return r.Amount.Equal(decimal.NewFromInt(30)) && r.PaymentType == domain.PaymentCash
		}),
	).Return(payment, customer, nil).Once()

	body := map[string]any{"amount": 30, "paymentType": "naqd"}
	req := newJSONRequest(suite.T(), http.MethodPost, "/api/v1/customers/cust_1/debt-payments", body, suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.DebtPaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("dpay_1", resp.ID)
	suite.True(resp.Customer.Debt.Equal(decimal.NewFromInt(70)))
	suite.mockCustomerService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestCreateDebtPayment_ExceedsDebt() {
	suite.mockCustomerService.On("RecordDebtPayment", mock.Anything, "emp_cashier", "cust_1", mock.Anything).
		Return(nil, nil, fmt.Errorf("%w: amount exceeds current debt", apperrors.ErrValidation)).Once()

	body := map[string]any{"amount": 500, "paymentType": "naqd"}
	req := newJSONRequest(suite.T(), http.MethodPost, "/api/v1/customers/cust_1/debt-payments", body, suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCustomerService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestCreateDebtPayment_UnknownCustomer() {
	suite.mockCustomerService.On("RecordDebtPayment", mock.Anything, "emp_cashier", "cust_missing", mock.Anything).
		Return(nil, nil, apperrors.ErrNotFound).Once()

	body := map[string]any{"amount": 10, "paymentType": "karta"}
	req := newJSONRequest(suite.T(), http.MethodPost, "/api/v1/customers/cust_missing/debt-payments", body, suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CustomerHandlerTestSuite) TestListCustomers_RejectsNegativeOffset() {
	req := newJSONRequest(suite.T(), http.MethodGet, "/api/v1/customers?offset=-1", nil, suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCustomerService.AssertNotCalled(suite.T(), "ListCustomers")
}

func TestCustomerHandler(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}
