package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
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
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// generateTestToken creates a signed JWT whose subject is employeeID.
func generateTestToken(t *testing.T, employeeID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "pos-test",
		Subject:   employeeID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return signed
}

func newJSONRequest(t *testing.T, method, url string, body any, token string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// --- Test Suite ---
type SaleHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockSaleService *MockSaleService
	sellerID        string
}

func (suite *SaleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))

	suite.mockSaleService = new(MockSaleService)
	suite.sellerID = "emp_seller"

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterSaleRoutes(v1, suite.mockSaleService)
}

func (suite *SaleHandlerTestSuite) validRequest() map[string]any {
	return map[string]any{
		"items": []map[string]any{
			{"productId": "prod_a", "quantity": 2, "price": 10},
		},
		"subtotal": 20,
		"discount": 0,
		"total":    20,
		"payments": []map[string]any{
			{"type": "naqd", "amount": 5},
			{"type": "nasiya", "amount": 15},
		},
		"customerId": "cust_1",
	}
}

func (suite *SaleHandlerTestSuite) TestCreateSale_Success() {
	customerID := "cust_1"
	created := &domain.Sale{
		SaleID:     "sale_1",
		Date:       time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Subtotal:   decimal.NewFromInt(20),
		Total:      decimal.NewFromInt(20),
		SellerID:   suite.sellerID,
		CustomerID: &customerID,
		Items: []domain.CartItem{
			{SaleID: "sale_1", ProductID: "prod_a", Quantity: 2, Price: decimal.NewFromInt(10)},
		},
		Payments: []domain.SalePayment{
			{SaleID: "sale_1", Type: domain.PaymentCash, Amount: decimal.NewFromInt(5)},
			{SaleID: "sale_1", Position: 1, Type: domain.PaymentDebt, Amount: decimal.NewFromInt(15)},
		},
	}

	suite.mockSaleService.On("CreateSale",
		mock.Anything,
		suite.sellerID,
		mock.MatchedBy(func(r dto.CreateSaleRequest) bool {
			return len(r.Items) == 1 && r.Items[0].ProductID == "prod_a" &&
				r.Items[0].Quantity == 2 && r.Items[0].Price.Equal(decimal.NewFromInt(10)) &&
				len(r.Payments) == 2 && r.Payments[1].Type == domain.PaymentDebt &&
				r.CustomerID != nil && *r.CustomerID == "cust_1"
		}),
	).Return(created, nil).Once()

	req := newJSONRequest(suite.T(), http.MethodPost, "/api/v1/sales", suite.validRequest(), generateTestToken(suite.T(), suite.sellerID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.SaleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("sale_1", body.ID)
	suite.Equal(suite.sellerID, body.SellerID)
	suite.Len(body.Items, 1)
	suite.Len(body.Payments, 2)
	suite.True(body.Total.Equal(decimal.NewFromInt(20)))
	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestCreateSale_MissingToken() {
	req := newJSONRequest(suite.T(), http.MethodPost, "/api/v1/sales", suite.validRequest(), "")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSaleService.AssertNotCalled(suite.T(), "CreateSale")
}

func (suite *SaleHandlerTestSuite) TestCreateSale_RejectsNonPositiveQuantityAtBinding() {
	body := suite.validRequest()
	body["items"] = []map[string]any{{"productId": "prod_a", "quantity": 0, "price": 10}}

	req := newJSONRequest(suite.T(), http.MethodPost, "/api/v1/sales", body, generateTestToken(suite.T(), suite.sellerID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSaleService.AssertNotCalled(suite.T(), "CreateSale")
}

func (suite *SaleHandlerTestSuite) TestCreateSale_ServiceErrors() {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown product", fmt.Errorf("resolve product prod_a: %w", apperrors.ErrNotFound), http.StatusBadRequest},
		{"validation", fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation), http.StatusBadRequest},
		{"conflict", fmt.Errorf("create sale: %w", apperrors.ErrConflict), http.StatusConflict},
		{"seller gone", fmt.Errorf("%w: unknown employee emp_seller", apperrors.ErrUnauthorized), http.StatusUnauthorized},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.mockSaleService.On("CreateSale", mock.Anything, suite.sellerID, mock.Anything).
				Return(nil, tc.err).Once()

			req := newJSONRequest(suite.T(), http.MethodPost, "/api/v1/sales", suite.validRequest(), generateTestToken(suite.T(), suite.sellerID))
			w := httptest.NewRecorder()
			suite.router.ServeHTTP(w, req)

			suite.Equal(tc.status, w.Code)
			var body handlers.ErrorResponse
			suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
			if tc.status == http.StatusInternalServerError {
				suite.Equal("Failed to create sale", body.Error)
			} else {
				suite.Equal(tc.err.Error(), body.Error)
			}
			suite.mockSaleService.AssertExpectations(suite.T())
		})
	}
}

func (suite *SaleHandlerTestSuite) TestGetSale_NotFound() {
	suite.mockSaleService.On("GetSaleByID", mock.Anything, "sale_missing").
		Return(nil, apperrors.ErrNotFound).Once()

	req := newJSONRequest(suite.T(), http.MethodGet, "/api/v1/sales/sale_missing", nil, generateTestToken(suite.T(), suite.sellerID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockSaleService.AssertExpectations(suite.T())
}

func (suite *SaleHandlerTestSuite) TestListSales_PassesTokenAndReturnsNext() {
	next := "bmV4dA"
	suite.mockSaleService.On("ListSales",
		mock.Anything,
		mock.MatchedBy(func(p dto.ListTokenParams) bool {
			return p.Limit == 5 && p.NextToken != nil && *p.NextToken == "abc"
		}),
	).Return([]domain.Sale{{SaleID: "sale_2", SellerID: suite.sellerID}}, &next, nil).Once()

	req := newJSONRequest(suite.T(), http.MethodGet, "/api/v1/sales?limit=5&nextToken=abc", nil, generateTestToken(suite.T(), suite.sellerID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListSalesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Sales, 1)
	suite.Require().NotNil(body.NextToken)
	suite.Equal(next, *body.NextToken)
	suite.mockSaleService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestSaleHandler(t *testing.T) {
	suite.Run(t, new(SaleHandlerTestSuite))
}
