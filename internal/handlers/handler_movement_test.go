package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/finanzapp/finanzas-backend/internal/apperrors"
	"github.com/finanzapp/finanzas-backend/internal/core/domain"
	portssvc "github.com/finanzapp/finanzas-backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas-backend/internal/dto"
	"github.com/finanzapp/finanzas-backend/internal/handlers"
	"github.com/finanzapp/finanzas-backend/internal/middleware"
)

// MockMovementService is a mock implementation of portssvc.MovementSvcFacade.
type MockMovementService struct {
	mock.Mock
}

var _ portssvc.MovementSvcFacade = (*MockMovementService)(nil)

func (m *MockMovementService) CreateMovement(ctx context.Context, userID string, req dto.CreateMovementRequest) (*domain.Movement, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementService) GetMovement(ctx context.Context, userID, movementID string) (*domain.Movement, error) {
	args := m.Called(ctx, userID, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementService) ListMovements(ctx context.Context, userID string, params dto.ListMovementsParams) ([]domain.Movement, string, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Movement), args.String(1), args.Error(2)
}

func (m *MockMovementService) MonthlySummary(ctx context.Context, userID string, year, month int) (*domain.MonthlySummary, error) {
	args := m.Called(ctx, userID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlySummary), args.Error(1)
}

func (m *MockMovementService) UpdateMovement(ctx context.Context, userID, movementID string, req dto.UpdateMovementRequest) (*domain.Movement, error) {
	args := m.Called(ctx, userID, movementID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementService) DeleteMovement(ctx context.Context, userID, movementID string) error {
	args := m.Called(ctx, userID, movementID)
	return args.Error(0)
}

type MovementHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockMovementService
	jwtSecret   string
	userID      string
}

func (suite *MovementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()
	suite.mockService = new(MockMovementService)

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterMovementRoutes(v1, suite.mockService)
}

func (suite *MovementHandlerTestSuite) signToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "finanzas-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *MovementHandlerTestSuite) doRequest(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+suite.signToken(suite.userID))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *MovementHandlerTestSuite) sampleMovement() *domain.Movement {
	return &domain.Movement{
		MovementID:   uuid.NewString(),
		UserID:       suite.userID,
		Type:         domain.Expense,
		Amount:       decimal.NewFromInt(2500),
		CurrencyCode: "ARS",
		Category:     "Groceries",
		OccurredAt:   time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		AuditFields: domain.AuditFields{
			CreatedAt: time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC),
		},
	}
}

func (suite *MovementHandlerTestSuite) TestCreateMovement_Success() {
	movement := suite.sampleMovement()
	suite.mockService.On("CreateMovement", mock.Anything, suite.userID, mock.MatchedBy(func(req dto.CreateMovementRequest) bool {
		return req.Type == domain.Expense && req.CurrencyCode == "ARS" && req.Category == "Groceries"
	})).Return(movement, nil).Once()

	body := `{"type":"EXPENSE","amount":"2500","currencyCode":"ARS","category":"Groceries","occurredAt":"2026-03-10T00:00:00Z"}`
	w := suite.doRequest(http.MethodPost, "/api/v1/movements", body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.MovementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(movement.MovementID, resp.MovementID)
	suite.Equal("$ 2.500,00", resp.FormattedAmount)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *MovementHandlerTestSuite) TestCreateMovement_InvalidType() {
	body := `{"type":"TRANSFER","amount":"2500","currencyCode":"ARS","category":"Groceries","occurredAt":"2026-03-10T00:00:00Z"}`
	w := suite.doRequest(http.MethodPost, "/api/v1/movements", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateMovement")
}

func (suite *MovementHandlerTestSuite) TestCreateMovement_ValidationErrorFromService() {
	suite.mockService.On("CreateMovement", mock.Anything, suite.userID, mock.Anything).
		Return(nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)).Once()

	body := `{"type":"EXPENSE","amount":"-1","currencyCode":"ARS","category":"Groceries","occurredAt":"2026-03-10T00:00:00Z"}`
	w := suite.doRequest(http.MethodPost, "/api/v1/movements", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *MovementHandlerTestSuite) TestListMovements_PassesFilters() {
	movements := []domain.Movement{*suite.sampleMovement()}
	suite.mockService.On("ListMovements", mock.Anything, suite.userID, mock.MatchedBy(func(p dto.ListMovementsParams) bool {
		return p.Year == 2026 && p.Month == 3 && p.Type == "EXPENSE" && p.Limit == 50
	})).Return(movements, "next-cursor", nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/movements?year=2026&month=3&type=EXPENSE", "")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListMovementsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Movements, 1)
	suite.Equal("next-cursor", resp.NextToken)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *MovementHandlerTestSuite) TestMonthlySummary_Success() {
	summary := &domain.MonthlySummary{
		Year:     2026,
		Month:    time.March,
		Income:   decimal.NewFromInt(1000),
		Expenses: decimal.NewFromInt(400),
		Savings:  decimal.NewFromInt(100),
		Balance:  decimal.NewFromInt(500),
	}
	suite.mockService.On("MonthlySummary", mock.Anything, suite.userID, 2026, 3).
		Return(summary, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/movements/summary?year=2026&month=3", "")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.MonthlySummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2026, resp.Year)
	suite.Equal(3, resp.Month)
	suite.Equal("$ 500", resp.FormattedBalance)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *MovementHandlerTestSuite) TestMonthlySummary_MissingYear() {
	w := suite.doRequest(http.MethodGet, "/api/v1/movements/summary?month=3", "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "MonthlySummary")
}

func (suite *MovementHandlerTestSuite) TestGetMovement_NotFound() {
	suite.mockService.On("GetMovement", mock.Anything, suite.userID, "missing-id").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/movements/missing-id", "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *MovementHandlerTestSuite) TestGetMovement_Forbidden() {
	suite.mockService.On("GetMovement", mock.Anything, suite.userID, "other-users-id").
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/movements/other-users-id", "")

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *MovementHandlerTestSuite) TestUpdateMovement_Success() {
	movement := suite.sampleMovement()
	suite.mockService.On("UpdateMovement", mock.Anything, suite.userID, movement.MovementID, mock.MatchedBy(func(req dto.UpdateMovementRequest) bool {
		return req.Category != nil && *req.Category == "Dining"
	})).Return(movement, nil).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/movements/"+movement.MovementID, `{"category":"Dining"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *MovementHandlerTestSuite) TestDeleteMovement_Success() {
	suite.mockService.On("DeleteMovement", mock.Anything, suite.userID, "mov-1").
		Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/movements/mov-1", "")

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *MovementHandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/movements", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestMovementHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MovementHandlerTestSuite))
}
