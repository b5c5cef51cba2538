package handlers_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/finanzapp/finanzas-backend/internal/core/fx"
	"github.com/finanzapp/finanzas-backend/internal/core/services"
	"github.com/finanzapp/finanzas-backend/internal/dto"
	"github.com/finanzapp/finanzas-backend/internal/handlers"
	"github.com/finanzapp/finanzas-backend/internal/middleware"
	"github.com/finanzapp/finanzas-backend/internal/platform/cache"
)

type FXHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret string
}

func (suite *FXHandlerTestSuite) generateTestToken(userID string) string {
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

func (suite *FXHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	// Real FX service over an in-memory store: the endpoints have no
	// repository dependencies.
	fxService := services.NewFXService(cache.NewMemoryCache(), slog.Default(),
		services.WithFXGenerator(fx.NewGenerator(rand.New(rand.NewSource(99)), time.Now)),
	)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterFXRoutes(v1, fxService)
}

func (suite *FXHandlerTestSuite) doGet(path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *FXHandlerTestSuite) TestGetQuote_Success() {
	w := suite.doGet("/api/v1/fx/quote")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.QuoteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.GreaterOrEqual(resp.Price, 1180.0)
	suite.LessOrEqual(resp.Price, 1220.0)
	suite.Equal("simulated", resp.Source)
}

func (suite *FXHandlerTestSuite) TestGetQuote_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/fx/quote", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *FXHandlerTestSuite) TestGetRates_Success() {
	w := suite.doGet("/api/v1/fx/rates")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.RatesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.Base)
	suite.Equal(1.0, resp.Rates["USD"])
	suite.Len(resp.Rates, 11)
}

func (suite *FXHandlerTestSuite) TestConvert_Success() {
	w := suite.doGet("/api/v1/fx/convert?amount=100&from=USD&to=USD")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(100.0, resp.Converted)
	suite.Equal(1.0, resp.Rate)
	suite.Equal("US$ 100.00", resp.Formatted)
}

func (suite *FXHandlerTestSuite) TestConvert_LowercaseCodesAccepted() {
	w := suite.doGet("/api/v1/fx/convert?amount=50&from=ars&to=usdt")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ConvertResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("ARS", resp.From)
	suite.Equal("USDT", resp.To)
	suite.Greater(resp.Converted, 0.0)
}

func (suite *FXHandlerTestSuite) TestConvert_NegativeAmountRejected() {
	w := suite.doGet("/api/v1/fx/convert?amount=-5&from=USD&to=ARS")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *FXHandlerTestSuite) TestConvert_MissingParamsRejected() {
	w := suite.doGet("/api/v1/fx/convert?amount=5")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *FXHandlerTestSuite) TestValidateAmount() {
	cases := []struct {
		amount float64
		valid  bool
	}{
		{100, true},
		{0, false},
		{-1, false},
		{1_000_000_000, false},
	}
	for _, tc := range cases {
		body := fmt.Sprintf(`{"amount": %g}`, tc.amount)
		req, _ := http.NewRequest(http.MethodPost, "/api/v1/fx/validate-amount", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)

		suite.Equal(http.StatusOK, w.Code)
		var resp fx.AmountValidation
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		suite.Equal(tc.valid, resp.Valid, "amount %g", tc.amount)
	}
}

func TestFXHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FXHandlerTestSuite))
}
