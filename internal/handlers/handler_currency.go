package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finanzapp/finanzas-backend/internal/apperrors"
	portssvc "github.com/finanzapp/finanzas-backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas-backend/internal/dto"
	"github.com/finanzapp/finanzas-backend/internal/middleware"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers all currency-related routes.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.createCurrency)
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:currencyCode", h.getCurrency)
	}
}

// createCurrency godoc
// @Summary Add a currency
// @Description Persists a new supported currency.
// @Tags currencies
// @Accept json
// @Produce json
// @Param currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	currency, err := h.currencyService.CreateCurrency(c.Request.Context(), req, userID)
	if err != nil {
		logger.Error("Failed to create currency", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create currency"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(currency))
}

// getCurrency godoc
// @Summary Get a currency
// @Description Retrieves a currency by its code.
// @Tags currencies
// @Produce json
// @Param currencyCode path string true "Currency code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{currencyCode} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), c.Param("currencyCode"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Currency not found"})
			return
		}
		logger.Error("Failed to get currency", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve currency"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List currencies
// @Description Retrieves all supported currencies.
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.ListCurrenciesResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrenciesResponse(currencies))
}
