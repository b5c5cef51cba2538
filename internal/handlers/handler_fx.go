package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/finanzapp/finanzas-backend/internal/core/fx"
	portssvc "github.com/finanzapp/finanzas-backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas-backend/internal/dto"
)

// fxHandler handles HTTP requests for quotes, rates and conversion.
type fxHandler struct {
	fxService portssvc.FXSvcFacade
}

// newFXHandler creates a new fxHandler.
func newFXHandler(fs portssvc.FXSvcFacade) *fxHandler {
	return &fxHandler{
		fxService: fs,
	}
}

// RegisterFXRoutes registers all FX-related routes.
func RegisterFXRoutes(rg *gin.RouterGroup, fxService portssvc.FXSvcFacade) {
	h := newFXHandler(fxService)

	fxGroup := rg.Group("/fx")
	{
		fxGroup.GET("/quote", h.getQuote)
		fxGroup.GET("/rates", h.getRates)
		fxGroup.GET("/convert", h.convert)
		fxGroup.POST("/validate-amount", h.validateAmount)
	}
}

// getQuote godoc
// @Summary Current USDT/ARS quote
// @Description Returns the cached USDT/ARS quote, regenerating it when missing or older than an hour.
// @Tags fx
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Security BearerAuth
// @Router /fx/quote [get]
func (h *fxHandler) getQuote(c *gin.Context) {
	quote := h.fxService.CurrentQuote(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// getRates godoc
// @Summary Current exchange rates
// @Description Returns the cached USD-based exchange-rate snapshot.
// @Tags fx
// @Produce json
// @Success 200 {object} dto.RatesResponse
// @Security BearerAuth
// @Router /fx/rates [get]
func (h *fxHandler) getRates(c *gin.Context) {
	rates := h.fxService.CurrentRates(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToRatesResponse(rates))
}

// convert godoc
// @Summary Convert between currencies
// @Description Converts an amount between two supported currencies and formats the result for display.
// @Tags fx
// @Produce json
// @Param amount query number true "Amount to convert"
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /fx/convert [get]
func (h *fxHandler) convert(c *gin.Context) {
	var params dto.ConvertParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	if v := fx.ValidateAmount(params.Amount); !v.Valid {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: v.Reason})
		return
	}

	from := fx.Code(strings.ToUpper(params.From))
	to := fx.Code(strings.ToUpper(params.To))

	converted, rate, snapshot := h.fxService.Convert(c.Request.Context(), params.Amount, from, to)

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:        params.Amount,
		From:          string(from),
		To:            string(to),
		Converted:     converted,
		Formatted:     fx.FormatMovementAmount(converted, to),
		Rate:          rate,
		RatesSyncedAt: snapshot.Timestamp,
		RatesSource:   string(snapshot.Source),
	})
}

// validateAmount godoc
// @Summary Validate an amount
// @Description Checks an amount against the shared display bounds.
// @Tags fx
// @Accept json
// @Produce json
// @Param amount body dto.ValidateAmountRequest true "Amount"
// @Success 200 {object} fx.AmountValidation
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /fx/validate-amount [post]
func (h *fxHandler) validateAmount(c *gin.Context) {
	var req dto.ValidateAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	c.JSON(http.StatusOK, fx.ValidateAmount(req.Amount))
}
