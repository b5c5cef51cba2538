package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finanzapp/finanzas-backend/internal/apperrors"
	portssvc "github.com/finanzapp/finanzas-backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas-backend/internal/dto"
	"github.com/finanzapp/finanzas-backend/internal/middleware"
)

// movementHandler handles HTTP requests related to movements.
type movementHandler struct {
	movementService portssvc.MovementSvcFacade
}

// newMovementHandler creates a new movementHandler.
func newMovementHandler(ms portssvc.MovementSvcFacade) *movementHandler {
	return &movementHandler{
		movementService: ms,
	}
}

// RegisterMovementRoutes registers all movement-related routes.
func RegisterMovementRoutes(rg *gin.RouterGroup, movementService portssvc.MovementSvcFacade) {
	h := newMovementHandler(movementService)

	movements := rg.Group("/movements")
	{
		movements.POST("", h.createMovement)
		movements.GET("", h.listMovements)
		movements.GET("/summary", h.monthlySummary)
		movements.GET("/:movementID", h.getMovement)
		movements.PUT("/:movementID", h.updateMovement)
		movements.DELETE("/:movementID", h.deleteMovement)
	}
}

// respondMovementError maps service errors to HTTP statuses shared by the
// movement endpoints.
func respondMovementError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Movement not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action})
	}
}

// createMovement godoc
// @Summary Record a movement
// @Description Records a new income, expense or saving movement for the authenticated user.
// @Tags movements
// @Accept json
// @Produce json
// @Param movement body dto.CreateMovementRequest true "Movement details"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /movements [post]
func (h *movementHandler) createMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	movement, err := h.movementService.CreateMovement(c.Request.Context(), userID, req)
	if err != nil {
		respondMovementError(c, logger, err, "create movement")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// listMovements godoc
// @Summary List movements
// @Description Retrieves a page of the authenticated user's movements newest-first.
// @Tags movements
// @Produce json
// @Param year query int false "Filter by year"
// @Param month query int false "Filter by month (requires year)"
// @Param type query string false "Filter by type" Enums(INCOME, EXPENSE, SAVING)
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /movements [get]
func (h *movementHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	movements, nextToken, err := h.movementService.ListMovements(c.Request.Context(), userID, params)
	if err != nil {
		respondMovementError(c, logger, err, "list movements")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMovementsResponse(movements, nextToken))
}

// monthlySummary godoc
// @Summary Monthly summary
// @Description Aggregates the authenticated user's movements for a calendar month.
// @Tags movements
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /movements/summary [get]
func (h *movementHandler) monthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid month"})
		return
	}

	summary, err := h.movementService.MonthlySummary(c.Request.Context(), userID, year, month)
	if err != nil {
		respondMovementError(c, logger, err, "summarize movements")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(summary, "ARS"))
}

// getMovement godoc
// @Summary Get a movement
// @Description Retrieves a single movement owned by the authenticated user.
// @Tags movements
// @Produce json
// @Param movementID path string true "Movement ID"
// @Success 200 {object} dto.MovementResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /movements/{movementID} [get]
func (h *movementHandler) getMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	movement, err := h.movementService.GetMovement(c.Request.Context(), userID, c.Param("movementID"))
	if err != nil {
		respondMovementError(c, logger, err, "retrieve movement")
		return
	}

	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

// updateMovement godoc
// @Summary Update a movement
// @Description Applies partial updates to a movement the authenticated user owns.
// @Tags movements
// @Accept json
// @Produce json
// @Param movementID path string true "Movement ID"
// @Param movement body dto.UpdateMovementRequest true "Fields to update"
// @Success 200 {object} dto.MovementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /movements/{movementID} [put]
func (h *movementHandler) updateMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	movement, err := h.movementService.UpdateMovement(c.Request.Context(), userID, c.Param("movementID"), req)
	if err != nil {
		respondMovementError(c, logger, err, "update movement")
		return
	}

	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

// deleteMovement godoc
// @Summary Delete a movement
// @Description Removes a movement the authenticated user owns.
// @Tags movements
// @Param movementID path string true "Movement ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /movements/{movementID} [delete]
func (h *movementHandler) deleteMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.movementService.DeleteMovement(c.Request.Context(), userID, c.Param("movementID")); err != nil {
		respondMovementError(c, logger, err, "delete movement")
		return
	}

	c.Status(http.StatusNoContent)
}
