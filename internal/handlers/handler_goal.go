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

// goalHandler handles HTTP requests related to saving goals.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

// newGoalHandler creates a new goalHandler.
func newGoalHandler(gs portssvc.GoalSvcFacade) *goalHandler {
	return &goalHandler{
		goalService: gs,
	}
}

// registerGoalRoutes registers all goal-related routes.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := newGoalHandler(goalService)

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.GET("/:goalID", h.getGoal)
		goals.PUT("/:goalID", h.updateGoal)
		goals.DELETE("/:goalID", h.deleteGoal)
		goals.POST("/:goalID/contributions", h.contribute)
	}
}

func respondGoalError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Goal not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action})
	}
}

// createGoal godoc
// @Summary Create a saving goal
// @Description Creates a new saving goal for the authenticated user.
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), userID, req)
	if err != nil {
		respondGoalError(c, logger, err, "create goal")
		return
	}

	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

// listGoals godoc
// @Summary List saving goals
// @Description Retrieves all of the authenticated user's goals.
// @Tags goals
// @Produce json
// @Success 200 {object} dto.ListGoalsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	goals, err := h.goalService.ListGoals(c.Request.Context(), userID)
	if err != nil {
		respondGoalError(c, logger, err, "list goals")
		return
	}

	c.JSON(http.StatusOK, dto.ToListGoalsResponse(goals))
}

// getGoal godoc
// @Summary Get a saving goal
// @Description Retrieves a goal the authenticated user owns.
// @Tags goals
// @Produce json
// @Param goalID path string true "Goal ID"
// @Success 200 {object} dto.GoalResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals/{goalID} [get]
func (h *goalHandler) getGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	goal, err := h.goalService.GetGoal(c.Request.Context(), userID, c.Param("goalID"))
	if err != nil {
		respondGoalError(c, logger, err, "retrieve goal")
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// updateGoal godoc
// @Summary Update a saving goal
// @Description Applies partial updates to a goal the authenticated user owns.
// @Tags goals
// @Accept json
// @Produce json
// @Param goalID path string true "Goal ID"
// @Param goal body dto.UpdateGoalRequest true "Fields to update"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals/{goalID} [put]
func (h *goalHandler) updateGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), userID, c.Param("goalID"), req)
	if err != nil {
		respondGoalError(c, logger, err, "update goal")
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// deleteGoal godoc
// @Summary Delete a saving goal
// @Description Soft-deletes a goal the authenticated user owns.
// @Tags goals
// @Param goalID path string true "Goal ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals/{goalID} [delete]
func (h *goalHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.goalService.DeleteGoal(c.Request.Context(), userID, c.Param("goalID")); err != nil {
		respondGoalError(c, logger, err, "delete goal")
		return
	}

	c.Status(http.StatusNoContent)
}

// contribute godoc
// @Summary Contribute to a goal
// @Description Adds to the goal's saved amount and records the matching SAVING movement.
// @Tags goals
// @Accept json
// @Produce json
// @Param goalID path string true "Goal ID"
// @Param contribution body dto.ContributeGoalRequest true "Contribution"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /goals/{goalID}/contributions [post]
func (h *goalHandler) contribute(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ContributeGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	goal, err := h.goalService.Contribute(c.Request.Context(), userID, c.Param("goalID"), req)
	if err != nil {
		respondGoalError(c, logger, err, "contribute to goal")
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}
