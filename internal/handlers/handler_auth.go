package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/finanzapp/finanzas-backend/internal/apperrors"
	portssvc "github.com/finanzapp/finanzas-backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas-backend/internal/dto"
	"github.com/finanzapp/finanzas-backend/internal/middleware"
	"github.com/finanzapp/finanzas-backend/internal/platform/config"
	"github.com/finanzapp/finanzas-backend/internal/utils"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	cfg          *config.Config
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config, userService portssvc.UserSvcFacade, tokenService portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{
		cfg:          cfg,
		userService:  userService,
		tokenService: tokenService,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(cfg, services.User, services.TokenService)

	// Rate limit: 5 requests per minute per IP on credential endpoints
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/register", limitMiddleware, h.Register)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", middleware.AuthMiddleware(cfg.JWTSecret), h.Logout)
	}
}

// issueTokens generates the access/refresh pair, persists the refresh hash
// and sets the refresh cookie.
func (h *AuthHandler) issueTokens(c *gin.Context, user *dto.UserResponse) (*dto.LoginResponse, error) {
	ctx := c.Request.Context()

	domainUser, err := h.userService.GetUserByID(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	accessToken, accessExpiry, err := h.tokenService.GenerateAccessToken(ctx, domainUser)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(ctx, domainUser)
	if err != nil {
		return nil, err
	}
	if err := h.userService.UpdateRefreshToken(ctx, domainUser.UserID, utils.HashRefreshToken(refreshToken), &refreshExpiry); err != nil {
		return nil, err
	}

	h.setRefreshCookie(c, refreshToken, refreshExpiry)
	return &dto.LoginResponse{
		Token:     accessToken,
		ExpiresAt: accessExpiry,
		User:      *user,
	}, nil
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string, expiry time.Time) {
	maxAge := int(time.Until(expiry).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, token, maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

// Register godoc
// @Summary Register new user
// @Description Creates a new user account and logs it in.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterUserRequest true "User Registration Info"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	newUser, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Email already registered"})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register user"})
		return
	}

	userResp := dto.ToUserResponse(newUser)
	resp, err := h.issueTokens(c, &userResp)
	if err != nil {
		logger.Error("Failed to issue tokens after registration", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token. The refresh token is set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		logger.Error("Failed to authenticate user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Login failed"})
		return
	}

	userResp := dto.ToUserResponse(user)
	resp, err := h.issueTokens(c, &userResp)
	if err != nil {
		logger.Error("Failed to issue tokens on login", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary Rotate tokens
// @Description Validates the refresh cookie and issues a fresh access/refresh pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest true "User whose session to refresh"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	rawToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || rawToken == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Missing refresh token"})
		return
	}

	user, err := h.tokenService.ValidateAndParseRefreshToken(c.Request.Context(), req.UserID, rawToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			h.clearRefreshCookie(c)
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token expired"})
			return
		}
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
			return
		}
		logger.Error("Failed to validate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Refresh failed"})
		return
	}

	userResp := dto.ToUserResponse(user)
	resp, err := h.issueTokens(c, &userResp)
	if err != nil {
		logger.Error("Failed to issue tokens on refresh", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Log out
// @Description Clears the stored refresh token and the refresh cookie.
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.UpdateRefreshToken(c.Request.Context(), userID, "", nil); err != nil {
		logger.Error("Failed to clear refresh token", slog.String("error", err.Error()))
	}
	h.clearRefreshCookie(c)
	c.Status(http.StatusNoContent)
}
