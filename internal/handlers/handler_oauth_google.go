package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/finanzapp/finanzas-backend/internal/core/domain"
	portssvc "github.com/finanzapp/finanzas-backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas-backend/internal/dto"
	"github.com/finanzapp/finanzas-backend/internal/middleware"
	"github.com/finanzapp/finanzas-backend/internal/platform/config"
)

const oauthStateCookie = "oauth_state"

// GoogleOAuthHandler handles Google OAuth related requests.
type GoogleOAuthHandler struct {
	cfg                *config.Config
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	authHandler        *AuthHandler
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		cfg:                cfg,
		googleOAuthService: services.GoogleOAuthHandler,
		userService:        services.User,
		authHandler:        NewAuthHandler(cfg, services.User, services.TokenService),
	}
}

// registerGoogleOAuthRoutes sets up the public Google OAuth routes.
func registerGoogleOAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	if cfg.GoogleClientID == "" {
		return
	}
	h := NewGoogleOAuthHandler(cfg, services)

	google := r.Group("/api/v1/auth/google")
	{
		google.GET("/login", h.LoginGoogle)
		google.GET("/callback", h.CallbackGoogle)
		google.POST("/id-token", h.ExchangeIDToken)
	}
}

// LoginGoogle godoc
// @Summary Start Google sign-in
// @Description Redirects the user to the Google consent screen.
// @Tags oauth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) LoginGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google sign-in"})
		return
	}

	// State survives the round-trip in a short-lived cookie.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 300, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(ctx, state))
}

// CallbackGoogle godoc
// @Summary Google OAuth callback
// @Description Exchanges the authorization code, signs the user in and redirects to the frontend with an access token.
// @Tags oauth
// @Param code query string true "Authorization code"
// @Param state query string true "CSRF state"
// @Success 307
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) CallbackGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var query dto.GoogleCallbackQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing code or state"})
		return
	}

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || expectedState != query.State {
		logger.WarnContext(ctx, "OAuth state mismatch")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.cfg.IsProduction, true)

	token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, query.Code)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to exchange OAuth code", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid authorization code"})
		return
	}

	userInfo, err := h.googleOAuthService.GetUserInfo(ctx, token)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch Google user info", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch Google profile"})
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(ctx, *userInfo)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to resolve Google user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
		return
	}

	userResp := dto.ToUserResponse(user)
	resp, err := h.authHandler.issueTokens(c, &userResp)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to issue tokens for Google user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	redirect := h.cfg.FrontendBaseURL + "/auth/callback?token=" + url.QueryEscape(resp.Token)
	c.Redirect(http.StatusTemporaryRedirect, redirect)
}

// ExchangeIDToken godoc
// @Summary Sign in with a Google ID token
// @Description Validates an ID token obtained client-side and returns an access token.
// @Tags oauth
// @Accept json
// @Produce json
// @Param idToken body dto.GoogleIDTokenRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/id-token [post]
func (h *GoogleOAuthHandler) ExchangeIDToken(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.GoogleIDTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, req.IDToken)
	if err != nil {
		logger.WarnContext(ctx, "Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	info := domain.GoogleUserInfo{
		ID:    payload.Subject,
		Email: stringClaim(payload.Claims, "email"),
		Name:  stringClaim(payload.Claims, "name"),
	}
	if info.Email == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Google token has no email claim"})
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(ctx, info)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to resolve Google user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
		return
	}

	userResp := dto.ToUserResponse(user)
	resp, err := h.authHandler.issueTokens(c, &userResp)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to issue tokens for Google user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func stringClaim(claims map[string]any, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
