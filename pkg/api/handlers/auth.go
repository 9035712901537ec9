package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/creatorbridge/api/config"
	"github.com/creatorbridge/api/pkg/api/errors"
	"github.com/creatorbridge/api/pkg/audit"
	"github.com/creatorbridge/api/pkg/auth"
	"github.com/creatorbridge/api/pkg/email"
	"github.com/creatorbridge/api/pkg/metrics"
	"github.com/creatorbridge/api/pkg/models"
	"github.com/creatorbridge/api/pkg/oauth"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	config       *config.Config
	magicLink    *auth.MagicLinkService
	oauthService *oauth.Service
	emailService *email.Service
	auditLogger  *audit.Service
	metrics      *metrics.Metrics
	validator    *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config, magicLink *auth.MagicLinkService, oauthService *oauth.Service, emailService *email.Service, auditLogger *audit.Service, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		config:       cfg,
		magicLink:    magicLink,
		oauthService: oauthService,
		emailService: emailService,
		auditLogger:  auditLogger,
		metrics:      m,
		validator:    validator.New(),
	}
}

// RequestMagicLink godoc
// @Summary Request a magic sign-in link
// @Description Email a single-use sign-in link to the given address. Always returns 200 to avoid account enumeration.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.MagicLinkRequest true "Email address"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/magic-link [post]
func (h *AuthHandler) RequestMagicLink(c echo.Context) error {
	var req models.MagicLinkRequest
	if err := c.Bind(&req); err != nil {
		return errors.BadRequest(c, "invalid_request", "Invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	// The response is identical whether or not issuing succeeded, so a
	// caller can't probe which addresses exist.
	token, err := h.magicLink.Issue(ctx, req.Email)
	if err != nil {
		log.Printf("⚠️ Failed to issue magic link for %s: %v", req.Email, err)
	} else if err := h.emailService.SendMagicLinkEmail(req.Email, token); err != nil {
		log.Printf("⚠️ Failed to send magic link email to %s: %v", req.Email, err)
		if h.metrics != nil {
			h.metrics.EmailsSent.WithLabelValues("magic_link", "failed").Inc()
		}
	} else if h.metrics != nil {
		h.metrics.EmailsSent.WithLabelValues("magic_link", "sent").Inc()
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "If the address is valid, a sign-in link is on its way",
	})
}

// VerifyMagicLink godoc
// @Summary Verify a magic link token
// @Description Consume a single-use token and return a JWT
// @Tags Authentication
// @Produce json
// @Param token path string true "Magic link token"
// @Success 200 {object} models.AuthResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/magic-link/{token} [get]
func (h *AuthHandler) VerifyMagicLink(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return errors.UnauthorizedError(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	u, err := h.magicLink.Verify(ctx, token)
	if err != nil {
		return errors.UnauthorizedError(c)
	}

	h.auditLogger.LogUserLogin(ctx, u.ID, "magic_link")
	return h.issueJWT(c, u.ID, u.Email, u.Name)
}

// OAuthRedirect godoc
// @Summary Start an OAuth sign-in flow
// @Description Redirect to the provider's consent screen
// @Tags Authentication
// @Param provider path string true "OAuth provider (google or github)"
// @Success 302
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/oauth/{provider} [get]
func (h *AuthHandler) OAuthRedirect(c echo.Context) error {
	provider := oauth.Provider(c.Param("provider"))

	// State doubles as CSRF protection; the provider echoes it back.
	state := uuid.New().String()
	url, err := h.oauthService.AuthURL(provider, state)
	if err != nil {
		return errors.BadRequest(c, "invalid_provider", "Unsupported OAuth provider")
	}

	c.SetCookie(&http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, url)
}

// OAuthCallback godoc
// @Summary Complete an OAuth sign-in flow
// @Description Exchange the provider code for a JWT
// @Tags Authentication
// @Produce json
// @Param provider path string true "OAuth provider (google or github)"
// @Param code query string true "Authorization code"
// @Param state query string true "CSRF state"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/oauth/{provider}/callback [get]
func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	provider := oauth.Provider(c.Param("provider"))
	code := c.QueryParam("code")
	state := c.QueryParam("state")

	if code == "" {
		return errors.BadRequest(c, "missing_code", "Authorization code is required")
	}

	stateCookie, err := c.Cookie("oauth_state")
	if err != nil || stateCookie.Value == "" || stateCookie.Value != state {
		return errors.UnauthorizedError(c)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	u, err := h.oauthService.HandleCallback(ctx, provider, code)
	if err != nil {
		switch err {
		case oauth.ErrInvalidProvider:
			return errors.BadRequest(c, "invalid_provider", "Unsupported OAuth provider")
		case oauth.ErrNoEmail:
			return errors.BadRequest(c, "no_email", "The provider account has no verified email")
		default:
			return errors.UpstreamError(c, string(provider), err)
		}
	}

	h.auditLogger.LogUserLogin(ctx, u.ID, "oauth_"+string(provider))
	return h.issueJWT(c, u.ID, u.Email, u.Name)
}

func (h *AuthHandler) issueJWT(c echo.Context, userID int, userEmail, userName string) error {
	isAdmin := h.config.IsAdmin(userEmail)
	token, err := auth.GenerateJWT(userID, userEmail, isAdmin, h.config.JWTSecret, h.config.JWTExpirationHours)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User: &models.UserInfo{
			ID:      userID,
			Email:   userEmail,
			Name:    userName,
			IsAdmin: isAdmin,
		},
	})
}
