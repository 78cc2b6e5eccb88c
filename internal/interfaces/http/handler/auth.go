package handler

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/claimsdesk/backend/internal/application/dashboard"
	"github.com/claimsdesk/backend/internal/infrastructure/credentials"
)

// AuthHandler handles operator authentication against the claims API
type AuthHandler struct {
	BaseHandler
	service *dashboard.Service
	store   credentials.Store
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service *dashboard.Service, store credentials.Store) *AuthHandler {
	return &AuthHandler{service: service, store: store}
}

// LoginRequest is the operator login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse reports a successful login
type LoginResponse struct {
	LoggedIn bool            `json:"logged_in"`
	User     json.RawMessage `json:"user,omitempty"`
}

// Login godoc
// @Summary      Log in against the claims API
// @Description  Forwards credentials upstream and stores the returned tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.Response
// @Failure      400 {object} dto.Response
// @Failure      401 {object} dto.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "username and password are required")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, LoginResponse{LoggedIn: true, User: result.User})
}

// SessionInfo describes the stored claims-API session
type SessionInfo struct {
	Authenticated bool            `json:"authenticated"`
	Subject       string          `json:"subject,omitempty"`
	ExpiresAt     *time.Time      `json:"expires_at,omitempty"`
	Expired       bool            `json:"expired,omitempty"`
	LegacyToken   bool            `json:"legacy_token,omitempty"`
	User          json.RawMessage `json:"user,omitempty"`
}

// Session godoc
// @Summary      Inspect the stored session
// @Description  Reports whether a claims-API token is stored and, when the
// @Description  token is a JWT, its subject and expiry. The token signature is
// @Description  not verified here; the claims API remains authoritative.
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.Response
// @Router       /session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	ctx := c.Request.Context()
	info := SessionInfo{}

	token, ok, err := h.store.Get(ctx, credentials.ServiceClaimsAPI, credentials.KeyAccessToken)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if !ok {
		token, ok, err = h.store.Get(ctx, credentials.ServiceClaimsAPI, credentials.KeyLegacyToken)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		info.LegacyToken = ok
	}

	if !ok {
		h.Success(c, info)
		return
	}
	info.Authenticated = true

	if user, ok, err := h.store.Get(ctx, credentials.ServiceClaimsAPI, credentials.KeyAuthUser); err == nil && ok {
		info.User = json.RawMessage(user)
	}

	// Parse without verification for diagnostics only. Opaque tokens are
	// reported as authenticated with no expiry data.
	parser := jwt.NewParser()
	if parsed, _, err := parser.ParseUnverified(token, jwt.MapClaims{}); err == nil {
		if sub, err := parsed.Claims.GetSubject(); err == nil {
			info.Subject = sub
		}
		if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
			expiresAt := exp.Time
			info.ExpiresAt = &expiresAt
			info.Expired = time.Now().After(expiresAt)
		}
	}

	h.Success(c, info)
}

// Logout godoc
// @Summary      Log out
// @Description  Clears the stored claims-API credentials
// @Tags         auth
// @Produce      json
// @Success      200 {object} dto.Response
// @Router       /session/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"logged_out": true})
}

// RegisterRoutes registers auth and session routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)
	rg.GET("/session", h.Session)
	rg.POST("/session/logout", h.Logout)
}
