package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/budgetbook/internal/middleware"
	"github.com/budgetbook/internal/service"
	"github.com/budgetbook/pkg/response"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication API requests
type AuthHandler struct {
	authService  *service.AuthService
	cookieName   string
	cookieMaxAge int
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService, cookieName string, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
	}
}

// secureCookies reports whether the Secure flag should be set on the
// session cookie. Local development runs over plain HTTP, so the flag
// is only set in release mode on a non-loopback host.
func secureCookies(c *gin.Context) bool {
	if gin.Mode() != gin.ReleaseMode {
		return false
	}

	host := c.GetHeader("X-Forwarded-Host")
	if host == "" {
		host = c.Request.Host
	}
	host = strings.ToLower(host)

	if strings.HasPrefix(host, "localhost") || strings.HasPrefix(host, "127.0.0.1") {
		return false
	}

	return true
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, h.cookieMaxAge, "/", "", secureCookies(c), true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", secureCookies(c), true)
}

// Signup handles user registration
// POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, token, err := h.authService.Signup(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired),
			errors.Is(err, service.ErrWeakPassword),
			errors.Is(err, service.ErrEmailTaken):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err.Error())
		}
		return
	}

	h.setSessionCookie(c, token)
	response.Created(c, user)
}

// Login handles user login
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, token, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid email or password")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	h.setSessionCookie(c, token)
	response.Success(c, user)
}

// Logout revokes the presented session and clears the cookie
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookieName); err == nil && token != "" {
		if err := h.authService.Logout(token); err != nil {
			middleware.LogError("failed to delete session: %v", err)
		}
	}

	h.clearSessionCookie(c)
	response.Success(c, gin.H{"ok": true})
}

// GetProfile returns the authenticated user's profile
// GET /auth/me
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user := middleware.GetUser(c)
	response.Success(c, h.authService.GetProfile(user))
}

// UpdateProfile updates the authenticated user's display name
// PUT /auth/me
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user := middleware.GetUser(c)

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	profile, err := h.authService.UpdateProfile(user.ID, &req)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			response.Unauthorized(c, "Unauthorized")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, profile)
}

// RegisterRoutes registers auth routes. The credential endpoints sit
// behind the rate limiter; the profile endpoints require a session.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, rateLimiter, authMiddleware gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signup", rateLimiter, h.Signup)
		auth.POST("/login", rateLimiter, h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", authMiddleware, h.GetProfile)
		auth.PUT("/me", authMiddleware, h.UpdateProfile)
	}
}
