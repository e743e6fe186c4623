package middleware

import (
	"errors"

	"github.com/budgetbook/internal/models"
	"github.com/budgetbook/internal/service"
	"github.com/budgetbook/pkg/response"
	"github.com/gin-gonic/gin"
)

const (
	// ContextKeyUser is the key for the authenticated user in gin context
	ContextKeyUser = "auth_user"
)

// AuthMiddleware creates a session-cookie authentication middleware.
// Every protected handler runs behind it: the request either carries a
// resolvable session and continues with the user in context, or it is
// aborted with a 401 before any handler logic executes.
func AuthMiddleware(authService *service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		user, resolveErr := authService.ResolveSession(token)
		if resolveErr != nil {
			if errors.Is(resolveErr, service.ErrSessionExpired) {
				response.Unauthorized(c, "Session expired")
			} else {
				response.Unauthorized(c, "Unauthorized")
			}
			c.Abort()
			return
		}

		c.Set(ContextKeyUser, user)

		c.Next()
	}
}

// GetUser gets the authenticated user from the gin context. It is only
// meaningful behind AuthMiddleware.
func GetUser(c *gin.Context) *models.User {
	user, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil
	}
	return user.(*models.User)
}
