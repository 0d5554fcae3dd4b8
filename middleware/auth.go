package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"zestyflow/models"
	"zestyflow/utils"
)

// Context keys set by AuthMiddleware on success.
const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
)

// UserResolver checks that a token subject still maps to a live user.
type UserResolver interface {
	FindByID(ctx context.Context, id int) (*models.User, error)
}

// AuthMiddleware extracts and verifies the bearer token, resolves the
// subject against the user store, and attaches the identity to the
// request context. It never mutates persistent state.
func AuthMiddleware(tokens *utils.TokenManager, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			return
		}

		claims, err := tokens.Verify(tokenParts[1])
		if err != nil {
			// Expiry gets its own error code so clients can prompt
			// re-login specifically.
			if errors.Is(err, utils.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
					Success: false,
					Message: "Token expired",
					Error:   "token_expired",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid token",
				Error:   "invalid_token",
			})
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil || user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "User not found",
			})
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserEmail, user.Email)
		c.Next()
	}
}
