package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"healthmate-backend/models"
	"healthmate-backend/repository"

	"github.com/gin-gonic/gin"
)

// Context keys under which the middleware stores the resolved identity
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// UserResolver maps a token's username back to a stored user
type UserResolver interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Middleware returns a gin middleware that requires a valid bearer token and
// resolves it to a user. Missing, malformed or expired tokens get an opaque
// 401; a token whose user no longer exists gets a 404.
func Middleware(tokens *TokenService, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		username, err := tokens.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := users.GetByUsername(c.Request.Context(), username)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUsername, user.Username)
		c.Next()
	}
}
