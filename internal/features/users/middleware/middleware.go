package users_middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	users_models "teamboard/internal/features/users/models"
	users_services "teamboard/internal/features/users/services"
)

const (
	userContextKey  = "user"
	tokenContextKey = "token"
)

// AuthMiddleware validates the bearer token and stores the resolved
// user (and the raw token, for sign-out) in the request context.
func AuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		user, err := userService.GetUserFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(userContextKey, user)
		c.Set(tokenContextKey, token)
		c.Next()
	}
}

func GetUserFromContext(c *gin.Context) (*users_models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*users_models.User)
	return user, ok
}

func GetTokenFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(tokenContextKey)
	if !exists {
		return "", false
	}

	token, ok := value.(string)
	return token, ok
}
