package middlewares

import (
	"net/http"
	"os"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

func jwtKey() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("kidsafe_dev_secret")
}

// AuthMiddleware validates the Bearer token and stores uid and user_type
// in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return jwtKey(), nil
		})
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		uid, exists := claims["uid"].(string)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: missing uid"})
			c.Abort()
			return
		}
		userType, exists := claims["user_type"].(string)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: missing user_type"})
			c.Abort()
			return
		}

		c.Set("uid", uid)
		c.Set("user_type", userType)
		c.Next()
	}
}

// RequireParent rejects requests whose token does not carry the parent
// role. Used on every management route group.
func RequireParent() gin.HandlerFunc {
	return func(c *gin.Context) {
		userType, exists := c.Get("user_type")
		if !exists || userType.(string) != "parent" {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden: parents only"})
			c.Abort()
			return
		}
		c.Next()
	}
}
