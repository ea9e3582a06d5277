package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtKey())
	assert.NoError(t, err)
	return signed
}

func setupMiddlewareRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	router.GET("/protected", func(c *gin.Context) {
		uid, _ := c.Get("uid")
		userType, _ := c.Get("user_type")
		c.JSON(http.StatusOK, gin.H{"uid": uid, "user_type": userType})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	router := setupMiddlewareRouter(AuthMiddleware())

	token := signedToken(t, jwt.MapClaims{
		"uid":       "parent-uid",
		"user_type": "parent",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "parent-uid")
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := setupMiddlewareRouter(AuthMiddleware())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	router := setupMiddlewareRouter(AuthMiddleware())

	token := signedToken(t, jwt.MapClaims{
		"uid":       "parent-uid",
		"user_type": "parent",
		"exp":       time.Now().Add(-time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireParentRejectsChildToken(t *testing.T) {
	router := setupMiddlewareRouter(AuthMiddleware(), RequireParent())

	token := signedToken(t, jwt.MapClaims{
		"uid":       "2",
		"user_type": "child",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
