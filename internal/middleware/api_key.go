package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"BagelShop-API/internal/auth"
)

// RequireAPIKey 認証に失敗したリクエストを401で打ち切るミドルウェア
func RequireAPIKey(authorizer auth.Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := authorizer.Authorize(c.Request.Header)
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, auth.ErrMissingAPIKey):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing API key"})
		default:
			log.Printf("⚠️ [%s] rejected %s %s: %v", RequestID(c), c.Request.Method, c.Request.URL.Path, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid API key"})
		}
	}
}
