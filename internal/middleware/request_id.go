package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestIDMiddleware リクエストIDを引き継ぐか新規発行し、レスポンスヘッダーにも付与する
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestID コンテキストに保存されたリクエストID
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
