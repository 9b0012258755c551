package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	greeting            = "Hello, Shaun’s Bagel Shop API!"
	greetingContentType = "text/html; charset=utf-8"
	serviceName         = "bagelshop-api"
)

// Pinger データストアの疎通確認
type Pinger interface {
	Ping(ctx context.Context) error
}

// RootHandler 認証不要のエンドポイント
type RootHandler struct {
	store Pinger
}

// NewRootHandler RootHandlerの新しいインスタンスを作成
func NewRootHandler(store Pinger) *RootHandler {
	return &RootHandler{store: store}
}

// Home GET / - 挨拶文をHTMLとして返す
func (h *RootHandler) Home(c *gin.Context) {
	c.Data(http.StatusOK, greetingContentType, []byte(greeting))
}

// Health GET /health - データストアへの疎通を含むヘルスチェック
func (h *RootHandler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		log.Printf("⚠️ health check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": serviceName,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
	})
}
