package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"BagelShop-API/internal/middleware"
)

const genericErrorDetails = "an unexpected error occurred, see server logs"

// ErrorPolicy 500エラー時に内部エラーメッセージをレスポンスへ含めるかどうか
type ErrorPolicy struct {
	HideDetails bool
}

// internalError エラーをログに残し、500レスポンスを返す
func (p ErrorPolicy) internalError(c *gin.Context, operation string, err error) {
	log.Printf("❌ [%s] Error %s: %v", middleware.RequestID(c), operation, err)

	details := err.Error()
	if p.HideDetails {
		details = genericErrorDetails
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"details": details,
	})
}
