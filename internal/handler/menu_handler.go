package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"BagelShop-API/internal/domain/repository"
)

// MenuHandler メニュー取得のHTTPハンドラー
type MenuHandler struct {
	menus  repository.MenuRepository
	policy ErrorPolicy
}

// NewMenuHandler MenuHandlerの新しいインスタンスを作成
func NewMenuHandler(menus repository.MenuRepository, policy ErrorPolicy) *MenuHandler {
	return &MenuHandler{
		menus:  menus,
		policy: policy,
	}
}

// GetMenu GET /menu/:title - titleが一致するメニューを埋め込みの商品ごと返す
func (h *MenuHandler) GetMenu(c *gin.Context) {
	title := c.Param("title")

	menu, err := h.menus.FindByTitle(c.Request.Context(), title)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}
	if err != nil {
		h.policy.internalError(c, "fetching menu", err)
		return
	}

	c.JSON(http.StatusOK, menu)
}
