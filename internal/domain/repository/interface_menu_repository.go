package repository

import (
	"context"
	"errors"

	"BagelShop-API/internal/domain/model"
)

// ErrNotFound 単一ドキュメントの検索で一致がなかった場合に返す
var ErrNotFound = errors.New("document not found")

// MenuRepository menuコレクションの読み取り専用リポジトリ
type MenuRepository interface {
	// FindByTitle titleが一致するメニューを1件取得する（なければ ErrNotFound）
	FindByTitle(ctx context.Context, title string) (*model.Menu, error)
}
