package repository

import (
	"context"

	"BagelShop-API/internal/domain/model"
)

// LocationsRepository locationsコレクションの読み取り専用リポジトリ
type LocationsRepository interface {
	// FindAll 全店舗を保存順のまま取得する（0件なら空スライス）
	FindAll(ctx context.Context) ([]model.Location, error)
}
