package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"BagelShop-API/internal/domain/model"
	"BagelShop-API/internal/domain/repository"
	"BagelShop-API/internal/infrastructure/mongodb"
)

const (
	menuCollection      = "menu"
	locationsCollection = "locations"
)

// MongoMenuRepository MongoDBを使用したメニューリポジトリ
type MongoMenuRepository struct {
	client *mongodb.Client
}

// NewMongoMenuRepository 新しいMongoMenuRepositoryインスタンスを作成
func NewMongoMenuRepository(client *mongodb.Client) *MongoMenuRepository {
	return &MongoMenuRepository{client: client}
}

// FindByTitle titleが一致する最初のメニューを取得する
func (r *MongoMenuRepository) FindByTitle(ctx context.Context, title string) (*model.Menu, error) {
	collection, err := r.client.Collection(menuCollection)
	if err != nil {
		return nil, err
	}

	var menu model.Menu
	err = collection.FindOne(ctx, bson.M{"title": title}).Decode(&menu)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find menu %q: %w", title, err)
	}

	menu.Normalize()
	return &menu, nil
}
