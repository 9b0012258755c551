package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"BagelShop-API/internal/domain/model"
	"BagelShop-API/internal/infrastructure/mongodb"
)

// MongoLocationsRepository MongoDBを使用した店舗リポジトリ
type MongoLocationsRepository struct {
	client *mongodb.Client
}

// NewMongoLocationsRepository 新しいMongoLocationsRepositoryインスタンスを作成
func NewMongoLocationsRepository(client *mongodb.Client) *MongoLocationsRepository {
	return &MongoLocationsRepository{client: client}
}

// FindAll 全店舗を取得する（並び順は指定しない）
func (r *MongoLocationsRepository) FindAll(ctx context.Context) ([]model.Location, error) {
	collection, err := r.client.Collection(locationsCollection)
	if err != nil {
		return nil, err
	}

	cursor, err := collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}

	locations := []model.Location{}
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, fmt.Errorf("failed to decode locations: %w", err)
	}

	for i := range locations {
		locations[i].Normalize()
	}
	return locations, nil
}
