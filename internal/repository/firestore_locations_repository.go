package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"BagelShop-API/internal/domain/model"
)

// FirestoreLocationsRepository Firestoreを使用した店舗リポジトリ
type FirestoreLocationsRepository struct {
	client *firestore.Client
}

// NewFirestoreLocationsRepository 新しいFirestoreLocationsRepositoryインスタンスを作成
func NewFirestoreLocationsRepository(client *firestore.Client) *FirestoreLocationsRepository {
	return &FirestoreLocationsRepository{client: client}
}

// FindAll locationsコレクションの全ドキュメントを取得する
func (r *FirestoreLocationsRepository) FindAll(ctx context.Context) ([]model.Location, error) {
	docs, err := r.client.Collection(locationsCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}

	locations := make([]model.Location, 0, len(docs))
	for _, doc := range docs {
		var loc model.Location
		if err := doc.DataTo(&loc); err != nil {
			return nil, fmt.Errorf("failed to decode location %s: %w", doc.Ref.ID, err)
		}
		loc.ID = doc.Ref.ID
		loc.Normalize()
		locations = append(locations, loc)
	}

	return locations, nil
}
