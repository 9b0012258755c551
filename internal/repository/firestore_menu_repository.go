package repository

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"BagelShop-API/internal/domain/model"
	"BagelShop-API/internal/domain/repository"
)

// FirestoreMenuRepository Firestoreを使用したメニューリポジトリ
type FirestoreMenuRepository struct {
	client *firestore.Client
}

// NewFirestoreMenuRepository 新しいFirestoreMenuRepositoryインスタンスを作成
func NewFirestoreMenuRepository(client *firestore.Client) *FirestoreMenuRepository {
	return &FirestoreMenuRepository{client: client}
}

// FindByTitle titleが一致するメニューを1件取得する
func (r *FirestoreMenuRepository) FindByTitle(ctx context.Context, title string) (*model.Menu, error) {
	iter := r.client.Collection(menuCollection).Where("title", "==", title).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find menu %q: %w", title, err)
	}

	var menu model.Menu
	if err := doc.DataTo(&menu); err != nil {
		return nil, fmt.Errorf("failed to decode menu %s: %w", doc.Ref.ID, err)
	}
	menu.ID = doc.Ref.ID
	menu.Normalize()

	return &menu, nil
}
