package repository

import (
	"context"
	"fmt"
	"log"

	"BagelShop-API/internal/config"
	"BagelShop-API/internal/domain/model"
	"BagelShop-API/internal/domain/repository"
	"BagelShop-API/internal/infrastructure/firestore"
	"BagelShop-API/internal/infrastructure/mongodb"
)

// Store 起動時に一度だけ作成し、ハンドラーへ注入するデータストア
type Store struct {
	Menus     repository.MenuRepository
	Locations repository.LocationsRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// NewStore 任意のリポジトリ実装からStoreを組み立てる（テスト用途にも使う）
func NewStore(menus repository.MenuRepository, locations repository.LocationsRepository, ping, closeFn func(ctx context.Context) error) *Store {
	if ping == nil {
		ping = func(context.Context) error { return nil }
	}
	if closeFn == nil {
		closeFn = func(context.Context) error { return nil }
	}
	return &Store{Menus: menus, Locations: locations, ping: ping, close: closeFn}
}

// OpenStore STORE_DRIVERに応じてデータストアへ接続する
// 接続に失敗してもエラーは返さず、各クエリが個別に失敗する
func OpenStore(ctx context.Context, cfg *config.Config) *Store {
	switch cfg.StoreDriver {
	case config.StoreDriverFirestore:
		client, err := firestore.NewFirestoreClient(ctx, cfg.FirestoreProject)
		if err != nil {
			log.Printf("❌ Firestore connection error: %v", err)
			return unavailableStore(err)
		}
		return NewStore(
			NewFirestoreMenuRepository(client.GetClient()),
			NewFirestoreLocationsRepository(client.GetClient()),
			client.Ping,
			func(context.Context) error { return client.Close() },
		)
	case config.StoreDriverMongo:
		client := mongodb.NewClient(ctx, cfg.MongoURI, cfg.MongoDatabase)
		return NewStore(
			NewMongoMenuRepository(client),
			NewMongoLocationsRepository(client),
			client.Ping,
			client.Close,
		)
	default:
		err := fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
		log.Printf("❌ %v", err)
		return unavailableStore(err)
	}
}

// Ping データストアの疎通を確認する
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close 接続を解放する
func (s *Store) Close(ctx context.Context) error {
	return s.close(ctx)
}

type unavailableRepository struct {
	err error
}

func unavailableStore(err error) *Store {
	repo := unavailableRepository{err: fmt.Errorf("data store unavailable: %w", err)}
	return NewStore(repo, repo, func(context.Context) error { return repo.err }, nil)
}

func (r unavailableRepository) FindByTitle(context.Context, string) (*model.Menu, error) {
	return nil, r.err
}

func (r unavailableRepository) FindAll(context.Context) ([]model.Location, error) {
	return nil, r.err
}
