package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"BagelShop-API/internal/domain/model"
	"BagelShop-API/internal/domain/repository"
	"BagelShop-API/internal/infrastructure/mongodb"
)

// setupMongoTestDatabase 使い捨てデータベースにテストデータを投入する
// MONGO_URI が未設定の場合はスキップ
func setupMongoTestDatabase(t *testing.T) *mongodb.Client {
	t.Helper()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI が設定されていません。統合テストをスキップします。")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	raw, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	dbName := "bagelshop_test_" + uuid.NewString()[:8]
	db := raw.Database(dbName)

	_, err = db.Collection(menuCollection).InsertMany(ctx, []interface{}{
		bson.M{
			"title":  "Breakfast",
			"slogan": "Start your day right",
			"items": bson.A{
				bson.M{"name": "Everything Bagel", "price": 2.5, "rating": 4.8},
				bson.M{"name": "Lox Bagel", "price": 9.75, "rating": 4.9},
				bson.M{"name": "Egg & Cheese", "price": 6, "rating": 4.5},
			},
		},
	})
	require.NoError(t, err)

	_, err = db.Collection(locationsCollection).InsertMany(ctx, []interface{}{
		bson.M{"city": "Austin", "street": "Congress Ave", "geolocation": bson.A{30.2672, -97.7431}},
		bson.M{"city": "Dallas", "street": "Elm St", "geolocation": bson.A{32.7767, -96.797}},
		// 型が揃っていない手入力ドキュメント
		bson.M{"city": "Houston", "miles": 2.5, "phone": int64(7135550100), "geolocation": bson.A{"29.7604", int32(-95)}},
	})
	require.NoError(t, err)

	client := mongodb.NewClient(ctx, uri, dbName)

	t.Cleanup(func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = db.Drop(cleanupCtx)
		_ = raw.Disconnect(cleanupCtx)
		_ = client.Close(cleanupCtx)
	})

	return client
}

func TestMongoMenuRepository_FindByTitle(t *testing.T) {
	client := setupMongoTestDatabase(t)
	repo := NewMongoMenuRepository(client)
	ctx := context.Background()

	t.Run("存在するメニュー", func(t *testing.T) {
		menu, err := repo.FindByTitle(ctx, "Breakfast")
		require.NoError(t, err)

		assert.NotEmpty(t, menu.ID)
		require.NotNil(t, menu.Slogan)
		assert.Equal(t, "Start your day right", menu.Slogan.String())
		require.Len(t, menu.Items, 3)
		assert.Equal(t, "Everything Bagel", menu.Items[0].Name.String())
		assert.Equal(t, "Lox Bagel", menu.Items[1].Name.String())
		assert.Equal(t, "Egg & Cheese", menu.Items[2].Name.String())
		assert.Equal(t, model.LooseNumber(6), *menu.Items[2].Price)
	})

	t.Run("存在しないメニュー", func(t *testing.T) {
		_, err := repo.FindByTitle(ctx, "NoSuchMenu")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestMongoLocationsRepository_FindAll(t *testing.T) {
	client := setupMongoTestDatabase(t)
	repo := NewMongoLocationsRepository(client)

	locations, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 3)

	byCity := map[string]model.Location{}
	for _, loc := range locations {
		assert.NotEmpty(t, loc.ID)
		assert.Len(t, loc.Geolocation, 2)
		byCity[loc.City.String()] = loc
	}

	houston, ok := byCity["Houston"]
	require.True(t, ok)
	assert.Equal(t, "2.5", houston.Miles.String())
	assert.Equal(t, "7135550100", houston.Phone.String())
	p, ok := houston.Point()
	require.True(t, ok)
	assert.Equal(t, 29.7604, p.Lat())
}
