package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// URIにデータベース名が含まれない場合のデフォルト（mongooseと同じ）
const defaultDatabase = "test"

const pingTimeout = 30 * time.Second

// ErrNotConnected クライアントを作成できなかった場合に各クエリが返すエラー
var ErrNotConnected = errors.New("mongodb client is not connected")

// Client プロセス全体で共有する MongoDB クライアント
type Client struct {
	client *mongo.Client
	db     *mongo.Database
	err    error
}

// NewClient MongoDB クライアントを作成する
// 接続確認はバックグラウンドで行い、失敗してもログを出すだけでエラーは返さない
func NewClient(ctx context.Context, uri, database string) *Client {
	if uri == "" {
		return unavailable(errors.New("MONGO_URI is empty"))
	}

	if database == "" {
		database = databaseFromURI(uri)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return unavailable(err)
	}

	c := &Client{
		client: client,
		db:     client.Database(database),
	}

	go func() {
		pingCtx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()
		if err := c.Ping(pingCtx); err != nil {
			log.Printf("❌ MongoDB connection error: %v", err)
			return
		}
		log.Printf("✅ MongoDB connected (database: %s)", database)
	}()

	return c
}

func unavailable(err error) *Client {
	log.Printf("❌ MongoDB connection error: %v", err)
	return &Client{err: fmt.Errorf("%w: %v", ErrNotConnected, err)}
}

func databaseFromURI(uri string) string {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil || cs.Database == "" {
		return defaultDatabase
	}
	return cs.Database
}

// Collection 指定したコレクションを返す
func (c *Client) Collection(name string) (*mongo.Collection, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.db.Collection(name), nil
}

// Ping サーバーへの疎通を確認する
func (c *Client) Ping(ctx context.Context) error {
	if c.err != nil {
		return c.err
	}
	return c.client.Ping(ctx, nil)
}

// Close 接続を切断する
func (c *Client) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}
