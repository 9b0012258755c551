package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ストアドライバー
const (
	StoreDriverMongo     = "mongo"
	StoreDriverFirestore = "firestore"
)

const defaultPort = "3000"

// Config 環境変数から読み込むアプリケーション設定
type Config struct {
	Port             string
	StoreDriver      string
	MongoURI         string
	MongoDatabase    string
	FirestoreProject string
	APIKey1          string
	APIKey2          string
	APIKey3          string
	HideErrorDetails bool
	CORSAllowOrigins []string
}

// Load .envファイル（存在する場合）と環境変数から設定を読み込む
// 必須値が欠けていても起動は止めず、警告のみ出力する
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:             getEnv("PORT", defaultPort),
		StoreDriver:      strings.ToLower(getEnv("STORE_DRIVER", StoreDriverMongo)),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDatabase:    os.Getenv("MONGO_DATABASE"),
		FirestoreProject: os.Getenv("FIRESTORE_PROJECT_ID"),
		APIKey1:          os.Getenv("API_KEY"),
		APIKey2:          os.Getenv("API_KEY_2"),
		APIKey3:          os.Getenv("API_KEY_3"),
		HideErrorDetails: getBool("HIDE_ERROR_DETAILS", false),
		CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}

	for _, name := range cfg.missing() {
		log.Printf("⚠️  environment variable %s is not set", name)
	}

	return cfg
}

// Addr http.Serverに渡すリッスンアドレス
func (c *Config) Addr() string {
	return ":" + c.Port
}

// APIKeys ヘッダー api-key-1..3 に対応する共有シークレット
func (c *Config) APIKeys() [3]string {
	return [3]string{c.APIKey1, c.APIKey2, c.APIKey3}
}

func (c *Config) missing() []string {
	var names []string
	switch c.StoreDriver {
	case StoreDriverFirestore:
		if c.FirestoreProject == "" {
			names = append(names, "FIRESTORE_PROJECT_ID")
		}
	default:
		if c.MongoURI == "" {
			names = append(names, "MONGO_URI")
		}
	}
	if c.APIKey1 == "" {
		names = append(names, "API_KEY")
	}
	if c.APIKey2 == "" {
		names = append(names, "API_KEY_2")
	}
	if c.APIKey3 == "" {
		names = append(names, "API_KEY_3")
	}
	return names
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
