package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"BagelShop-API/internal/auth"
	"BagelShop-API/internal/handler"
	"BagelShop-API/internal/middleware"
	"BagelShop-API/internal/repository"
)

// RouterDeps ルーター構築に必要な依存関係
type RouterDeps struct {
	Store        *repository.Store
	Authorizer   auth.Authorizer
	ErrorPolicy  handler.ErrorPolicy
	AllowOrigins []string
}

// NewRouter Ginルーターのセットアップ
func NewRouter(deps RouterDeps) *gin.Engine {
	rootHandler := handler.NewRootHandler(deps.Store)
	menuHandler := handler.NewMenuHandler(deps.Store.Menus, deps.ErrorPolicy)
	locationsHandler := handler.NewLocationsHandler(deps.Store.Locations, deps.ErrorPolicy)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(deps.AllowOrigins)))

	r.GET("/", rootHandler.Home)
	r.GET("/health", rootHandler.Health)

	// APIキー必須のエンドポイント
	protected := r.Group("/", middleware.RequireAPIKey(deps.Authorizer))
	{
		protected.GET("/menu/:title", menuHandler.GetMenu)
		protected.GET("/locations", locationsHandler.GetLocations)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders,
		auth.HeaderAPIKey1, auth.HeaderAPIKey2, auth.HeaderAPIKey3, middleware.HeaderRequestID)
	cfg.ExposeHeaders = []string{middleware.HeaderRequestID}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
