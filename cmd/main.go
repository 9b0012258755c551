package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"BagelShop-API/internal/auth"
	"BagelShop-API/internal/config"
	"BagelShop-API/internal/handler"
	"BagelShop-API/internal/repository"
	"BagelShop-API/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	// データストアへの接続（失敗してもサーバーは起動する）
	ctx := context.Background()
	store := repository.OpenStore(ctx, cfg)

	keys := cfg.APIKeys()
	router := server.NewRouter(server.RouterDeps{
		Store:        store,
		Authorizer:   auth.NewStaticKeyAuthorizer(keys[0], keys[1], keys[2]),
		ErrorPolicy:  handler.ErrorPolicy{HideDetails: cfg.HideErrorDetails},
		AllowOrigins: cfg.CORSAllowOrigins,
	})

	srv := server.New(cfg.Addr(), router)

	go func() {
		log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ Server shutdown error: %v", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Printf("⚠️ Data store close error: %v", err)
	}
	log.Println("✅ Server stopped")
}
