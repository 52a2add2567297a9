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

	"lapak-be/internal/auth"
	"lapak-be/internal/config"
	"lapak-be/internal/db"
	"lapak-be/internal/handler"
	"lapak-be/internal/logger"
	"lapak-be/internal/middleware"
	"lapak-be/internal/product"
	"lapak-be/internal/seller"

	"github.com/gin-gonic/gin"
)

func setupRouter(h *handler.Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestIDMiddleware())
	router.Use(logger.AccessLogMiddleware())
	router.Use(middleware.RateLimit())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h.RegisterRoutes(router)
	return router
}

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL())

	sellerRepo := seller.NewRepository(database)
	sellerSvc := seller.NewService(sellerRepo, tokens)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(handler.New(sellerSvc, productSvc, tokens))

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	go func() {
		log.Printf("🚀 API server running at http://localhost:%s/", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("server stopped")
}
