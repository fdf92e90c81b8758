package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ttsbooking/consult-platform/internal/cache"
	"github.com/ttsbooking/consult-platform/internal/config"
	dbpkg "github.com/ttsbooking/consult-platform/internal/db"
	"github.com/ttsbooking/consult-platform/internal/handlers"
	"github.com/ttsbooking/consult-platform/internal/infra/objstore"
	"github.com/ttsbooking/consult-platform/internal/middleware"
	"github.com/ttsbooking/consult-platform/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var serviceCache *cache.ServiceCache
	if cfg.RedisAddr != "" {
		c, err := cache.NewServiceCache(cfg.RedisAddr)
		if err != nil {
			log.Printf("redis unavailable, caching disabled: %v", err)
		} else {
			serviceCache = c
		}
	}

	var presigner handlers.UploadPresigner
	if cfg.S3Bucket != "" {
		p, err := objstore.NewAvatarPresigner(cfg)
		if err != nil {
			log.Printf("object storage unavailable, avatar uploads disabled: %v", err)
		} else {
			presigner = p
		}
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery(cfg))
	r.Use(middleware.CORS(cfg.FrontendURL))

	routes.RegisterRoutes(r, routes.Deps{
		DB:           db,
		Config:       cfg,
		ServiceCache: serviceCache,
		Presigner:    presigner,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server running on %s (%s)", cfg.Addr(), cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()

	log.Println("shutdown signal received, draining connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
}
