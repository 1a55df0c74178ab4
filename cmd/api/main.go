package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/reverse-logistics/internal/audit"
	"github.com/BruksfildServices01/reverse-logistics/internal/config"
	dbpkg "github.com/BruksfildServices01/reverse-logistics/internal/db"
	"github.com/BruksfildServices01/reverse-logistics/internal/infra/cache"
	"github.com/BruksfildServices01/reverse-logistics/internal/infra/storage"
	"github.com/BruksfildServices01/reverse-logistics/internal/logger"
	"github.com/BruksfildServices01/reverse-logistics/internal/middleware"
	"github.com/BruksfildServices01/reverse-logistics/internal/routes"
	"github.com/BruksfildServices01/reverse-logistics/internal/timezone"
)

func main() {

	cfg := config.Load()

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := timezone.SetDefault(cfg.DefaultTimezone); err != nil {
		log.Fatal("invalid DEFAULT_TIMEZONE", zap.Error(err))
	}

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	if err := dbpkg.SeedAdmin(db, cfg, log); err != nil {
		log.Fatal("failed to seed admin", zap.Error(err))
	}

	ctx := context.Background()

	var pointCache cache.Cache = cache.NewMemoryCache()
	if cfg.RedisURL != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal("failed to connect redis", zap.Error(err))
		}
		defer client.Close()
		pointCache = cache.NewRedisCache(client, "logistics:")
		log.Info("using redis cache")
	}

	var uploader storage.Uploader
	if u := storage.NewS3Uploader(cfg); u != nil {
		uploader = u
	} else {
		log.Warn("S3_BUCKET not set, logo uploads disabled")
	}

	dispatcher := audit.NewDispatcher(audit.New(db), log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.RequestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      log,
		Cache:    pointCache,
		Uploader: uploader,
		Audit:    dispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}

	dispatcher.Close()
}
