package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/studio-manager/internal/audit"
	"github.com/BruksfildServices01/studio-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/studio-manager/internal/db"
	"github.com/BruksfildServices01/studio-manager/internal/logger"
	"github.com/BruksfildServices01/studio-manager/internal/metrics"
	"github.com/BruksfildServices01/studio-manager/internal/ratelimit"
	"github.com/BruksfildServices01/studio-manager/internal/routes"
	"github.com/BruksfildServices01/studio-manager/internal/storage"
)

func main() {

	cfg := config.Load()
	log := logger.Must(cfg.LogLevel, cfg.LogFormat, "studio-api")
	defer func() { _ = log.Sync() }()

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// ------------------------------
	// Rate limiter
	// ------------------------------
	var limiter ratelimit.Limiter
	var memLimiter *ratelimit.Memory
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal("invalid REDIS_URL", zap.Error(err))
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		limiter = ratelimit.NewRedis(rdb, cfg.RateLimitMax, cfg.RateLimitWindow)
		log.Info("rate limiter backed by redis")
	} else {
		memLimiter = ratelimit.NewMemory(cfg.RateLimitMax, cfg.RateLimitWindow)
		limiter = memLimiter
		log.Info("rate limiter in memory")
	}

	archiver := storage.New(cfg.S3)
	if cfg.S3.Enabled() {
		log.Info("report archive enabled", zap.String("bucket", cfg.S3.Bucket))
	}

	dispatcher := audit.NewDispatcher(audit.New(db), log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	if err := r.SetTrustedProxies([]string{
		"127.0.0.0/8",
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
	}); err != nil {
		log.Fatal("invalid trusted proxies", zap.Error(err))
	}

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      log,
		Audit:    dispatcher,
		Limiter:  limiter,
		Archiver: archiver,
		Metrics:  metrics.New(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// ------------------------------
	// Graceful shutdown
	// ------------------------------
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	}
	if err := dispatcher.Close(ctx); err != nil {
		log.Warn("audit queue not drained", zap.Error(err))
	}
	if memLimiter != nil {
		memLimiter.Stop()
	}

	log.Info("server stopped")
}
