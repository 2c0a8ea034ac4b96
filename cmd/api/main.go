package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"universe-classifier/internal/classifier"
	"universe-classifier/internal/config"
	"universe-classifier/internal/db"
	apihttp "universe-classifier/internal/http"
	"universe-classifier/internal/repository"
	"universe-classifier/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var runs repository.RunRepository
	pool, err := db.NewPool(ctx, cfg)
	switch {
	case errors.Is(err, db.ErrNotConfigured):
		logger.Warn("database not configured, runs will not be persisted")
	case err != nil:
		logger.Fatal("db connect", zap.Error(err))
	default:
		defer pool.Close()
		if err := db.Ping(ctx, pool); err != nil {
			logger.Fatal("db ping", zap.Error(err))
		}
		runs = repository.NewPgRunRepository(pool)
	}

	var limiter service.RateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisRateLimiter(redisClient, time.Minute, cfg.RateLimitPerMinute)
		}
		cancel()
	}
	if limiter == nil {
		limiter = service.NewMemoryRateLimiter(time.Minute, cfg.RateLimitPerMinute)
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)
	if !jwtSvc.Enabled() {
		logger.Warn("jwt secret not configured, api is unauthenticated")
	}
	authSvc := service.NewAuthService(logger, jwtSvc, cfg.APIKeyHash)

	classificationSvc := service.NewClassificationService(logger, classifier.New(logger), runs)
	authHandler := apihttp.NewAuthHandler(logger, authSvc)
	classifyHandler := apihttp.NewClassifyHandler(logger, classificationSvc)
	router := apihttp.NewRouter(logger, authHandler, classifyHandler, jwtSvc, limiter)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
