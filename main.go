// Package main main
package main

import (
	"context"
	"fmt"
	"time"

	"Margin-Position-Service/internal/config"
	"Margin-Position-Service/internal/handler"
	"Margin-Position-Service/internal/repository"
	"Margin-Position-Service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx := context.Background()
	cfg, err := config.NewMainConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	pool, err := dbConnection(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
	})
	if err = redisClient.Ping(ctx).Err(); err != nil {
		logrus.Fatalf("redis not responding: %v", err)
	}

	positionRepository := repository.NewMarginPositionRepository(repository.NewPgxWithinTransactionRunner(pool))
	positionCache := repository.NewPositionsCache(redisClient, time.Duration(cfg.PositionCacheTTLSeconds)*time.Second)

	marginService := service.NewMargin(positionRepository, positionCache, repository.NewPgxTransactor(pool))
	marginHandler := handler.NewMargin(marginService)

	router := gin.Default()
	marginHandler.Register(router)

	if err = router.Run(fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)); err != nil {
		logrus.Fatalf("error while listening server: %v", err)
	}
}

func dbConnection(cfg *config.MainConfig) (*pgxpool.Pool, error) {
	pgURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", cfg.PostgresUser, cfg.PostgresPassword,
		cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)

	pool, err := pgxpool.New(context.Background(), pgURL)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration data: %v", err)
	}
	if err = pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("database not responding: %v", err)
	}
	return pool, nil
}
