package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
)

const (
	testPostgresPort     = "4445"
	testPostgresHost     = "localhost"
	testPostgresName     = "margin-postgres-test"
	testPostgresDB       = "postgres"
	testPostgresUser     = "postgres"
	testPostgresPassword = "postgres"

	testRedisPort = "6380"
	testRedisHost = "localhost"
	testRedisName = "margin-redis-test"
)

var testPositionRepository *MarginPosition
var testPositionsCache *PositionsCache
var testTransactor PgxTransactor
var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		logrus.Fatalf("Could not construct pool: %s", err)
	}

	err = pool.Client.Ping()
	if err != nil {
		logrus.Fatalf("Could not connect to Docker: %s", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		logrus.Fatalf("Could not get working directory: %s", err)
	}
	migrations := filepath.Join(wd, "..", "..", "migrations")

	postgres, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       testPostgresName,
		Repository: "postgres",
		Tag:        "latest",
		Env: []string{
			fmt.Sprintf("POSTGRES_USER=%s", testPostgresUser),
			fmt.Sprintf("POSTGRES_PASSWORD=%s", testPostgresPassword),
			fmt.Sprintf("POSTGRES_DB=%s", testPostgresDB),
			"listen_addresses = '*'",
		},
		Mounts: []string{fmt.Sprintf("%s:/docker-entrypoint-initdb.d", migrations)},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"5432/tcp": {{HostIP: testPostgresHost, HostPort: fmt.Sprintf("%s/tcp", testPostgresPort)}},
		},
	},
		func(config *docker.HostConfig) {
			config.AutoRemove = true
			config.RestartPolicy = docker.RestartPolicy{Name: "no"}
		})
	if err != nil {
		logrus.Fatalf("Could not start postgres: %s", err)
	}
	postgres.Expire(120)

	ctx := context.Background()
	if err = pool.Retry(func() error {
		var retryErr error
		testPool, retryErr = pgxpool.New(ctx, fmt.Sprintf("postgres://%s:%s@%s:%s/%s", testPostgresUser,
			testPostgresPassword, testPostgresHost, testPostgresPort, testPostgresDB))
		if retryErr != nil {
			return fmt.Errorf("could not connect to db %s", retryErr)
		}
		return testPool.Ping(ctx)
	}); err != nil {
		logrus.Fatalf("Could not connect to postgres: %s", err)
	}
	testPositionRepository = NewMarginPositionRepository(NewPgxWithinTransactionRunner(testPool))
	testTransactor = NewPgxTransactor(testPool)

	redisResource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       testRedisName,
		Repository: "redis",
		Tag:        "latest",
		PortBindings: map[docker.Port][]docker.PortBinding{
			"6379/tcp": {{HostIP: testRedisHost, HostPort: fmt.Sprintf("%s/tcp", testRedisPort)}},
		},
	},
		func(config *docker.HostConfig) {
			config.AutoRemove = true
			config.RestartPolicy = docker.RestartPolicy{Name: "no"}
		})
	if err != nil {
		logrus.Fatalf("Could not start redis: %s", err)
	}
	redisResource.Expire(120)

	redisClient := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", testRedisHost, testRedisPort)})
	if err = pool.Retry(func() error {
		return redisClient.Ping(ctx).Err()
	}); err != nil {
		logrus.Fatalf("Could not connect to redis: %s", err)
	}
	testPositionsCache = NewPositionsCache(redisClient, time.Minute)

	code := m.Run()

	if err = pool.Purge(postgres); err != nil {
		logrus.Fatalf("Could not purge postgres: %s", err)
	}
	if err = pool.Purge(redisResource); err != nil {
		logrus.Fatalf("Could not purge redis: %s", err)
	}

	os.Exit(code)
}
