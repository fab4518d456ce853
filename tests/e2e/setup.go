//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"storefront-pricing/cmd/bootstrap"
	"storefront-pricing/cmd/bootstrap/components"
	"storefront-pricing/internal/infra/db"
	"storefront-pricing/internal/pkg/config"
	"storefront-pricing/tests/common/dbtest"

	"github.com/alicebob/miniredis/v2"
	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")

	migrationFile = "migrations/001_initial_schema.sql"
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgStartErr  error
)

// env holds what one suite needs: its own database, its own Redis and the router
// built from the production fx graph.
type env struct {
	pool   *pgxpool.Pool
	redis  *miniredis.Miniredis
	router *gin.Engine
	cfg    config.Config
}

func setupEnv(t *testing.T) env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	host, port := postgresEndpoint(t)
	dbCfg := createDatabase(t, host, port)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, dbCfg)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(cleanup)

	require.NoError(t, applyMigration(ctx, pool), "マイグレーションに失敗")
	require.NoError(t, dbtest.SeedReferenceData(pool), "参照データの投入に失敗")

	// ゲストカートはスイート毎のインメモリRedisに保存
	redisServer := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: redisServer.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.Redis.Addr = redisServer.Addr()

	router := startApp(t, cfg, pool, redisClient)

	return env{pool: pool, redis: redisServer, router: router, cfg: cfg}
}

// postgresEndpoint starts one PostgreSQL container per test process.
func postgresEndpoint(t *testing.T) (string, nat.Port) {
	t.Helper()

	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		pgContainer, pgStartErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
				// 耐久性は不要なので書き込み系を無効化
				Cmd: []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off", "-c", "full_page_writes=off"},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return adminDSN(host, port)
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "e2e-tests"},
			},
			Started: true,
		})
	})
	require.NoError(t, pgStartErr, "PostgreSQLコンテナの起動に失敗")

	ctx := context.Background()
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err)
	return host, port
}

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
}

// createDatabase gives each suite a fresh database and drops it afterwards.
func createDatabase(t *testing.T, host string, port nat.Port) config.DBConfig {
	t.Helper()

	name := "storefront_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(host, port))
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// 並列スイートが同時に CREATE DATABASE すると template1 の競合で失敗することがある
	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 300 * time.Millisecond)
		}
		if _, createErr = admin.Exec(ctx, "CREATE DATABASE "+name); createErr == nil {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempt+1, "error", createErr.Error())
	}
	require.NoError(t, createErr, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(host, port))
		if err != nil {
			slog.Warn("クリーンアップ用の接続に失敗しました", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 5,
	}
}

// applyMigration runs the schema file found by walking up from the package dir.
func applyMigration(ctx context.Context, pool *pgxpool.Pool) error {
	var (
		sql []byte
		err error
	)
	for _, dir := range []string{".", "..", filepath.Join("..", ".."), filepath.Join("..", "..", "..")} {
		if sql, err = os.ReadFile(filepath.Join(dir, migrationFile)); err == nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", migrationFile, err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("failed to apply %s: %w", migrationFile, err)
	}
	return nil
}

// startApp builds the production graph with the infrastructure swapped for the
// suite's own pool and Redis client.
func startApp(t *testing.T, cfg config.Config, pool *pgxpool.Pool, redisClient *redis.Client) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg, pool, redisClient),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	require.NotNil(t, router)
	return router
}

// SharedSuite is embedded by every e2e suite. Each subtest starts from an empty
// cart store and freshly seeded reference data.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *miniredis.Miniredis
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	e := setupEnv(s.T())
	s.Router = e.router
	s.DB = e.pool
	s.Redis = e.redis
	s.Config = e.cfg
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
	s.Redis.FlushAll()
}
