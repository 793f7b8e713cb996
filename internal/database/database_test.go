package database_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/cookbook/backend/config"
	"github.com/pageza/cookbook/backend/internal/database"
	"github.com/pageza/cookbook/backend/internal/models"
	"github.com/pageza/cookbook/backend/internal/testhelpers"
)

func TestOpenSQLite(t *testing.T) {
	cfg := &config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "cookbook.db"),
	}

	db, err := database.Open(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.RunMigrations(db))
	assert.True(t, db.Migrator().HasTable(&models.Recipe{}))
	assert.True(t, db.Migrator().HasTable(&models.Ingredient{}))
	assert.True(t, db.Migrator().HasTable("recipe_ingredients"))
	assert.True(t, db.Migrator().HasTable(&models.User{}))

	assert.NoError(t, database.HealthCheck(context.Background(), db))

	// migrations are idempotent
	assert.NoError(t, database.RunMigrations(db))
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := database.Open(&config.Config{DBDriver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestPostgresDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "secret",
		DBName:     "cookbook",
	}
	assert.Equal(t, "host=db port=5432 user=postgres password=secret dbname=cookbook sslmode=disable", database.PostgresDSN(cfg))

	cfg.DBSSLMode = "require"
	assert.Contains(t, database.PostgresDSN(cfg), "sslmode=require")
}

func TestWaitForPostgresGivesUp(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "127.0.0.1",
		DBPort:     "1",
		DBUser:     "postgres",
		DBPassword: "postgres",
		DBName:     "cookbook",
	}
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	err := database.WaitForPostgres(ctx, cfg, 50*time.Millisecond)
	assert.ErrorContains(t, err, "database did not become ready")
}

func TestHealthCheckClosed(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	assert.NoError(t, database.HealthCheck(context.Background(), db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	assert.Error(t, database.HealthCheck(context.Background(), db))
}

func TestNewRedisClient(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	client := testhelpers.SetupTestRedis(t)

	cfg := &config.Config{RedisURL: "redis://" + client.Options().Addr}
	connected, err := database.NewRedisClient(context.Background(), cfg)
	require.NoError(t, err)
	defer connected.Close()

	assert.NoError(t, connected.Set(context.Background(), "k", "v", 0).Err())
}

func TestNewRedisClientBadURL(t *testing.T) {
	_, err := database.NewRedisClient(context.Background(), &config.Config{RedisURL: "://nope"})
	assert.ErrorContains(t, err, "failed to parse Redis URL")
}
