// Package storage opens the configured key/value backend and prepares its
// schema.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/radian/internal/client/config"
	"github.com/dmitrijs2005/radian/internal/client/migrations"
	"github.com/dmitrijs2005/radian/internal/client/repositories/kv"
	"github.com/dmitrijs2005/radian/internal/common"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Storage bundles the opened repository with the handle that must be closed
// on shutdown.
type Storage struct {
	KV      kv.Repository
	Backend string
	closer  func() error
}

func (s *Storage) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

// RunMigrations applies the embedded migrations found in dir with the given
// goose dialect.
func RunMigrations(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect %s: %w", dialect, err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", dialect, err)
	}
	return nil
}

// InitSQLite opens (creating if needed) the SQLite file at dsn and migrates it.
func InitSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db, "sqlite3", migrations.SQLiteDir); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// InitPostgres connects through the pgx stdlib driver and migrates the schema.
func InitPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	if err := RunMigrations(ctx, db, "postgres", migrations.PostgresDir); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// InitRedis connects to Redis and checks the connection.
func InitRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// Open builds the repository selected by cfg.StorageBackend.
func Open(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		db, err := InitSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Storage{KV: kv.NewSQLiteRepository(db), Backend: cfg.StorageBackend, closer: db.Close}, nil

	case config.BackendPostgres:
		db, err := InitPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return &Storage{KV: kv.NewPostgresRepository(db), Backend: cfg.StorageBackend, closer: db.Close}, nil

	case config.BackendRedis:
		rdb, err := InitRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return &Storage{KV: kv.NewRedisRepository(rdb), Backend: cfg.StorageBackend, closer: rdb.Close}, nil

	case config.BackendMemory:
		return &Storage{KV: kv.NewMemoryRepository(), Backend: cfg.StorageBackend}, nil

	default:
		return nil, fmt.Errorf("storage backend %q: %w", cfg.StorageBackend, common.ErrUnsupportedBackend)
	}
}
