package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/radian/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, key string) ([]byte, error) {
	return pgGet(ctx, r.db, key, false)
}

func (r *PostgresRepository) Set(ctx context.Context, key string, value []byte) error {
	return pgSet(ctx, r.db, key, value)
}

func (r *PostgresRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

// Update locks the row with SELECT ... FOR UPDATE for the duration of fn.
// An absent key is not locked; concurrent first writers race on the insert.
func (r *PostgresRepository) Update(ctx context.Context, key string, fn UpdateFunc) error {
	run := func(ctx context.Context, tx dbx.DBTX) error {
		cur, err := pgGet(ctx, tx, key, true)
		if err != nil {
			return err
		}
		next, err := fn(cur)
		if err != nil {
			return err
		}
		return pgSet(ctx, tx, key, next)
	}

	db, ok := r.db.(*sql.DB)
	if !ok {
		return run(ctx, r.db)
	}
	return dbx.WithTx(ctx, db, nil, run)
}

func pgGet(ctx context.Context, q dbx.DBTX, key string, lock bool) ([]byte, error) {
	query := `SELECT value FROM kv WHERE key = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	var value []byte
	err := q.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func pgSet(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}
