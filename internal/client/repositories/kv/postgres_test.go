package kv

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestPostgres_Get(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv WHERE key = $1`)).
		WithArgs("radian").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{}`)))

	v, err := r.Get(context.Background(), "radian")
	require.NoError(t, err)
	require.Equal(t, []byte(`{}`), v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetMissing(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv WHERE key = $1`)).
		WithArgs("radian").
		WillReturnError(sql.ErrNoRows)

	v, err := r.Get(context.Background(), "radian")
	require.NoError(t, err)
	require.Nil(t, v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetError(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv`)).
		WillReturnError(errors.New("conn reset"))

	_, err := r.Get(context.Background(), "radian")
	require.ErrorContains(t, err, "failed to get kv[radian]")
}

func TestPostgres_SetAndDelete(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresRepository(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv (key, value) VALUES ($1, $2)`)).
		WithArgs("radian", []byte("v")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM kv WHERE key = $1`)).
		WithArgs("radian").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Set(ctx, "radian", []byte("v")))
	require.NoError(t, r.Delete(ctx, "radian"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UpdateLocksRowInTx(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM kv WHERE key = $1 FOR UPDATE`)).
		WithArgs("radian").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("a")))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO kv`)).
		WithArgs("radian", []byte("ab")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := r.Update(context.Background(), "radian", func(cur []byte) ([]byte, error) {
		return append(cur, 'b'), nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UpdateRollsBackOnError(t *testing.T) {
	db, mock := newMock(t)
	r := NewPostgresRepository(db)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := r.Update(context.Background(), "radian", func(cur []byte) ([]byte, error) {
		require.Nil(t, cur)
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}
