// Package kv provides the synchronous key/value stores the record collection
// is persisted in.
//
// Every backend honours the same contract: Get returns (nil, nil) for an
// absent key, Set overwrites, Delete is idempotent. Backends that can perform
// a read-modify-write of a single key atomically also implement Updater;
// Update falls back to Get followed by Set for the ones that cannot.
//
// Implementations:
//
//   - SQLiteRepository   SQLite over dbx.DBTX (modernc.org/sqlite)
//   - PostgresRepository PostgreSQL over dbx.DBTX (pgx stdlib driver)
//   - RedisRepository    Redis strings (go-redis)
//   - MemoryRepository   process-local map, for tests and throwaway sessions
package kv
