package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// envFile is loaded into the process environment before RADIAN_* variables
// are read. Variables that are already set win over the file.
var envFile = ".env"

// parseEnv overlays Config with RADIAN_* environment variables. Panics on
// values that cannot be parsed, like the other loaders.
func parseEnv(cfg *Config) {
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			panic(fmt.Errorf("load %s: %w", envFile, err))
		}
	}

	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(name); ok {
			*dst = v
		}
	}

	str("RADIAN_STORAGE_BACKEND", &cfg.StorageBackend)
	str("RADIAN_SQLITE_PATH", &cfg.SQLitePath)
	str("RADIAN_POSTGRES_DSN", &cfg.PostgresDSN)
	str("RADIAN_REDIS_ADDR", &cfg.RedisAddr)
	str("RADIAN_REDIS_PASSWORD", &cfg.RedisPassword)
	str("RADIAN_STORAGE_KEY", &cfg.StorageKey)
	str("RADIAN_ATTACHMENT_BACKEND", &cfg.AttachmentBackend)
	str("RADIAN_ATTACHMENT_DIR", &cfg.AttachmentDir)
	str("RADIAN_S3_ROOT_USER", &cfg.S3RootUser)
	str("RADIAN_S3_ROOT_PASSWORD", &cfg.S3RootPassword)
	str("RADIAN_S3_BUCKET", &cfg.S3Bucket)
	str("RADIAN_S3_REGION", &cfg.S3Region)
	str("RADIAN_S3_BASE_ENDPOINT", &cfg.S3BaseEndpoint)
	str("RADIAN_LOG_LEVEL", &cfg.LogLevel)
	str("RADIAN_LOG_FORMAT", &cfg.LogFormat)

	if v, ok := os.LookupEnv("RADIAN_REDIS_DB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("RADIAN_REDIS_DB: %w", err))
		}
		cfg.RedisDB = n
	}
	if v, ok := os.LookupEnv("RADIAN_BCRYPT_COST"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("RADIAN_BCRYPT_COST: %w", err))
		}
		cfg.BcryptCost = n
	}
	if v, ok := os.LookupEnv("RADIAN_HASH_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("RADIAN_HASH_TIMEOUT: %w", err))
		}
		cfg.HashTimeout = d
	}
}
