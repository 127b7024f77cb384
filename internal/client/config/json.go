package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/radian/internal/flagx"
	"github.com/dmitrijs2005/radian/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. HashTimeout
// relies on timex.Duration so it can be written as "30s" or as integer
// nanoseconds.
type JsonConfig struct {
	StorageBackend    string         `json:"storage_backend"`
	SQLitePath        string         `json:"sqlite_path"`
	PostgresDSN       string         `json:"postgres_dsn"`
	RedisAddr         string         `json:"redis_addr"`
	RedisPassword     string         `json:"redis_password"`
	RedisDB           int            `json:"redis_db"`
	StorageKey        string         `json:"storage_key"`
	BcryptCost        int            `json:"bcrypt_cost"`
	HashTimeout       timex.Duration `json:"hash_timeout"`
	AttachmentBackend string         `json:"attachment_backend"`
	AttachmentDir     string         `json:"attachment_dir"`
	S3RootUser        string         `json:"s3_root_user"`
	S3RootPassword    string         `json:"s3_root_password"`
	S3Bucket          string         `json:"s3_bucket"`
	S3Region          string         `json:"s3_region"`
	S3BaseEndpoint    string         `json:"s3_base_endpoint"`
	LogLevel          string         `json:"log_level"`
	LogFormat         string         `json:"log_format"`
}

// parseJson overlays Config with values from the JSON file named by -c or
// -config. Keys missing from the file keep their current value. Panics on
// read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	jc := toJson(cfg)
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	fromJson(cfg, jc)
}

func toJson(c *Config) JsonConfig {
	return JsonConfig{
		StorageBackend:    c.StorageBackend,
		SQLitePath:        c.SQLitePath,
		PostgresDSN:       c.PostgresDSN,
		RedisAddr:         c.RedisAddr,
		RedisPassword:     c.RedisPassword,
		RedisDB:           c.RedisDB,
		StorageKey:        c.StorageKey,
		BcryptCost:        c.BcryptCost,
		HashTimeout:       timex.Duration{Duration: c.HashTimeout},
		AttachmentBackend: c.AttachmentBackend,
		AttachmentDir:     c.AttachmentDir,
		S3RootUser:        c.S3RootUser,
		S3RootPassword:    c.S3RootPassword,
		S3Bucket:          c.S3Bucket,
		S3Region:          c.S3Region,
		S3BaseEndpoint:    c.S3BaseEndpoint,
		LogLevel:          c.LogLevel,
		LogFormat:         c.LogFormat,
	}
}

func fromJson(c *Config, jc JsonConfig) {
	c.StorageBackend = jc.StorageBackend
	c.SQLitePath = jc.SQLitePath
	c.PostgresDSN = jc.PostgresDSN
	c.RedisAddr = jc.RedisAddr
	c.RedisPassword = jc.RedisPassword
	c.RedisDB = jc.RedisDB
	c.StorageKey = jc.StorageKey
	c.BcryptCost = jc.BcryptCost
	c.HashTimeout = jc.HashTimeout.Duration
	c.AttachmentBackend = jc.AttachmentBackend
	c.AttachmentDir = jc.AttachmentDir
	c.S3RootUser = jc.S3RootUser
	c.S3RootPassword = jc.S3RootPassword
	c.S3Bucket = jc.S3Bucket
	c.S3Region = jc.S3Region
	c.S3BaseEndpoint = jc.S3BaseEndpoint
	c.LogLevel = jc.LogLevel
	c.LogFormat = jc.LogFormat
}
