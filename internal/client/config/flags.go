package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/radian/internal/flagx"
)

var knownFlags = []string{"-b", "-d", "-p", "-r", "-k", "-cost", "-t", "-a", "-ad", "-l", "-f"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   storage backend: sqlite, postgres, redis, memory
//	-d string   SQLite database file
//	-p string   PostgreSQL DSN
//	-r string   Redis address
//	-k string   key the record collection is stored under
//	-cost int   bcrypt cost
//	-t int      password hashing timeout (in seconds)
//	-a string   attachment backend: none, local, s3
//	-ad string  attachment directory for the local backend
//	-l string   log level
//	-f string   log format: text or json
//
// os.Args is filtered with flagx.FilterArgs so -c/-config and unknown flags
// do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageBackend, "b", cfg.StorageBackend, "storage backend")
	fs.StringVar(&cfg.SQLitePath, "d", cfg.SQLitePath, "SQLite database file")
	fs.StringVar(&cfg.PostgresDSN, "p", cfg.PostgresDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.StorageKey, "k", cfg.StorageKey, "storage key")
	fs.IntVar(&cfg.BcryptCost, "cost", cfg.BcryptCost, "bcrypt cost")
	hashTimeout := fs.Int("t", int(cfg.HashTimeout.Seconds()), "password hashing timeout (in seconds)")
	fs.StringVar(&cfg.AttachmentBackend, "a", cfg.AttachmentBackend, "attachment backend")
	fs.StringVar(&cfg.AttachmentDir, "ad", cfg.AttachmentDir, "attachment directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.HashTimeout = time.Duration(*hashTimeout) * time.Second
		}
	})
}
