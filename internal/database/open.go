package database

import (
	"context"
	"fmt"
)

// Backend names accepted by Open
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Options selects and configures a backend
type Options struct {
	Backend string

	// Path is the SQLite database file (sqlite) or the data directory (file)
	Path string

	RedisAddr   string
	RedisDB     int
	RedisPrefix string
}

// Open returns the backend described by opts
func Open(ctx context.Context, opts Options) (KeyValueStore, error) {
	switch opts.Backend {
	case BackendSQLite, "":
		return OpenSQLiteStore(ctx, opts.Path)
	case BackendFile:
		return OpenFileStore(opts.Path)
	case BackendRedis:
		return OpenRedisStore(ctx, opts.RedisAddr, opts.RedisDB, opts.RedisPrefix)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}
