// Package cache stores solved instances keyed by a content hash, so a repeated
// /solve request for the same matrix and limits is answered without searching.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/katalvlaran/tspbb/internal/config"
)

// Cache is a byte store with per-entry TTL. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SolveKey derives the cache key for an instance and the limits that affect
// its answer. Missing edges must be encoded as +Inf in rows.
func SolveKey(prefix string, rows [][]float64, frontier string, maxNodes int) string {
	buf := make([]byte, 0, 16*len(rows)*len(rows)+32)
	buf = strconv.AppendInt(buf, int64(len(rows)), 10)
	buf = append(buf, '|')
	buf = append(buf, frontier...)
	buf = append(buf, '|')
	buf = strconv.AppendInt(buf, int64(maxNodes), 10)
	for _, row := range rows {
		buf = append(buf, '\n')
		for j, v := range row {
			if j > 0 {
				buf = append(buf, ',')
			}
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
	}

	return prefix + Hash(buf)
}

// New builds the backend selected by cfg.Backend.
func New(ctx context.Context, cfg config.CacheConfig) (Cache, error) {
	switch cfg.Backend {
	case "", config.CacheNone:
		return NewNullCache(), nil
	case config.CacheFile:
		return NewFileCache(cfg.Dir)
	case config.CacheRedis:
		return NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisDB)
	default:
		return nil, fmt.Errorf("cache: unknown backend %q", cfg.Backend)
	}
}
