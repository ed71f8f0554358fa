// Package slot provides durable key-value slots holding serialized
// collections. Each backend stores opaque string values under fixed keys.
package slot

import "context"

// Slot is a string key-value store. Get reports found=false, err=nil for an
// absent key.
type Slot interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQL    = "sql"
)
