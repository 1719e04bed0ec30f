package pool

import (
	"context"
	"time"
)

// Manager creates pooled objects and decides whether returned ones may be reused.
type Manager[T any] interface {
	// Create builds a new object on pool demand
	Create(ctx context.Context) (T, error)

	// Recycle is called when an object is returned. A non-nil error destroys the object.
	Recycle(ctx context.Context, obj T, metrics Metrics) error
}

// Metrics describes the usage of one pooled object. It is informational only.
type Metrics struct {
	CreatedAt  time.Time
	LastUsedAt time.Time
	UseCount   uint64
}

// Age returns how long ago the object was created.
func (m Metrics) Age(now time.Time) time.Duration {
	return now.Sub(m.CreatedAt)
}

// Config bounds the pool.
type Config struct {
	// MaxSize is the maximum number of objects, idle or acquired
	MaxSize int32
	// MinIdle idle objects are created by Warmup and kept through idle eviction
	MinIdle int32
	// MaxIdleTime evicts objects idle for longer; zero disables eviction
	MaxIdleTime time.Duration
	// HealthCheckPeriod is the interval of the maintenance loop; zero disables it
	HealthCheckPeriod time.Duration
}
