package pool

import (
	"context"
	"time"

	"github.com/jackc/puddle/v2"
	"github.com/rs/zerolog/log"
)

// Object is an acquired pool object. It must be released or destroyed exactly once.
type Object[T any] struct {
	res  *puddle.Resource[*entry[T]]
	pool *Pool[T]
}

// Value returns the pooled object.
func (o *Object[T]) Value() T {
	return o.res.Value().value
}

// Metrics returns usage information of the object, counting the current use.
func (o *Object[T]) Metrics() Metrics {
	e := o.res.Value()

	return Metrics{
		CreatedAt:  o.res.CreationTime(),
		LastUsedAt: e.lastUsedAt,
		UseCount:   e.uses,
	}
}

// Release returns the object to the pool if the manager accepts it for reuse, otherwise destroys it.
func (o *Object[T]) Release(ctx context.Context) {
	metrics := o.Metrics()
	o.res.Value().lastUsedAt = time.Now()

	if err := o.pool.mgr.Recycle(ctx, o.Value(), metrics); err != nil {
		log.Debug().Err(err).Uint64("use_count", metrics.UseCount).Msg("Pooled object rejected on recycle, destroying")
		o.res.Destroy()
		return
	}

	o.res.Release()
}

// Destroy removes the object from the pool.
func (o *Object[T]) Destroy() {
	o.res.Destroy()
}
