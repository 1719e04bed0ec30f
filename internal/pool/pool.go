package pool

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/jackc/puddle/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidConfig = errors.New("invalid pool config")

type entry[T any] struct {
	value      T
	uses       uint64
	lastUsedAt time.Time
}

// Pool hands out objects created by a Manager, bounded by Config.MaxSize.
type Pool[T any] struct {
	mgr  Manager[T]
	cfg  Config
	pool *puddle.Pool[*entry[T]]

	closeOnce sync.Once
	closeChan chan struct{}
	wg        sync.WaitGroup
}

// New creates a pool and starts its maintenance loop if configured.
func New[T any](mgr Manager[T], cfg Config) (*Pool[T], error) {
	if cfg.MaxSize < 1 {
		return nil, errors.Wrap(ErrInvalidConfig, "max size must be at least 1")
	}

	if cfg.MinIdle < 0 || cfg.MinIdle > cfg.MaxSize {
		return nil, errors.Wrapf(ErrInvalidConfig, "min idle must be between 0 and %d", cfg.MaxSize)
	}

	p := &Pool[T]{
		mgr:       mgr,
		cfg:       cfg,
		closeChan: make(chan struct{}),
	}

	inner, err := puddle.NewPool(&puddle.Config[*entry[T]]{
		Constructor: p.construct,
		Destructor:  destruct[T],
		MaxSize:     cfg.MaxSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pool")
	}
	p.pool = inner

	if cfg.HealthCheckPeriod > 0 {
		p.wg.Add(1)
		go p.maintain()
	}

	return p, nil
}

func (p *Pool[T]) construct(ctx context.Context) (*entry[T], error) {
	value, err := p.mgr.Create(ctx)
	if err != nil {
		return nil, err
	}

	return &entry[T]{value: value}, nil
}

func destruct[T any](e *entry[T]) {
	closer, ok := any(e.value).(io.Closer)
	if !ok {
		return
	}

	if err := closer.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close pooled object")
	}
}

// Acquire returns an idle object or creates a new one, waiting while the pool is full.
func (p *Pool[T]) Acquire(ctx context.Context) (*Object[T], error) {
	res, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	res.Value().uses++

	return &Object[T]{res: res, pool: p}, nil
}

// Warmup creates objects concurrently until Config.MinIdle of them are idle.
// Acquired objects do not count, but the pool never grows beyond Config.MaxSize.
func (p *Pool[T]) Warmup(ctx context.Context) error {
	stat := p.pool.Stat()
	missing := min(p.cfg.MinIdle-stat.IdleResources(), p.cfg.MaxSize-stat.TotalResources())
	if missing <= 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for range missing {
		g.Go(func() error {
			err := p.pool.CreateResource(ctx)
			if errors.Is(err, puddle.ErrNotAvailable) {
				return nil
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "failed to warm up pool")
	}

	return nil
}

// Stat returns a snapshot of the pool statistics.
func (p *Pool[T]) Stat() *puddle.Stat {
	return p.pool.Stat()
}

// Close stops the maintenance loop and destroys all objects once they are released.
func (p *Pool[T]) Close() {
	p.closeOnce.Do(func() {
		close(p.closeChan)
		p.wg.Wait()
		p.pool.Close()
	})
}

func (p *Pool[T]) maintain() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.HealthCheckPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-p.closeChan:
			return
		case <-ticker.C:
			p.evictIdle()

			ctx, cancel := context.WithTimeout(context.Background(), p.cfg.HealthCheckPeriod)
			if err := p.Warmup(ctx); err != nil {
				log.Warn().Err(err).Msg("Failed to refill pool to minimum idle size")
			}
			cancel()
		}
	}
}

// evictIdle destroys objects idle for longer than MaxIdleTime, keeping MinIdle idle ones.
func (p *Pool[T]) evictIdle() {
	if p.cfg.MaxIdleTime <= 0 {
		return
	}

	idle := p.pool.AcquireAllIdle()
	remaining := int32(len(idle))
	evicted := 0
	for _, res := range idle {
		if res.IdleDuration() > p.cfg.MaxIdleTime && remaining > p.cfg.MinIdle {
			res.Destroy()
			remaining--
			evicted++
			continue
		}
		res.ReleaseUnused()
	}

	if evicted > 0 {
		log.Debug().Int("evicted", evicted).Msg("Evicted idle pooled objects")
	}
}
