package metrics_test

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/puddle/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/signer-pool/internal/metrics"
)

type statPool struct {
	p *puddle.Pool[int]
}

func (s statPool) Stat() *puddle.Stat {
	return s.p.Stat()
}

func TestObserveCreate(t *testing.T) {
	m, err := metrics.New()
	require.NoError(t, err)

	m.ObserveCreate("success", 10*time.Millisecond)
	m.ObserveCreate("success", 10*time.Millisecond)
	m.ObserveCreate("client_init", time.Millisecond)
	m.ObserveRecycle()
	m.ObserveSignature(nil)

	count, err := testutil.GatherAndCount(m.Registry, "signer_pool_client_creates_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(m.Registry, "signer_pool_client_recycles_total", "signer_pool_signatures_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

type fakeAllocator struct {
	n atomic.Uint32
}

func (a *fakeAllocator) Allocated() uint32 {
	return a.n.Load()
}

func TestRegisterAllocator(t *testing.T) {
	m, err := metrics.New()
	require.NoError(t, err)

	a := &fakeAllocator{}
	require.NoError(t, m.RegisterAllocator(a))
	require.Error(t, m.RegisterAllocator(a))

	expected := func(n int) string {
		return fmt.Sprintf(`
# HELP signer_pool_derivation_indices_allocated Derivation indices consumed by the client factory.
# TYPE signer_pool_derivation_indices_allocated gauge
signer_pool_derivation_indices_allocated %d
`, n)
	}

	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected(0)), "signer_pool_derivation_indices_allocated"))

	// creations finishing out of order must not matter, the gauge follows the allocator
	a.n.Store(5)
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected(5)), "signer_pool_derivation_indices_allocated"))

	a.n.Add(1)
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected(6)), "signer_pool_derivation_indices_allocated"))
}

func TestRegisterPool(t *testing.T) {
	m, err := metrics.New()
	require.NoError(t, err)

	p, err := puddle.NewPool(&puddle.Config[int]{
		Constructor: func(context.Context) (int, error) { return 1, nil },
		Destructor:  func(int) {},
		MaxSize:     4,
	})
	require.NoError(t, err)
	defer p.Close()

	res, err := p.Acquire(t.Context())
	require.NoError(t, err)
	res.Release()

	require.NoError(t, m.RegisterPool(statPool{p: p}))
	require.Error(t, m.RegisterPool(statPool{p: p}))

	count, err := testutil.GatherAndCount(m.Registry, "signer_pool_pool_clients", "signer_pool_pool_max_clients", "signer_pool_pool_acquires_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
