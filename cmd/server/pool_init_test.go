package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/signer-pool/internal/test"
)

func TestWarmupSignerPool(t *testing.T) {
	rpc := test.NewRPCServer(t, test.ChainID)
	cfg := test.NewTestConfig(t, rpc)
	cfg.Pool.MinIdle = 2

	s := test.NewTestServer(t, cfg)
	defer func() {
		require.NoError(t, s.Shutdown(t.Context()))
	}()

	require.NoError(t, warmupSignerPool(t.Context(), s))

	assert.Equal(t, int32(2), s.Pool.Stat().IdleResources())
	assert.Equal(t, uint32(2), s.Manager.Allocated())
}

func TestWarmupSignerPoolNodeDown(t *testing.T) {
	rpc := test.NewRPCServer(t, test.ChainID)
	rpc.SetFailing(true)
	cfg := test.NewTestConfig(t, rpc)
	cfg.Pool.MinIdle = 1

	s := test.NewTestServer(t, cfg)
	defer func() {
		require.NoError(t, s.Shutdown(t.Context()))
	}()

	require.Error(t, warmupSignerPool(t.Context(), s))
}
