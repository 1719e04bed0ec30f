package api_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/signer-pool/internal/api"
	"github/chapool/signer-pool/internal/chain"
	"github/chapool/signer-pool/internal/pool"
	"github/chapool/signer-pool/internal/test"
)

func TestInitNewServer(t *testing.T) {
	cfg := test.NewTestConfig(t, test.NewRPCServer(t, test.ChainID))

	s, err := api.InitNewServer(cfg, api.SeedPhrase(test.Mnemonic))
	require.NoError(t, err)
	defer s.Pool.Close()

	require.NotNil(t, s.Metrics)
	require.NotNil(t, s.Manager)
	require.NotNil(t, s.Pool)

	// echo and router are left to router.Init
	assert.False(t, s.Ready())
	assert.Equal(t, test.ChainID, s.Manager.ChainConfig().ChainID)

	obj, err := s.Pool.Acquire(t.Context())
	require.NoError(t, err)
	obj.Release(t.Context())

	count, err := testutil.GatherAndCount(s.Metrics.Registry,
		"signer_pool_derivation_indices_allocated",
		"signer_pool_pool_max_clients",
	)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, uint32(1), s.Manager.Allocated())
}

func TestInitNewServerInvalidConfig(t *testing.T) {
	cfg := test.NewTestConfig(t, test.NewRPCServer(t, test.ChainID))
	cfg.Chain.ChainID = ""

	_, err := api.InitNewServer(cfg, api.SeedPhrase(test.Mnemonic))
	require.ErrorIs(t, err, chain.ErrMissingChainID)

	cfg = test.NewTestConfig(t, test.NewRPCServer(t, test.ChainID))
	cfg.Pool.MaxSize = 0

	_, err = api.InitNewServer(cfg, api.SeedPhrase(test.Mnemonic))
	require.ErrorIs(t, err, pool.ErrInvalidConfig)
}
