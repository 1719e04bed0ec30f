package api

import (
	"github.com/pkg/errors"
	"github/chapool/signer-pool/internal/chain"
	"github/chapool/signer-pool/internal/config"
	"github/chapool/signer-pool/internal/metrics"
	"github/chapool/signer-pool/internal/pool"
	"github/chapool/signer-pool/internal/wallet/clientpool"
	"github/chapool/signer-pool/internal/wallet/signing"
)

// SeedPhrase is the mnemonic every pooled account is derived from.
type SeedPhrase string

func NewChainConfig(cfg config.Server) (chain.Config, error) {
	chainCfg, err := cfg.Chain.LoadChainConfig()
	if err != nil {
		return chain.Config{}, errors.Wrap(err, "failed to load chain config")
	}

	return chainCfg, nil
}

// NewClientManager creates the client factory for seed and exports its allocated derivation indices.
func NewClientManager(seed SeedPhrase, chainCfg chain.Config, m *metrics.Service) (*clientpool.Manager, error) {
	mgr := clientpool.NewFromSeed(string(seed), chainCfg, clientpool.WithObserver(m))

	if err := m.RegisterAllocator(mgr); err != nil {
		return nil, err
	}

	return mgr, nil
}

func NewSignerPool(mgr pool.Manager[*signing.Client], cfg config.Server, m *metrics.Service) (*pool.Pool[*signing.Client], error) {
	p, err := pool.New(mgr, cfg.Pool.PoolConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create signer pool")
	}

	if err := m.RegisterPool(p); err != nil {
		p.Close()
		return nil, err
	}

	return p, nil
}
