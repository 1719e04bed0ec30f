package test

import (
	"context"
	"testing"
	"time"

	"github/chapool/signer-pool/internal/api"
	"github/chapool/signer-pool/internal/api/router"
	"github/chapool/signer-pool/internal/config"
)

// NewTestConfig returns the env based config pointed at the fake node rpc.
func NewTestConfig(t *testing.T, rpc *RPCServer) config.Server {
	t.Helper()

	cfg := config.DefaultServiceConfigFromEnv()

	cfg.Logger.PrettyPrintConsole = false
	cfg.Chain = config.ChainServer{
		ChainID:      ChainID,
		RPCEndpoint:  rpc.URL,
		GasPrice:     0.025,
		GasDenom:     "ulayer",
		AddressKind:  "cosmos",
		Bech32Prefix: Bech32Prefix,
	}
	cfg.Pool.MaxSize = 4
	cfg.Pool.MinIdle = 0
	cfg.Pool.WarmupOnStart = false
	cfg.Pool.AcquireTimeout = 5 * time.Second
	cfg.Wallet = config.WalletServer{
		Mnemonic:     Mnemonic,
		KeystorePath: t.TempDir() + "/keystore.json",
	}

	return cfg
}

// WithTestServer runs closure against a fully wired server backed by a fake node.
func WithTestServer(t *testing.T, closure func(s *api.Server, rpc *RPCServer)) {
	t.Helper()

	rpc := NewRPCServer(t, ChainID)
	cfg := NewTestConfig(t, rpc)

	WithTestServerConfigurable(t, cfg, func(s *api.Server) {
		closure(s, rpc)
	})
}

// WithTestServerConfigurable runs closure against a server built from cfg.
func WithTestServerConfigurable(t *testing.T, cfg config.Server, closure func(s *api.Server)) {
	t.Helper()

	s := NewTestServer(t, cfg)

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			t.Fatalf("Failed to shutdown server: %v", err)
		}
	}()

	closure(s)
}

// NewTestServer wires metrics, signer pool and router without starting echo.
func NewTestServer(t *testing.T, cfg config.Server) *api.Server {
	t.Helper()

	s, err := api.InitNewServer(cfg, api.SeedPhrase(cfg.Wallet.Mnemonic))
	if err != nil {
		t.Fatalf("Failed to init server: %v", err)
	}

	router.Init(s)

	return s
}
