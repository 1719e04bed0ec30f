//go:build wireinject

package api

import (
	"github.com/google/wire"
	"github/chapool/signer-pool/internal/config"
	"github/chapool/signer-pool/internal/metrics"
	"github/chapool/signer-pool/internal/pool"
	"github/chapool/signer-pool/internal/wallet/clientpool"
	"github/chapool/signer-pool/internal/wallet/signing"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	metrics.New,
	NewChainConfig,
	signerPoolSet,
)

var signerPoolSet = wire.NewSet(
	NewClientManager,
	wire.Bind(new(pool.Manager[*signing.Client]), new(*clientpool.Manager)),
	NewSignerPool,
)

// InitNewServer returns a new Server instance signing with accounts derived from seed.
// Echo and Router still have to be initialized with router.Init(s).
func InitNewServer(
	_ config.Server,
	_ SeedPhrase,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
