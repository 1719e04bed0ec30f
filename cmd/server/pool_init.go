package server

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/signer-pool/internal/api"
)

// warmupSignerPool creates the minimum number of idle signing clients, each on a fresh account.
// A failing node makes startup fail instead of the first request.
func warmupSignerPool(ctx context.Context, s *api.Server) error {
	log := log.With().Str("component", "pool_init").Logger()

	ctx, cancel := context.WithTimeout(ctx, s.Config.Pool.AcquireTimeout)
	defer cancel()

	if err := s.Pool.Warmup(ctx); err != nil {
		return errors.Wrap(err, "failed to warm up signer pool")
	}

	stat := s.Pool.Stat()
	log.Info().
		Int32("idle_clients", stat.IdleResources()).
		Int32("max_clients", stat.MaxResources()).
		Uint32("allocated_indices", s.Manager.Allocated()).
		Msg("Signer pool warmed up")

	return nil
}
