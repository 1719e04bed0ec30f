package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/signer-pool/internal/config"
	"github/chapool/signer-pool/internal/metrics"
	"github/chapool/signer-pool/internal/pool"
	"github/chapool/signer-pool/internal/wallet/clientpool"
	"github/chapool/signer-pool/internal/wallet/signing"
)

type Router struct {
	Routes     []*echo.Route
	Root       *echo.Group
	Management *echo.Group
	APIV1Pool  *echo.Group
}

// Server is a central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of the components
// in the right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized after the InitNewServer call.
// For more information about wire refer to https://pkg.go.dev/github.com/google/wire
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config  config.Server
	Metrics *metrics.Service
	Manager *clientpool.Manager
	Pool    *pool.Pool[*signing.Client]
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be initialized separately.
func newServerWithComponents(
	cfg config.Server,
	metrics *metrics.Service,
	manager *clientpool.Manager,
	signerPool *pool.Pool[*signing.Client],
) *Server {
	return &Server{
		Config:  cfg,
		Metrics: metrics,
		Manager: manager,
		Pool:    signerPool,
	}
}

func (s *Server) Ready() bool {
	return s.Echo != nil &&
		s.Router != nil &&
		s.Metrics != nil &&
		s.Manager != nil &&
		s.Pool != nil
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return pkgerrors.Wrap(err, "failed to start echo server")
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")
		if err := s.Echo.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	if s.Pool != nil {
		log.Debug().Msg("Closing signer pool")
		s.Pool.Close()
	}

	return errors.Join(errs...)
}
