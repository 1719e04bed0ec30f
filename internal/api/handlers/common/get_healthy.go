package common

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github/chapool/signer-pool/internal/api"
	"github/chapool/signer-pool/internal/util"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// Health check
// Acquires a signing client and queries the chain through it. The response lists every check.
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), s.Config.Management.ProbeReadinessTimeout)
		defer cancel()

		log := util.LogFromContext(ctx)

		var str strings.Builder
		healthy := true

		if !s.Ready() {
			fmt.Fprintln(&str, "Ready: false")
			//nolint:mnd // 521 is the status used by probes of this service
			return c.String(521, str.String())
		}
		fmt.Fprintln(&str, "Ready: true")

		obj, err := s.Pool.Acquire(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Health check failed to acquire signing client")
			fmt.Fprintf(&str, "Acquire: %v\n", err)
			//nolint:mnd // 521 is the status used by probes of this service
			return c.String(521, str.String())
		}
		defer obj.Release(ctx)

		height, err := obj.Value().LatestBlockHeight(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Health check failed to query chain")
			fmt.Fprintf(&str, "Chain %s: %v\n", s.Manager.ChainConfig().ChainID, err)
			healthy = false
		} else {
			fmt.Fprintf(&str, "Chain %s: height %d\n", s.Manager.ChainConfig().ChainID, height)
		}

		if !healthy {
			//nolint:mnd // 521 is the status used by probes of this service
			return c.String(521, str.String())
		}

		return c.String(http.StatusOK, str.String())
	}
}
