package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/signer-pool/internal/api"
	"github/chapool/signer-pool/internal/util"
)

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// Readiness check
// This endpoint returns 200 when our service is ready to serve traffic (i.e. the signer pool is set up).
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			util.LogFromContext(c.Request().Context()).Warn().Msg("Readiness probe failed, server is not ready")
			//nolint:mnd // 521 is the status used by probes of this service
			return c.String(521, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
