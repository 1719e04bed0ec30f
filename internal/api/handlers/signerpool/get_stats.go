package signerpool

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/signer-pool/internal/api"
	"github/chapool/signer-pool/internal/types"
	"github/chapool/signer-pool/internal/util"
)

func GetStatsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Pool.GET("/stats", getStatsHandler(s))
}

func getStatsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		stat := s.Pool.Stat()
		chainCfg := s.Manager.ChainConfig()

		kind := ""
		if chainCfg.AddressKind != nil {
			kind = chainCfg.AddressKind.String()
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.GetPoolStatsResponse{
			ChainID:              swag.String(chainCfg.ChainID),
			AddressKind:          swag.String(kind),
			AllocatedIndices:     swag.Int64(int64(s.Manager.Allocated())),
			TotalClients:         swag.Int64(int64(stat.TotalResources())),
			IdleClients:          swag.Int64(int64(stat.IdleResources())),
			AcquiredClients:      swag.Int64(int64(stat.AcquiredResources())),
			ConstructingClients:  swag.Int64(int64(stat.ConstructingResources())),
			MaxClients:           swag.Int64(int64(stat.MaxResources())),
			AcquireCount:         swag.Int64(stat.AcquireCount()),
			CanceledAcquireCount: swag.Int64(stat.CanceledAcquireCount()),
		})
	}
}
