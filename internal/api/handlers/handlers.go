package handlers

import (
	"github/chapool/signer-pool/internal/api"
	"github/chapool/signer-pool/internal/api/handlers/common"
	"github/chapool/signer-pool/internal/api/handlers/signerpool"
)

func AttachAllRoutes(s *api.Server) {
	s.Router.Routes = append(s.Router.Routes,
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),
		signerpool.GetStatsRoute(s),
		signerpool.PostSignRoute(s),
	)
}
