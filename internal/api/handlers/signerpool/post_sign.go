package signerpool

import (
	"context"
	"encoding/hex"
	"net/http"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/signer-pool/internal/api"
	"github/chapool/signer-pool/internal/api/httperrors"
	"github/chapool/signer-pool/internal/types"
	"github/chapool/signer-pool/internal/util"
	"github/chapool/signer-pool/internal/wallet/clientpool"
)

func PostSignRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Pool.POST("/sign", postSignHandler(s))
}

// postSignHandler signs the payload with whichever pooled account is free.
func postSignHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostSignPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		acquireCtx, cancel := context.WithTimeout(ctx, s.Config.Pool.AcquireTimeout)
		defer cancel()

		obj, err := s.Pool.Acquire(acquireCtx)
		if err != nil {
			s.Metrics.ObserveSignature(err)
			log.Warn().Err(err).Msg("Failed to acquire signing client")

			switch {
			case errors.Is(err, clientpool.ErrUnsupportedAddressKind):
				return httperrors.ErrNotImplementedUnsupportedAddressKind.WithInternal(err)
			case errors.Is(err, context.DeadlineExceeded):
				return httperrors.ErrServiceUnavailablePoolExhausted.WithInternal(err)
			default:
				return httperrors.ErrBadGatewaySigningClientUnavailable.WithInternal(err)
			}
		}
		defer obj.Release(ctx)

		client := obj.Value()
		sig := strfmt.Base64(client.Sign(*body.Payload))
		s.Metrics.ObserveSignature(nil)

		return util.ValidateAndReturn(c, http.StatusOK, &types.PostSignResponse{
			Address:        swag.String(client.Address()),
			DerivationPath: swag.String(client.Signer().Path()),
			PublicKey:      swag.String(hex.EncodeToString(client.Signer().PublicKey())),
			Signature:      &sig,
		})
	}
}
