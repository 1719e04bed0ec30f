package router

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github/chapool/signer-pool/internal/api"
	"github/chapool/signer-pool/internal/api/handlers"
	"github/chapool/signer-pool/internal/api/httperrors"
	"github/chapool/signer-pool/internal/api/middleware"
)

// Init creates the echo instance of s and registers all routes.
func Init(s *api.Server) {
	e := echo.New()

	e.Debug = s.Config.Echo.Debug
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = httperrors.HTTPErrorHandler

	if s.Config.Echo.EnableRecoverMiddleware {
		e.Use(echomiddleware.Recover())
	} else {
		log.Warn().Msg("Disabling recover middleware due to environment config")
	}

	if s.Config.Echo.EnableRequestIDMiddleware {
		e.Use(echomiddleware.RequestID())
	} else {
		log.Warn().Msg("Disabling request ID middleware due to environment config")
	}

	if s.Config.Echo.EnableLoggerMiddleware {
		e.Use(middleware.Logger(s.Config.Logger.RequestLevel))
	} else {
		log.Warn().Msg("Disabling logger middleware due to environment config")
	}

	if s.Config.Management.EnableMetrics && s.Metrics != nil {
		requestMetrics, err := echoprometheus.MiddlewareConfig{
			Namespace:  "signer_pool",
			Subsystem:  "http",
			Registerer: s.Metrics.Registry,
			Skipper: func(c echo.Context) bool {
				return c.Path() == "/metrics"
			},
		}.ToMiddleware()
		if err != nil {
			log.Error().Err(err).Msg("Failed to register request metrics, continuing without")
		} else {
			e.Use(requestMetrics)
		}
	}

	s.Echo = e
	s.Router = &api.Router{
		Routes:     nil,
		Root:       e.Group(""),
		Management: e.Group("/-"),
		APIV1Pool:  e.Group("/api/v1/pool"),
	}

	if s.Config.Management.EnableMetrics && s.Metrics != nil {
		s.Router.Routes = append(s.Router.Routes,
			e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.Metrics.Registry, promhttp.HandlerOpts{}))),
		)
	}

	handlers.AttachAllRoutes(s)
}
