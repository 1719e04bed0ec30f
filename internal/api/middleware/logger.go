package middleware

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger attaches a request scoped zerolog logger to the request context and logs each request.
func Logger(level zerolog.Level) echo.MiddlewareFunc {
	attach := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			reqID := c.Response().Header().Get(echo.HeaderXRequestID)

			l := log.With().Str("id", reqID).Logger()
			c.SetRequest(req.WithContext(l.WithContext(req.Context())))

			return next(c)
		}
	}

	requestLog := echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			e := zerolog.Ctx(c.Request().Context()).WithLevel(level)
			if v.Error != nil {
				e = zerolog.Ctx(c.Request().Context()).Warn().Err(v.Error)
			}

			e.Str("method", v.Method).
				Str("url", v.URI).
				Int("status", v.Status).
				Dur("duration_ms", v.Latency).
				Msg("Request")

			return nil
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return attach(requestLog(next))
	}
}
