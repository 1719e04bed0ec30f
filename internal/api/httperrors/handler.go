package httperrors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github/chapool/signer-pool/internal/types"
)

// HTTPErrorHandler renders every error returned by a handler as a public HTTP error.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	l := zerolog.Ctx(c.Request().Context())
	if l.GetLevel() == zerolog.Disabled {
		l = &log.Logger
	}

	code := http.StatusInternalServerError
	var body any

	var (
		httpErr       *HTTPError
		validationErr *HTTPValidationError
		echoErr       *echo.HTTPError
	)

	switch {
	case errors.As(err, &httpErr):
		code = int(*httpErr.Code)
		body = httpErr
	case errors.As(err, &validationErr):
		code = int(*validationErr.Code)
		body = validationErr
	case errors.As(err, &echoErr):
		code = echoErr.Code
		body = NewHTTPError(code, types.PublicHTTPErrorTypeGeneric, http.StatusText(code))
	default:
		body = NewHTTPError(code, types.PublicHTTPErrorTypeGeneric, http.StatusText(code))
	}

	if code >= http.StatusInternalServerError {
		l.Error().Err(err).Int("status", code).Msg("Request failed")
	} else {
		l.Debug().Err(err).Int("status", code).Msg("Request failed")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}
	if err != nil {
		l.Warn().Err(err).Msg("Failed to write error response")
	}
}
