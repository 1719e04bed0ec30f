package util

import (
	"errors"
	"net/http"

	oerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/signer-pool/internal/api/httperrors"
	"github/chapool/signer-pool/internal/types"
)

// BindAndValidateBody binds the request body to v and validates it against its schema.
func BindAndValidateBody(c echo.Context, v runtime.Validatable) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindBody(c, v); err != nil {
		return err
	}

	return validatePayload(c, v)
}

// ValidateAndReturn validates v against its schema before writing it as JSON.
// A response not matching its own schema is a server bug and answered with 500.
func ValidateAndReturn(c echo.Context, code int, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		LogFromContext(c.Request().Context()).Error().Err(err).Msg("Response did not match schema")
		return echo.ErrInternalServerError
	}

	return c.JSON(code, v)
}

func validatePayload(c echo.Context, v runtime.Validatable) error {
	err := v.Validate(strfmt.Default)
	if err == nil {
		return nil
	}

	log := LogFromContext(c.Request().Context())

	var compositeErr *oerrors.CompositeError
	if errors.As(err, &compositeErr) {
		log.Debug().Errs("validation_errors", compositeErr.Errors).Msg("Payload did not match schema, returning HTTP validation error")

		return httperrors.NewHTTPValidationError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusBadRequest), formatValidationErrors(compositeErr))
	}

	var validationErr *oerrors.Validation
	if errors.As(err, &validationErr) {
		log.Debug().Err(validationErr).Msg("Payload did not match schema, returning HTTP validation error")

		return httperrors.NewHTTPValidationError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusBadRequest), formatValidationErrors(oerrors.CompositeValidationError(validationErr)))
	}

	log.Error().Err(err).Msg("Failed to validate payload, returning generic HTTP error")
	return echo.ErrBadRequest
}

func formatValidationErrors(err *oerrors.CompositeError) []*types.HTTPValidationErrorDetail {
	valErrs := make([]*types.HTTPValidationErrorDetail, 0, len(err.Errors))
	for _, e := range err.Errors {
		var validationErr *oerrors.Validation
		if errors.As(e, &validationErr) {
			valErrs = append(valErrs, &types.HTTPValidationErrorDetail{
				Key:   swag.String(validationErr.Name),
				In:    swag.String(validationErr.In),
				Error: swag.String(validationErr.Error()),
			})
			continue
		}

		var compositeErr *oerrors.CompositeError
		if errors.As(e, &compositeErr) {
			valErrs = append(valErrs, formatValidationErrors(compositeErr)...)
			continue
		}

		valErrs = append(valErrs, &types.HTTPValidationErrorDetail{
			Key:   swag.String(""),
			In:    swag.String("body"),
			Error: swag.String(e.Error()),
		})
	}

	return valErrs
}
