package httperrors

import (
	"net/http"

	"github/chapool/signer-pool/internal/types"
)

var (
	ErrNotImplementedUnsupportedAddressKind = NewHTTPError(http.StatusNotImplemented, types.PublicHTTPErrorTypeUNSUPPORTEDADDRESSKIND, "The address kind of the configured chain is not supported.")
	ErrServiceUnavailablePoolExhausted      = NewHTTPError(http.StatusServiceUnavailable, types.PublicHTTPErrorTypeSIGNERPOOLEXHAUSTED, "No signing client became available in time.")
	ErrBadGatewaySigningClientUnavailable   = NewHTTPError(http.StatusBadGateway, types.PublicHTTPErrorTypeSIGNINGCLIENTUNAVAILABLE, "Failed to connect a signing client to the chain.")
)
