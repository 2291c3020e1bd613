package model

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidParameter = errors.New("")    // Base error for invalid parameter
var ErrDataNotFound = errors.New("")        // Base error for data not found
var ErrAuthorization = errors.New("")       // Base error for authorization failure
var ErrReplay = errors.New("")              // Base error for replayed or expired challenge material
var ErrIntegrity = errors.New("")           // Base error for signature/chain/status integrity failure
var ErrWrongStatus = errors.New("")         // Base error for invalid status transition
var ErrExternalDependency = errors.New("")  // Base error for unreachable collaborator

// Certificate errors
var ErrCertNotFound = fmt.Errorf("certificate not found%w", ErrDataNotFound)
var ErrCertRevoked = fmt.Errorf("certificate is revoked%w", ErrIntegrity)
var ErrCertExpired = fmt.Errorf("certificate is expired%w", ErrIntegrity)
var ErrCertSignatureMismatch = fmt.Errorf("certificate signature mismatch%w", ErrIntegrity)
var ErrInvalidDID = fmt.Errorf("invalid DID%w", ErrInvalidParameter)
var ErrInvalidKeyUsage = fmt.Errorf("key usage not allowed%w", ErrInvalidParameter)
var ErrInvalidProofOfPossession = fmt.Errorf("invalid proof of possession%w", ErrInvalidParameter)
var ErrActiveCertExists = fmt.Errorf("active certificate already exists for the key%w", ErrWrongStatus)
var ErrUnauthorizedTrustLevel = fmt.Errorf("trust level not authorized%w", ErrAuthorization)
var ErrUnauthorizedRevoker = fmt.Errorf("revoker not authorized%w", ErrAuthorization)

// Challenge/token errors
var ErrNonceConsumed = fmt.Errorf("nonce already consumed%w", ErrReplay)
var ErrNonceNotFound = fmt.Errorf("nonce unknown or expired%w", ErrReplay)
var ErrTimestampOutOfWindow = fmt.Errorf("timestamp out of allowed window%w", ErrReplay)
var ErrTokenInvalid = fmt.Errorf("token invalid%w", ErrIntegrity)

// Audit errors
var ErrAuditChainBroken = fmt.Errorf("audit chain broken%w", ErrIntegrity)
var ErrAuditEventNotFound = fmt.Errorf("audit event not found%w", ErrDataNotFound)

// Collaborator errors
var ErrDIDResolutionFailed = fmt.Errorf("DID document resolution failed%w", ErrExternalDependency)

func ErrToHttpStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, ErrDataNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrReplay):
		return http.StatusUnauthorized
	case errors.Is(err, ErrWrongStatus):
		return http.StatusConflict
	case errors.Is(err, ErrIntegrity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrExternalDependency):
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
