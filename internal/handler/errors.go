package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/Stockroom_Go/internal/domain"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgInvalidRequestBody = "Invalid request body"
	ErrMsgItemNotFoundError  = "Inventory item not found"
	ErrMsgBadCredentials     = "Invalid username or password"
)

// mapServiceError converts expected domain errors to an HTTP status and a
// message a caller can act on; anything else is a generic server failure.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInvalidCredential):
		return http.StatusUnauthorized, ErrMsgBadCredentials
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
