// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/onyxtech/onyx-invoice/pkg/httpx"
	companydomain "github.com/onyxtech/onyx-invoice/services/company/domain"
	invoicedomain "github.com/onyxtech/onyx-invoice/services/invoice/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, companydomain.ErrCompanyNotFound),
		errors.Is(err, invoicedomain.ErrDraftNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, companydomain.ErrCompanyAlreadyExists),
		errors.Is(err, companydomain.ErrDirectoryConflict):
		return http.StatusConflict // 409
	case errors.Is(err, companydomain.ErrInvalidCompany),
		errors.Is(err, invoicedomain.ErrUnknownHeaderField),
		errors.Is(err, invoicedomain.ErrInvalidHeaderValue),
		errors.Is(err, invoicedomain.ErrUnknownCurrency):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, companydomain.ErrDirectoryUnavailable):
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}
