// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/stockroom/pkg/httpx"
	productdomain "github.com/ghuser/stockroom/services/product/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, productdomain.ErrProductNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, productdomain.ErrProductAlreadyExists):
		return http.StatusConflict // 409
	case errors.Is(err, productdomain.ErrPermissionDenied):
		return http.StatusForbidden // 403
	case errors.Is(err, productdomain.ErrInvalidProduct):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
