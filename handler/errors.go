package handler

import (
	"errors"
	"net/http"
)

var (
	ErrNilResponse = errors.New("handler: nil response")
)

// HTTPError is an error with a status code and a message key. The key is
// shown to the user, translated when the error handler has a translator.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError returns an HTTPError for code with key as its message.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest = NewHTTPError(http.StatusBadRequest, "errors.bad_request")
	ErrNotFound   = NewHTTPError(http.StatusNotFound, "errors.not_found")
	ErrInternal   = NewHTTPError(http.StatusInternalServerError, "errors.internal")

	ErrTooManyRequests = NewHTTPError(http.StatusTooManyRequests, "errors.too_many_requests")
)
