package transport

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrPaymentRequired     = errors.New("payment required")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrConflict            = errors.New("conflict")
	ErrGone                = errors.New("gone")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnknown             = errors.New("unknown api error")

	// ErrMalformedResponse is returned when a successful response body is not a JSON object.
	ErrMalformedResponse = errors.New("malformed response")
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusPaymentRequired:     ErrPaymentRequired,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusConflict:            ErrConflict,
	http.StatusGone:                ErrGone,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// APIError is a non-2xx answer from the API. It unwraps to the sentinel
// matching its status code so callers can use errors.Is.
type APIError struct {
	StatusCode int
	Name       string
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Name == "" && e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s: %s", e.StatusCode, e.Name, e.Message)
}

func (e *APIError) Unwrap() error {
	if err, ok := statusErrors[e.StatusCode]; ok {
		return err
	}
	return ErrUnknown
}

type errorEnvelope struct {
	Error struct {
		Name    string `json:"error_name"`
		Message string `json:"error_msg"`
	} `json:"error"`
}
