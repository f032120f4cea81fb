package coinbase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ib-77/gocoinbase/pkg/coinbase/auth"
	"github.com/ib-77/gocoinbase/pkg/coinbase/model"
)

var (
	ErrTransport      = errors.New("coinbase: transport failure")
	ErrDecode         = errors.New("coinbase: cannot decode response")
	ErrNotAllowed     = auth.ErrNotAllowed
	ErrInvalidRequest = errors.New("coinbase: invalid request")
	ErrNoNextPage     = errors.New("coinbase: no next page")
	ErrNoPreviousPage = errors.New("coinbase: no previous page")
)

// APIError is returned for every response outside 200..204.
type APIError struct {
	StatusCode int
	RequestID  string
	Errors     []model.CoinbaseError
}

func (e *APIError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, ce := range e.Errors {
		parts = append(parts, ce.String())
	}
	return fmt.Sprintf("coinbase: http %d: %s", e.StatusCode, strings.Join(parts, "; "))
}

// HasErrorID reports whether Coinbase returned an error with the given id,
// e.g. "not_found" or "invalid_token".
func (e *APIError) HasErrorID(id string) bool {
	for _, ce := range e.Errors {
		if ce.ID == id {
			return true
		}
	}
	return false
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}
