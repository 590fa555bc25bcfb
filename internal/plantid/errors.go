package plantid

import (
	"fmt"
	"net/http"

	"github.com/verdantapp/verdant-server/internal/errors"
)

// Error wraps an underlying error with operation context.
type Error struct {
	Op  string // Operation: "identify"
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("plantid %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrapError creates an Error with context.
func wrapError(op string, err error) error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// statusError maps a non-success HTTP status from the identification service
// to a domain error. The body is never consulted for these.
func statusError(statusCode int) *errors.Error {
	switch statusCode {
	case http.StatusBadRequest:
		return errors.InvalidInput("invalid identification request")
	case http.StatusUnauthorized:
		return errors.Unauthorized("invalid API key")
	case http.StatusNotFound:
		return errors.NotFound("identification service not found")
	case http.StatusTooManyRequests:
		return errors.NoCredits("out of identification credits")
	default:
		return errors.ServerError(fmt.Sprintf("identification service returned status %d", statusCode))
	}
}
