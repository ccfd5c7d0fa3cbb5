package repositories

import (
	"fmt"
	"net/http"

	"github.com/jobdev/jobboard/internal/clients/supabase"
	"github.com/pkg/errors"
)

// ErrorKind classifies a failed repository operation so views can decide
// user-visible messaging per kind instead of collapsing everything to a
// boolean.
type ErrorKind string

const (
	KindNetwork       ErrorKind = "network"
	KindValidation    ErrorKind = "validation"
	KindAuthorization ErrorKind = "authorization"
	KindNotFound      ErrorKind = "not_found"
	KindUnknown       ErrorKind = "unknown"
)

type Error struct {
	Kind  ErrorKind
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// KindOf reports the classification of err, or KindUnknown for errors that
// did not come out of a repository.
func KindOf(err error) ErrorKind {
	var repoErr *Error
	if errors.As(err, &repoErr) {
		return repoErr.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, supabase.ErrNoRows) {
		return &Error{Kind: KindNotFound, cause: err}
	}

	var apiErr *supabase.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.IsAuthFailure():
			return &Error{Kind: KindAuthorization, cause: err}
		case apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnprocessableEntity:
			return &Error{Kind: KindValidation, cause: err}
		default:
			return &Error{Kind: KindUnknown, cause: err}
		}
	}

	// anything below the HTTP status line is a transport problem
	return &Error{Kind: KindNetwork, cause: err}
}
