package supabase

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ErrNoRows marks a single-record lookup that matched nothing, as opposed to
// a transport or server failure.
var ErrNoRows = errors.New("no matching row")

// noRowsCode is the PostgREST error code returned when a request expecting
// exactly one row matched zero rows.
const noRowsCode = "PGRST116"

type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase request failed with status %d (code %q): %s", e.Status, e.Code, e.Message)
}

func (e *APIError) IsAuthFailure() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

type restErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func parseRestError(status int, body []byte) error {
	var parsed restErrorBody
	_ = json.Unmarshal(body, &parsed)

	if parsed.Code == noRowsCode {
		return ErrNoRows
	}

	message := parsed.Message
	if message == "" {
		message = string(body)
	}
	return &APIError{Status: status, Code: parsed.Code, Message: message}
}

// GoTrue error bodies vary between versions; the numeric top-level "code"
// field is ignored on purpose.
type authErrorBody struct {
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	ErrorField       string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func parseAuthError(status int, body []byte) error {
	var parsed authErrorBody
	_ = json.Unmarshal(body, &parsed)

	message := parsed.Msg
	if message == "" {
		message = parsed.ErrorDescription
	}
	if message == "" {
		message = parsed.ErrorField
	}
	if message == "" {
		message = string(body)
	}
	return &APIError{Status: status, Code: parsed.ErrorCode, Message: message}
}
