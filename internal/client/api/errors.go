package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/iudanet/devhub-admin/pkg/api"
)

// Error is a non-2xx answer of the server.
// Error() returns exactly the message meant for the user.
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	return e.Message
}

// newError нормализует тело ответа с ошибкой: message, затем error,
// затем "Error <code>: <status text>"
func newError(statusCode int, body []byte) *Error {
	msg := fmt.Sprintf("Error %d: %s", statusCode, http.StatusText(statusCode))

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Message != "":
			msg = errResp.Message
		case errResp.Error != "":
			msg = errResp.Error
		}
	}

	return &Error{StatusCode: statusCode, Message: msg}
}

// StatusCode returns the HTTP status of a server rejection, 0 for other errors
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
