package portalsdk

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrEmptyTemplate is returned by Dispatcher.Run when the message
	// template is empty or whitespace.
	ErrEmptyTemplate = errors.New("message template is empty")

	// ErrNoRecipients is returned by Dispatcher.Run when there is nobody to
	// send to.
	ErrNoRecipients = errors.New("no recipients")

	// ErrDispatchInProgress is returned by Dispatcher.Run when another run is
	// already active on the same Dispatcher.
	ErrDispatchInProgress = errors.New("dispatch already in progress")
)

// APIError is a non-2xx response from the portal API.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("portal: %s", e.Message)
	}
	return fmt.Sprintf("portal: %s (status %d)", e.Message, e.StatusCode)
}

// newAPIError builds an *APIError from a response body, falling back to the
// raw body when it is not an error envelope.
func newAPIError(statusCode int, body []byte) *APIError {
	var env Envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		return &APIError{StatusCode: statusCode, Message: env.Error}
	}
	return &APIError{StatusCode: statusCode, Message: string(body)}
}
