package api

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned when the server rejects the session
// credential. By the time a caller sees it the session store has
// already been cleared; the caller's only job is to send the user back
// to the login view.
var ErrUnauthenticated = errors.New("session rejected by server")

// ConnectivityMessage is shown for transport failures, where no server
// payload exists to quote.
const ConnectivityMessage = "Unable to connect to server. Please check your internet connection."

// Error is a server-reported failure that is not an authentication
// rejection. Message comes from the payload's error field, or a
// generic fallback when the payload has none.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// UserMessage maps any error coming out of the client to the text a
// view should display: the server's own message when it sent one, the
// caller's fallback when it did not, and the connectivity message for
// transport failures. Validation errors never reach here; they are
// caught before the network.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fallback
	}
	if errors.Is(err, ErrUnauthenticated) {
		return "Session expired. Please login again."
	}
	return ConnectivityMessage
}
