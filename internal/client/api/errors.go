package api

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnauthenticated marks requests the server rejected for missing or
	// invalid credentials. The transport fires the logout hook before
	// returning it; callers never surface it as a per-field error.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUnavailable marks transport-level failures: connection refused,
	// timeouts, non-2xx responses without a GraphQL envelope.
	ErrUnavailable = errors.New("server unavailable")

	// ErrBusiness marks success:false payloads and other server-side
	// rejections. The wrapped text carries the server message verbatim.
	ErrBusiness = errors.New("rejected")
)

// genericFailure is the fallback shown when the server rejects a request
// without a message.
const genericFailure = "request failed"

func businessError(msg string) error {
	if strings.TrimSpace(msg) == "" {
		msg = genericFailure
	}
	return fmt.Errorf("%w: %s", ErrBusiness, msg)
}

// UserMessage extracts the displayable text from a business error,
// falling back to the full error text for anything else.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrBusiness) {
		s := err.Error()
		if i := strings.Index(s, ": "); i >= 0 {
			return s[i+2:]
		}
	}
	return err.Error()
}
