// Package errs defines the error taxonomy shared across this module's
// components, so that callers can branch on failure category with
// errors.Is/errors.As instead of matching error strings.
package errs

import "fmt"

// Kind classifies a failure into one of the categories a caller of this
// module is expected to handle differently.
type Kind int

const (
	// Unknown is the zero value; it should never be returned deliberately.
	Unknown Kind = iota
	// NoBrowser means no usable browser binary or endpoint was found.
	NoBrowser
	// LaunchFailed means the browser process could not be started.
	LaunchFailed
	// TransportLost means the WebSocket connection to the browser ended
	// unexpectedly.
	TransportLost
	// ProtocolError means the browser returned a CDP-level error for a
	// command (response.Error was set).
	ProtocolError
	// Timeout means an operation did not complete within its deadline.
	Timeout
	// NavigationFailed means Page.navigate reported a failed provisional
	// load. A load event that never arrives is reported as Timeout.
	NavigationFailed
	// ReferenceUnknown means an interaction referred to a ref token that
	// is not present in the current reference map.
	ReferenceUnknown
	// UnknownKey means Press was asked to dispatch a key name outside the
	// fixed key table.
	UnknownKey
	// NoHistory means GoBack/GoForward was called with nothing to go to.
	NoHistory
	// StorageStateInvalid means a persisted storage-state document failed
	// to parse as JSON.
	StorageStateInvalid
)

func (k Kind) String() string {
	switch k {
	case NoBrowser:
		return "no_browser"
	case LaunchFailed:
		return "launch_failed"
	case TransportLost:
		return "transport_lost"
	case ProtocolError:
		return "protocol_error"
	case Timeout:
		return "timeout"
	case NavigationFailed:
		return "navigation_failed"
	case ReferenceUnknown:
		return "reference_unknown"
	case UnknownKey:
		return "unknown_key"
	case NoHistory:
		return "no_history"
	case StorageStateInvalid:
		return "storage_state_invalid"
	default:
		return "unknown"
	}
}

// Error wraps an underlying failure with a Kind, and optionally the raw
// CDP error code/message that produced it.
type Error struct {
	Kind    Kind
	Code    int64
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		if e.Code != 0 {
			return fmt.Sprintf("%s: %s (%d)", e.Kind, e.Message, e.Code)
		}
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so that
// errors.Is(err, errs.New(errs.Timeout, nil)) works as a category check.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New constructs an *Error of the given kind wrapping err.
func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Newf constructs an *Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Protocol constructs a ProtocolError carrying the CDP response's own
// code and message.
func Protocol(code int64, message string) *Error {
	return &Error{Kind: ProtocolError, Code: code, Message: message}
}

// Sentinel is a Kind-only error usable with errors.Is, e.g.:
//
//	if errors.Is(err, errs.Sentinel(errs.NoHistory)) { ... }
func Sentinel(kind Kind) error {
	return &Error{Kind: kind}
}
