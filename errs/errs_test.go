package errs_test

import (
	"errors"
	"testing"

	"github.com/agentweb/core/errs"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind errs.Kind
		want string
	}{
		{errs.NoBrowser, "no_browser"},
		{errs.LaunchFailed, "launch_failed"},
		{errs.TransportLost, "transport_lost"},
		{errs.ProtocolError, "protocol_error"},
		{errs.Timeout, "timeout"},
		{errs.NavigationFailed, "navigation_failed"},
		{errs.ReferenceUnknown, "reference_unknown"},
		{errs.UnknownKey, "unknown_key"},
		{errs.NoHistory, "no_history"},
		{errs.StorageStateInvalid, "storage_state_invalid"},
		{errs.Unknown, "unknown"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestErrorIs(t *testing.T) {
	a := errs.New(errs.Timeout, nil)
	b := errs.Sentinel(errs.Timeout)
	if !errors.Is(a, b) {
		t.Errorf("errors.Is(%v, %v) = false, want true", a, b)
	}

	c := errs.Sentinel(errs.NoHistory)
	if errors.Is(a, c) {
		t.Errorf("errors.Is(%v, %v) = true, want false", a, c)
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	wrapped := errs.New(errs.TransportLost, inner)
	if !errors.Is(wrapped, inner) {
		t.Errorf("errors.Is(wrapped, inner) = false, want true")
	}
}

func TestProtocolMessage(t *testing.T) {
	e := errs.Protocol(-32000, "Node not found")
	want := "protocol_error: Node not found (-32000)"
	if got := e.Error(); got != want {
		t.Errorf("Protocol(-32000, ...).Error() = %q, want %q", got, want)
	}
}

func TestNewfMessage(t *testing.T) {
	e := errs.Newf(errs.UnknownKey, "unknown key %q", "Foo")
	want := `unknown_key: unknown key "Foo"`
	if got := e.Error(); got != want {
		t.Errorf("Newf(...).Error() = %q, want %q", got, want)
	}
}
