package interact

import (
	"errors"
	"testing"

	"github.com/agentweb/core/errs"
)

func TestLookupKeyKnownNames(t *testing.T) {
	tests := []struct {
		name       string
		wantKey    string
		wantText   string
		wantVirtual int64
	}{
		{"Enter", "Enter", "\r", 13},
		{"Tab", "Tab", "\t", 9},
		{"Space", " ", " ", 32},
		{"ArrowDown", "ArrowDown", "", 40},
	}
	for _, tc := range tests {
		k, err := lookupKey(tc.name)
		if err != nil {
			t.Fatalf("lookupKey(%q) error: %v", tc.name, err)
		}
		if k.Key != tc.wantKey || k.Text != tc.wantText || k.VirtualKey != tc.wantVirtual {
			t.Errorf("lookupKey(%q) = %+v, want Key=%q Text=%q VirtualKey=%d",
				tc.name, k, tc.wantKey, tc.wantText, tc.wantVirtual)
		}
	}
}

func TestLookupKeyUnknownName(t *testing.T) {
	_, err := lookupKey("F13")
	if err == nil {
		t.Fatal("lookupKey(\"F13\") error = nil, want UnknownKey")
	}
	var e *errs.Error
	if !errors.As(err, &e) || e.Kind != errs.UnknownKey {
		t.Errorf("lookupKey(\"F13\") error kind = %v, want UnknownKey", err)
	}
}
