package storagestate_test

import (
	"testing"

	"github.com/agentweb/core/cdp/network"
	"github.com/agentweb/core/errs"
	"github.com/agentweb/core/storagestate"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	doc := &storagestate.Document{
		Cookies: []storagestate.CookieRecord{
			{Name: "session", Value: "abc123", Domain: "example.com", Path: "/", Secure: true},
		},
		LocalStorage: map[string]string{"theme": "dark"},
	}
	b, err := storagestate.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	got, err := storagestate.Unmarshal(b)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if len(got.Cookies) != 1 || got.Cookies[0].Name != "session" {
		t.Errorf("round trip lost cookie data: %+v", got.Cookies)
	}
	if got.LocalStorage["theme"] != "dark" {
		t.Errorf("round trip lost local storage data: %+v", got.LocalStorage)
	}
}

func TestUnmarshalInvalidJSON(t *testing.T) {
	_, err := storagestate.Unmarshal([]byte("not json"))
	if err == nil {
		t.Fatal("Unmarshal(invalid) error = nil, want StorageStateInvalid")
	}
	e, ok := err.(*errs.Error)
	if !ok || e.Kind != errs.StorageStateInvalid {
		t.Errorf("Unmarshal(invalid) error = %v, want StorageStateInvalid", err)
	}
}

func TestToCredentialCookiesConvertsExpires(t *testing.T) {
	doc := &storagestate.Document{
		Cookies: []storagestate.CookieRecord{
			{Name: "a", Value: "1", Expires: 1700000000},
			{Name: "b", Value: "2"},
		},
	}
	got := doc.ToCredentialCookies()
	if len(got) != 2 {
		t.Fatalf("len(ToCredentialCookies()) = %d, want 2", len(got))
	}
	if got[0].Expires.IsZero() {
		t.Error("cookie with nonzero Expires converted to zero time.Time")
	}
	if !got[1].Expires.IsZero() {
		t.Error("cookie with zero Expires converted to nonzero time.Time")
	}
	if got[0].Expires.Unix() != 1700000000 {
		t.Errorf("Expires = %v, want unix 1700000000", got[0].Expires)
	}
}

func TestFromNetworkCookiesBuildsDocument(t *testing.T) {
	cookies := []network.Cookie{
		{Name: "id", Value: "xyz", Domain: "example.com", Path: "/", Secure: true, HTTPOnly: true, SameSite: "Lax"},
	}
	doc := storagestate.FromNetworkCookies(cookies, map[string]string{"k": "v"})
	if len(doc.Cookies) != 1 {
		t.Fatalf("len(doc.Cookies) = %d, want 1", len(doc.Cookies))
	}
	c := doc.Cookies[0]
	if c.Name != "id" || c.Value != "xyz" || c.Domain != "example.com" || !c.Secure || !c.HTTPOnly {
		t.Errorf("FromNetworkCookies() cookie = %+v, want fields preserved", c)
	}
	if doc.LocalStorage["k"] != "v" {
		t.Errorf("FromNetworkCookies() LocalStorage = %+v, want k=v", doc.LocalStorage)
	}
}
