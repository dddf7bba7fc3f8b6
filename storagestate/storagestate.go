// Package storagestate implements the persisted storage-state document:
// a JSON export of a page's cookies and local storage, importable back
// into a fresh session. Unrecognized fields are ignored on import.
package storagestate

import (
	"encoding/json"
	"time"

	"github.com/agentweb/core/cdp/network"
	"github.com/agentweb/core/credentials"
	"github.com/agentweb/core/errs"
)

// CookieRecord is the storage-state document's JSON shape for one
// cookie.
type CookieRecord struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Domain   string `json:"domain"`
	Path     string `json:"path"`
	Expires  int64  `json:"expires,omitempty"`
	Secure   bool   `json:"secure,omitempty"`
	HTTPOnly bool   `json:"httpOnly,omitempty"`
	SameSite string `json:"sameSite,omitempty"`
}

// Document is the full persisted storage state: cookies plus the
// page's local key/value store.
type Document struct {
	Cookies      []CookieRecord    `json:"cookies"`
	LocalStorage map[string]string `json:"localStorage"`
}

// Marshal serializes a Document to indented JSON.
func Marshal(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Unmarshal parses a storage-state document, failing with
// StorageStateInvalid if it is not well-formed JSON.
func Unmarshal(b []byte) (*Document, error) {
	doc := &Document{}
	if err := json.Unmarshal(b, doc); err != nil {
		return nil, errs.New(errs.StorageStateInvalid, err)
	}
	return doc, nil
}

// ToCredentialCookies converts this document's cookies to
// credentials.Cookie records, for re-injection into a fresh session.
func (doc *Document) ToCredentialCookies() []credentials.Cookie {
	out := make([]credentials.Cookie, 0, len(doc.Cookies))
	for _, c := range doc.Cookies {
		cc := credentials.Cookie{
			Name: c.Name, Value: c.Value, Domain: c.Domain, Path: c.Path,
			Secure: c.Secure, HTTPOnly: c.HTTPOnly, SameSite: c.SameSite,
		}
		if c.Expires != 0 {
			cc.Expires = time.Unix(c.Expires, 0)
		}
		out = append(out, cc)
	}
	return out
}

// FromNetworkCookies builds a Document from the raw cookies
// Network.getCookies returned plus the page's local storage dump.
func FromNetworkCookies(cookies []network.Cookie, localStorage map[string]string) *Document {
	doc := &Document{LocalStorage: localStorage}
	for _, c := range cookies {
		doc.Cookies = append(doc.Cookies, CookieRecord{
			Name: c.Name, Value: c.Value, Domain: c.Domain, Path: c.Path,
			Expires: int64(c.Expires), Secure: c.Secure, HTTPOnly: c.HTTPOnly, SameSite: c.SameSite,
		})
	}
	return doc
}
