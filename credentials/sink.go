// Package credentials defines the pluggable cookie-source boundary and
// the sink that installs cookies on a page session: registrable-domain
// normalization plus Network.setCookies. Disk/keychain decryption is
// explicitly external; only the interface boundary lives here.
package credentials

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/agentweb/core/cdp"
	"github.com/agentweb/core/cdp/network"
)

// Cookie is this module's cookie record, shared between the credential
// source contract and the storage-state document.
type Cookie struct {
	Name     string
	Value    string
	Domain   string
	Path     string
	Expires  time.Time
	Secure   bool
	HTTPOnly bool
	SameSite string
}

// Source is the external collaborator this module pulls cookies from
// (e.g. a disk-based browser-cookie-jar reader); the core never
// decrypts anything itself.
type Source interface {
	CookiesFor(ctx context.Context, domain string) ([]Cookie, error)
}

// Sink installs cookies on one page session.
type Sink struct {
	Session cdp.SessionView
}

// NewSink constructs a Sink bound to a session.
func NewSink(session cdp.SessionView) *Sink {
	return &Sink{Session: session}
}

// NormalizeDomain strips a leading "www." from host, the registrable-
// domain normalization required before querying a credential source or
// matching cookies to a URL's host.
func NormalizeDomain(host string) string {
	return strings.TrimPrefix(host, "www.")
}

// hostOf extracts the hostname from a full page URL. rawURL that fails
// to parse, or that has no host component (e.g. it is already a bare
// hostname), is returned unchanged.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Hostname()
}

// Inject reads cookies for pageURL's (normalized) host from source and
// installs them via Network.setCookies. Any failure is swallowed:
// cookie injection is a best-effort step.
func Inject(ctx context.Context, session cdp.SessionView, source Source, pageURL string) {
	domain := NormalizeDomain(hostOf(pageURL))
	cookies, err := source.CookiesFor(ctx, domain)
	if err != nil || len(cookies) == 0 {
		return
	}
	params := make([]network.CookieParam, 0, len(cookies))
	for _, c := range cookies {
		p := network.CookieParam{
			Name: c.Name, Value: c.Value, Domain: c.Domain, Path: c.Path,
			Secure: c.Secure, HTTPOnly: c.HTTPOnly, SameSite: c.SameSite,
		}
		if !c.Expires.IsZero() {
			p.Expires = float64(c.Expires.Unix())
		}
		params = append(params, p)
	}
	network.NewSetCookies(params).Do(ctx, session)
}
