package credentials_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentweb/core/cdp"
	"github.com/agentweb/core/credentials"
)

func TestNormalizeDomainStripsWWW(t *testing.T) {
	tests := map[string]string{
		"www.example.com": "example.com",
		"example.com":     "example.com",
		"www.www.foo.com": "www.foo.com",
		"":                "",
	}
	for in, want := range tests {
		assert.Equal(t, want, credentials.NormalizeDomain(in), "NormalizeDomain(%q)", in)
	}
}

type fakeSource struct {
	cookies []credentials.Cookie
	err     error
	calls   []string
}

func (f *fakeSource) CookiesFor(ctx context.Context, domain string) ([]credentials.Cookie, error) {
	f.calls = append(f.calls, domain)
	return f.cookies, f.err
}

func TestSourceReceivesNormalizedDomain(t *testing.T) {
	src := &fakeSource{cookies: []credentials.Cookie{{Name: "id", Value: "1"}}}
	cookies, err := src.CookiesFor(context.Background(), credentials.NormalizeDomain("www.example.com"))
	require.NoError(t, err)
	require.Len(t, cookies, 1)
	assert.Equal(t, "example.com", src.calls[0])
}

func TestSourceErrorPropagates(t *testing.T) {
	wantErr := errors.New("keychain locked")
	src := &fakeSource{err: wantErr}
	_, err := src.CookiesFor(context.Background(), "example.com")
	assert.ErrorIs(t, err, wantErr)
}

func TestInjectExtractsHostFromFullURL(t *testing.T) {
	src := &fakeSource{} // no cookies: Inject returns before touching the session
	credentials.Inject(context.Background(), cdp.SessionView{}, src, "https://www.example.com/path?q=1")
	require.Len(t, src.calls, 1)
	assert.Equal(t, "example.com", src.calls[0])
}

func TestInjectAcceptsBareHost(t *testing.T) {
	src := &fakeSource{}
	credentials.Inject(context.Background(), cdp.SessionView{}, src, "www.example.com")
	require.Len(t, src.calls, 1)
	assert.Equal(t, "example.com", src.calls[0])
}

func TestCookieExpiresZeroValue(t *testing.T) {
	c := credentials.Cookie{Name: "a", Value: "b"}
	assert.True(t, c.Expires.IsZero())
	c.Expires = time.Unix(1700000000, 0)
	assert.False(t, c.Expires.IsZero())
}
