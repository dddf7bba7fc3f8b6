// Package network implements the subset of the CDP Network domain this
// module needs for cookie injection and extraction. See
// https://chromedevtools.github.io/devtools-protocol/tot/Network/.
package network

import (
	"context"
	"encoding/json"

	"github.com/agentweb/core/cdp"
)

// Enable contains the (empty) parameters of "Network.enable".
type Enable struct{}

// NewEnable constructs Enable.
func NewEnable() *Enable { return &Enable{} }

// Do sends the command.
func (cmd *Enable) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "Network.enable", cmd)
	return err
}

// CookieParam is the CDP "Network.CookieParam" used to set a cookie.
type CookieParam struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Domain   string `json:"domain,omitempty"`
	Path     string `json:"path,omitempty"`
	Secure   bool   `json:"secure,omitempty"`
	HTTPOnly bool   `json:"httpOnly,omitempty"`
	SameSite string `json:"sameSite,omitempty"`
	Expires  float64 `json:"expires,omitempty"`
}

// SetCookies contains the parameters of "Network.setCookies".
type SetCookies struct {
	Cookies []CookieParam `json:"cookies"`
}

// NewSetCookies constructs SetCookies.
func NewSetCookies(cookies []CookieParam) *SetCookies {
	return &SetCookies{Cookies: cookies}
}

// Do sends the command.
func (cmd *SetCookies) Do(ctx context.Context, s cdp.SessionView) error {
	_, err := s.Send(ctx, "Network.setCookies", cmd)
	return err
}

// Cookie is the CDP "Network.Cookie" shape returned by GetCookies.
type Cookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain"`
	Path     string  `json:"path"`
	Expires  float64 `json:"expires"`
	Secure   bool    `json:"secure"`
	HTTPOnly bool    `json:"httpOnly"`
	SameSite string  `json:"sameSite,omitempty"`
}

// GetCookies contains the parameters of "Network.getCookies".
type GetCookies struct {
	URLs []string `json:"urls,omitempty"`
}

// NewGetCookies constructs GetCookies.
func NewGetCookies(urls []string) *GetCookies { return &GetCookies{URLs: urls} }

// GetCookiesResult contains the result of "Network.getCookies".
type GetCookiesResult struct {
	Cookies []Cookie `json:"cookies"`
}

// Do sends the command.
func (cmd *GetCookies) Do(ctx context.Context, s cdp.SessionView) (*GetCookiesResult, error) {
	raw, err := s.Send(ctx, "Network.getCookies", cmd)
	if err != nil {
		return nil, err
	}
	result := &GetCookiesResult{}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, err
	}
	return result, nil
}
