package page

import (
	"context"
	"encoding/json"
	"os"

	"github.com/agentweb/core/cdp/network"
	"github.com/agentweb/core/cdp/runtime"
	"github.com/agentweb/core/credentials"
	"github.com/agentweb/core/storagestate"
)

// localStorageDumpScript serializes every key/value pair in the current
// document's localStorage to a JSON object.
const localStorageDumpScript = `(() => {
  const out = {};
  for (let i = 0; i < localStorage.length; i++) {
    const k = localStorage.key(i);
    out[k] = localStorage.getItem(k);
  }
  return JSON.stringify(out);
})();`

// SaveState exports the current session's cookies and local storage and
// writes them to path as a storage-state document.
func (p *Page) SaveState(ctx context.Context, path string) error {
	cookiesResult, err := network.NewGetCookies(nil).Do(ctx, p.session)
	if err != nil {
		return err
	}

	localStorage := map[string]string{}
	if evalResult, err := runtime.NewEvaluate(localStorageDumpScript).Do(ctx, p.session); err == nil {
		if raw, ok := evalResult.Result.Value.(string); ok {
			json.Unmarshal([]byte(raw), &localStorage)
		}
	}

	doc := storagestate.FromNetworkCookies(cookiesResult.Cookies, localStorage)
	b, err := storagestate.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// loadStorageStateFile reads and applies a storage-state document from
// disk at connect time. A missing or invalid file is not fatal: it is
// treated as "nothing to restore".
func (p *Page) loadStorageStateFile(ctx context.Context, path string) {
	b, err := os.ReadFile(path)
	if err != nil {
		return
	}
	doc, err := storagestate.Unmarshal(b)
	if err != nil {
		return
	}
	p.applyStorageState(ctx, doc)
}

func (p *Page) applyStorageState(ctx context.Context, doc *storagestate.Document) {
	if len(doc.Cookies) > 0 {
		params := make([]network.CookieParam, 0, len(doc.Cookies))
		for _, c := range doc.Cookies {
			params = append(params, network.CookieParam{
				Name: c.Name, Value: c.Value, Domain: c.Domain, Path: c.Path,
				Secure: c.Secure, HTTPOnly: c.HTTPOnly, SameSite: c.SameSite,
				Expires: float64(c.Expires),
			})
		}
		network.NewSetCookies(params).Do(ctx, p.session)
	}
	if len(doc.LocalStorage) > 0 {
		b, err := json.Marshal(doc.LocalStorage)
		if err == nil {
			script := "(() => { const items = " + string(b) + "; for (const k in items) { localStorage.setItem(k, items[k]); } })();"
			runtime.NewEvaluate(script).Do(ctx, p.session)
		}
	}
}

// InjectCookies reads cookies for url's host from source and installs
// them via Network.setCookies. Best-effort: failures are swallowed.
func (p *Page) InjectCookies(ctx context.Context, url string, source credentials.Source) {
	credentials.Inject(ctx, p.session, source, url)
}
