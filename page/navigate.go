package page

import (
	"context"
	"encoding/json"
	"time"

	"github.com/agentweb/core/cdp"
	cdppage "github.com/agentweb/core/cdp/page"
	"github.com/agentweb/core/cdp/runtime"
	"github.com/agentweb/core/consent"
	"github.com/agentweb/core/errs"
)

const navigateSettleDelay = 500 * time.Millisecond

// Goto navigates to url, waits for the load event (or times out), lets
// the page settle briefly, and runs the consent dismisser if the
// configured policy calls for it.
func (p *Page) Goto(ctx context.Context, url string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	loadCh := p.session.On(waitCtx, "Page.lifecycleEvent")

	result, err := cdppage.NewNavigate(url).Do(ctx, p.session)
	if err != nil {
		return err
	}
	if result.ErrorText != "" {
		return errs.Newf(errs.NavigationFailed, "%s", result.ErrorText)
	}

	if err := waitForLifecycleEvent(waitCtx, loadCh, "load"); err != nil {
		return err
	}

	select {
	case <-time.After(navigateSettleDelay):
	case <-ctx.Done():
		return errs.New(errs.Timeout, ctx.Err())
	}

	if p.cfg.ConsentPolicy {
		p.dismissConsent(ctx)
	}
	return nil
}

func waitForLifecycleEvent(ctx context.Context, ch <-chan *cdp.Message, name string) error {
	for {
		select {
		case m, ok := <-ch:
			if !ok {
				return errs.New(errs.Timeout, ctx.Err())
			}
			evt, err := cdppage.ParseLifecycleEvent(m.Params)
			if err != nil {
				continue
			}
			if evt.Name == name {
				return nil
			}
		case <-ctx.Done():
			return errs.New(errs.Timeout, ctx.Err())
		}
	}
}

func (p *Page) dismissConsent(ctx context.Context) {
	root, _, err := p.rawTree(ctx)
	if err != nil {
		return
	}
	consent.Dismiss(ctx, p.session, root)
}

// GoBack navigates to the history entry immediately before the current
// one, failing with NoHistory if there is none.
func (p *Page) GoBack(ctx context.Context) error {
	return p.navigateHistory(ctx, -1)
}

// GoForward navigates to the history entry immediately after the
// current one, failing with NoHistory if there is none.
func (p *Page) GoForward(ctx context.Context) error {
	return p.navigateHistory(ctx, 1)
}

func (p *Page) navigateHistory(ctx context.Context, delta int64) error {
	hist, err := cdppage.NewGetNavigationHistory().Do(ctx, p.session)
	if err != nil {
		return err
	}
	targetIndex := hist.CurrentIndex + delta
	if targetIndex < 0 || targetIndex >= int64(len(hist.Entries)) {
		return errs.Sentinel(errs.NoHistory)
	}
	entry := hist.Entries[targetIndex]
	return (&cdppage.NavigateToHistoryEntry{EntryID: entry.ID}).Do(ctx, p.session)
}

// WaitForNavigation waits for the load lifecycle event; if it does not
// fire within timeout, it waits one SPA settle delay and returns without
// error, since a client-side route change never fires a load event.
func (p *Page) WaitForNavigation(ctx context.Context, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ch := p.session.On(waitCtx, "Page.lifecycleEvent")
	if err := waitForLifecycleEvent(waitCtx, ch, "load"); err != nil {
		select {
		case <-time.After(navigateSettleDelay):
			return nil
		case <-ctx.Done():
			return errs.New(errs.Timeout, ctx.Err())
		}
	}
	return nil
}

// WaitForNetworkIdle waits until the in-flight request count has been
// at or below zero continuously for idle, or fails with Timeout at the
// absolute deadline. Both the deadline and the idle-threshold timer are
// abandoned as soon as either fires.
func (p *Page) WaitForNetworkIdle(ctx context.Context, timeout, idle time.Duration) error {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if idle <= 0 {
		idle = 500 * time.Millisecond
	}
	deadline := time.Now().Add(timeout)

	for {
		if p.inFlightCount() <= 0 {
			quietUntil := time.Now().Add(idle)
			settled := true
			for time.Now().Before(quietUntil) {
				if time.Now().After(deadline) {
					return errs.New(errs.Timeout, ctx.Err())
				}
				if p.inFlightCount() > 0 {
					settled = false
					break
				}
				select {
				case <-time.After(20 * time.Millisecond):
				case <-ctx.Done():
					return errs.New(errs.Timeout, ctx.Err())
				}
			}
			if settled {
				return nil
			}
			continue
		}
		if time.Now().After(deadline) {
			return errs.New(errs.Timeout, ctx.Err())
		}
		select {
		case <-time.After(20 * time.Millisecond):
		case <-ctx.Done():
			return errs.New(errs.Timeout, ctx.Err())
		}
	}
}

// WaitForOptions configures WaitFor.
type WaitForOptions struct {
	Text     string
	Selector string
	Timeout  time.Duration
}

const waitForPollInterval = 200 * time.Millisecond

// WaitFor polls every 200 ms until either the page's visible text
// contains opts.Text or document.querySelector(opts.Selector) resolves,
// failing with Timeout at the deadline.
func (p *Page) WaitFor(ctx context.Context, opts WaitForOptions) error {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	deadline := time.Now().Add(timeout)

	expr := waitForExpression(opts)
	for {
		if ok, _ := p.evaluateBool(ctx, expr); ok {
			return nil
		}
		if time.Now().After(deadline) {
			return errs.New(errs.Timeout, ctx.Err())
		}
		select {
		case <-time.After(waitForPollInterval):
		case <-ctx.Done():
			return errs.New(errs.Timeout, ctx.Err())
		}
	}
}

func waitForExpression(opts WaitForOptions) string {
	textJSON, _ := json.Marshal(opts.Text)
	selectorJSON, _ := json.Marshal(opts.Selector)
	return "(() => { " +
		"const text = " + string(textJSON) + "; " +
		"const selector = " + string(selectorJSON) + "; " +
		"if (text && document.body && document.body.innerText.includes(text)) return true; " +
		"if (selector && document.querySelector(selector) !== null) return true; " +
		"return false; })();"
}

func (p *Page) evaluateBool(ctx context.Context, expr string) (bool, error) {
	result, err := runtime.NewEvaluate(expr).Do(ctx, p.session)
	if err != nil {
		return false, err
	}
	b, _ := result.Result.Value.(bool)
	return b, nil
}
