package page

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/agentweb/core/browserhost"
	"github.com/agentweb/core/cdp"
	cdppage "github.com/agentweb/core/cdp/page"
	"github.com/agentweb/core/cdp/target"
	"github.com/agentweb/core/snapshot"
)

// challengeVocab is the fixed set of phrases a headless run's snapshot
// is checked against to decide whether an anti-bot challenge blocked
// the page.
var challengeVocab = []string{
	"just a moment",
	"checking your browser",
	"verify you are human",
	"prove your humanity",
	"attention required",
	"file a ticket",
}

// looksChallenged reports whether text contains any of the fixed
// challenge-page phrases, case-insensitively.
func looksChallenged(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range challengeVocab {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// SnapshotHybrid runs the full snapshot pipeline in headless mode first.
// If the resulting document looks like an anti-bot challenge, it tears
// the headless session down, reconnects to the external headed browser
// on cfg.DebugPort, re-navigates to url, re-dismisses consent, and
// re-snapshots. If the second attempt still looks challenged, that
// snapshot is returned as-is: this module never attempts to solve a
// challenge itself.
func (p *Page) SnapshotHybrid(ctx context.Context, url string, opts SnapshotOptions) (string, error) {
	doc, err := p.Snapshot(ctx, opts)
	if err != nil {
		return "", err
	}
	if !looksChallenged(doc) {
		return doc, nil
	}
	p.log.Info("headless snapshot looks challenged, falling back to headed browser",
		zap.Int("debugPort", p.cfg.DebugPort))

	if err := p.reconnectHeaded(ctx, url); err != nil {
		return doc, err
	}

	if err := p.Goto(ctx, url, 0); err != nil {
		return doc, err
	}
	return p.Snapshot(ctx, opts)
}

// reconnectHeaded tears down the current headless session (closing the
// target, transport, and owned child process) and attaches a fresh
// session to the external headed browser on cfg.DebugPort, re-applying
// permission suppression and, when a credential source is configured,
// re-injecting cookies for url's host.
func (p *Page) reconnectHeaded(ctx context.Context, url string) error {
	oldProc := p.proc
	oldTransport := p.transport

	wsURL, err := browserhost.Connect(ctx, p.cfg.DebugPort)
	if err != nil {
		return err
	}

	newTransport, err := cdp.Dial(ctx, wsURL, p.log)
	if err != nil {
		return err
	}

	browserSession := newTransport.Browser()
	created, err := target.NewCreateTarget("about:blank").Do(ctx, browserSession)
	if err != nil {
		newTransport.Close()
		return err
	}
	attached, err := target.NewAttachToTarget(created.TargetID).Do(ctx, browserSession)
	if err != nil {
		newTransport.Close()
		return err
	}

	p.eventCancel()
	cdppage.NewClose().Do(ctx, p.session)
	oldTransport.Close()
	if oldProc != nil {
		oldProc.Close()
	}

	p.transport = newTransport
	p.session = cdp.SessionView{T: newTransport, SessionID: attached.SessionID}
	p.proc = nil // headed browser is external; never owned
	p.targetID = created.TargetID

	eventCtx, eventCancel := context.WithCancel(context.Background())
	p.eventCtx, p.eventCancel = eventCtx, eventCancel

	p.mu.Lock()
	p.refs = snapshot.RefMap{}
	p.mu.Unlock()

	if err := p.init(ctx); err != nil {
		return err
	}
	if p.credSource != nil {
		p.InjectCookies(ctx, url, p.credSource)
	}
	return nil
}
