// Package page is the public façade: one Page per Connect call, owning
// its transport, session, optional child process, dialog log and
// current reference map.
package page

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/agentweb/core/browserhost"
	"github.com/agentweb/core/cdp"
	axdomain "github.com/agentweb/core/cdp/accessibility"
	browserdomain "github.com/agentweb/core/cdp/browser"
	"github.com/agentweb/core/cdp/emulation"
	"github.com/agentweb/core/cdp/network"
	cdppage "github.com/agentweb/core/cdp/page"
	"github.com/agentweb/core/cdp/runtime"
	"github.com/agentweb/core/cdp/target"
	"github.com/agentweb/core/config"
	"github.com/agentweb/core/credentials"
	"github.com/agentweb/core/snapshot"
)

// DialogEntry is one JavaScript dialog the page observed.
type DialogEntry struct {
	Type      string
	Message   string
	Timestamp time.Time
}

// ConsoleEntry is one console.* call the page observed.
type ConsoleEntry struct {
	Type      string
	Text      string
	Timestamp time.Time
}

// Page is one browser tab, owned exclusively by whoever called Connect.
type Page struct {
	cfg       config.Config
	log       *zap.Logger
	transport *cdp.Transport
	session   cdp.SessionView
	proc      *browserhost.Process // nil when attached to an externally-managed browser
	targetID  string

	mu        sync.Mutex
	refs      snapshot.RefMap
	dialogs   []DialogEntry
	console   []ConsoleEntry
	inflight  int

	netCond *sync.Cond

	credSource credentials.Source

	eventCtx    context.Context
	eventCancel context.CancelFunc
}

// permissionCategories is the fixed set of permission prompts this
// module suppresses at connect time so a headless agent never blocks on
// a native prompt.
var permissionCategories = []browserdomain.PermissionType{
	browserdomain.PermissionGeolocation,
	browserdomain.PermissionNotifications,
	browserdomain.PermissionMidi,
	browserdomain.PermissionDurableStorage,
	browserdomain.PermissionCamera,
	browserdomain.PermissionMicrophone,
	browserdomain.PermissionBackgroundSync,
	browserdomain.PermissionSensors,
	browserdomain.PermissionIdleDetection,
}

// Connect launches (or attaches to) a browser, creates a new page
// target, attaches to it in flattened-session mode, enables the
// domains this module depends on, and installs the stealth script,
// viewport override, permission suppression and dialog/console
// background subscriptions.
func Connect(ctx context.Context, cfg config.Config) (*Page, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var proc *browserhost.Process
	var wsURL string
	var err error
	if cfg.ConnectExisting {
		wsURL, err = browserhost.Connect(ctx, cfg.DebugPort)
	} else {
		proc, err = browserhost.Launch(ctx, browserhost.Options{
			ExecutablePath: cfg.ExecutablePath,
			Headless:       cfg.Headless,
			ExtraFlags:     cfg.ExtraFlags,
			Log:            log,
		})
		if err == nil {
			wsURL = proc.WSEndpoint
		}
	}
	if err != nil {
		return nil, err
	}

	transport, err := cdp.Dial(ctx, wsURL, log)
	if err != nil {
		if proc != nil {
			proc.Close()
		}
		return nil, err
	}

	browserSession := transport.Browser()
	created, err := target.NewCreateTarget("about:blank").Do(ctx, browserSession)
	if err != nil {
		transport.Close()
		if proc != nil {
			proc.Close()
		}
		return nil, err
	}
	attached, err := target.NewAttachToTarget(created.TargetID).Do(ctx, browserSession)
	if err != nil {
		transport.Close()
		if proc != nil {
			proc.Close()
		}
		return nil, err
	}

	session := cdp.SessionView{T: transport, SessionID: attached.SessionID}

	eventCtx, eventCancel := context.WithCancel(context.Background())
	p := &Page{
		cfg: cfg, log: log, transport: transport, session: session,
		proc: proc, targetID: created.TargetID,
		eventCtx: eventCtx, eventCancel: eventCancel,
	}
	p.netCond = sync.NewCond(&p.mu)

	if err := p.init(ctx); err != nil {
		p.Close(ctx)
		return nil, err
	}
	return p, nil
}

func (p *Page) init(ctx context.Context) error {
	if err := cdppage.NewEnable().Do(ctx, p.session); err != nil {
		return err
	}
	if err := cdppage.NewSetLifecycleEventsEnabled(true).Do(ctx, p.session); err != nil {
		return err
	}
	if err := network.NewEnable().Do(ctx, p.session); err != nil {
		return err
	}
	if err := axdomain.NewEnable().Do(ctx, p.session); err != nil {
		return err
	}
	if err := runtime.NewEnable().Do(ctx, p.session); err != nil {
		return err
	}
	if _, err := p.session.Send(ctx, "DOM.enable", nil); err != nil {
		return err
	}

	if p.cfg.Headless {
		cdppage.NewAddScriptToEvaluateOnNewDocument(stealthScript).Do(ctx, p.session)
	}
	if p.cfg.ViewportWidth > 0 && p.cfg.ViewportHeight > 0 {
		emulation.NewSetDeviceMetricsOverride(p.cfg.ViewportWidth, p.cfg.ViewportHeight).Do(ctx, p.session)
	}

	for _, kind := range permissionCategories {
		// Best-effort: a permission type this browser version does not
		// recognize returns ProtocolError, which is swallowed.
		browserdomain.NewSetPermission("", kind, browserdomain.PermissionDenied).Do(ctx, p.session)
	}

	go p.watchDialogs()
	go p.watchConsole()
	go p.watchNetwork()

	if p.cfg.StorageStatePath != "" {
		p.loadStorageStateFile(ctx, p.cfg.StorageStatePath)
	}
	return nil
}

func (p *Page) watchDialogs() {
	ch := p.session.On(p.eventCtx, "Page.javascriptDialogOpening")
	for m := range ch {
		evt, err := cdppage.ParseJavascriptDialogOpening(m.Params)
		if err != nil {
			continue
		}
		p.mu.Lock()
		p.dialogs = append(p.dialogs, DialogEntry{Type: evt.Type, Message: evt.Message, Timestamp: time.Now()})
		p.mu.Unlock()

		accept := evt.Type != "beforeunload"
		cdppage.NewHandleJavaScriptDialog(accept).Do(p.eventCtx, p.session)
	}
}

// DialogLog returns the append-only list of every JavaScript dialog
// observed so far.
func (p *Page) DialogLog() []DialogEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]DialogEntry, len(p.dialogs))
	copy(out, p.dialogs)
	return out
}

// SetCredentialSource configures the external cookie source InjectCookies reads from.
func (p *Page) SetCredentialSource(src credentials.Source) { p.credSource = src }

// Close closes the page target, disconnects the transport, and kills
// the owned child process if any. A browser reached through
// ConnectExisting (including the hybrid fallback's headed browser) is
// never killed; a browser this Page launched is, headed or not.
func (p *Page) Close(ctx context.Context) error {
	p.eventCancel()
	cdppage.NewClose().Do(ctx, p.session)
	err := p.transport.Close()
	if p.proc != nil {
		if e := p.proc.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}
